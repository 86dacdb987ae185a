// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"cipher-backend/analysis"
	"cipher-backend/crypto"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

// RegisterRoutes mounts every cipher endpoint under /api/v1.
func RegisterRoutes(router gin.IRouter, h *CipherHandler) {
	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)

		hill := api.Group("/hill")
		{
			hill.POST("/encrypt", h.Hill(opEncrypt))
			hill.POST("/decrypt", h.Hill(opDecrypt))
		}

		playfair := api.Group("/playfair")
		{
			playfair.POST("/encrypt", h.Playfair(opEncrypt))
			playfair.POST("/decrypt", h.Playfair(opDecrypt))
			playfair.GET("/square", h.PlayfairSquare)
		}

		vigenere := api.Group("/vigenere")
		{
			vigenere.POST("/encrypt", h.Vigenere(opEncrypt))
			vigenere.POST("/decrypt", h.Vigenere(opDecrypt))
			vigenere.GET("/table", h.VigenereTable)
		}

		api.POST("/analysis/frequency", h.Frequency)
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) Hill(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.HillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "hill", fmt.Sprintf("Failed to parse request: %v", err))
			return
		}

		var opts []crypto.HillOption
		if req.KeepPadding {
			opts = append(opts, crypto.WithKeepPadding())
		}
		cipher, err := crypto.NewHill(req.Key, opts...)
		if err != nil {
			fail(c, "hill", op, err)
			return
		}

		var result string
		if op == opEncrypt {
			result = cipher.Encrypt(req.Text)
		} else if result, err = cipher.Decrypt(req.Text); err != nil {
			fail(c, "hill", op, err)
			return
		}
		succeed(c, "hill", op, req.Text, result)
	}
}

func (h *CipherHandler) Playfair(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PlayfairRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playfair", fmt.Sprintf("Failed to parse request: %v", err))
			return
		}

		var opts []crypto.PlayfairOption
		if req.KeepFiller {
			opts = append(opts, crypto.WithKeepFiller())
		}
		cipher := crypto.NewPlayfair(req.Key, opts...)

		var result string
		var err error
		if op == opEncrypt {
			result = cipher.Encrypt(req.Text)
		} else if result, err = cipher.Decrypt(req.Text); err != nil {
			fail(c, "playfair", op, err)
			return
		}
		succeed(c, "playfair", op, req.Text, result)
	}
}

func (h *CipherHandler) Vigenere(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VigenereRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "vigenere", fmt.Sprintf("Failed to parse request: %v", err))
			return
		}

		cipher, err := crypto.NewVigenere(req.Key)
		if err != nil {
			fail(c, "vigenere", op, err)
			return
		}

		var result string
		if op == opEncrypt {
			result = cipher.Encrypt(req.Text)
		} else {
			result = cipher.Decrypt(req.Text)
		}
		succeed(c, "vigenere", op, req.Text, result)
	}
}

func (h *CipherHandler) PlayfairSquare(c *gin.Context) {
	key := c.Query("key")
	sq := crypto.NewPlayfair(key).Square()

	rows := make([]string, len(sq))
	for i := range sq {
		rows[i] = string(sq[i][:])
	}
	c.JSON(http.StatusOK, models.SquareResponse{
		Success: true,
		Key:     crypto.NormalizeMerged(key),
		Rows:    rows,
	})
}

func (h *CipherHandler) VigenereTable(c *gin.Context) {
	table := crypto.TabulaRecta()
	c.JSON(http.StatusOK, models.TableResponse{
		Success: true,
		Rows:    table[:],
	})
}

func (h *CipherHandler) Frequency(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.AnalysisResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	resp := models.AnalysisResponse{
		Success:   true,
		Letters:   len(crypto.Normalize(req.Text)),
		IOC:       analysis.IndexOfCoincidence(req.Text),
		Frequency: analysis.LetterFrequency(req.Text),
	}

	if req.Key != "" {
		cipher, err := crypto.NewVigenere(req.Key)
		if err != nil {
			c.JSON(statusFor(err), models.AnalysisResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid key: %v", err),
			})
			return
		}
		resp.Ciphertext = cipher.Encrypt(req.Text)
		cmp := analysis.Compare(req.Text, resp.Ciphertext)
		resp.CipherIOC = cmp.CipherIOC
		resp.CipherFreq = cmp.Cipher
	}

	c.JSON(http.StatusOK, resp)
}

func succeed(c *gin.Context, cipher, op, input, result string) {
	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s %s succeeded", cipher, op),
		Cipher:    cipher,
		Operation: op,
		Input:     input,
		Result:    result,
	})
}

func fail(c *gin.Context, cipher, op string, err error) {
	log.Printf("[%s] %s %s failed: %v", requestID(c), cipher, op, err)
	c.JSON(statusFor(err), models.CipherResponse{
		Success:   false,
		Message:   fmt.Sprintf("Failed to %s: %v", op, err),
		Cipher:    cipher,
		Operation: op,
	})
}

func badRequest(c *gin.Context, cipher, msg string) {
	c.JSON(http.StatusBadRequest, models.CipherResponse{
		Success: false,
		Message: msg,
		Cipher:  cipher,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, crypto.ErrInvalidKey), errors.Is(err, crypto.ErrInvalidLength):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

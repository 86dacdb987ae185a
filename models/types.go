// Package models contain needed models
package models

import "cipher-backend/analysis"

// HillRequest represents a Hill encrypt or decrypt request
type HillRequest struct {
	Key         [][]int `json:"key" binding:"required,min=1,max=8,dive,min=1,max=8"`
	Text        string  `json:"text"`
	KeepPadding bool    `json:"keep_padding"`
}

// PlayfairRequest represents a Playfair encrypt or decrypt request
type PlayfairRequest struct {
	Key        string `json:"key"`
	Text       string `json:"text"`
	KeepFiller bool   `json:"keep_filler"`
}

// VigenereRequest represents a Vigenère encrypt or decrypt request
type VigenereRequest struct {
	Key  string `json:"key" binding:"required"`
	Text string `json:"text"`
}

// AnalysisRequest asks for letter statistics of a text. When Key is set the
// text is also encrypted with Vigenère and both sides are compared.
type AnalysisRequest struct {
	Text string `json:"text" binding:"required"`
	Key  string `json:"key"`
}

// CipherResponse represents the response after an encrypt or decrypt call
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Cipher    string `json:"cipher,omitempty"`
	Operation string `json:"operation,omitempty"`
	Input     string `json:"input,omitempty"`
	Result    string `json:"result,omitempty"`
}

// SquareResponse carries a Playfair key square
type SquareResponse struct {
	Success bool     `json:"success"`
	Key     string   `json:"key"`
	Rows    []string `json:"rows"`
}

// TableResponse carries the Vigenère tabula recta
type TableResponse struct {
	Success bool     `json:"success"`
	Rows    []string `json:"rows"`
}

// AnalysisResponse carries letter statistics
type AnalysisResponse struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message,omitempty"`
	Letters    int                    `json:"letters"`
	IOC        float64                `json:"ioc"`
	Frequency  []analysis.LetterCount `json:"frequency"`
	Ciphertext string                 `json:"ciphertext,omitempty"`
	CipherIOC  float64                `json:"cipher_ioc,omitempty"`
	CipherFreq []analysis.LetterCount `json:"cipher_frequency,omitempty"`
}

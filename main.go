package main

import (
	"flag"
	"log"

	"cipher-backend/config"
	"cipher-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	router := newRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Server.Port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/hill/{encrypt,decrypt}      - Hill cipher (n×n key matrix)")
	log.Printf("  POST /api/v1/playfair/{encrypt,decrypt}  - Playfair cipher (5×5 square, I=J)")
	log.Printf("  GET  /api/v1/playfair/square?key=        - Playfair key square")
	log.Printf("  POST /api/v1/vigenere/{encrypt,decrypt}  - Vigenère cipher")
	log.Printf("  GET  /api/v1/vigenere/table              - Tabula recta")
	log.Printf("  POST /api/v1/analysis/frequency          - Letter frequency and index of coincidence")
	log.Printf("  GET  /api/v1/health                      - Health check")

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", handlers.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{handlers.RequestIDHeader}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))
	router.Use(handlers.RequestID())

	handlers.RegisterRoutes(router, handlers.NewCipherHandler())
	return router
}

package main

import (
	"log"

	"pngme-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	conf := loadConfig()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = conf.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Stego-Method", "X-Stego-Chunk-Type", "X-Stego-Message", "X-Stego-Removed", "Content-Disposition"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	stegoHandler := handlers.NewStegoHandler(conf.MaxUploadMB << 20)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", stegoHandler.HealthCheck)

		stego := api.Group("/stego")
		{
			stego.POST("/encode", stegoHandler.EncodeMessage)
			stego.POST("/decode", stegoHandler.DecodeMessage)
			stego.POST("/remove", stegoHandler.RemoveChunks)
			stego.POST("/inspect", stegoHandler.InspectPNG)
		}
	}

	log.Printf("Server starting on port %s", conf.Port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/stego/encode  - Hide a message in a PNG chunk (returns stego PNG)")
	log.Printf("  POST /api/v1/stego/decode  - Extract a hidden message from a PNG")
	log.Printf("  POST /api/v1/stego/remove  - Strip all chunks of a type (returns cleaned PNG)")
	log.Printf("  POST /api/v1/stego/inspect - List all chunks with type, length and crc")
	log.Printf("  GET  /api/v1/health        - Health check")
	log.Printf("")
	log.Printf("Features:")
	log.Printf("  • CRC-verified PNG chunk parsing with byte-exact round-trips")
	log.Printf("  • Message embedding in ancillary chunks, image data untouched")
	log.Printf("  • Optional Vigenère cipher encryption")
	log.Printf("  • Direct streaming (no disk storage)")

	if err := router.Run(":" + conf.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

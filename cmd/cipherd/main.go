// Command cipherd serves the classical cipher toolkit over HTTP.
//
// It is a demonstration surface: keys travel in request bodies and nothing
// is persisted, so do not expose it beyond a classroom network.
package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bdiallo/go-classical-ciphers/server"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(config))

	server.NewHandler().RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  GET  /api/v1/health                  - Health check")
	log.Printf("  POST /api/v1/cipher/:name/encrypt    - Encrypt text (caesar, affine, vigenere, hill)")
	log.Printf("  POST /api/v1/cipher/:name/decrypt    - Decrypt text")
	log.Printf("  POST /api/v1/analyze                 - Entropy, redundancy, index of coincidence")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

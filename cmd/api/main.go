package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"consav/internal/api/handlers"
	"consav/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Log working directory and the preset path for debugging
	wd, err := os.Getwd()
	if err == nil {
		log.Printf("Working directory: %s", wd)
		presetDir := filepath.Join(wd, "examples", "presets")
		if info, err := os.Stat(presetDir); err == nil && info.IsDir() {
			log.Printf("Preset directory found: %s", presetDir)
		} else {
			log.Printf("Preset directory not found at: %s (error: %v)", presetDir, err)
		}
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	solveHandler := handlers.NewSolveHandler()
	simulateHandler := handlers.NewSimulateHandler()
	presetHandler := handlers.NewPresetHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/solve", solveHandler.RunSolve)
		api.POST("/solve/compare", solveHandler.CompareSolves)

		api.POST("/simulate", simulateHandler.RunSimulate)

		api.GET("/presets", presetHandler.ListPresets)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/httpapi"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(httpapi.CORS())
	router.Use(httpapi.ErrorHandler())

	params := config.Default()
	if cfgPath := os.Getenv("SCHEDULER_CONFIG"); cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("failed to load %s: %v", cfgPath, err)
		}
		params = loaded
	}

	handler := httpapi.NewHandler(params)
	handler.Register(router)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting scheduler API on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"siteproof/internal/server"
	"siteproof/internal/server/config"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := server.Run(cfg); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

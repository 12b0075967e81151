package main

import (
	"github.com/joho/godotenv"
	"github.com/you/padelsvc/internal/app"
	"github.com/you/padelsvc/internal/config"
	"github.com/you/padelsvc/internal/logger"
)

func main() {
	_ = godotenv.Load()
	log := logger.New(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", "error", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

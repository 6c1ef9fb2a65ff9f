package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"colonoscopy-prep/internal/config"
	"colonoscopy-prep/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logr := server.NewLogger(cfg)
	if err := server.Run(ctx, cfg, logr); err != nil {
		logr.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

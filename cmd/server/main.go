package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/thereayou/classlink/internal/config"
	"github.com/thereayou/classlink/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Default()

	cfg, err := config.Load(".env.local", ".env")
	if err != nil {
		log.Fatal("config: %v", err)
	}

	log.EnableRollbar(cfg.RollbarToken, cfg.Env, cfg.CodeVersion)
	defer log.Close()

	srv, err := NewServer(cfg, log)
	if err != nil {
		log.Fatal("startup: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, shutdownTimeout); err != nil {
		log.Error("%v", err)
	}
}

package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/bkmpey/portfolio"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := portfolio.LoadConfig()
	if err != nil {
		logger.Fatal("config load error", zap.Error(err))
	}

	app := portfolio.New(cfg, logger)
	defer app.Close()

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Start(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

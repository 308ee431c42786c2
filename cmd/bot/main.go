package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"league-tracker-backend/internal/bot"
	"league-tracker-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	b, err := bot.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to start bot:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := b.Run(ctx); err != nil && err != context.Canceled {
		logrus.Fatal("Bot stopped:", err)
	}
}

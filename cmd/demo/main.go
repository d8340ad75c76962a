package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-idioms/internal/app/bootstrap"
)

const configPath = "./configs"

func main() {
	// Initialize container with all dependencies
	container, err := bootstrap.NewContainer(bootstrap.ContainerOptions{
		ConfigPath: configPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.Run(ctx, os.Stdout); err != nil {
		_ = container.Close()
		container.Logger.Fatal("Demo run failed", zap.Error(err))
	}

	if err := container.Close(); err != nil {
		container.Logger.Warn("Failed to close container gracefully", zap.Error(err))
	}
}

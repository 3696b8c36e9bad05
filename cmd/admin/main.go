package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/cli"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/container"
)

var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory := func(ctx context.Context) (usecase.UserUseCase, func() error, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
		}

		// keep stdout for command output
		appLogger := logger.NewZapLogger(cfg.Logger.Production, "warn")

		services, err := container.New(ctx, cfg, appLogger, container.Options{})
		if err != nil {
			return nil, nil, err
		}
		return services.UserUseCase, func() error {
			_ = appLogger.Flush()
			return services.Close()
		}, nil
	}

	if err := cli.Run(ctx, factory, version, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

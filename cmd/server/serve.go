package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ia-service/internal/adapter/api"
	"ia-service/internal/adapter/store"
	"ia-service/internal/config"
	"ia-service/internal/usecase"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadServeConfig(opts)
	if err != nil {
		return err
	}
	logger := opts.logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svcOpts := []usecase.Option{usecase.WithClientPolicy(cfg.ClientPolicy)}

	// Redis is optional; without it /usage answers 503
	if cfg.RedisAddr != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rdb, err := store.Connect(connectCtx, cfg.RedisAddr)
		cancel()
		if err != nil {
			return err
		}
		defer rdb.Close()
		meter := usecase.NewResilientMeter(store.NewRedisUsageMeter(rdb, cfg.UsageTTL))
		svcOpts = append(svcOpts, usecase.WithUsageMeter(meter))
		logger.Info("usage metering enabled", zap.Duration("ttl", cfg.UsageTTL))
	}

	svc := usecase.NewPredictionService(logger, svcOpts...)
	gate := usecase.NewAuthGate(cfg.AuthTokens)

	app := api.NewApp(cfg.AppName, logger)
	api.SetupRouter(app,
		api.NewPredictionHandler(svc, logger, cfg.AppVersion, cfg.Env),
		api.AuthMiddleware(gate, cfg.InvalidTokenStatus, logger))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server starting",
		zap.String("app", cfg.AppName),
		zap.String("port", cfg.Port),
		zap.Int("tokens", gate.Size()),
		zap.String("client_policy", string(cfg.ClientPolicy)),
		zap.Int("invalid_token_status", cfg.InvalidTokenStatus))

	err = app.Listen(":" + cfg.Port)
	// let in-flight usage writes land before the deferred Redis close
	svc.Wait()
	return err
}

// loadServeConfig reads the env file and environment, then replaces the
// bootstrap logger with one at the configured level unless --verbose is set.
func loadServeConfig(opts *rootOptions) (*config.Config, error) {
	cfg, envLoaded, err := config.Load(opts.envFile)
	if opts.envFile != "" && !envLoaded {
		opts.logger.Warn("env file not found, using system environment variables", zap.String("file", opts.envFile))
	}
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		return cfg, nil
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	opts.replaceLogger(logger)
	return cfg, nil
}

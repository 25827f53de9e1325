package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	envFile string
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ia-service",
		Short: "Simulated AI prediction endpoints behind bearer-token auth",
		Long: `ia-service serves deterministic, seed-derived simulations of four
prediction models: sales, client credit classification, demand and sentiment.

Run without a subcommand to start the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := os.Getenv("LOG_LEVEL")
			if opts.verbose {
				level = "debug"
			}
			logger, err := newLogger(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env.dev", "env file loaded before reading the environment")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newServeCmd(opts), newSimulateCmd(opts))
	return root
}

// replaceLogger flushes the current logger before swapping it out.
func (o *rootOptions) replaceLogger(l *zap.Logger) {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
	o.logger = l
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

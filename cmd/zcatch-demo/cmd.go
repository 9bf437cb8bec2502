package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

type serveOptions struct {
	addr            string
	configPath      string
	shutdownTimeout time.Duration
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "zcatch-demo",
		Short:        "Demo service for zcatch error catching",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	opts := serveOptions{
		addr:            ":8080",
		shutdownTimeout: 30 * time.Second,
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file with catching_enabled / logging_enabled (default: both on)")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", opts.shutdownTimeout, "graceful shutdown timeout")
	return cmd
}

func loadConfig(path string) (errnotify.Config, error) {
	if path == "" {
		return errnotify.Config{CatchingEnabled: true, LoggingEnabled: true}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return errnotify.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return errnotify.DecodeConfig(f)
}

func runServe(ctx context.Context, opts serveOptions) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("serving",
		zap.String("addr", opts.addr),
		zap.Bool("catching_enabled", a.notifier.CatchingEnabled()),
		zap.Bool("logging_enabled", a.notifier.LoggingEnabled()),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

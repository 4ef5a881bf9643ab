package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/uncertain/internal/config"
	"github.com/GriffinCanCode/uncertain/internal/logging"
	"github.com/GriffinCanCode/uncertain/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, envErr, err := loadConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger, logErr := logging.New(logging.ForService(cfg.Logging.Level, cfg.Logging.Development))
	if logErr != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid log configuration, using defaults", zap.Error(logErr))
	}
	defer func() { _ = logger.Sync() }()
	warnConfig(logger.Logger, envErr)

	srv, err := server.NewServer(cfg, logger.Logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutting down gracefully", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}
}

// loadConfig reads the environment, falling back to defaults when it is
// invalid, then applies flags on top. envErr reports the rejected
// environment; err reports bad flags.
func loadConfig(args []string) (cfg *config.Config, envErr error, err error) {
	cfg, envErr = config.Load()
	if envErr != nil {
		cfg = config.Default()
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "Server port")
	fs.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Server host")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "Development logging")
	if err := fs.Parse(args); err != nil {
		return nil, envErr, err
	}
	return cfg, envErr, nil
}

func warnConfig(log *zap.Logger, envErr error) {
	if envErr != nil {
		log.Warn("invalid environment configuration, using defaults", zap.Error(envErr))
	}
}

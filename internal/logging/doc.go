// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The CLI logs to stderr so results on stdout stay pipeable.
//
// Example Usage:
//
//	logger, err := logging.New(logging.ForService(cfg.Logging.Level, cfg.Logging.Development))
//	logger.Info("Server starting", zap.String("addr", cfg.Server.Addr()))
package logging

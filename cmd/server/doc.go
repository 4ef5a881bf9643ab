// Command server runs the uncertainty propagation HTTP API.
//
// Configuration comes from the environment (PORT, HOST, LOG_LEVEL, LOG_DEV,
// RATE_LIMIT_*, CORS_ORIGINS, WORKSHEET_*) and may be overridden by flags.
//
// Usage:
//
//	server -port 8000 -log-level debug
package main

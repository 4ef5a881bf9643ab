// Package server wires configuration, logging, metrics, middleware and the
// service registry into a Gin HTTP server.
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger
//  3. Register the propagation provider
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

// Package middleware provides the HTTP middleware stack: rate limiting,
// CORS, request IDs and zap request logging.
package middleware

// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	RequestTimeout time.Duration
}

// Chain creates a middleware chain with all configured middleware.
// RequestID is outermost so the access log and recovery both see the id.
func Chain(config *Config) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		// Wrap from the inside out
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}

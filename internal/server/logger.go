package server

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/rubiojr/fuelcalc/internal/config"
)

// NewLogger builds the request logger from the logging configuration.
func NewLogger(cfg config.LoggingConfig) (*httplog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return httplog.NewLogger("fuelcalc", httplog.Options{
		JSON:            cfg.JSON,
		LogLevel:        level,
		Concise:         true,
		QuietDownRoutes: []string{"/health", "/metrics"},
		QuietDownPeriod: 10 * time.Second,
	}), nil
}

// NewStreamLogger logs to w only; the stdio transport owns stdout.
func NewStreamLogger(cfg config.LoggingConfig, w io.Writer) (*httplog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &httplog.Logger{
		Logger:  slog.New(handler),
		Options: httplog.Options{LogLevel: level, JSON: cfg.JSON, Concise: true},
	}, nil
}

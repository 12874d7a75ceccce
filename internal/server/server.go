// Package server serves the fuel calculator tools over HTTP and MCP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rubiojr/fuelcalc/internal/config"
	"github.com/rubiojr/fuelcalc/internal/tools"
	"github.com/rubiojr/fuelcalc/pkg/api"
)

// Server answers tool calls. Results are memoized since every tool is a pure
// function of its arguments.
type Server struct {
	cfg      *config.Config
	log      *httplog.Logger
	cache    *cache.Cache
	registry *prometheus.Registry
	metrics  *Metrics
}

// New creates a Server with its own metrics registry.
func New(cfg *config.Config, logger *httplog.Logger) (*Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("error registering metrics: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		log:      logger,
		registry: reg,
		metrics:  metrics,
	}
	if cfg.Cache.TTLMinutes > 0 {
		s.cache = cache.New(
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
			time.Duration(cfg.Cache.CleanupMinutes)*time.Minute,
		)
	}
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	if s.cfg.Server.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if s.cfg.Server.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.cfg.Server.RateLimit, time.Minute))
		}
		r.Get("/tools", s.handleTools)
		r.Post("/tools/{name}", s.handleCall)
		if s.cfg.Server.MCP {
			m := s.MCP()
			r.Handle("/mcp", mcpserver.NewStreamableHTTPServer(m))
			// Legacy HTTP+SSE transport for clients that predate streamable HTTP.
			sse := mcpserver.NewSSEServer(m)
			r.Handle(sse.CompleteSsePath(), sse)
			r.Handle(sse.CompleteMessagePath(), sse)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	// Request contexts end on shutdown so open SSE streams do not hold it up.
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("Server exited")
	return nil
}

// Call runs a tool through the result cache and records metrics.
func (s *Server) Call(name string, args tools.Args) (api.ToolResult, error) {
	start := time.Now()

	key, cacheable := s.cacheKey(name, args)
	if cacheable {
		if cached, ok := s.cache.Get(key); ok {
			res := cached.(api.ToolResult)
			s.metrics.cacheHit(name)
			s.metrics.observe(name, nil, time.Since(start))
			s.metrics.recommended(name, res.Recommendation)
			return res, nil
		}
	}

	res, err := tools.Call(name, args)
	s.metrics.observe(name, err, time.Since(start))
	if err != nil {
		return res, err
	}

	s.metrics.recommended(name, res.Recommendation)
	if cacheable {
		s.cache.Set(key, res, cache.DefaultExpiration)
	}
	return res, nil
}

func (s *Server) cacheKey(name string, args tools.Args) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	if _, ok := tools.Lookup(name); !ok {
		return "", false
	}
	// Map keys are marshaled in sorted order, so equal arguments share a key.
	data, err := json.Marshal(args)
	if err != nil {
		return "", false
	}
	return name + ":" + string(data), true
}

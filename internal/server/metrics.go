// Package server exposes the application's Prometheus metrics over HTTP for
// long-running invocations. The server is opt-in via --metrics-addr and
// shuts down gracefully with the run.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/nttcalc/internal/logging"
	"github.com/agbru/nttcalc/internal/sysmon"
)

var activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "nttcalc",
	Subsystem: "http",
	Name:      "active_requests",
	Help:      "Number of HTTP requests currently being served.",
})

// Metrics serves the Prometheus scrape endpoint.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics endpoint backed by the default Prometheus
// registry.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// ServeHTTP serves a scrape request, tracking it in the active-requests gauge.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activeRequests.Inc()
	defer activeRequests.Dec()
	m.handler.ServeHTTP(w, r)
}

// shutdownGrace bounds how long an in-flight scrape may delay shutdown.
const shutdownGrace = 5 * time.Second

// Server is the HTTP endpoint carrier for metrics and health checks.
type Server struct {
	addr   string
	logger logging.Logger
}

// New creates a Server listening on addr once started.
//
// Parameters:
//   - addr: The listen address (e.g., "127.0.0.1:9090").
//   - logger: The logger for lifecycle events.
//
// Returns:
//   - *Server: The configured server.
func New(addr string, logger logging.Logger) *Server {
	return &Server{addr: addr, logger: logger}
}

// Run serves the metrics endpoint until the context is canceled, polling
// system usage in the background. It blocks; run it on its own goroutine.
//
// Parameters:
//   - ctx: The context governing the server lifetime.
//
// Returns:
//   - error: A listen or serve failure, nil on graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", SecurityMiddleware(DefaultSecurityConfig())(NewMetrics()))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go sysmon.Poll(ctx, sysmon.DefaultPollInterval)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("metrics server listening", logging.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown failed", err)
			return err
		}
		s.logger.Info("metrics server stopped")
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics server failed", err)
			return err
		}
		return nil
	}
}

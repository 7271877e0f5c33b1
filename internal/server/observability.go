// Observability middleware and HTTP endpoints for the index service
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/nainya/gstindex/internal/logger"
	"github.com/nainya/gstindex/internal/metrics"
	"github.com/nainya/gstindex/pkg/query"
)

// StatsSource reports the current index state for the health endpoints.
type StatsSource interface {
	Stats() query.Stats
}

// UnaryInterceptor returns a gRPC interceptor recording per-request metrics
// and request logs.
func UnaryInterceptor(m *metrics.Metrics, log *logger.Logger) grpc.UnaryServerInterceptor {
	grpcLog := log.Component("grpc")
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		settle := m.TrackInFlight()
		start := time.Now()

		resp, err := handler(ctx, req)

		settle()
		duration := time.Since(start)
		m.RecordGrpcRequest(info.FullMethod, requestStatus(err), duration)
		grpcLog.Request(info.FullMethod, duration, err)

		return resp, err
	}
}

func requestStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObservabilityServer serves Prometheus metrics, index-aware health checks
// and pprof over HTTP, next to the gRPC listener.
type ObservabilityServer struct {
	srv *http.Server
	log *logger.Logger
}

// NewObservabilityServer wires the observability endpoints over the given
// stats source.
func NewObservabilityServer(port int, stats StatsSource, log *logger.Logger) *ObservabilityServer {
	return &ObservabilityServer{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      newObservabilityMux(stats),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log.Component("http"),
	}
}

func newObservabilityMux(stats StatsSource) *http.ServeMux {
	mux := http.NewServeMux()

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// health reports liveness plus the index state a caller wants to see
	// before directing queries at this instance
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		s := stats.Stats()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     "healthy",
			"service":    "gstindex",
			"documents":  s.Documents,
			"nodes":      s.Nodes,
			"aggregated": s.Aggregated,
		})
	})

	// similarity queries fail until the index is aggregated, so readiness
	// tracks the aggregation flag rather than process liveness
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		s := stats.Stats()
		w.Header().Set("Content-Type", "application/json")
		if !s.Aggregated {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":    "not ready",
				"reason":    "index not aggregated",
				"documents": s.Documents,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ready",
		})
	})

	// pprof; the index handler also serves the named profiles (heap, ...)
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}

// Start blocks serving the observability endpoints until Shutdown.
func (o *ObservabilityServer) Start() error {
	o.log.Info().Str("addr", o.srv.Addr).Msg("observability endpoints available")

	if err := o.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("observability server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (o *ObservabilityServer) Shutdown(ctx context.Context) error {
	o.log.Info().Msg("shutting down observability server")
	return o.srv.Shutdown(ctx)
}

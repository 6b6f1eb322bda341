// Package observability builds the logger, tracer and metrics shared by the
// services and the HTTP server.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const ServiceName = "golf-tracker"

// Config mirrors the observability section of the application config.
type Config struct {
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
	Environment    string
}

// Observability bundles the telemetry providers.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  Metrics
	Registry *prometheus.Registry
}

// New builds the providers. Logs go to stderr.
func New(cfg Config) *Observability {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg Config, w io.Writer) *Observability {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, w).With(
		slog.String("service", ServiceName),
		slog.String("environment", cfg.Environment),
	)

	o := &Observability{
		Logger:  logger,
		Tracer:  otel.Tracer(ServiceName),
		Metrics: NoOpMetrics{},
	}
	if cfg.MetricsEnabled {
		o.Registry = prometheus.NewRegistry()
		o.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		o.Metrics = NewPrometheusMetrics(o.Registry)
	}
	return o
}

// NewNop returns providers that discard everything, for tests.
func NewNop() *Observability {
	return &Observability{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:  noop.NewTracerProvider().Tracer(ServiceName),
		Metrics: NoOpMetrics{},
	}
}

// NewLogger builds a slog logger. Unknown levels fall back to info and
// unknown formats to text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

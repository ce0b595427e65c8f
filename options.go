package agency

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures a System.
type Option func(*systemConfig)

// systemConfig holds construction-time settings for a System.
type systemConfig struct {
	logger     *zap.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	capacity   int
	configPath string
}

// WithLogger sets a structured logger for the system. If not provided, a
// no-op logger is used.
func WithLogger(logger *zap.Logger) Option {
	return func(c *systemConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for spans around reasoning,
// acting, and planning. If not provided, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *systemConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for the system's counters. If not
// provided, a no-op meter is used.
func WithMeter(meter metric.Meter) Option {
	return func(c *systemConfig) {
		c.meter = meter
	}
}

// WithCapacity sets the atomspace capacity. Zero or less selects the
// default (atomspace.DefaultCapacity). A capacity loaded from a config
// file takes precedence over this option.
func WithCapacity(capacity int) Option {
	return func(c *systemConfig) {
		c.capacity = capacity
	}
}

// WithConfigFile loads system settings (atomspace capacity, declarative
// rules) from a YAML file or a directory containing agency.yaml, with
// environment variable overrides applied on top.
func WithConfigFile(path string) Option {
	return func(c *systemConfig) {
		c.configPath = path
	}
}

package fockspace

import (
	"log/slog"

	"github.com/hupe1980/fockspace/binary"
)

type options struct {
	order            binary.BitOrder
	scheme           IndexScheme
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a FockBasis.
type Option func(*options)

// WithBitOrder configures how states are rendered as digits and labels.
// The default is binary.Reversed (site 0 leftmost).
func WithBitOrder(order binary.BitOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithIndexScheme configures the flattening used by StateIndex and
// BasisSector.SpinStates. The default is IndexBySize.
func WithIndexScheme(scheme IndexScheme) Option {
	return func(o *options) {
		o.scheme = scheme
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fockspace.BasicMetricsCollector{}
//	basis, _ := fockspace.New(4, fockspace.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fockspace.NewJSONLogger(slog.LevelInfo)
//	basis, _ := fockspace.New(4, fockspace.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		order:            binary.Reversed,
		scheme:           IndexBySize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

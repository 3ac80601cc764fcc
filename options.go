package tabgo

import (
	"log/slog"
)

type options struct {
	indexColumn      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Tabgo constructor behavior.
type Option func(*options)

// WithIndexColumn declares the primary column of an indexed row-major
// table. Every column is indexed regardless; the declaration marks the
// column the workload treats as primary. Other layouts ignore it.
func WithIndexColumn(col int) Option {
	return func(o *options) {
		o.indexColumn = col
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tabgo.BasicMetricsCollector{}
//	tg, _ := tabgo.New(tabgo.LayoutRowMajor, tabgo.WithMetricsCollector(metrics))
//	// ... use tg ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tabgo.NewJSONLogger(slog.LevelInfo)
//	tg, _ := tabgo.New(tabgo.LayoutRowMajor, tabgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

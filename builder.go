// Package tabgo provides an in-memory table layout microbenchmark.
//
// This file implements the fluent builder API for creating and configuring
// Tabgo instances. The builder is immutable - each method returns a new
// builder with the updated configuration.
package tabgo

// RowMajor creates a builder for a row-major table.
//
// Example:
//
//	tg, err := tabgo.RowMajor().
//	    Logger(tabgo.NewTextLogger(slog.LevelInfo)).
//	    Build()
func RowMajor() Builder {
	return Builder{
		layout: LayoutRowMajor,
	}
}

// ColumnMajor creates a builder for a column-major table.
func ColumnMajor() Builder {
	return Builder{
		layout: LayoutColumnMajor,
	}
}

// IndexedRowMajor creates a builder for an indexed row-major table with the
// given primary column.
//
// Example:
//
//	tg, err := tabgo.IndexedRowMajor(0).
//	    Metrics(&tabgo.BasicMetricsCollector{}).
//	    Build()
func IndexedRowMajor(indexColumn int) Builder {
	return Builder{
		layout:      LayoutIndexedRowMajor,
		indexColumn: indexColumn,
	}
}

// Builder is an immutable fluent builder for creating Tabgo instances.
// Each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
type Builder struct {
	layout      Layout
	indexColumn int
	logger      *Logger
	metrics     MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the Tabgo instance.
func (b Builder) Build() (*Tabgo, error) {
	var optFns []Option

	if b.layout == LayoutIndexedRowMajor {
		optFns = append(optFns, WithIndexColumn(b.indexColumn))
	}
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}

	return New(b.layout, optFns...)
}

// MustBuild creates the Tabgo instance, panicking on error.
func (b Builder) MustBuild() *Tabgo {
	tg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tg
}

package bench

import (
	"fmt"

	"github.com/hupe1980/tabgo"
)

// DefaultThreshold is the predicate threshold of the default kernel set.
const DefaultThreshold int32 = 50

// Spec is one query kernel with its parameters bound, ready to run against
// any layout.
type Spec struct {
	name string
	run  func(tg *tabgo.Tabgo) int64
}

// Name returns the kernel name with its bound parameters.
func (s Spec) Name() string {
	return s.name
}

// ColumnSum is the kernel SELECT SUM(col0).
func ColumnSum() Spec {
	return Spec{
		name: "ColumnSum",
		run:  func(tg *tabgo.Tabgo) int64 { return tg.ColumnSum() },
	}
}

// PredicatedColumnSum is the kernel SELECT SUM(col0) WHERE col1 > t1 AND
// col2 < t2.
func PredicatedColumnSum(t1, t2 int32) Spec {
	return Spec{
		name: fmt.Sprintf("PredicatedColumnSum(%d,%d)", t1, t2),
		run:  func(tg *tabgo.Tabgo) int64 { return tg.PredicatedColumnSum(t1, t2) },
	}
}

// PredicatedAllColumnsSum is the kernel SELECT SUM(col0) + ... + SUM(colN)
// WHERE col0 > threshold.
func PredicatedAllColumnsSum(threshold int32) Spec {
	return Spec{
		name: fmt.Sprintf("PredicatedAllColumnsSum(%d)", threshold),
		run:  func(tg *tabgo.Tabgo) int64 { return tg.PredicatedAllColumnsSum(threshold) },
	}
}

// PredicatedUpdate is the kernel UPDATE SET col3 = col3 + col2 WHERE
// col0 < threshold; its result is the number of rows updated. Run executes
// it on every layout, so the fixture's tables mutate in lockstep and stay
// comparable.
func PredicatedUpdate(threshold int32) Spec {
	return Spec{
		name: fmt.Sprintf("PredicatedUpdate(%d)", threshold),
		run:  func(tg *tabgo.Tabgo) int64 { return int64(tg.PredicatedUpdate(threshold)) },
	}
}

// DefaultSpecs returns the four kernels under the default threshold.
func DefaultSpecs() []Spec {
	return []Spec{
		ColumnSum(),
		PredicatedColumnSum(DefaultThreshold, DefaultThreshold),
		PredicatedAllColumnsSum(DefaultThreshold),
		PredicatedUpdate(DefaultThreshold),
	}
}

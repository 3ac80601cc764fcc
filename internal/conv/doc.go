// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent overflow when converting
// between Go's platform-dependent int and the fixed-width types used by row
// ids and dataset file headers.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices over an already validated table), use direct type casts instead to
// avoid overhead.
package conv

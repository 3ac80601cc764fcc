// Package bench compares the table layouts against each other.
//
// A Fixture loads one dataset into all three layouts. Run executes a single
// query kernel against every layout, times each execution, checks that the
// layouts agree on the result, and collects everything into a Report that
// can be serialized for offline comparison.
package bench

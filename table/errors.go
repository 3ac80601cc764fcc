package table

import (
	"errors"
	"fmt"
)

// ErrAlreadyLoaded is returned when Load is called on a table that has
// already been loaded.
var ErrAlreadyLoaded = errors.New("table: already loaded")

// ErrColumnCount is a named error type for a loader declaring an unusable
// column count.
type ErrColumnCount struct {
	NumCols int // Declared number of columns
}

// Error returns the error message for an unusable column count.
func (e *ErrColumnCount) Error() string {
	return fmt.Sprintf("table: invalid column count %d", e.NumCols)
}

// ErrRowWidth is a named error type for a loader row whose width differs
// from the declared column count.
type ErrRowWidth struct {
	Row      int // Row id of the offending row
	Width    int // Actual field count
	Expected int // Declared column count
}

// Error returns the error message for a row width mismatch.
func (e *ErrRowWidth) Error() string {
	return fmt.Sprintf("table: row %d has %d fields, want %d", e.Row, e.Width, e.Expected)
}

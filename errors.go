package tabgo

import (
	"errors"

	"github.com/hupe1980/tabgo/table"
)

var (
	// ErrUnknownLayout is returned when New is called with a Layout it does
	// not recognize.
	ErrUnknownLayout = errors.New("tabgo: unknown layout")

	// ErrAlreadyLoaded is returned when Load is called on a table that has
	// already been loaded. It aliases table.ErrAlreadyLoaded.
	ErrAlreadyLoaded = table.ErrAlreadyLoaded
)

// ErrRowWidth indicates a loader row whose width differs from the declared
// column count. It aliases table.ErrRowWidth, so facade callers can match
// load failures without importing the table package.
type ErrRowWidth = table.ErrRowWidth

// ErrColumnCount indicates a loader declaring an unusable column count.
// It aliases table.ErrColumnCount.
type ErrColumnCount = table.ErrColumnCount

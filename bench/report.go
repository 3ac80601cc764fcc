package bench

import (
	"io"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// LayoutResult is the outcome of one kernel execution against one layout.
type LayoutResult struct {
	Layout string `json:"layout"`
	Result int64  `json:"result"`
	Nanos  int64  `json:"nanos"`
}

// Report is the outcome of one comparison run: the kernel, the dataset
// shape, and per-layout wall-clock time and result. Agreement is false when
// at least one layout computed a different result, which means a layout is
// broken; timings of a disagreeing run are worthless.
type Report struct {
	RunID     string         `json:"run_id"`
	Kernel    string         `json:"kernel"`
	NumRows   int            `json:"num_rows"`
	NumCols   int            `json:"num_cols"`
	Agreement bool           `json:"agreement"`
	Layouts   []LayoutResult `json:"layouts"`
}

// Run executes the kernel once per layout, row-major first, and reports each
// execution's wall-clock time and result.
func (f *Fixture) Run(spec Spec) *Report {
	report := &Report{
		RunID:     uuid.New().String(),
		Kernel:    spec.Name(),
		NumRows:   f.numRows,
		NumCols:   f.numCols,
		Agreement: true,
	}

	for _, tg := range f.tables() {
		start := time.Now()
		result := spec.run(tg)
		nanos := time.Since(start).Nanoseconds()

		report.Layouts = append(report.Layouts, LayoutResult{
			Layout: tg.Layout().String(),
			Result: result,
			Nanos:  nanos,
		})

		if result != report.Layouts[0].Result {
			report.Agreement = false
		}
	}

	return report
}

// RunAll executes every kernel in order and returns one report per kernel.
func (f *Fixture) RunAll(specs ...Spec) []*Report {
	reports := make([]*Report, 0, len(specs))
	for _, spec := range specs {
		reports = append(reports, f.Run(spec))
	}

	return reports
}

// WriteJSON writes the report to w as one indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

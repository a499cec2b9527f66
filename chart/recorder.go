package chart

import (
	"errors"
	"sync"

	"github.com/markovlab/stochain/sim"
	"github.com/markovlab/stochain/vecmat"
)

// Sentinel errors for chart rendering.
var (
	// ErrNoData indicates the recorder holds no rows to plot.
	ErrNoData = errors.New("chart: recorder holds no data")

	// ErrLabelCount indicates the label slice length does not match the
	// recorded distribution width.
	ErrLabelCount = errors.New("chart: label count does not match recorded state count")

	// ErrSeriesIndex indicates a state index outside the recorded width.
	ErrSeriesIndex = errors.New("chart: series index out of range")

	// ErrRowWidth indicates a row whose width differs from the rows
	// already recorded; mixed widths would tear the plotted series.
	ErrRowWidth = errors.New("chart: row width does not match earlier rows")
)

// Recorder accumulates (step, distribution) rows during a run. All
// methods are safe for concurrent use; Record copies its input so the
// recorder never aliases engine state.
type Recorder struct {
	mu    sync.Mutex
	steps []int
	rows  []vecmat.Vector
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Record appends one row. The first row fixes the recorder's width;
// later rows of a different width are rejected with ErrRowWidth so a
// short row can never tear the plotted series. Rows are plotted in
// insertion order; feeding monotonically increasing steps (as the run
// loop does) keeps the time axis honest.
func (r *Recorder) Record(step int, dist vecmat.Vector) error {
	cp := vecmat.CloneVector(dist)
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) > 0 && len(cp) != len(r.rows[0]) {
		return ErrRowWidth
	}
	r.steps = append(r.steps, step)
	r.rows = append(r.rows, cp)

	return nil
}

// TickFunc adapts the recorder to sim.WithOnTick. A width mismatch is
// silently dropped here: it can only arise when the chain is resized
// mid-run, and the atomic-resize contract pairs any resize with a
// session Reset and a fresh recorder.
func (r *Recorder) TickFunc() sim.TickFunc {
	return func(step int, dist vecmat.Vector) { _ = r.Record(step, dist) }
}

// Len returns the number of recorded rows.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.steps)
}

// Width returns the state count of the recorded rows (0 when empty).
func (r *Recorder) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return 0
	}

	return len(r.rows[0])
}

// Steps returns a copy of the recorded step indices.
func (r *Recorder) Steps() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.steps...)
}

// Series returns the probability trajectory of state i across all
// recorded rows.
func (r *Recorder) Series(i int) ([]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 || i < 0 || i >= len(r.rows[0]) {
		return nil, ErrSeriesIndex
	}
	out := make([]float64, len(r.rows))
	for t, row := range r.rows {
		out[t] = row[i]
	}

	return out, nil
}

// Reset drops all recorded rows.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.steps = nil
	r.rows = nil
	r.mu.Unlock()
}

package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// DistributionPlot renders the recorded history as one line per state:
// x = step index, y = probability, fixed [0, 1] y-range. labels[i]
// names series i in the legend and must match the recorded width.
//
// Errors:
//   - ErrNoData     if the recorder is empty.
//   - ErrLabelCount if len(labels) != rec.Width().
func DistributionPlot(rec *Recorder, labels []string) (*plot.Plot, error) {
	if rec == nil || rec.Len() == 0 {
		return nil, ErrNoData
	}
	if len(labels) != rec.Width() {
		return nil, ErrLabelCount
	}

	p := plot.New()
	p.Title.Text = "Distribution over time"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "probability"
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = true

	steps := rec.Steps()
	for i, label := range labels {
		series, err := rec.Series(i)
		if err != nil {
			return nil, err
		}
		xys := make(plotter.XYs, len(series))
		for t, y := range series {
			xys[t].X = float64(steps[t])
			xys[t].Y = y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	return p, nil
}

// SavePNG writes p to path at 8×5 inches; the format follows the file
// extension, so .svg and .pdf work too.
func SavePNG(p *plot.Plot, path string) error {
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Package chart is the presentation-side companion of the engine: it
// records the distribution history of a simulation run and renders it
// as a multi-series line chart (probability per state over time) via
// gonum/plot.
//
// The engine itself never renders anything; this package consumes only
// the copies the run loop hands to its OnTick callback, which is
// exactly the contract an embedding presentation layer gets:
//
//	rec := chart.NewRecorder()
//	rec.Record(0, session.Distribution()) // include the starting point
//	done, _ := session.Run(
//	    sim.WithMaxSteps(50),
//	    sim.WithOnTick(rec.TickFunc()),
//	)
//	<-done
//
//	p, _ := chart.DistributionPlot(rec, ch.Labels())
//	_ = chart.SavePNG(p, "weather.png")
//
// The Recorder is safe to feed from the run goroutine and read from
// another.
package chart

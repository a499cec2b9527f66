package sim_test

import (
	"fmt"

	"github.com/markovlab/stochain/chain"
	"github.com/markovlab/stochain/sim"
	"github.com/markovlab/stochain/vecmat"
)

// ExampleSession_Step walks the weather chain two days forward.
func ExampleSession_Step() {
	c, _ := chain.New(
		[]string{"Sunny", "Rainy"},
		vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}},
		vecmat.Vector{1, 0},
	)
	s, _ := sim.NewSession(c)

	for day := 0; day < 2; day++ {
		p, err := s.Step()
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("day %d: sunny=%.2f rainy=%.2f\n", s.StepCount(), p[0], p[1])
	}
	// Output:
	// day 1: sunny=0.80 rainy=0.20
	// day 2: sunny=0.72 rainy=0.28
}

// ExampleSession_Run drives a short run loop and prints each tick.
func ExampleSession_Run() {
	c, _ := chain.New(
		[]string{"Sunny", "Rainy"},
		vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}},
		vecmat.Vector{1, 0},
	)
	s, _ := sim.NewSession(c)

	done, _ := s.Run(
		sim.WithMaxSteps(3),
		sim.WithOnTick(func(step int, dist vecmat.Vector) {
			fmt.Printf("t=%d p=[%.3f %.3f]\n", step, dist[0], dist[1])
		}),
	)
	<-done
	// Output:
	// t=1 p=[0.800 0.200]
	// t=2 p=[0.720 0.280]
	// t=3 p=[0.688 0.312]
}

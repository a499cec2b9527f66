package chain_test

import (
	"fmt"

	"github.com/markovlab/stochain/chain"
	"github.com/markovlab/stochain/vecmat"
)

// ExampleChain_AddState grows the weather chain with a third state and
// shows that the lock-step shapes are preserved.
func ExampleChain_AddState() {
	c, _ := chain.New(
		[]string{"Sunny", "Rainy"},
		vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}},
		vecmat.Vector{1, 0},
	)

	idx := c.AddState("Foggy")
	fmt.Println("new index:", idx)
	fmt.Println("labels:", c.Labels())
	fmt.Println("new row:", c.Transitions()[idx])
	fmt.Println("valid:", c.IsValid())
	// Output:
	// new index: 2
	// labels: [Sunny Rainy Foggy]
	// new row: [0 0 1]
	// valid: true
}

// ExampleChain_Validate shows the edit → validate → normalize cycle.
func ExampleChain_Validate() {
	c, _ := chain.New(
		[]string{"A", "B"},
		vecmat.Matrix{{0.5, 0.5}, {0.3, 0.7}},
		vecmat.Vector{0.5, 0.5},
	)

	_ = c.SetTransition(0, 1, 0.6) // row 0 now sums to 1.1
	fmt.Println("after edit:", c.Validate())

	_ = c.NormalizeRow(0)
	fmt.Println("after normalize:", c.Validate())
	// Output:
	// after edit: chain: transition matrix is not row-stochastic
	// after normalize: <nil>
}

package l0sampler_test

import (
	"fmt"

	"github.com/katalvlaran/streamsketch/l0sampler"
)

// ExampleSketch demonstrates combining two samplers built from the same
// seed: B's single update becomes visible through A after Add.
func ExampleSketch() {
	a, err := l0sampler.New(100, l0sampler.WithSeed(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err := l0sampler.New(100, l0sampler.WithSeed(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = b.Update(0, 10)
	_ = a.Add(b)

	idx, val, ok := a.GetSample()
	fmt.Println(idx, val, ok)
	// Output: 0 10 true
}

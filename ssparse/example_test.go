package ssparse_test

import (
	"fmt"

	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/ssparse"
)

// ExampleSketch recovers the support of a 3-sparse update stream.
func ExampleSketch() {
	sk, err := ssparse.New(1000, 8, 0.01, krng.NewStream(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = sk.Update(0, 1)
	_ = sk.Update(100, -2)
	_ = sk.Update(500, 3)

	result, ok := sk.Recover()
	fmt.Println(ok, result[0], result[100], result[500])
	// Output: true 1 -2 3
}

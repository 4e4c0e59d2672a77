// File: example_test.go
package hashi_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hashi"
	"github.com/katalvlaran/hashi/grid"
)

// ExampleSolve demonstrates solving a minimal two-island puzzle that needs a
// single bridge.
func ExampleSolve() {
	g := grid.Grid{{1, 0, 1}}

	out, err := hashi.Solve(context.Background(), g, hashi.AlgoSAT)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)
	// Output:
	// 1 - 1
}

// ExampleSolve_unsolvable demonstrates that an isolated island (degree
// requirement with no reachable neighbor) prints nothing and reports no
// error.
func ExampleSolve_unsolvable() {
	g := grid.Grid{{1}}

	out, err := hashi.Solve(context.Background(), g, hashi.AlgoSAT)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("solved=%t\n", out != "")
	// Output:
	// solved=false
}

package ticks_test

import (
	"fmt"

	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/ticks"
)

func ExampleGenerator_Generate() {
	g := ticks.Generator{MinSpacing: 40}
	t := g.Generate(geom.Range{Min: 3, Max: 97}, 400)
	for _, tk := range t.Values {
		fmt.Print(tk.Label, " ")
	}
	fmt.Println()
	// Output: 0 20 40 60 80 100
}

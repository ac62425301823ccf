package world_test

import (
	"fmt"

	"github.com/katalvlaran/histfilter/world"
)

// ExampleGrid_MatchMask turns an observation into the indicator the sensor update weights by.
func ExampleGrid_MatchMask() {
	g, _ := world.FromStrings(
		"RGG",
		"GGR",
	)
	mask, _ := g.MatchMask("R")
	fmt.Print(mask)
	fmt.Println("colors:", g.Colors())

	// Output:
	// [1, 0, 0]
	// [0, 0, 1]
	// colors: [G R]
}

package direction_test

import (
	"fmt"

	"github.com/katalvlaran/flatgrid/direction"
)

// ExampleAdjacentPositions lists the diagonal neighbors of a point.
func ExampleAdjacentPositions() {
	for i, p := range direction.AdjacentPositions(direction.Pt(2, 2), direction.InterCardinal) {
		fmt.Println(direction.For(direction.InterCardinal)[i], p)
	}
	// Output:
	// UpRight (3,3)
	// DownRight (3,1)
	// DownLeft (1,1)
	// UpLeft (1,3)
}

// ExampleName shows the failure path for a non-unit vector.
func ExampleName() {
	name, _ := direction.Name(direction.Direction{DX: -1, DY: 0})
	fmt.Println(name)

	_, err := direction.Name(direction.Direction{DX: 2, DY: 1})
	fmt.Println(err)
	// Output:
	// Left
	// Name(2,1): direction: not a unit lattice direction
}

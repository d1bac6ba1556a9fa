// SPDX-License-Identifier: MIT

package direction

import "fmt"

// Point is a position on the integer lattice.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p moved one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// AdjacentPositions returns p+d for each d in For(g), in the same order.
// No bounds filtering is applied; that is the container's concern.
// Complexity: O(len(group)).
func AdjacentPositions(p Point, g Group) []Point {
	ds := For(g)
	out := make([]Point, len(ds))
	for i, d := range ds {
		out[i] = p.Add(d)
	}
	return out
}

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/flatgrid/direction"
)

// Bounds is the shape part of a grid: enough to filter neighbor candidates.
type Bounds interface {
	// Width returns the extent of the x axis.
	Width() int
	// Height returns the extent of the y axis.
	Height() int
	// InBounds reports whether 0 ≤ x < Width() and 0 ≤ y < Height().
	InBounds(x, y int) bool
}

// GridLike is the capability set every 2D backing strategy provides.
// Dense (Grid) and map-backed (Sparse) storage both satisfy it, so neighbor
// queries and rasterization work on either without inheritance.
type GridLike[T any] interface {
	Bounds

	// Get returns the element at (x,y) or an error wrapping ErrOutOfBounds.
	Get(x, y int) (T, error)

	// Set stores v at (x,y) or returns an error wrapping ErrOutOfBounds.
	Set(x, y int, v T) error
}

// Grid is a width×height container backed by one contiguous slice.
//
// Layout is x-major: y is the memory-contiguous axis, so cell (x,y) lives at
// x*height + y. For square grids this is exactly x*width + y.
//
// A Grid exclusively owns its backing slice. It has no internal locking;
// share it across goroutines only under external synchronization.
type Grid[T any] struct {
	width, height int
	data          []T  // len == width*height, x-major
	unchecked     bool // true ⇒ raw indexing (WithUncheckedAccess); zero value validates
}

// Neighbor pairs an in-bounds neighbor position with the direction that led
// to it and the value stored there.
type Neighbor[T any] struct {
	Direction direction.Direction
	Position  direction.Point
	Value     T
}

// String formats n as "Up(1,2)=v".
func (n Neighbor[T]) String() string {
	return fmt.Sprintf("%v%v=%v", n.Direction, n.Position, n.Value)
}

// Compile-time assertions.
var (
	_ GridLike[int] = (*Grid[int])(nil)
	_ GridLike[int] = (*Sparse[int])(nil)
	_ fmt.Stringer  = (*Grid[int])(nil)
	_ Sink          = (*Raster)(nil)
	_ Sink          = (*ImageSink)(nil)
)

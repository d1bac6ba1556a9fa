// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/flatgrid/direction"
)

// Sparse is a map-backed GridLike: only explicitly written cells are stored,
// every other in-bounds cell reads as the background value.
// Suited to large, mostly uniform grids. Always bounds-checked.
type Sparse[T any] struct {
	width, height int
	background    T
	cells         map[direction.Point]T
}

// NewSparse creates a width×height sparse grid reading background everywhere.
// Returns ErrInvalidDimensions on a non-positive or overflowing shape.
func NewSparse[T any](width, height int, background T) (*Sparse[T], error) {
	if !validShape(width, height) {
		return nil, dimErrorf("NewSparse", width, height)
	}
	return &Sparse[T]{
		width:      width,
		height:     height,
		background: background,
		cells:      make(map[direction.Point]T),
	}, nil
}

// Width returns the extent of the x axis.
func (s *Sparse[T]) Width() int { return s.width }

// Height returns the extent of the y axis.
func (s *Sparse[T]) Height() int { return s.height }

// Stored returns the number of explicitly written cells.
func (s *Sparse[T]) Stored() int { return len(s.cells) }

// InBounds reports whether 0 ≤ x < width and 0 ≤ y < height.
func (s *Sparse[T]) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Sparse[T]) boundsErr(op string, x, y int) error {
	return &BoundsError{Op: op, X: x, Y: y, Index: x*s.height + y, Width: s.width, Height: s.height}
}

// Get returns the stored value at (x,y), or the background.
func (s *Sparse[T]) Get(x, y int) (T, error) {
	if !s.InBounds(x, y) {
		var zero T
		return zero, s.boundsErr(ctxGet, x, y)
	}
	if v, ok := s.cells[direction.Point{X: x, Y: y}]; ok {
		return v, nil
	}
	return s.background, nil
}

// Set stores v at (x,y).
func (s *Sparse[T]) Set(x, y int, v T) error {
	if !s.InBounds(x, y) {
		return s.boundsErr(ctxSet, x, y)
	}
	s.cells[direction.Point{X: x, Y: y}] = v

	return nil
}

// Clear drops the stored value at (x,y) so it reads as background again.
func (s *Sparse[T]) Clear(x, y int) error {
	if !s.InBounds(x, y) {
		return s.boundsErr("Clear", x, y)
	}
	delete(s.cells, direction.Point{X: x, Y: y})

	return nil
}

// SetAll makes every cell read v by replacing the background and dropping
// all stored cells.
func (s *Sparse[T]) SetAll(v T) {
	s.background = v
	clear(s.cells)
}

// Densify materializes s into a *Grid with the given options.
// Complexity: O(w*h).
func (s *Sparse[T]) Densify(opts ...Option) (*Grid[T], error) {
	g, err := New[T](s.width, s.height, opts...)
	if err != nil {
		return nil, fmt.Errorf("Densify: %w", err)
	}
	g.SetAll(s.background)
	for p, v := range s.cells {
		g.data[p.X*g.height+p.Y] = v
	}
	return g, nil
}

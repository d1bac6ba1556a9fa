// SPDX-License-Identifier: MIT

// Package grid - dense x-major storage & safe accessors.
//
// Purpose:
//   - Keep all width*height cells in one slice with the explicit formula x*height + y.
//   - Guarantee safety at the public surface: accessors return *BoundsError instead
//     of panicking, unless the grid was built WithUncheckedAccess.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New: O(w*h) zero-init; ToIndex/FromIndex/InBounds/Get/Set: O(1); SetAll: O(w*h).

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flatgrid/direction"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromValues = "FromValues"
	ctxGet        = "Get"
	ctxSet        = "Set"
	ctxGetPoint   = "GetPoint"
	ctxSetPoint   = "SetPoint"
	ctxGetIndex   = "GetIndex"
	ctxSetIndex   = "SetIndex"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New creates a width×height grid with every element set to T's zero value.
//
// Implementation:
//   - Stage 1: validate width>0 && height>0 and that width*height fits in int;
//     else ErrInvalidDimensions.
//   - Stage 2: resolve options (validation policy).
//   - Stage 3: allocate the zero-filled backing slice.
//
// Errors:
//   - ErrInvalidDimensions, wrapped with the requested shape.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T any](width, height int, opts ...Option) (*Grid[T], error) {
	if !validShape(width, height) {
		return nil, dimErrorf(ctxNew, width, height)
	}
	o := gatherOptions(opts...)

	return &Grid[T]{
		width:     width,
		height:    height,
		data:      make([]T, width*height),
		unchecked: !o.validate,
	}, nil
}

// FromValues creates a grid whose backing slice is a copy of cells, which must
// be laid out x-major (cells[x*height+y] is cell (x,y)).
//
// Errors:
//   - ErrInvalidDimensions if width or height ≤ 0.
//   - ErrCorruptPayload if len(cells) != width*height.
//
// Complexity: O(w*h).
func FromValues[T any](width, height int, cells []T, opts ...Option) (*Grid[T], error) {
	g, err := New[T](width, height, opts...)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.data) {
		return nil, fmt.Errorf("%s(%d,%d): got %d cells: %w",
			ctxFromValues, width, height, len(cells), ErrCorruptPayload)
	}
	copy(g.data, cells)

	return g, nil
}

// Width returns the extent of the x axis.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the extent of the y axis.
func (g *Grid[T]) Height() int { return g.height }

// Size returns width*height, the number of cells.
func (g *Grid[T]) Size() int { return len(g.data) }

// Validating reports whether accessors are bounds-checked.
func (g *Grid[T]) Validating() bool { return !g.unchecked }

// Values returns a copy of the backing slice in index order.
// Complexity: O(w*h).
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)
	return out
}

// ToIndex converts (x,y) into a flat index: x*height + y.
// The stride is height, the length of the contiguous y axis, so the mapping is
// a bijection onto [0, Size()) for every shape; on square grids it equals
// x*width + y.
// No validation is performed; out-of-range inputs yield indices that the
// checked accessors reject.
// Complexity: O(1).
func (g *Grid[T]) ToIndex(x, y int) int {
	return x*g.height + y
}

// PointToIndex is ToIndex for a direction.Point.
func (g *Grid[T]) PointToIndex(p direction.Point) int {
	return p.X*g.height + p.Y
}

// FromIndex converts a flat index back into (index / height, index % height).
// Inverse of ToIndex for every index in [0, Size()).
// Complexity: O(1).
func (g *Grid[T]) FromIndex(index int) direction.Point {
	return direction.Point{X: index / g.height, Y: index % g.height}
}

// InBounds reports whether 0 ≤ x < width and 0 ≤ y < height.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	// Outside on x axis
	if x < 0 || x >= g.width {
		return false
	}
	// Outside on y axis
	if y < 0 || y >= g.height {
		return false
	}
	return true
}

// InBoundsPoint is InBounds for a direction.Point.
func (g *Grid[T]) InBoundsPoint(p direction.Point) bool {
	return g.InBounds(p.X, p.Y)
}

// InBoundsIndex converts index via FromIndex and checks the resulting coordinate.
func (g *Grid[T]) InBoundsIndex(index int) bool {
	if g.height == 0 {
		return false
	}
	return g.InBoundsPoint(g.FromIndex(index))
}

// boundsErr builds the coordinate-form BoundsError.
func (g *Grid[T]) boundsErr(op string, x, y int) error {
	return &BoundsError{Op: op, X: x, Y: y, Index: g.ToIndex(x, y), Width: g.width, Height: g.height}
}

// indexErr builds the index-form BoundsError.
func (g *Grid[T]) indexErr(op string, index int) error {
	var p direction.Point
	if g.height > 0 {
		p = g.FromIndex(index)
	}
	return &BoundsError{Op: op, X: p.X, Y: p.Y, Index: index, ByIndex: true, Width: g.width, Height: g.height}
}

// Get returns the element at (x,y).
//
// Errors:
//   - *BoundsError (errors.Is ErrOutOfBounds) when (x,y) is outside the grid
//     and the grid validates.
//
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, error) {
	if !g.unchecked && !g.InBounds(x, y) {
		var zero T
		return zero, g.boundsErr(ctxGet, x, y)
	}
	return g.data[x*g.height+y], nil
}

// GetPoint is Get for a direction.Point.
func (g *Grid[T]) GetPoint(p direction.Point) (T, error) {
	if !g.unchecked && !g.InBounds(p.X, p.Y) {
		var zero T
		return zero, g.boundsErr(ctxGetPoint, p.X, p.Y)
	}
	return g.data[p.X*g.height+p.Y], nil
}

// GetIndex returns the element at a flat index. The index is validated by
// converting it with FromIndex and checking the coordinate.
func (g *Grid[T]) GetIndex(index int) (T, error) {
	if !g.unchecked && !g.InBoundsIndex(index) {
		var zero T
		return zero, g.indexErr(ctxGetIndex, index)
	}
	return g.data[index], nil
}

// Set stores v at (x,y).
//
// Errors:
//   - *BoundsError (errors.Is ErrOutOfBounds), grid unchanged.
//
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.unchecked && !g.InBounds(x, y) {
		return g.boundsErr(ctxSet, x, y)
	}
	g.data[x*g.height+y] = v

	return nil
}

// SetPoint is Set for a direction.Point.
func (g *Grid[T]) SetPoint(p direction.Point, v T) error {
	if !g.unchecked && !g.InBounds(p.X, p.Y) {
		return g.boundsErr(ctxSetPoint, p.X, p.Y)
	}
	g.data[p.X*g.height+p.Y] = v

	return nil
}

// SetIndex stores v at a flat index, validated like GetIndex.
func (g *Grid[T]) SetIndex(index int, v T) error {
	if !g.unchecked && !g.InBoundsIndex(index) {
		return g.indexErr(ctxSetIndex, index)
	}
	g.data[index] = v

	return nil
}

// SetAll overwrites every element with v.
// Complexity: O(w*h).
func (g *Grid[T]) SetAll(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// String implements fmt.Stringer for debugging: one bracketed line per x,
// listing y = 0..height-1, i.e. the backing slice in memory order.
// Complexity: O(w*h).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for x := 0; x < g.width; x++ {
		sb.WriteString(_fmtRowOpen)
		for y := 0; y < g.height; y++ {
			fmt.Fprintf(&sb, "%v", g.data[x*g.height+y])
			if y < g.height-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}

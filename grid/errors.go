// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context) and tests match them via errors.Is. User-triggered conditions never
// panic; panics are reserved for programmer errors such as an undefined
// direction.Group.

package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive, or
	// when width*height overflows int.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfBounds indicates an access outside [0,width) × [0,height).
	// Accessors return it wrapped in *BoundsError, which carries the coordinate.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrTypeNotCopyable is returned when a deep copy is requested for an element
	// type that owns references (pointers, slices, maps, channels, funcs, interfaces).
	ErrTypeNotCopyable = errors.New("grid: element type is not copyable")

	// ErrCorruptPayload indicates a decoded payload whose cell count does not
	// match width*height.
	ErrCorruptPayload = errors.New("grid: payload does not match dimensions")

	// ErrNilGrid indicates a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNilSink indicates Rasterize was called without a destination.
	ErrNilSink = errors.New("grid: nil raster sink")
)

// BoundsError reports a rejected access together with the offending coordinate
// and the grid shape. errors.Is(err, ErrOutOfBounds) holds for every BoundsError.
type BoundsError struct {
	Op            string // accessor name, e.g. "Get" or "SetIndex"
	X, Y          int    // requested (or index-derived) coordinate
	Index         int    // requested flat index; meaningful when ByIndex
	ByIndex       bool   // the access used the flat-index form
	Width, Height int    // grid shape at the time of the access
}

// Error implements error.
func (e *BoundsError) Error() string {
	if e.ByIndex {
		return fmt.Sprintf("Grid.%s(%d) at (%d,%d) outside %dx%d: %v",
			e.Op, e.Index, e.X, e.Y, e.Width, e.Height, ErrOutOfBounds)
	}
	return fmt.Sprintf("Grid.%s(%d,%d) outside %dx%d: %v",
		e.Op, e.X, e.Y, e.Width, e.Height, ErrOutOfBounds)
}

// Unwrap exposes ErrOutOfBounds to errors.Is.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// validShape reports whether width×height is positive and width*height fits in int.
func validShape(width, height int) bool {
	return width > 0 && height > 0 && width <= math.MaxInt/height
}

// dimErrorf wraps ErrInvalidDimensions with the requested shape.
func dimErrorf(op string, width, height int) error {
	return fmt.Errorf("%s(%d,%d): %w", op, width, height, ErrInvalidDimensions)
}

// SPDX-License-Identifier: MIT

// Package grid provides a generic two-dimensional container backed by a single
// contiguous slice, with bounds-checked addressing and direction-aware neighbor
// enumeration.
//
// What:
//
//   - Grid[T]: width×height cells, x-major layout (index = x*height + y).
//   - Coordinate, Point and flat-index forms of Get/Set/InBounds.
//   - Neighbor queries driven by direction.Group: AdjacentValues,
//     ValidAdjacentPositions, ValidDirections and the gap-aware Neighbors.
//   - Lazy iteration in index order (All, Indexed, Cells, Iterator).
//   - Deep Copy for plain value element types (Copyable).
//   - GridLike capability interface; Sparse is a map-backed alternative.
//   - Rasterize to a boolean Sink; Raster renders to image.Gray / PNG.
//   - JSON and YAML persistence of width, height and cells.
//
// Why:
//
//   - Raw storage and addressing primitives for cellular automata, path
//     finders, tile maps and similar consumers. No search or spatial indexing
//     lives here.
//
// Options:
//
//   - WithValidation (default): out-of-range access returns *BoundsError.
//   - WithUncheckedAccess: raw indexing for hot loops; never clamps or wraps.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrOutOfBounds: access outside [0,width) × [0,height); see BoundsError.
//   - ErrTypeNotCopyable: Copy of an element type that owns references.
//   - ErrCorruptPayload: decoded cell count ≠ width*height.
//
// Concurrency:
//
//	A Grid is a plain in-memory value with no internal locking. Confine it to
//	one goroutine or guard it externally (single writer lock, or disjoint index
//	ranges per reader).
//
// Complexity:
//
//   - Indexing, bounds and neighbor queries: O(1) (at most 8 candidates).
//   - New, SetAll, Copy, iteration, Rasterize, codecs: O(W×H).
package grid

// Package flatgrid is a small toolkit for 2D lattice data: a generic grid
// container backed by one contiguous slice, and the direction vectors used to
// walk between its cells.
//
// Packages:
//
//	direction/ — the eight lattice steps, Cardinal/InterCardinal/All groups, Point
//	grid/      — Grid[T] storage, bounds-checked addressing, neighbor queries,
//	             iteration, deep copy, Sparse backing, rasterization, codecs
//	examples/  — runnable consumers (Game of Life, region labeling)
//
// Quick ASCII example (3×3, Cardinal neighbors of the center):
//
//	. U .
//	L C R
//	. D .
//
// Higher-level algorithms (path finding, cellular automata, flood fill) are
// left to callers; this module supplies storage, addressing and neighbor
// enumeration only.
//
//	go get github.com/katalvlaran/flatgrid
package flatgrid

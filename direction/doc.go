// SPDX-License-Identifier: MIT

// Package direction defines the eight unit step vectors of a 2D integer lattice
// and the ordered groups used for neighbor traversal.
//
// What:
//
//   - Direction is an immutable (DX, DY) step; exactly eight are valid.
//   - Group selects an ordered subset: Cardinal, InterCardinal or All.
//   - Point is a lattice position; Point.Add applies a Direction.
//   - AdjacentPositions maps a position through a group, without bounds filtering.
//
// Orientation:
//
//	Up = (0,+1), Right = (+1,0), Down = (0,-1), Left = (-1,0).
//	Diagonals are the sums of their two axis components.
//
// Canonical order (All):
//
//	Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft
//
// Cardinal is [Up, Right, Down, Left]; InterCardinal is [UpRight, DownRight,
// DownLeft, UpLeft]. Every call returns the same order, so the i-th element of
// AdjacentPositions(p, g) always corresponds to the i-th element of For(g).
//
// Errors:
//
//   - ErrInvalidDirection: a vector that is not one of the eight steps.
//   - ErrUnknownName: Parse was given a name that is not canonical.
//
// Complexity: every operation is O(1) or O(8).
package direction

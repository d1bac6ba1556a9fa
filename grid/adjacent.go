// SPDX-License-Identifier: MIT

// Package grid - neighbor queries.
//
// Every query walks direction.For(group) in canonical order, forms p+d and keeps
// only in-bounds candidates. Out-of-bounds neighbors are skipped, not reported as
// gaps: the value list alone cannot tell "off the edge" from "not requested".
// Use ValidDirections or Neighbors when that correspondence matters.
//
// The package-level functions accept any Bounds/GridLike, so alternative backings
// (Sparse, user types) share the exact filtering and ordering of *Grid.

package grid

import (
	"fmt"

	"github.com/katalvlaran/flatgrid/direction"
)

// ValidAdjacentPositions returns the positions p+d, for d in group order, that
// lie inside b.
// Complexity: O(|group|).
func ValidAdjacentPositions(b Bounds, p direction.Point, group direction.Group) []direction.Point {
	ds := direction.For(group)
	out := make([]direction.Point, 0, len(ds))
	for _, d := range ds {
		q := p.Add(d)
		if b.InBounds(q.X, q.Y) {
			out = append(out, q)
		}
	}
	return out
}

// ValidDirections returns the directions of group, in order, whose step from p
// stays inside b.
// Complexity: O(|group|).
func ValidDirections(b Bounds, p direction.Point, group direction.Group) []direction.Direction {
	ds := direction.For(group)
	out := ds[:0]
	for _, d := range ds {
		q := p.Add(d)
		if b.InBounds(q.X, q.Y) {
			out = append(out, d)
		}
	}
	return out
}

// AdjacentValues returns g.Get for every position of ValidAdjacentPositions,
// in the same order.
//
// Errors:
//   - whatever g.Get returns; a well-behaved GridLike never fails on an
//     in-bounds coordinate.
func AdjacentValues[T any](g GridLike[T], p direction.Point, group direction.Group) ([]T, error) {
	pos := ValidAdjacentPositions(g, p, group)
	out := make([]T, 0, len(pos))
	for _, q := range pos {
		v, err := g.Get(q.X, q.Y)
		if err != nil {
			return nil, fmt.Errorf("AdjacentValues%v: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Neighbors pairs each in-bounds neighbor of p with its direction and value.
// This is the gap-aware form of AdjacentValues.
func Neighbors[T any](g GridLike[T], p direction.Point, group direction.Group) ([]Neighbor[T], error) {
	ds := direction.For(group)
	out := make([]Neighbor[T], 0, len(ds))
	for _, d := range ds {
		q := p.Add(d)
		if !g.InBounds(q.X, q.Y) {
			continue
		}
		v, err := g.Get(q.X, q.Y)
		if err != nil {
			return nil, fmt.Errorf("Neighbors%v: %w", p, err)
		}
		out = append(out, Neighbor[T]{Direction: d, Position: q, Value: v})
	}
	return out, nil
}

// ---------- *Grid fast paths ----------
// The methods below read the backing slice directly: every candidate has
// already passed InBounds, so no error path exists. Pass direction.Cardinal for
// the conventional 4-neighborhood.

// AdjacentValues returns the values of the in-bounds neighbors of p, in group order.
// Complexity: O(|group|).
func (g *Grid[T]) AdjacentValues(p direction.Point, group direction.Group) []T {
	out := make([]T, 0, groupLen(group))
	direction.Each(group, func(d direction.Direction) {
		q := p.Add(d)
		if g.InBounds(q.X, q.Y) {
			out = append(out, g.data[q.X*g.height+q.Y])
		}
	})
	return out
}

// AdjacentValuesIndex is AdjacentValues for the cell at a flat index.
func (g *Grid[T]) AdjacentValuesIndex(index int, group direction.Group) []T {
	return g.AdjacentValues(g.FromIndex(index), group)
}

// ValidAdjacentPositions returns the in-bounds neighbor positions of p, in group order.
func (g *Grid[T]) ValidAdjacentPositions(p direction.Point, group direction.Group) []direction.Point {
	return ValidAdjacentPositions(g, p, group)
}

// ValidDirections returns the directions of group that lead from p to an
// in-bounds neighbor.
func (g *Grid[T]) ValidDirections(p direction.Point, group direction.Group) []direction.Direction {
	return ValidDirections(g, p, group)
}

// Neighbors returns direction, position and value of every in-bounds neighbor of p.
func (g *Grid[T]) Neighbors(p direction.Point, group direction.Group) []Neighbor[T] {
	out := make([]Neighbor[T], 0, groupLen(group))
	direction.Each(group, func(d direction.Direction) {
		q := p.Add(d)
		if g.InBounds(q.X, q.Y) {
			out = append(out, Neighbor[T]{Direction: d, Position: q, Value: g.data[q.X*g.height+q.Y]})
		}
	})
	return out
}

// groupLen is the number of directions in group; Each panics on undefined groups.
func groupLen(group direction.Group) int {
	if group == direction.All {
		return 8
	}
	return 4
}

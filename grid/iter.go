// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/flatgrid/direction"
)

const panicNoCurrent = "grid: Iterator has no current element"

// at reads index i through the configured access path. Callers guarantee
// 0 ≤ i < Size(), so the checked path cannot fail.
func (g *Grid[T]) at(i int) T {
	if g.unchecked {
		return g.data[i]
	}
	v, _ := g.GetIndex(i)
	return v
}

// All yields every element in increasing index order 0..Size()-1.
// The sequence is lazy and can be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(g.data); i++ {
			if !yield(g.at(i)) {
				return
			}
		}
	}
}

// Indexed yields (index, element) pairs in increasing index order.
func (g *Grid[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(g.data); i++ {
			if !yield(i, g.at(i)) {
				return
			}
		}
	}
}

// Cells yields (position, element) pairs in increasing index order.
func (g *Grid[T]) Cells() iter.Seq2[direction.Point, T] {
	return func(yield func(direction.Point, T) bool) {
		for i := 0; i < len(g.data); i++ {
			if !yield(g.FromIndex(i), g.at(i)) {
				return
			}
		}
	}
}

// Iterator is a restartable cursor over a grid in index order.
// It starts before the first element; call Next before Value.
type Iterator[T any] struct {
	g   *Grid[T]
	pos int
}

// Iterator returns a cursor positioned before the first element.
func (g *Grid[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{g: g, pos: -1}
}

// Next advances the cursor and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	if it.pos < len(it.g.data) {
		it.pos++
	}
	return it.pos < len(it.g.data)
}

// Reset moves the cursor back before the first element.
func (it *Iterator[T]) Reset() { it.pos = -1 }

// Index returns the flat index of the current element.
func (it *Iterator[T]) Index() int { return it.pos }

// Point returns the coordinate of the current element. Like Value, it panics
// when the cursor is before the first or past the last element.
func (it *Iterator[T]) Point() direction.Point {
	if it.pos < 0 || it.pos >= len(it.g.data) {
		panic(panicNoCurrent)
	}
	return it.g.FromIndex(it.pos)
}

// Value returns the current element. It panics when the cursor is before the
// first or past the last element.
func (it *Iterator[T]) Value() T {
	if it.pos < 0 || it.pos >= len(it.g.data) {
		panic(panicNoCurrent)
	}
	return it.g.at(it.pos)
}

// Set overwrites the current element through SetIndex. Without a current
// element it returns a *BoundsError carrying the cursor index.
func (it *Iterator[T]) Set(v T) error {
	if it.pos < 0 || it.pos >= len(it.g.data) {
		return it.g.indexErr(ctxSetIndex, it.pos)
	}
	return it.g.SetIndex(it.pos, v)
}

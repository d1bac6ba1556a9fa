// SPDX-License-Identifier: MIT

package direction

import "fmt"

// Direction is a single step on the integer lattice.
// Only the eight vectors with components in {-1,0,1} (excluding the zero vector)
// are valid; see IsValid.
type Direction struct {
	DX, DY int
}

// The eight lattice directions.
var (
	Up        = Direction{DX: 0, DY: 1}
	UpRight   = Direction{DX: 1, DY: 1}
	Right     = Direction{DX: 1, DY: 0}
	DownRight = Direction{DX: 1, DY: -1}
	Down      = Direction{DX: 0, DY: -1}
	DownLeft  = Direction{DX: -1, DY: -1}
	Left      = Direction{DX: -1, DY: 0}
	UpLeft    = Direction{DX: -1, DY: 1}
)

// Group selects an ordered subset of the eight directions.
type Group int

const (
	// Cardinal is the four axis-aligned directions: Up, Right, Down, Left.
	Cardinal Group = iota
	// InterCardinal is the four diagonals: UpRight, DownRight, DownLeft, UpLeft.
	InterCardinal
	// All is every direction in canonical order.
	All
)

// Lookup tables. Never handed out directly; For returns copies.
var (
	cardinal      = [4]Direction{Up, Right, Down, Left}
	interCardinal = [4]Direction{UpRight, DownRight, DownLeft, UpLeft}
	all           = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

	names = [8]string{"Up", "UpRight", "Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft"}
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case Cardinal:
		return "Cardinal"
	case InterCardinal:
		return "InterCardinal"
	case All:
		return "All"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// Valid reports whether g is one of the three defined groups.
func (g Group) Valid() bool {
	return g >= Cardinal && g <= All
}

// For returns the directions of group g in canonical order.
// The returned slice is freshly allocated; mutating it does not affect later calls.
// For panics if g is not a defined Group.
// Complexity: O(len(group)).
func For(g Group) []Direction {
	switch g {
	case Cardinal:
		out := cardinal
		return out[:]
	case InterCardinal:
		out := interCardinal
		return out[:]
	case All:
		out := all
		return out[:]
	default:
		panic(panicUnknownGroup)
	}
}

// Each calls fn for every direction of g in canonical order without allocating.
// It panics on an undefined group, as For does.
func Each(g Group, fn func(Direction)) {
	var ds []Direction
	switch g {
	case Cardinal:
		ds = cardinal[:]
	case InterCardinal:
		ds = interCardinal[:]
	case All:
		ds = all[:]
	default:
		panic(panicUnknownGroup)
	}
	for _, d := range ds {
		fn(d)
	}
}

// Ordinal returns the position of d in the canonical All order, or -1 if d is
// not a valid direction.
func (d Direction) Ordinal() int {
	for i, c := range all {
		if c == d {
			return i
		}
	}
	return -1
}

// IsValid reports whether d equals one of the eight canonical directions.
// Complexity: O(8).
func IsValid(d Direction) bool {
	return d.Ordinal() >= 0
}

// Name returns the canonical name of d.
// Returns ErrInvalidDirection, wrapped with the offending vector, otherwise.
func Name(d Direction) (string, error) {
	i := d.Ordinal()
	if i < 0 {
		return "", fmt.Errorf("Name(%d,%d): %w", d.DX, d.DY, ErrInvalidDirection)
	}
	return names[i], nil
}

// Parse returns the direction whose canonical name is s (case-sensitive).
func Parse(s string) (Direction, error) {
	for i, n := range names {
		if n == s {
			return all[i], nil
		}
	}
	return Direction{}, fmt.Errorf("Parse(%q): %w", s, ErrUnknownName)
}

// String returns the canonical name, or "Direction(dx,dy)" for invalid vectors.
func (d Direction) String() string {
	if i := d.Ordinal(); i >= 0 {
		return names[i]
	}
	return fmt.Sprintf("Direction(%d,%d)", d.DX, d.DY)
}

// Opposite returns the direction pointing the other way.
// The opposite of a valid direction is always valid.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

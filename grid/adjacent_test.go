package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/flatgrid/direction"
	"github.com/katalvlaran/flatgrid/grid"
	"github.com/stretchr/testify/require"
)

var groups = []direction.Group{direction.Cardinal, direction.InterCardinal, direction.All}

// TestAdjacentScenario3x3 is the reference scenario: a 3×3 grid of zeros with
// a 5 in the center.
func TestAdjacentScenario3x3(t *testing.T) {
	g, err := grid.New[int](3, 3)
	require.NoError(t, err)
	g.SetAll(0)
	require.NoError(t, g.Set(1, 1, 5))

	v, err := g.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	center := direction.Pt(1, 1)
	require.Equal(t, []int{0, 0, 0, 0}, g.AdjacentValues(center, direction.Cardinal))
	require.Equal(t,
		[]direction.Point{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		g.ValidAdjacentPositions(center, direction.Cardinal))

	corner := direction.Pt(0, 0)
	require.Equal(t,
		[]direction.Point{{X: 0, Y: 1}, {X: 1, Y: 0}},
		g.ValidAdjacentPositions(corner, direction.Cardinal))
	require.Equal(t,
		[]direction.Direction{direction.Up, direction.Right},
		g.ValidDirections(corner, direction.Cardinal))
	require.Equal(t,
		[]direction.Direction{direction.Up, direction.UpRight, direction.Right},
		g.ValidDirections(corner, direction.All))

	// the center shows up from every neighbor
	require.Equal(t, []int{5}, g.AdjacentValues(direction.Pt(1, 0), direction.Cardinal)[:1])
	require.Equal(t, []int{5}, g.AdjacentValuesIndex(g.ToIndex(0, 0), direction.InterCardinal))
}

// TestAdjacencyConsistency checks, for every cell and group, that the grid's
// filtered queries equal direction.AdjacentPositions filtered by InBounds.
func TestAdjacencyConsistency(t *testing.T) {
	g, err := grid.New[int](4, 3)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		require.NoError(t, g.SetIndex(i, i*10))
	}

	for p := range g.Cells() {
		for _, grp := range groups {
			var wantPos []direction.Point
			var wantDir []direction.Direction
			var wantVal []int
			ds := direction.For(grp)
			for k, q := range direction.AdjacentPositions(p, grp) {
				if !g.InBoundsPoint(q) {
					continue
				}
				wantPos = append(wantPos, q)
				wantDir = append(wantDir, ds[k])
				v, err := g.GetPoint(q)
				require.NoError(t, err)
				wantVal = append(wantVal, v)
			}

			gotPos := g.ValidAdjacentPositions(p, grp)
			require.ElementsMatch(t, wantPos, gotPos)
			if len(wantPos) > 0 {
				require.Equal(t, wantPos, gotPos, "%v %v", p, grp)
				require.Equal(t, wantDir, g.ValidDirections(p, grp), "%v %v", p, grp)
				require.Equal(t, wantVal, g.AdjacentValues(p, grp), "%v %v", p, grp)
			}

			nb := g.Neighbors(p, grp)
			require.Len(t, nb, len(wantPos))
			for k, n := range nb {
				require.Equal(t, wantDir[k], n.Direction)
				require.Equal(t, wantPos[k], n.Position)
				require.Equal(t, wantVal[k], n.Value)
				require.Equal(t, p.Add(n.Direction), n.Position)
			}

			// generic forms agree with the fast paths
			gv, err := grid.AdjacentValues[int](g, p, grp)
			require.NoError(t, err)
			require.Equal(t, g.AdjacentValues(p, grp), gv)
			gn, err := grid.Neighbors[int](g, p, grp)
			require.NoError(t, err)
			require.Equal(t, nb, gn)
		}
	}
}

// TestAdjacentOutsidePosition allows querying from an out-of-bounds origin.
func TestAdjacentOutsidePosition(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	require.Equal(t,
		[]direction.Point{{X: 0, Y: 0}},
		g.ValidAdjacentPositions(direction.Pt(-1, 0), direction.Cardinal))
	require.Empty(t, g.AdjacentValues(direction.Pt(10, 10), direction.All))
}

// TestFastPathsPanicOnUnknownGroup treats an undefined group as a programmer error.
func TestFastPathsPanicOnUnknownGroup(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { g.AdjacentValues(direction.Pt(0, 0), direction.Group(9)) })
	require.Panics(t, func() { g.Neighbors(direction.Pt(0, 0), direction.Group(-1)) })
}

// TestNeighborString covers the debug formatting of a pairing.
func TestNeighborString(t *testing.T) {
	n := grid.Neighbor[int]{Direction: direction.Left, Position: direction.Pt(0, 2), Value: 4}
	require.Equal(t, "Left(0,2)=4", n.String())
}

// failingGrid is a GridLike whose reads always fail.
type failingGrid struct{}

var errBroken = errors.New("broken backend")

func (failingGrid) Width() int { return 2 }
func (failingGrid) Height() int { return 2 }
func (failingGrid) InBounds(x, y int) bool { return x >= 0 && x < 2 && y >= 0 && y < 2 }
func (failingGrid) Get(x, y int) (int, error) { return 0, errBroken }
func (failingGrid) Set(x, y int, v int) error { return errBroken }

// TestGenericQueriesPropagateErrors ensures backend failures surface.
func TestGenericQueriesPropagateErrors(t *testing.T) {
	var fg failingGrid
	_, err := grid.AdjacentValues[int](fg, direction.Pt(0, 0), direction.Cardinal)
	require.ErrorIs(t, err, errBroken)
	_, err = grid.Neighbors[int](fg, direction.Pt(0, 0), direction.All)
	require.ErrorIs(t, err, errBroken)
	require.Len(t, grid.ValidDirections(fg, direction.Pt(0, 0), direction.All), 3)
}

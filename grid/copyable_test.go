package grid_test

import (
	"testing"

	"github.com/katalvlaran/flatgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainCell struct {
	Kind  uint8
	Cost  float64
	Label string
	Pad   [2]int16
}

type ownerCell struct {
	Kind  uint8
	Items []int
}

// TestCopyable classifies value and reference element types.
func TestCopyable(t *testing.T) {
	assert.True(t, grid.Copyable[int]())
	assert.True(t, grid.Copyable[bool]())
	assert.True(t, grid.Copyable[string]())
	assert.True(t, grid.Copyable[complex128]())
	assert.True(t, grid.Copyable[[3]int]())
	assert.True(t, grid.Copyable[plainCell]())
	assert.True(t, grid.Copyable[struct{}]())

	assert.False(t, grid.Copyable[*int]())
	assert.False(t, grid.Copyable[[]int]())
	assert.False(t, grid.Copyable[map[string]int]())
	assert.False(t, grid.Copyable[chan int]())
	assert.False(t, grid.Copyable[func()]())
	assert.False(t, grid.Copyable[any]())
	assert.False(t, grid.Copyable[error]())
	assert.False(t, grid.Copyable[ownerCell]())
	assert.False(t, grid.Copyable[[2][]int]())
	assert.False(t, grid.Copyable[struct{ P *plainCell }]())
}

// TestCopyIndependence ensures a copy owns its own backing slice.
func TestCopyIndependence(t *testing.T) {
	src, err := grid.New[int](3, 2)
	require.NoError(t, err)
	require.NoError(t, src.Set(1, 1, 4))

	dst, err := grid.Copy(src)
	require.NoError(t, err)
	require.Equal(t, src.Values(), dst.Values())
	require.Equal(t, src.Width(), dst.Width())
	require.Equal(t, src.Height(), dst.Height())

	require.NoError(t, dst.Set(1, 1, 9))
	v, _ := src.Get(1, 1)
	require.Equal(t, 4, v)

	clone, err := src.Clone()
	require.NoError(t, err)
	require.Equal(t, src.Values(), clone.Values())
}

// TestCopyKeepsPolicy checks the access policy travels with the copy.
func TestCopyKeepsPolicy(t *testing.T) {
	src, err := grid.New[plainCell](2, 2, grid.WithUncheckedAccess())
	require.NoError(t, err)
	dst, err := grid.Copy(src)
	require.NoError(t, err)
	require.False(t, dst.Validating())
}

// TestCopyNotCopyable rejects reference element types.
func TestCopyNotCopyable(t *testing.T) {
	src, err := grid.New[[]int](2, 2)
	require.NoError(t, err)
	dst, err := grid.Copy(src)
	require.ErrorIs(t, err, grid.ErrTypeNotCopyable)
	require.Nil(t, dst)

	ptrs, err := grid.New[*plainCell](1, 1)
	require.NoError(t, err)
	_, err = ptrs.Clone()
	require.ErrorIs(t, err, grid.ErrTypeNotCopyable)
	require.ErrorContains(t, err, "*grid_test.plainCell")

	_, err = grid.Copy[int](nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

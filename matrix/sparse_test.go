package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparse_SetEntryAndPivot(t *testing.T) {
	s := NewSparse(4, 2)
	require.NoError(t, s.SetEntry(1, 0))
	require.NoError(t, s.SetEntry(3, 0))
	require.NoError(t, s.HeapifyCol(0))

	piv, err := s.Pivot(0)
	require.NoError(t, err)
	assert.Equal(t, 3, piv)
}

func TestSparse_OutOfRangeIndicesReturnError(t *testing.T) {
	s := NewSparse(2, 2)
	assert.ErrorIs(t, s.SetEntry(5, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.SetEntry(0, 5), ErrIndexOutOfRange)
	_, err := s.Pivot(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSparse_AddToSelfIsInvariantViolation(t *testing.T) {
	s := NewSparse(3, 2)
	assert.ErrorIs(t, s.AddTo(0, 0), ErrInvariantViolation)
}

func TestSparse_AddToCancelsSharedRows(t *testing.T) {
	s := NewSparse(4, 2)
	require.NoError(t, s.SetEntry(0, 0))
	require.NoError(t, s.SetEntry(1, 0))
	require.NoError(t, s.Finalize(0))

	require.NoError(t, s.SetEntry(1, 1))
	require.NoError(t, s.SetEntry(2, 1))
	require.NoError(t, s.Finalize(1))

	require.NoError(t, s.AddTo(0, 1))
	require.NoError(t, s.Finalize(1))

	for row, want := range map[int]bool{0: true, 1: false, 2: true, 3: false} {
		got, err := s.Contains(row, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "row %d", row)
	}
}

func TestSparse_MoveColZeroesSource(t *testing.T) {
	s := NewSparse(3, 2)
	require.NoError(t, s.SetEntry(1, 0))
	require.NoError(t, s.Finalize(0))

	require.NoError(t, s.MoveCol(0, 1))

	got, err := s.Contains(1, 1)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = s.Contains(1, 0)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestSparse_AppendColFromGrowsAndEmptiesSource(t *testing.T) {
	src := NewSparse(3, 1)
	require.NoError(t, src.SetEntry(2, 0))
	require.NoError(t, src.Finalize(0))

	dst := NewSparse(3, 0)
	require.NoError(t, dst.AppendColFrom(src, 0))

	assert.Equal(t, 1, dst.NumCols())
	got, err := dst.Contains(2, 0)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = src.Contains(2, 0)
	require.NoError(t, err)
	assert.False(t, got)
}

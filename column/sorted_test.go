package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_RequiresFinalizedWhenChecked(t *testing.T) {
	l := NewLazyHeap()
	l.CheckInvariants = true
	l.SetEntry(1)
	_, err := Sort(l)
	assert.ErrorIs(t, err, ErrNotFinalized)
}

func TestSort_ProducesAscendingDeduplicatedRows(t *testing.T) {
	l := NewLazyHeap()
	for _, r := range []int{5, 2, 8, 2, 1} { // 2 cancels
		l.SetEntry(r)
	}
	l.Finalize()

	s, err := Sort(l)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 8}, s.Rows())
	assert.Equal(t, 8, s.Max())
}

func TestSorted_AddSortedIsSymmetricDifference(t *testing.T) {
	a := NewSorted()
	for _, r := range []int{1, 2, 3} {
		a.bm.Add(uint32(r))
	}
	b := NewSorted()
	for _, r := range []int{2, 4} {
		b.bm.Add(uint32(r))
	}
	a.AddSorted(b)
	assert.Equal(t, []int{1, 3, 4}, a.Rows())
}

func TestSorted_RoundTripThroughLazyHeap(t *testing.T) {
	l := NewLazyHeap()
	for _, r := range []int{3, 1, 2} {
		l.SetEntry(r)
	}
	l.Finalize()
	s, err := Sort(l)
	require.NoError(t, err)

	back := s.ToLazyHeap()
	back.Finalize()
	assert.Equal(t, 3, back.PivotFinalized())
	assert.True(t, back.Contains(1))
	assert.True(t, back.Contains(2))
}

package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_SetMaintainsDescendingOrder(t *testing.T) {
	l := NewList()
	for _, r := range []int{3, 7, 1, 5} {
		l.Set(r)
	}
	assert.Equal(t, []int{7, 5, 3, 1}, l.Rows())
	assert.Equal(t, 7, l.Pivot())
}

func TestList_SetTwiceCancels(t *testing.T) {
	l := NewList()
	l.Set(4)
	l.Set(4)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains(4))
}

func TestList_EmptyPivotIsMinusOne(t *testing.T) {
	assert.Equal(t, -1, NewList().Pivot())
}

func TestList_AddColumnIsModTwo(t *testing.T) {
	a := NewList()
	for _, r := range []int{1, 2, 3} {
		a.Set(r)
	}
	b := NewList()
	for _, r := range []int{2, 4} {
		b.Set(r)
	}
	require.NoError(t, a.AddColumn(b))
	assert.Equal(t, []int{4, 3, 1}, a.Rows())
}

func TestList_AddColumnRejectsSelf(t *testing.T) {
	l := NewList()
	l.Set(1)
	assert.ErrorIs(t, l.AddColumn(l), ErrSelfAdd)
}

func TestList_RoundTripThroughLazyHeap(t *testing.T) {
	l := NewList()
	for _, r := range []int{5, 2, 8, 1} {
		l.Set(r)
	}
	lh := l.ToLazyHeap()
	back := FromLazyHeap(lh)
	assert.Equal(t, l.Rows(), back.Rows())
}

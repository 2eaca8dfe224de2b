package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermuted_IdentityPermInverses(t *testing.T) {
	s := NewSparse(4, 1)
	p := NewPermuted(s)

	perm, mrep := p.Perm(), p.Mrep()
	for i := range perm {
		assert.Equal(t, i, perm[mrep[i]])
		assert.Equal(t, i, mrep[perm[i]])
	}
}

func TestPermuted_SwapRowsChangesObservableContentNotRawStorage(t *testing.T) {
	s := NewSparse(4, 1)
	p := NewPermuted(s)

	require.NoError(t, p.SetEntry(2, 0))
	require.NoError(t, p.Finalize(0))

	got, err := p.Contains(2, 0)
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, p.SwapRows(1, 2))

	// row 2 no longer observes the entry; row 1 now does, with no column
	// mutation at all.
	got, err = p.Contains(2, 0)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = p.Contains(1, 0)
	require.NoError(t, err)
	assert.True(t, got)

	perm, mrep := p.Perm(), p.Mrep()
	for i := range perm {
		assert.Equal(t, i, perm[mrep[i]], "perm/mrep must stay inverse after swap")
	}
}

func TestPermuted_FindPivotColumnLinearScan(t *testing.T) {
	s := NewSparse(3, 2)
	p := NewPermuted(s)

	require.NoError(t, p.SetEntry(0, 0))
	require.NoError(t, p.Finalize(0))
	require.NoError(t, p.SetEntry(2, 1))
	require.NoError(t, p.Finalize(1))

	c, err := p.FindPivotColumn(2)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = p.FindPivotColumn(1)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestPermuted_SwapColumnsIsPositional(t *testing.T) {
	s := NewSparse(3, 2)
	p := NewPermuted(s)

	require.NoError(t, p.SetEntry(0, 0))
	require.NoError(t, p.Finalize(0))

	require.NoError(t, p.SwapColumns(0, 1))

	got, err := p.Contains(0, 1)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = p.Contains(0, 0)
	require.NoError(t, err)
	assert.False(t, got)
}

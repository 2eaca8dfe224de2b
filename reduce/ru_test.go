package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twoparam-tda/bigraded/matrix"
)

func TestRowPriority_IdentityEntries(t *testing.T) {
	u, err := newIdentityRowPriority(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, err := u.Entry(i, j)
			require.NoError(t, err)
			assert.Equal(t, i == j, got)
		}
	}
}

func TestRowPriority_AddRowTogglesEntries(t *testing.T) {
	u, err := newIdentityRowPriority(2)
	require.NoError(t, err)

	require.NoError(t, u.AddRow(0, 1))

	got, err := u.Entry(1, 0)
	require.NoError(t, err)
	assert.True(t, got, "row 1 now also holds column 0 after absorbing row 0")

	got, err = u.Entry(1, 1)
	require.NoError(t, err)
	assert.True(t, got, "row 1's own original entry survives")
}

func TestDecomposeRU_LeavesMatrixReduced(t *testing.T) {
	sp := matrix.NewSparse(3, 3)
	require.NoError(t, sp.SetEntry(0, 0))
	require.NoError(t, sp.SetEntry(1, 1))
	require.NoError(t, sp.SetEntry(0, 2))
	require.NoError(t, sp.SetEntry(1, 2))
	p := matrix.NewPermuted(sp)

	u, err := DecomposeRU(p)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Size())

	pivots := map[int]bool{}
	for j := 0; j < p.NumCols(); j++ {
		piv, err := p.PivotFinalized(j)
		require.NoError(t, err)
		if piv == -1 {
			continue
		}
		assert.False(t, pivots[piv], "reduced matrix must have distinct pivots")
		pivots[piv] = true
	}
}

func TestDecomposeRU_IdentityInputLeavesUIdentity(t *testing.T) {
	sp := matrix.NewSparse(3, 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, sp.SetEntry(i, i))
	}
	p := matrix.NewPermuted(sp)

	u, err := DecomposeRU(p)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, err := u.Entry(i, j)
			require.NoError(t, err)
			assert.Equal(t, i == j, got)
		}
	}
}

package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twoparam-tda/bigraded/matrix"
)

func TestVineyard_DetectsAndRepairsBrokenReducedForm(t *testing.T) {
	sp := matrix.NewSparse(3, 2)
	require.NoError(t, sp.SetEntry(1, 0))
	require.NoError(t, sp.SetEntry(0, 1))
	require.NoError(t, sp.SetEntry(1, 1))
	p := matrix.NewPermuted(sp)
	require.NoError(t, p.Finalize(0))
	require.NoError(t, p.Finalize(1))

	require.NoError(t, p.SwapRows(0, 1))

	repairNeeded, k, l, err := Vineyard(p, 0)
	require.NoError(t, err)
	require.True(t, repairNeeded)
	assert.Equal(t, 0, k)
	assert.Equal(t, 1, l)

	require.NoError(t, Repair(p, k, l))
	require.NoError(t, p.Finalize(l))

	got, err := p.Contains(0, l)
	require.NoError(t, err)
	assert.False(t, got, "repair must clear row i from column l")

	piv, err := p.PivotFinalized(l)
	require.NoError(t, err)
	assert.Equal(t, 1, piv, "column l settles back at row i+1")
}

func TestVineyard_NoRepairWhenAlreadyReduced(t *testing.T) {
	sp := matrix.NewSparse(3, 2)
	require.NoError(t, sp.SetEntry(0, 0))
	require.NoError(t, sp.SetEntry(1, 1))
	p := matrix.NewPermuted(sp)
	require.NoError(t, p.Finalize(0))
	require.NoError(t, p.Finalize(1))

	require.NoError(t, p.SwapRows(0, 1))

	repairNeeded, _, _, err := Vineyard(p, 0)
	require.NoError(t, err)
	assert.False(t, repairNeeded)
}

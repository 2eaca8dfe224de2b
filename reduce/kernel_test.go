package reduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/twoparam-tda/bigraded/matrix"
)

func toDense(sp *matrix.Sparse) *mat.Dense {
	d := mat.NewDense(sp.NumRows(), sp.NumCols(), nil)
	for r := 0; r < sp.NumRows(); r++ {
		for c := 0; c < sp.NumCols(); c++ {
			ok, err := sp.Contains(r, c)
			if err != nil {
				panic(err)
			}
			if ok {
				d.Set(r, c, 1)
			}
		}
	}
	return d
}

// assertIsKernelMod2 verifies every row of md (M as it was before Kernel
// reduced it in place) times every column of k vanishes mod 2, i.e.
// M * K == 0 over GF(2).
func assertIsKernelMod2(t *testing.T, md *mat.Dense, k *matrix.Bigraded) {
	t.Helper()
	if k.Sparse().NumCols() == 0 {
		return
	}
	kd := toDense(k.Sparse())
	var product mat.Dense
	product.Mul(md, kd)
	for r := 0; r < product.RawMatrix().Rows; r++ {
		for c := 0; c < product.RawMatrix().Cols; c++ {
			v := math.Mod(product.At(r, c), 2)
			assert.Zero(t, v, "M*K entry (%d,%d) must vanish mod 2", r, c)
		}
	}
}

func singleBigradeIndex(lastCol int32) *matrix.Index {
	idx := matrix.NewIndex(1, 1)
	_ = idx.Set(0, 0, lastCol)
	return idx
}

func TestKernel_IdentityHasNoGenerators(t *testing.T) {
	sp := matrix.NewSparse(3, 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, sp.SetEntry(i, i))
		require.NoError(t, sp.Finalize(i))
	}
	m := matrix.NewBigraded(sp, singleBigradeIndex(2))

	k, err := Kernel(m)
	require.NoError(t, err)
	assert.Equal(t, 0, k.Sparse().NumCols())
}

func TestKernel_SingleBigradeOneGenerator(t *testing.T) {
	sp := matrix.NewSparse(3, 3)
	require.NoError(t, sp.SetEntry(0, 0))
	require.NoError(t, sp.Finalize(0))
	require.NoError(t, sp.SetEntry(1, 1))
	require.NoError(t, sp.Finalize(1))
	require.NoError(t, sp.SetEntry(0, 2))
	require.NoError(t, sp.SetEntry(1, 2))
	require.NoError(t, sp.Finalize(2)) // col2 = col0 + col1

	m := matrix.NewBigraded(sp, singleBigradeIndex(2))

	k, err := Kernel(m)
	require.NoError(t, err)
	require.Equal(t, 1, k.Sparse().NumCols())

	for row := 0; row < 3; row++ {
		got, err := k.Sparse().Contains(row, 0)
		require.NoError(t, err)
		assert.True(t, got, "row %d of the sole kernel generator", row)
	}
}

func TestKernel_CrossBigradeLowsPersist(t *testing.T) {
	sp := matrix.NewSparse(4, 4)
	require.NoError(t, sp.SetEntry(0, 0))
	require.NoError(t, sp.Finalize(0))
	require.NoError(t, sp.SetEntry(1, 1))
	require.NoError(t, sp.Finalize(1))
	require.NoError(t, sp.SetEntry(2, 2))
	require.NoError(t, sp.Finalize(2))
	require.NoError(t, sp.SetEntry(0, 3))
	require.NoError(t, sp.SetEntry(1, 3))
	require.NoError(t, sp.SetEntry(2, 3))
	require.NoError(t, sp.Finalize(3)) // col3 = col0 + col1 + col2

	idx := matrix.NewIndex(1, 2) // outer=y (1 grade), inner=x (2 grades)
	require.NoError(t, idx.Set(0, 0, 1))
	require.NoError(t, idx.Set(0, 1, 3))

	m := matrix.NewBigraded(sp, idx)
	md := toDense(m.Sparse()) // Kernel reduces m in place

	k, err := Kernel(m)
	require.NoError(t, err)
	require.Equal(t, 1, k.Sparse().NumCols())

	for row := 0; row < 4; row++ {
		got, err := k.Sparse().Contains(row, 0)
		require.NoError(t, err)
		assert.True(t, got, "row %d of the generator spanning both bigrades", row)
	}

	// the generator was discovered while visiting the second bigrade
	// (x=1), so it must be recorded there, not the first.
	start, end, err := k.ColumnRange(0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, end-start)

	start, end, err = k.ColumnRange(0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, end-start)

	assertIsKernelMod2(t, md, k)
}

func TestKernel_AbortedByCallerDiscardsPartialResult(t *testing.T) {
	sp := matrix.NewSparse(3, 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, sp.SetEntry(i, i))
		require.NoError(t, sp.Finalize(i))
	}
	m := matrix.NewBigraded(sp, singleBigradeIndex(2))

	_, err := Kernel(m, WithCancellation(func() bool { return false }))
	assert.ErrorIs(t, err, ErrAbortedByCaller)
}

package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBuffer_StartsEmpty(t *testing.T) {
	b := AcquireInts()
	defer b.Release()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Slice())
}

func TestIntBuffer_AppendAndRelease(t *testing.T) {
	b := AcquireInts()
	b.Append(1)
	b.Append(2)
	assert.Equal(t, []int{1, 2}, b.Slice())
	b.Release()
}

func TestIntBuffer_ReleasedBufferIsReusedEmpty(t *testing.T) {
	b1 := AcquireInts()
	b1.Append(42)
	b1.Release()

	// Acquire enough buffers to make pool reuse likely without asserting it
	// (sync.Pool gives no reuse guarantee); what must hold regardless is
	// that every freshly acquired buffer starts empty.
	for i := 0; i < 8; i++ {
		b := AcquireInts()
		assert.Empty(t, b.Slice())
		b.Release()
	}
}

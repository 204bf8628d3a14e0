package bufpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ChunkPool Tests
// =============================================================================

func TestNewChunkPoolGetReturnsRequestedCapacity(t *testing.T) {
	p := NewChunkPool(128)

	chunk := p.Get()

	require.NotNil(t, chunk)
	assert.Equal(t, 0, len(chunk), "new chunk should have zero length")
	assert.Equal(t, 128, cap(chunk), "new chunk should have the pool's chunk size capacity")
	assert.Equal(t, 128, p.ChunkSize())
}

func TestChunkPoolGetAfterPutReturnsZeroLength(t *testing.T) {
	p := NewChunkPool(64)

	chunk := p.Get()
	chunk = append(chunk, []byte("reuse me")...)
	p.Put(chunk)

	got := p.Get()
	assert.Equal(t, 0, len(got), "chunk returned from Get after Put should be reset to zero length")
}

func TestChunkPoolPutDropsOversizedChunks(t *testing.T) {
	p := NewChunkPool(16)

	oversized := make([]byte, 0, MaxPooledChunkSize+1)
	assert.NotPanics(t, func() { p.Put(oversized) })

	// The oversized chunk was not retained, so Get builds a fresh one.
	assert.Equal(t, 16, cap(p.Get()))
}

func TestChunkPoolPutNilIsNoop(t *testing.T) {
	p := NewChunkPool(16)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestDefaultPoolGetPut(t *testing.T) {
	chunk := Get()
	assert.Equal(t, DefaultChunkSize, cap(chunk))

	Put(chunk)
}

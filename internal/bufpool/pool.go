// Package bufpool provides a pool of reusable fixed-size byte chunks.
//
// The buffer package builds its chunked, growable byte container out of
// fixed-capacity chunks; this package lets repeated encode calls reuse those
// chunk allocations across calls rather than allocating and discarding them
// on every frame.
package bufpool

import "sync"

// DefaultChunkSize is the chunk size used by buffer.New when the caller
// doesn't request a specific one. It matches the "small power of two, e.g.
// 1024 bytes" recommendation for the chunked byte buffer.
const DefaultChunkSize = 1024

// MaxPooledChunkSize is the largest chunk capacity this package will retain
// for reuse. Chunks with a larger capacity are discarded on Put instead of
// pooled, to avoid holding onto a few huge allocations indefinitely.
const MaxPooledChunkSize = 64 * 1024

// ChunkPool is a sync.Pool of same-sized, zero-length byte chunks.
type ChunkPool struct {
	pool      sync.Pool
	chunkSize int
}

// NewChunkPool creates a pool that hands out chunks of capacity chunkSize.
func NewChunkPool(chunkSize int) *ChunkPool {
	return &ChunkPool{
		chunkSize: chunkSize,
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, 0, chunkSize)
				return &b
			},
		},
	}
}

// Get retrieves a zero-length chunk with capacity at least ChunkSize.
func (p *ChunkPool) Get() []byte {
	ptr, _ := p.pool.Get().(*[]byte)
	return (*ptr)[:0]
}

// Put returns a chunk to the pool for reuse. Chunks whose capacity exceeds
// MaxPooledChunkSize are dropped rather than retained.
func (p *ChunkPool) Put(chunk []byte) {
	if chunk == nil || cap(chunk) > MaxPooledChunkSize {
		return
	}

	chunk = chunk[:0]
	p.pool.Put(&chunk)
}

// ChunkSize returns the capacity this pool's chunks are created with.
func (p *ChunkPool) ChunkSize() int {
	return p.chunkSize
}

var defaultPool = NewChunkPool(DefaultChunkSize)

// Get retrieves a zero-length chunk of DefaultChunkSize capacity from the
// package-level default pool.
func Get() []byte {
	return defaultPool.Get()
}

// Put returns a chunk obtained from Get back to the default pool.
func Put(chunk []byte) {
	defaultPool.Put(chunk)
}

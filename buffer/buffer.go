package buffer

import (
	"github.com/nimo-io/nimo/internal/bufpool"
	"github.com/nimo-io/nimo/internal/option"
)

// config holds a Buffer's construction-time tuning, applied via Option.
type config struct {
	pool *bufpool.ChunkPool
}

// Option configures New.
type Option = option.Option[*config]

// WithPool makes a Buffer draw and return chunks from pool instead of the
// package-level default pool. Useful when a caller wants a dedicated pool
// sized for its own typical frame size.
func WithPool(pool *bufpool.ChunkPool) Option {
	return option.NoError(func(c *config) { c.pool = pool })
}

// Buffer is a growable byte container built from fixed-size chunks. It is
// not safe for concurrent use by multiple goroutines.
type Buffer struct {
	pool   *bufpool.ChunkPool
	chunks [][]byte
	size   int
}

// New returns an empty Buffer. Without options it draws chunks from the
// package-level default pool (bufpool.DefaultChunkSize bytes each).
func New(opts ...Option) *Buffer {
	cfg := &config{pool: nil}
	_ = option.Apply(cfg, opts...)

	return &Buffer{pool: cfg.pool}
}

func (b *Buffer) getChunk() []byte {
	if b.pool != nil {
		return b.pool.Get()
	}

	return bufpool.Get()
}

func (b *Buffer) putChunk(chunk []byte) {
	if b.pool != nil {
		b.pool.Put(chunk)
		return
	}

	bufpool.Put(chunk)
}

func (b *Buffer) chunkCap() int {
	if b.pool != nil {
		return b.pool.ChunkSize()
	}

	return bufpool.DefaultChunkSize
}

// Append copies p onto the end of b, allocating additional chunks from the
// pool as needed.
func (b *Buffer) Append(p []byte) {
	for len(p) > 0 {
		if len(b.chunks) == 0 || len(b.chunks[len(b.chunks)-1]) == cap(b.chunks[len(b.chunks)-1]) {
			b.chunks = append(b.chunks, b.getChunk())
		}

		last := &b.chunks[len(b.chunks)-1]
		room := cap(*last) - len(*last)
		n := len(p)
		if n > room {
			n = room
		}

		*last = append(*last, p[:n]...)
		p = p[n:]
		b.size += n
	}
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.Append([]byte{c})
}

// Size reports the total number of bytes written since the last Reset.
func (b *Buffer) Size() int {
	return b.size
}

// Bytes returns the buffer's contents as one contiguous slice, copying
// across chunk boundaries if necessary. The returned slice is owned by
// the caller and safe to retain past the next Reset.
func (b *Buffer) Bytes() []byte {
	if len(b.chunks) == 1 {
		out := make([]byte, len(b.chunks[0]))
		copy(out, b.chunks[0])

		return out
	}

	out := make([]byte, 0, b.size)
	for _, c := range b.chunks {
		out = append(out, c...)
	}

	return out
}

// Reset empties the buffer, returning its chunks to the pool for reuse.
func (b *Buffer) Reset() {
	for _, c := range b.chunks {
		b.putChunk(c)
	}

	b.chunks = b.chunks[:0]
	b.size = 0
}

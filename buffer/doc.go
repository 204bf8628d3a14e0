// Package buffer implements the chunked growable byte buffer the codec
// package encodes into. Unlike a flat growable slice, a Buffer grows by
// appending fixed-size chunks drawn from a pool, so encoding a large
// value never triggers a doubling copy of the whole buffer, and chunks
// are returned to the pool on Reset for reuse by the next encode.
package buffer

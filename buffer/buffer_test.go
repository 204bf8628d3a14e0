package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimo-io/nimo/internal/bufpool"
)

func TestAppendAcrossChunkBoundary(t *testing.T) {
	b := New(WithPool(bufpool.NewChunkPool(4)))

	b.Append([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})

	assert.Equal(t, 9, b.Size())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, b.Bytes())
}

func TestAppendByte(t *testing.T) {
	b := New(WithPool(bufpool.NewChunkPool(2)))

	for i := byte(0); i < 5; i++ {
		b.AppendByte(i)
	}

	assert.Equal(t, []byte{0, 1, 2, 3, 4}, b.Bytes())
}

func TestResetReturnsChunksAndClearsSize(t *testing.T) {
	b := New(WithPool(bufpool.NewChunkPool(4)))
	b.Append([]byte{1, 2, 3, 4, 5})

	b.Reset()

	assert.Equal(t, 0, b.Size())
	assert.Equal(t, []byte{}, b.Bytes())
}

func TestDefaultPool(t *testing.T) {
	b := New()
	b.Append([]byte("hello"))

	assert.Equal(t, "hello", string(b.Bytes()))
}

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyDoesNotAliasBackingStorage(t *testing.T) {
	orig := NewArray(Blob([]byte{1, 2, 3}), String("a"))
	clone := Copy(orig)

	assert.True(t, Equal(orig, clone))

	// Mutating orig's backing slices in place must not be observable
	// through clone.
	orig.arr[0].raw[0] = 0xFF
	assert.Equal(t, byte(1), clone.arr[0].raw[0])
}

func TestCopyPreservesFlaw(t *testing.T) {
	f := NewFlaw("bad", 3)
	clone := Copy(f)

	assert.True(t, Equal(f, clone))
}

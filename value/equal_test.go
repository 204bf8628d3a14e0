package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualScalars(t *testing.T) {
	assert.True(t, Equal(Integer(5), Integer(5)))
	assert.False(t, Equal(Integer(5), Double(5.0)))
	assert.False(t, Equal(Integer(5), Integer(6)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Blob([]byte{1, 2}), Blob([]byte{1, 2})))
}

func TestEqualContainers(t *testing.T) {
	a := NewArray(Integer(1), Integer(2))
	b := NewArray(Integer(1), Integer(2))
	c := NewArray(Integer(2), Integer(1))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))

	m1, err := NewMap([]Pair{{Key: Integer(1), Val: String("x")}})
	require.NoError(t, err)
	m2, err := NewMap([]Pair{{Key: Integer(1), Val: String("x")}})
	require.NoError(t, err)

	assert.True(t, Equal(m1, m2))

	s1, err := NewSet(Integer(1), Integer(2))
	require.NoError(t, err)
	s2, err := NewSet(Integer(2), Integer(1))
	require.NoError(t, err)

	assert.True(t, Equal(s1, s2))
}

func TestEqualFlaw(t *testing.T) {
	assert.True(t, Equal(NewFlaw("x", 1), NewFlaw("x", 1)))
	assert.False(t, Equal(NewFlaw("x", 1), NewFlaw("x", 2)))
	assert.False(t, Equal(NewFlaw("x", 1), NewFlaw("y", 1)))
}

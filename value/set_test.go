package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetSortsAndDedups(t *testing.T) {
	s, err := NewSet(Integer(3), Integer(1), Integer(1), Integer(2))
	require.NoError(t, err)

	elems := s.SetElements()
	require.Len(t, elems, 3)
	assert.Equal(t, int64(1), elems[0].Int())
	assert.Equal(t, int64(2), elems[1].Int())
	assert.Equal(t, int64(3), elems[2].Int())
}

func TestNewSetKeepsDistinctNumericKinds(t *testing.T) {
	s, err := NewSet(Integer(5), Double(5.0))
	require.NoError(t, err)

	// Integer(5) and Double(5.0) share the numeric Compare domain but are
	// not Equal, so both survive construction.
	assert.Equal(t, 2, s.Len())
}

func TestNewSetRejectsNonScalarElement(t *testing.T) {
	_, err := NewSet(NewArray(Integer(1)))
	assert.ErrorIs(t, err, ErrNonScalarElement)
}

func TestNewSetEmpty(t *testing.T) {
	s, err := NewSet()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareWithinDomains(t *testing.T) {
	ord, valid := Compare(Integer(1), Integer(2))
	assert.True(t, valid)
	assert.Equal(t, Less, ord)

	ord, valid = Compare(Double(2.5), Integer(2))
	assert.True(t, valid)
	assert.Equal(t, Greater, ord)

	ord, valid = Compare(String("a"), String("b"))
	assert.True(t, valid)
	assert.Equal(t, Less, ord)

	ord, valid = Compare(Blob([]byte{1}), Blob([]byte{1}))
	assert.True(t, valid)
	assert.Equal(t, Equivalent, ord)

	ord, valid = Compare(Logical(false), Logical(true))
	assert.True(t, valid)
	assert.Equal(t, Less, ord)
}

func TestCompareReflexivity(t *testing.T) {
	for _, v := range []Value{Logical(true), Integer(42), Double(1.5), String("x"), Blob([]byte{9})} {
		ord, valid := Compare(v, v)
		assert.True(t, valid)
		assert.Equal(t, Equivalent, ord)
	}
}

func TestCompareCrossDomainInvalid(t *testing.T) {
	cases := []struct{ a, b Value }{
		{Logical(true), Integer(1)},
		{Integer(1), String("1")},
		{String("a"), Blob([]byte("a"))},
		{Integer(1), NewArray(Integer(1))},
	}

	for _, c := range cases {
		_, valid := Compare(c.a, c.b)
		assert.False(t, valid)
	}
}

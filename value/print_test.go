package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintScalars(t *testing.T) {
	assert.Equal(t, "true", Print(Logical(true)))
	assert.Equal(t, "-12", Print(Integer(-12)))
	assert.Equal(t, `"abc"`, Print(String("abc")))
}

func TestPrintQuotedEscapes(t *testing.T) {
	s := String("a\"b\\c\td\ne")
	assert.Equal(t, `"a\"b\\c\td\ne"`, Print(s))
}

func TestPrintQuotedHighBit(t *testing.T) {
	s := String(string([]byte{0xE9}))
	assert.Equal(t, `"\M-i"`, Print(s))
}

func TestPrintBlob(t *testing.T) {
	b := Blob([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, "%4%DEADBEEF%", Print(b))
}

func TestPrintContainers(t *testing.T) {
	arr := NewArray(Integer(1), Integer(2))
	assert.Equal(t, "( 1 2 )", Print(arr))

	m, err := NewMap([]Pair{{Key: Integer(1), Val: String("x")}})
	require.NoError(t, err)
	assert.Equal(t, `{ 1 "x" }`, Print(m))

	s, err := NewSet(Integer(2), Integer(1))
	require.NoError(t, err)
	assert.Equal(t, "[ 1 2 ]", Print(s))
}

func TestPrintEmptyContainers(t *testing.T) {
	assert.Equal(t, "( )", Print(NewArray()))

	m, err := NewMap(nil)
	require.NoError(t, err)
	assert.Equal(t, "{ }", Print(m))
}

package nimo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimo-io/nimo/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := value.NewArray(value.Integer(1), value.String("two"), value.Double(3.5))

	frame, err := Encode(v)
	require.NoError(t, err)

	got, err := Decode(frame)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, value.Equal(v, *got))
}

func TestEmptyFrameDecodesToNil(t *testing.T) {
	got, err := Decode(EncodeEmpty())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPrintParseRoundTrip(t *testing.T) {
	v := value.Integer(42)

	got, err := Parse(Print(v))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got))
}

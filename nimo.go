// Package nimo provides a self-describing binary value codec: a small,
// tagged-union Value type, a framed binary encoding of it, and its
// textual counterpart.
//
// A typical round trip:
//
//	v := value.NewArray(value.Integer(1), value.String("two"))
//	frame, err := nimo.Encode(v)
//	if err != nil {
//		// v was a Flaw; nothing else can fail
//	}
//
//	decoded, err := nimo.Decode(frame)
//	if err != nil {
//		// frame was truncated; read more bytes and retry
//	}
//	if decoded == nil {
//		// frame deliberately carried no value
//	} else if decoded.Kind() == value.KindFlaw {
//		// frame was structurally invalid: decoded.FlawDescription(), decoded.FlawOffset()
//	}
//
// Encode and Decode are thin wrappers around the codec package; Print
// and Parse are thin wrappers around the value package's textual
// surface. They exist so a caller that only needs the common path
// doesn't have to import codec and value separately.
package nimo

import (
	"github.com/nimo-io/nimo/codec"
	"github.com/nimo-io/nimo/value"
)

// Encode returns the complete binary frame for v.
func Encode(v value.Value) ([]byte, error) {
	return codec.Encode(v)
}

// EncodeEmpty returns the binary frame for a Message carrying no value.
func EncodeEmpty() []byte {
	return codec.EncodeEmpty()
}

// Decode parses one frame from data. See codec.Decode for the exact
// three-outcome contract.
func Decode(data []byte) (*value.Value, error) {
	return codec.Decode(data)
}

// Print renders v as stable, human-readable text.
func Print(v value.Value) string {
	return value.Print(v)
}

// Parse parses text produced by Print (or conforming to the same
// grammar) back into a Value. Malformed text yields a KindFlaw Value,
// never an error.
func Parse(s string) (value.Value, error) {
	return value.Parse(s)
}

package codec

import (
	"errors"
	"math"

	"github.com/nimo-io/nimo/buffer"
	"github.com/nimo-io/nimo/endian"
	"github.com/nimo-io/nimo/value"
	"github.com/nimo-io/nimo/wire"
)

// wireEngine is the byte order used for a Double's 8-byte binary64 field;
// the format mandates big-endian regardless of host order. Integer and
// length fields, whose width varies from 1 to 8 bytes, are written and
// read byte by byte in the same big-endian order.
var wireEngine = endian.GetBigEndianEngine()

// ErrCannotEncodeFlaw is returned by Encode when asked to encode a
// KindFlaw Value. Flaw is a decode-result variant; the wire format has no
// representation for it.
var ErrCannotEncodeFlaw = errors.New("codec: cannot encode a Flaw value")

// Encode returns the complete frame for v: a Message-start tag, v's body,
// and a matching Message-end tag.
func Encode(v value.Value) ([]byte, error) {
	if v.Kind() == value.KindFlaw {
		return nil, ErrCannotEncodeFlaw
	}

	buf := buffer.New()
	hint := classHintOf(v.Kind())

	buf.AppendByte(byte(wire.NewMessageTag(false, true, hint)))
	encodeValue(buf, v)
	buf.AppendByte(byte(wire.NewMessageTag(true, true, hint)))

	return buf.Bytes(), nil
}

// EncodeEmpty returns the frame for a Message with no top-level value.
func EncodeEmpty() []byte {
	buf := buffer.New()
	buf.AppendByte(byte(wire.NewMessageTag(false, false, 0)))
	buf.AppendByte(byte(wire.NewMessageTag(true, false, 0)))

	return buf.Bytes()
}

func classHintOf(k value.Kind) wire.ClassHint {
	switch k {
	case value.KindInteger:
		return wire.ClassHintInteger
	case value.KindDouble:
		return wire.ClassHintDouble
	case value.KindString, value.KindBlob:
		return wire.ClassHintStringOrBlob
	default:
		return wire.ClassHintOther
	}
}

func encodeValue(buf *buffer.Buffer, v value.Value) {
	switch v.Kind() {
	case value.KindLogical:
		buf.AppendByte(byte(wire.NewLogicalTag(v.Bool())))
	case value.KindInteger:
		encodeInteger(buf, v.Int())
	case value.KindDouble:
		encodeDoubleScalar(buf, v.Float())
	case value.KindString:
		encodeStringOrBlob(buf, false, []byte(v.Str()))
	case value.KindBlob:
		encodeStringOrBlob(buf, true, v.Bytes())
	case value.KindArray:
		encodeContainer(buf, wire.ContainerArray, v.Elements())
	case value.KindMap:
		encodeMap(buf, v.Pairs())
	case value.KindSet:
		encodeContainer(buf, wire.ContainerSet, v.SetElements())
	}
}

// minSignedBytes returns the fewest bytes (1..8) whose two's-complement
// range includes i.
func minSignedBytes(i int64) int {
	for k := 1; k < 8; k++ {
		bits := uint(8 * k)
		lo := -(int64(1) << (bits - 1))
		hi := int64(1)<<(bits-1) - 1
		if i >= lo && i <= hi {
			return k
		}
	}

	return 8
}

func encodeInteger(buf *buffer.Buffer, i int64) {
	if i >= -16 && i <= 15 {
		buf.AppendByte(byte(wire.NewIntegerShortTag(int8(i))))
		return
	}

	n := minSignedBytes(i)
	buf.AppendByte(byte(wire.NewIntegerLongTag(n)))

	b := make([]byte, n)
	u := uint64(i)
	for idx := n - 1; idx >= 0; idx-- {
		b[idx] = byte(u)
		u >>= 8
	}
	buf.Append(b)
}

func encodeDoubleScalar(buf *buffer.Buffer, d float64) {
	buf.AppendByte(byte(wire.NewDoubleShortTag(1)))
	buf.Append(wireEngine.AppendUint64(nil, math.Float64bits(d)))
}

// minUnsignedBytes returns the fewest bytes (1..8) that hold n.
func minUnsignedBytes(n uint64) int {
	for k := 1; k < 8; k++ {
		if n <= uint64(1)<<(8*k)-1 {
			return k
		}
	}

	return 8
}

func encodeStringOrBlob(buf *buffer.Buffer, isBlob bool, data []byte) {
	n := len(data)
	if n <= 15 {
		buf.AppendByte(byte(wire.NewStringOrBlobShortTag(isBlob, n)))
	} else {
		k := minUnsignedBytes(uint64(n))
		buf.AppendByte(byte(wire.NewStringOrBlobLongTag(isBlob, k)))

		b := make([]byte, k)
		u := uint64(n)
		for idx := k - 1; idx >= 0; idx-- {
			b[idx] = byte(u)
			u >>= 8
		}
		buf.Append(b)
	}

	buf.Append(data)
}

func encodeContainer(buf *buffer.Buffer, ct wire.ContainerType, elems []value.Value) {
	empty := len(elems) == 0

	buf.AppendByte(byte(wire.NewContainerTag(false, ct, empty)))
	if !empty {
		encodeInteger(buf, int64(len(elems)))
		for _, e := range elems {
			encodeValue(buf, e)
		}
	}
	buf.AppendByte(byte(wire.NewContainerTag(true, ct, empty)))
}

func encodeMap(buf *buffer.Buffer, pairs []value.Pair) {
	empty := len(pairs) == 0

	buf.AppendByte(byte(wire.NewContainerTag(false, wire.ContainerMap, empty)))
	if !empty {
		encodeInteger(buf, int64(len(pairs)))
		for _, p := range pairs {
			encodeValue(buf, p.Key)
			encodeValue(buf, p.Val)
		}
	}
	buf.AppendByte(byte(wire.NewContainerTag(true, wire.ContainerMap, empty)))
}

// Package endian provides the byte-order engine nimo's wire codec uses to
// append and read multi-byte numeric fields.
//
// The wire format mandates big-endian byte order for every multi-byte
// field (Double's binary64 bytes, Integer's LongValue bytes, and every
// length/count field) with no per-message negotiation, so this package
// exposes a single engine rather than a family of interchangeable ones:
//
//	import "github.com/nimo-io/nimo/endian"
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint64(buf, value)
//
// # Performance
//
// EndianEngine embeds AppendByteOrder alongside ByteOrder so callers can
// append directly into a growing buffer without an intermediate
// fixed-size scratch slice:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)  // extra allocation
//
// # Thread Safety
//
// EndianEngine's one implementation (binary.BigEndian) is stateless and
// safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian from the standard
// library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the engine nimo's wire format mandates for
// every multi-byte field.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

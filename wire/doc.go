// Package wire defines nimo's tag vocabulary: the single-byte tags that
// classify every piece of data on the wire, and the bit layout within each
// tag byte.
//
// # Bit layout
//
// Every tag's top 2 bits (bits 7-6) are the high-class field:
//
//	00  Integer
//	01  Double
//	10  StringOrBlob
//	11  Other
//
// Integer (class Integer), bit 5 selects the subtag:
//
//	0  ShortValue — bits 4-0 hold a 5-bit two's-complement embedded value, range [-16, 15]
//	1  LongValue  — bits 2-0 hold (byte count - 1), 1..8 bytes follow, big-endian two's complement
//
// Double (class Double), bit 5 selects the subtag:
//
//	0  ShortCount — bits 4-0 hold the count (0..31) of consecutive binary64 values that follow
//	1  LongCount  — bits 2-0 hold (length-field byte count - 1); that many big-endian bytes follow, giving the count
//
// A Double group's count is never 0; a ShortCount or LongCount tag with
// count 0 is a structural fault.
//
// StringOrBlob (class StringOrBlob): bit 5 distinguishes Blob (1) from
// String (0); bit 4 selects ShortLength (0, 4-bit inline length in bits
// 3-0) or LongLength (1, bits 2-0 hold a length-field byte count - 1,
// followed by that many big-endian bytes giving the length). Data bytes
// immediately follow the length.
//
// Other (class Other): bits 5-4 select the subtype:
//
//	00  Logical   — bit 3 is the truth value
//	01  Container — bit 3: 0=start 1=end; bits 2-1: container type (00=Array 01=Map 10=Set); bit 0: 1=empty 0=non-empty
//	10  Message   — bit 3: 0=start 1=end; bit 2: 1=non-empty 0=empty; bits 1-0: expected top-level class hint (only meaningful when non-empty)
//	11  reserved, never produced by an encoder
//
// Every non-terminal tag carries enough information for a decoder to
// locate its matching end tag or following length without lookahead beyond
// the declared count, satisfying spec §4.4's lookahead-free invariant.
package wire

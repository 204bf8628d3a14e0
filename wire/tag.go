package wire

import "fmt"

// Tag is a single self-describing byte on the wire. Every value, frame
// marker, and container delimiter begins with one.
type Tag byte

// HighClass is the 2-bit field in a Tag's top bits (7-6).
type HighClass uint8

const (
	HighClassInteger HighClass = iota
	HighClassDouble
	HighClassStringOrBlob
	HighClassOther
)

func (c HighClass) String() string {
	switch c {
	case HighClassInteger:
		return "Integer"
	case HighClassDouble:
		return "Double"
	case HighClassStringOrBlob:
		return "StringOrBlob"
	case HighClassOther:
		return "Other"
	default:
		return fmt.Sprintf("HighClass(%d)", uint8(c))
	}
}

const (
	classMask  = 0xC0
	classShift = 6
)

// HighClass reports t's top-level class.
func (t Tag) HighClass() HighClass {
	return HighClass((t & classMask) >> classShift)
}

func packClass(c HighClass) Tag {
	return Tag(uint8(c) << classShift)
}

// ---- Integer --------------------------------------------------------------

const (
	intSubtagMask  = 0x20
	intShortSubtag = 0x00
	intLongSubtag  = 0x20

	intShortValueMask = 0x1F
	intShortValueBits = 5
	intShortValueMin  = -16
	intShortValueMax  = 15

	intLongCountMask = 0x07
)

// IsIntegerLong reports whether t is an Integer LongValue tag, as opposed
// to ShortValue. t must have HighClass() == HighClassInteger.
func (t Tag) IsIntegerLong() bool {
	return t&intSubtagMask == intLongSubtag
}

// NewIntegerShortTag builds a ShortValue tag embedding v directly. v must
// be within [-16, 15].
func NewIntegerShortTag(v int8) Tag {
	return packClass(HighClassInteger) | intShortSubtag | Tag(uint8(v)&intShortValueMask)
}

// IntegerShortValue extracts the embedded 5-bit two's-complement value
// from a ShortValue tag.
func (t Tag) IntegerShortValue() int8 {
	bits := uint8(t & intShortValueMask)
	if bits&(1<<(intShortValueBits-1)) != 0 {
		bits |= ^uint8(intShortValueMask)
	}

	return int8(bits)
}

// NewIntegerLongTag builds a LongValue tag for a value that takes
// byteCount bytes (1..8) on the wire.
func NewIntegerLongTag(byteCount int) Tag {
	return packClass(HighClassInteger) | intLongSubtag | Tag(byteCount-1)&intLongCountMask
}

// IntegerLongByteCount reports the number of big-endian two's-complement
// bytes that follow a LongValue tag.
func (t Tag) IntegerLongByteCount() int {
	return int(t&intLongCountMask) + 1
}

// ---- Double ----------------------------------------------------------------

const (
	dblSubtagMask  = 0x20
	dblShortSubtag = 0x00
	dblLongSubtag  = 0x20

	dblShortCountMask = 0x1F
	dblLongLenMask    = 0x07
)

// IsDoubleLong reports whether t is a Double LongCount tag, as opposed to
// ShortCount. t must have HighClass() == HighClassDouble.
func (t Tag) IsDoubleLong() bool {
	return t&dblSubtagMask == dblLongSubtag
}

// NewDoubleShortTag builds a ShortCount tag for a run of count (1..31)
// consecutive binary64 values.
func NewDoubleShortTag(count int) Tag {
	return packClass(HighClassDouble) | dblShortSubtag | Tag(count)&dblShortCountMask
}

// DoubleShortCount extracts the embedded run length from a ShortCount tag.
func (t Tag) DoubleShortCount() int {
	return int(t & dblShortCountMask)
}

// NewDoubleLongTag builds a LongCount tag whose count field occupies
// lenBytes (1..8) bytes on the wire.
func NewDoubleLongTag(lenBytes int) Tag {
	return packClass(HighClassDouble) | dblLongSubtag | Tag(lenBytes-1)&dblLongLenMask
}

// DoubleLongLenBytes reports the byte width of the count field that
// follows a LongCount tag.
func (t Tag) DoubleLongLenBytes() int {
	return int(t&dblLongLenMask) + 1
}

// ---- StringOrBlob -----------------------------------------------------------

const (
	sobBlobMask   = 0x20
	sobLengthMode = 0x10

	sobShortLenMask = 0x0F
	sobLongLenMask  = 0x07
)

// IsBlob reports whether t describes a Blob rather than a String. t must
// have HighClass() == HighClassStringOrBlob.
func (t Tag) IsBlob() bool {
	return t&sobBlobMask != 0
}

// IsStringOrBlobLong reports whether t carries a LongLength field rather
// than a 4-bit inline ShortLength.
func (t Tag) IsStringOrBlobLong() bool {
	return t&sobLengthMode != 0
}

// NewStringOrBlobShortTag builds a ShortLength tag for isBlob data of the
// given length, which must be within [0, 15].
func NewStringOrBlobShortTag(isBlob bool, length int) Tag {
	t := packClass(HighClassStringOrBlob)
	if isBlob {
		t |= sobBlobMask
	}

	return t | Tag(length)&sobShortLenMask
}

// StringOrBlobShortLength extracts the inline length from a ShortLength tag.
func (t Tag) StringOrBlobShortLength() int {
	return int(t & sobShortLenMask)
}

// NewStringOrBlobLongTag builds a LongLength tag whose length field
// occupies lenBytes (1..8) bytes on the wire.
func NewStringOrBlobLongTag(isBlob bool, lenBytes int) Tag {
	t := packClass(HighClassStringOrBlob) | sobLengthMode
	if isBlob {
		t |= sobBlobMask
	}

	return t | Tag(lenBytes-1)&sobLongLenMask
}

// StringOrBlobLongLenBytes reports the byte width of the length field
// that follows a LongLength tag.
func (t Tag) StringOrBlobLongLenBytes() int {
	return int(t&sobLongLenMask) + 1
}

// ---- Other: subtype selector -------------------------------------------------

type otherSubtype uint8

const (
	otherSubtypeMask    = 0x30
	otherSubtypeShift   = 4
	otherLogical        otherSubtype = 0
	otherContainer      otherSubtype = 1
	otherMessage        otherSubtype = 2
	otherReserved       otherSubtype = 3
)

func (t Tag) otherSubtype() otherSubtype {
	return otherSubtype((t & otherSubtypeMask) >> otherSubtypeShift)
}

// IsLogical reports whether t is an Other/Logical tag. t must have
// HighClass() == HighClassOther.
func (t Tag) IsLogical() bool {
	return t.otherSubtype() == otherLogical
}

// IsContainerTag reports whether t is an Other/Container tag.
func (t Tag) IsContainerTag() bool {
	return t.otherSubtype() == otherContainer
}

// IsMessageTag reports whether t is an Other/Message tag.
func (t Tag) IsMessageTag() bool {
	return t.otherSubtype() == otherMessage
}

// IsReserved reports whether t is an Other tag using the reserved
// subtype (bits 5-4 = 11), which no encoder ever produces.
func (t Tag) IsReserved() bool {
	return t.otherSubtype() == otherReserved
}

// ---- Other: Logical ----------------------------------------------------------

const logicalValueMask = 0x08

// NewLogicalTag builds the Other/Logical tag for v.
func NewLogicalTag(v bool) Tag {
	t := packClass(HighClassOther) | Tag(otherLogical)<<otherSubtypeShift
	if v {
		t |= logicalValueMask
	}

	return t
}

// LogicalValue extracts the truth value from an Other/Logical tag.
func (t Tag) LogicalValue() bool {
	return t&logicalValueMask != 0
}

// ---- Other: Container --------------------------------------------------------

// ContainerType distinguishes the three container kinds that share the
// Container tag's type field.
type ContainerType uint8

const (
	ContainerArray ContainerType = iota
	ContainerMap
	ContainerSet
)

func (c ContainerType) String() string {
	switch c {
	case ContainerArray:
		return "Array"
	case ContainerMap:
		return "Map"
	case ContainerSet:
		return "Set"
	default:
		return fmt.Sprintf("ContainerType(%d)", uint8(c))
	}
}

const (
	containerEndMask   = 0x08
	containerTypeMask  = 0x06
	containerTypeShift = 1
	containerEmptyMask = 0x01
)

// NewContainerTag builds an Other/Container tag. end distinguishes an
// opening tag from its matching closing tag; empty marks a container with
// zero elements/pairs.
func NewContainerTag(end bool, ct ContainerType, empty bool) Tag {
	t := packClass(HighClassOther) | Tag(otherContainer)<<otherSubtypeShift
	if end {
		t |= containerEndMask
	}
	t |= Tag(ct) << containerTypeShift & containerTypeMask
	if empty {
		t |= containerEmptyMask
	}

	return t
}

// ContainerEnd reports whether t closes a container, as opposed to opening one.
func (t Tag) ContainerEnd() bool {
	return t&containerEndMask != 0
}

// ContainerType reports which of Array, Map, or Set t describes.
func (t Tag) ContainerType() ContainerType {
	return ContainerType((t & containerTypeMask) >> containerTypeShift)
}

// ContainerEmpty reports whether t marks a container with no
// elements/pairs. An end tag repeats its start tag's bit, and the decoder
// checks that the two agree.
func (t Tag) ContainerEmpty() bool {
	return t&containerEmptyMask != 0
}

// ---- Other: Message -----------------------------------------------------------

// ClassHint names the four top-level value classes a Message start tag
// may advertise, so a decoder can validate its contained value's shape
// without backtracking.
type ClassHint uint8

const (
	ClassHintInteger ClassHint = iota
	ClassHintDouble
	ClassHintStringOrBlob
	ClassHintOther
)

func (h ClassHint) String() string {
	switch h {
	case ClassHintInteger:
		return "Integer"
	case ClassHintDouble:
		return "Double"
	case ClassHintStringOrBlob:
		return "StringOrBlob"
	case ClassHintOther:
		return "Other"
	default:
		return fmt.Sprintf("ClassHint(%d)", uint8(h))
	}
}

const (
	messageEndMask      = 0x08
	messageNonEmptyMask = 0x04
	messageHintMask     = 0x03
)

// NewMessageTag builds an Other/Message tag: the frame envelope around a
// single top-level Value. end distinguishes the opening tag from the
// closing one; nonEmpty marks whether a Value follows at all (an empty
// Message carries none); hint is only meaningful when nonEmpty.
func NewMessageTag(end bool, nonEmpty bool, hint ClassHint) Tag {
	t := packClass(HighClassOther) | Tag(otherMessage)<<otherSubtypeShift
	if end {
		t |= messageEndMask
	}
	if nonEmpty {
		t |= messageNonEmptyMask
	}
	t |= Tag(hint) & messageHintMask

	return t
}

// MessageEnd reports whether t closes a Message, as opposed to opening one.
func (t Tag) MessageEnd() bool {
	return t&messageEndMask != 0
}

// MessageNonEmpty reports whether t's Message carries a Value.
func (t Tag) MessageNonEmpty() bool {
	return t&messageNonEmptyMask != 0
}

// MessageHint reports the expected top-level value class advertised by a
// non-empty Message's start tag.
func (t Tag) MessageHint() ClassHint {
	return ClassHint(t & messageHintMask)
}

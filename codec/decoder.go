package codec

import (
	"errors"
	"math"

	"github.com/nimo-io/nimo/errs"
	"github.com/nimo-io/nimo/value"
	"github.com/nimo-io/nimo/wire"
)

// flawError carries a KindFlaw Value through the internal error-return
// chain so every recursive decode step can propagate a structural fault
// with a single "return nil, err" instead of threading a second result.
type flawError struct{ v value.Value }

func (e *flawError) Error() string { return e.v.FlawDescription() }

func flaw(desc string, offset int) error {
	return &flawError{v: value.NewFlaw(desc, offset)}
}

func asFlaw(err error) (*flawError, bool) {
	var fe *flawError
	if errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}

func flawResult(desc string, offset int) (*value.Value, error) {
	v := value.NewFlaw(desc, offset)
	return &v, nil
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) readByte() (byte, int, error) {
	if d.pos >= len(d.data) {
		return 0, d.pos, errs.ErrIncomplete
	}

	off := d.pos
	b := d.data[d.pos]
	d.pos++

	return b, off, nil
}

func (d *decoder) readTag() (wire.Tag, int, error) {
	b, off, err := d.readByte()
	return wire.Tag(b), off, err
}

// peekTag reads the tag at the cursor without advancing it, so its
// HighClass can be checked before committing to a full recursive decode.
func (d *decoder) peekTag() (wire.Tag, int, error) {
	tag, off, err := d.readTag()
	if err != nil {
		return 0, off, err
	}

	d.pos--

	return tag, off, nil
}

func (d *decoder) readBytes(n int) ([]byte, int, error) {
	if d.pos+n > len(d.data) {
		return nil, d.pos, errs.ErrIncomplete
	}

	off := d.pos
	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, off, nil
}

func decodeUnsignedBE(b []byte) uint64 {
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}

	return u
}

func decodeSignedBE(b []byte) int64 {
	u := decodeUnsignedBE(b)
	shift := uint(64 - 8*len(b))

	return int64(u<<shift) >> shift
}

// Decode consumes exactly one frame from data. Three outcomes are
// possible: (v, nil) with v.Kind() != KindFlaw on success (v is nil for
// an intentionally empty Message); (v, nil) with v.Kind() == KindFlaw on
// a structural fault; (nil, errs.ErrIncomplete) when data doesn't yet
// hold a complete frame. No other error is returned.
func Decode(data []byte) (*value.Value, error) {
	d := &decoder{data: data}

	startOffset := d.pos
	startTag, _, err := d.readTag()
	if err != nil {
		return nil, err
	}
	if !startTag.IsMessageTag() || startTag.MessageEnd() {
		return flawResult(errs.MessageBadStartTag(startOffset), startOffset)
	}

	if !startTag.MessageNonEmpty() {
		endOffset := d.pos
		endTag, _, err := d.readTag()
		if err != nil {
			return nil, err
		}
		if !endTag.IsMessageTag() || !endTag.MessageEnd() || endTag.MessageNonEmpty() || endTag.MessageHint() != startTag.MessageHint() {
			return flawResult(errs.EmptyMessageBadEndTag(endOffset), endOffset)
		}
		if d.pos != len(d.data) {
			return flawResult(errs.UnexpectedCharacter(d.pos), d.pos)
		}

		return nil, nil
	}

	wantHint := startTag.MessageHint()

	valueOffset := d.pos
	leadTag, _, err := d.peekTag()
	if err != nil {
		return nil, err
	}
	if wire.ClassHint(leadTag.HighClass()) != wantHint {
		return flawResult(errs.MessageMismatchedInitialTag(valueOffset), valueOffset)
	}

	vs, err := d.readValues(1)
	if err != nil {
		if fe, ok := asFlaw(err); ok {
			return &fe.v, nil
		}

		return nil, err
	}
	v := vs[0]

	endOffset := d.pos
	endTag, _, err := d.readTag()
	if err != nil {
		return nil, err
	}
	if !endTag.IsMessageTag() || !endTag.MessageEnd() || !endTag.MessageNonEmpty() || endTag.MessageHint() != classHintOf(v.Kind()) {
		return flawResult(errs.MessageMismatchedEndTag(endOffset), endOffset)
	}

	if d.pos != len(d.data) {
		return flawResult(errs.UnexpectedCharacter(d.pos), d.pos)
	}

	return &v, nil
}

// readValues reads values from the cursor until exactly want have been
// gathered, expanding a Double group's count against that total per
// spec's container accounting rule.
func (d *decoder) readValues(want int) ([]value.Value, error) {
	out := make([]value.Value, 0, want)
	for len(out) < want {
		offset := d.pos

		vs, err := d.readOne()
		if err != nil {
			return nil, err
		}
		if len(out)+len(vs) > want {
			return nil, flaw(errs.UnexpectedCharacter(offset), offset)
		}

		out = append(out, vs...)
	}

	return out, nil
}

// readOne decodes the single tag at the cursor into one or more values:
// every high-class produces exactly one except Double, whose group may
// produce several.
func (d *decoder) readOne() ([]value.Value, error) {
	tagOffset := d.pos

	tag, _, err := d.readTag()
	if err != nil {
		return nil, err
	}

	switch tag.HighClass() {
	case wire.HighClassInteger:
		v, err := d.decodeInteger(tag)
		if err != nil {
			return nil, err
		}

		return []value.Value{v}, nil

	case wire.HighClassDouble:
		return d.decodeDoubleGroup(tag, tagOffset)

	case wire.HighClassStringOrBlob:
		v, err := d.decodeStringOrBlob(tag)
		if err != nil {
			return nil, err
		}

		return []value.Value{v}, nil

	case wire.HighClassOther:
		switch {
		case tag.IsLogical():
			return []value.Value{value.Logical(tag.LogicalValue())}, nil

		case tag.IsContainerTag() && !tag.ContainerEnd():
			v, err := d.decodeContainer(tag, tagOffset)
			if err != nil {
				return nil, err
			}

			return []value.Value{v}, nil

		case tag.IsReserved():
			return nil, flaw(errs.NullValueRead(tagOffset), tagOffset)

		default:
			return nil, flaw(errs.UnexpectedCharacter(tagOffset), tagOffset)
		}

	default:
		return nil, flaw(errs.UnexpectedCharacter(tagOffset), tagOffset)
	}
}

func (d *decoder) decodeInteger(tag wire.Tag) (value.Value, error) {
	if !tag.IsIntegerLong() {
		return value.Integer(int64(tag.IntegerShortValue())), nil
	}

	n := tag.IntegerLongByteCount()
	b, _, err := d.readBytes(n)
	if err != nil {
		return value.Value{}, err
	}

	return value.Integer(decodeSignedBE(b)), nil
}

func (d *decoder) decodeDoubleGroup(tag wire.Tag, tagOffset int) ([]value.Value, error) {
	var m int
	if !tag.IsDoubleLong() {
		m = tag.DoubleShortCount()
	} else {
		k := tag.DoubleLongLenBytes()

		lb, _, err := d.readBytes(k)
		if err != nil {
			return nil, err
		}

		m = int(decodeUnsignedBE(lb))
	}

	if m == 0 {
		return nil, flaw(errs.BadDoubleCount(tagOffset), tagOffset)
	}

	out := make([]value.Value, m)
	for i := 0; i < m; i++ {
		b, _, err := d.readBytes(8)
		if err != nil {
			return nil, err
		}

		out[i] = value.Double(math.Float64frombits(wireEngine.Uint64(b)))
	}

	return out, nil
}

func (d *decoder) decodeStringOrBlob(tag wire.Tag) (value.Value, error) {
	var length int
	if !tag.IsStringOrBlobLong() {
		length = tag.StringOrBlobShortLength()
	} else {
		k := tag.StringOrBlobLongLenBytes()

		lb, _, err := d.readBytes(k)
		if err != nil {
			return value.Value{}, err
		}

		length = int(decodeUnsignedBE(lb))
	}

	data, _, err := d.readBytes(length)
	if err != nil {
		return value.Value{}, err
	}

	if tag.IsBlob() {
		return value.Blob(data), nil
	}

	return value.String(string(data)), nil
}

func emptyContainer(ct wire.ContainerType) value.Value {
	switch ct {
	case wire.ContainerSet:
		v, _ := value.NewSet()
		return v
	case wire.ContainerMap:
		v, _ := value.NewMap(nil)
		return v
	default:
		return value.NewArray()
	}
}

func (d *decoder) decodeContainer(tag wire.Tag, startOffset int) (value.Value, error) {
	ct := tag.ContainerType()
	name := ct.String()

	if tag.ContainerEmpty() {
		endOffset := d.pos

		endTag, _, err := d.readTag()
		if err != nil {
			return value.Value{}, err
		}
		if !endTag.IsContainerTag() || !endTag.ContainerEnd() || endTag.ContainerType() != ct || !endTag.ContainerEmpty() {
			return value.Value{}, flaw(errs.EmptyContainerBadEndTag(name, endOffset), endOffset)
		}

		return emptyContainer(ct), nil
	}

	nOffset := d.pos

	nTag, _, err := d.readTag()
	if err != nil {
		return value.Value{}, err
	}
	if nTag.HighClass() != wire.HighClassInteger {
		return value.Value{}, flaw(errs.UnexpectedCharacter(nOffset), nOffset)
	}

	nVal, err := d.decodeInteger(nTag)
	if err != nil {
		return value.Value{}, err
	}

	n := int(nVal.Int())
	if n <= 0 {
		return value.Value{}, flaw(errs.BadContainerCount(name, nOffset), nOffset)
	}

	want := n
	if ct == wire.ContainerMap {
		want = 2 * n
	}

	children, err := d.readValues(want)
	if err != nil {
		return value.Value{}, err
	}

	endOffset := d.pos

	endTag, _, err := d.readTag()
	if err != nil {
		return value.Value{}, err
	}
	if !endTag.IsContainerTag() || !endTag.ContainerEnd() || endTag.ContainerType() != ct || endTag.ContainerEmpty() {
		return value.Value{}, flaw(errs.NonEmptyContainerBadEndTag(name, endOffset), endOffset)
	}

	switch ct {
	case wire.ContainerArray:
		return value.NewArray(children...), nil

	case wire.ContainerSet:
		v, err := value.NewSet(children...)
		if err != nil {
			return value.Value{}, flaw(errs.UnexpectedCharacter(startOffset), startOffset)
		}

		return v, nil

	default: // Map
		pairs := make([]value.Pair, n)
		for i := 0; i < n; i++ {
			pairs[i] = value.Pair{Key: children[2*i], Val: children[2*i+1]}
		}

		v, err := value.NewMap(pairs)
		if err != nil {
			return value.Value{}, flaw(errs.UnexpectedCharacter(startOffset), startOffset)
		}

		return v, nil
	}
}

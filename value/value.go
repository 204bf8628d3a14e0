package value

// Kind identifies the variant carried by a Value.
type Kind uint8

const (
	// KindLogical carries a bool. Default: false.
	KindLogical Kind = iota
	// KindInteger carries a signed 64-bit two's-complement integer. Default: 0.
	KindInteger
	// KindDouble carries an IEEE-754 binary64. Default: 0.0.
	KindDouble
	// KindString carries a byte sequence with no enforced internal encoding. Default: empty.
	KindString
	// KindBlob carries a byte sequence, distinguished from String on the wire. Default: empty.
	KindBlob
	// KindArray carries an ordered sequence of Value, duplicates allowed. Default: empty.
	KindArray
	// KindMap carries key/value pairs ordered by key Compare order. Default: empty.
	KindMap
	// KindSet carries an ordered set of Value, ordered by Compare order. Default: empty.
	KindSet
	// KindFlaw carries a decode-error descriptor. Never produced by an encoder.
	KindFlaw
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case KindLogical:
		return "Logical"
	case KindInteger:
		return "Integer"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindBlob:
		return "Blob"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	case KindFlaw:
		return "Flaw"
	default:
		return "Unknown"
	}
}

// IsScalar reports whether values of this Kind are valid Map keys / Set elements.
func (k Kind) IsScalar() bool {
	switch k {
	case KindLogical, KindInteger, KindDouble, KindString, KindBlob:
		return true
	default:
		return false
	}
}

// IsContainer reports whether values of this Kind hold nested Values.
func (k Kind) IsContainer() bool {
	switch k {
	case KindArray, KindMap, KindSet:
		return true
	default:
		return false
	}
}

// Pair is a single Map entry. Key must be a scalar Value.
type Pair struct {
	Key Value
	Val Value
}

// Value is nimo's single tagged-sum value type. The zero Value is a
// KindLogical false, matching Default(KindLogical).
type Value struct {
	kind Kind

	b bool
	i int64
	d float64

	// raw backs both KindString and KindBlob; which one is determined by kind.
	raw []byte

	arr   []Value
	pairs []Pair
	set   []Value

	flawDesc   string
	flawOffset int
}

// Kind reports the variant carried by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Default returns the zero value for the given Kind: false, 0, 0.0, an
// empty String/Blob, or an empty Array/Map/Set. Default(KindFlaw) returns
// a Flaw with an empty description and offset 0.
func Default(k Kind) Value {
	return Value{kind: k}
}

// Logical constructs a KindLogical Value.
func Logical(b bool) Value {
	return Value{kind: KindLogical, b: b}
}

// Integer constructs a KindInteger Value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Double constructs a KindDouble Value.
func Double(d float64) Value {
	return Value{kind: KindDouble, d: d}
}

// String constructs a KindString Value. The string's bytes are copied.
func String(s string) Value {
	return Value{kind: KindString, raw: []byte(s)}
}

// Blob constructs a KindBlob Value. b is copied; the caller's slice is not retained.
func Blob(b []byte) Value {
	return Value{kind: KindBlob, raw: append([]byte(nil), b...)}
}

// NewArray constructs a KindArray Value from elems, in order, duplicates
// allowed. Each element is deep-copied so the returned Value does not
// alias the caller's slice or any of its elements.
func NewArray(elems ...Value) Value {
	out := make([]Value, len(elems))
	for i, e := range elems {
		out[i] = Copy(e)
	}

	return Value{kind: KindArray, arr: out}
}

// NewFlaw constructs a KindFlaw Value carrying a human-readable reason and
// the byte offset at which the fault was detected. NewFlaw is only ever
// called by a decoder; encoders never produce a Flaw.
func NewFlaw(description string, offset int) Value {
	return Value{kind: KindFlaw, flawDesc: description, flawOffset: offset}
}

// Bool returns the carried bool. Valid only when Kind() == KindLogical.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the carried int64. Valid only when Kind() == KindInteger.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the carried float64. Valid only when Kind() == KindDouble.
func (v Value) Float() float64 {
	return v.d
}

// Bytes returns the carried bytes. Valid only when Kind() is KindString or
// KindBlob. The caller must not mutate the returned slice.
func (v Value) Bytes() []byte {
	return v.raw
}

// Str returns the carried String bytes converted to a string. Valid only
// when Kind() == KindString.
func (v Value) Str() string {
	return string(v.raw)
}

// Elements returns the Array's elements in order. Valid only when Kind() == KindArray.
// The caller must not mutate the returned slice.
func (v Value) Elements() []Value {
	return v.arr
}

// Pairs returns the Map's pairs in ascending key order. Valid only when Kind() == KindMap.
// The caller must not mutate the returned slice.
func (v Value) Pairs() []Pair {
	return v.pairs
}

// SetElements returns the Set's elements in ascending order. Valid only when Kind() == KindSet.
// The caller must not mutate the returned slice.
func (v Value) SetElements() []Value {
	return v.set
}

// Len returns the element count of an Array or Set, or the pair count of a
// Map. It returns 0 for scalar variants.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindMap:
		return len(v.pairs)
	case KindSet:
		return len(v.set)
	default:
		return 0
	}
}

// FlawDescription returns the Flaw's human-readable reason. Valid only when Kind() == KindFlaw.
func (v Value) FlawDescription() string {
	return v.flawDesc
}

// FlawOffset returns the byte offset at which the Flaw was detected. Valid only when Kind() == KindFlaw.
func (v Value) FlawOffset() int {
	return v.flawOffset
}

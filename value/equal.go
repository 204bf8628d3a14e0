package value

import "bytes"

// Equal reports whether a and b carry the same variant and, per variant,
// the same content: scalars compare by carrier, Array by length and
// positional equality, Map and Set by normalized (sorted) content — which,
// since both are always kept in Compare order, reduces to positional
// equality of their already-sorted pairs/elements.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindLogical:
		return a.b == b.b
	case KindInteger:
		return a.i == b.i
	case KindDouble:
		return a.d == b.d
	case KindString, KindBlob:
		return bytes.Equal(a.raw, b.raw)
	case KindArray:
		return equalArrays(a.arr, b.arr)
	case KindMap:
		return equalMaps(a.pairs, b.pairs)
	case KindSet:
		return equalSets(a.set, b.set)
	case KindFlaw:
		return a.flawDesc == b.flawDesc && a.flawOffset == b.flawOffset
	default:
		return false
	}
}

func equalArrays(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalMaps(a, b []Pair) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i].Key, b[i].Key) || !Equal(a[i].Val, b[i].Val) {
			return false
		}
	}

	return true
}

func equalSets(a, b []Value) bool {
	return equalArrays(a, b)
}

// Equal reports whether v and other carry the same variant and content.
// It lets go-cmp's cmp.Diff/cmp.Equal compare Values directly despite
// their unexported fields, by satisfying cmp's "has an Equal method"
// convention.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

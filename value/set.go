package value

import "sort"

// ErrNonScalarElement is returned by NewSet when a proposed element is an
// Array, Map, Set, or Flaw. Only scalar variants may be a Set element.
var ErrNonScalarElement = ErrNonScalarKey

// NewSet constructs a KindSet Value from elems. Elements are deep-copied,
// validated as scalar, sorted into ascending wire order (same domain
// ordering as NewMap keys), and deduplicated: when two elements are Equal
// (same Kind and same content), only one is kept. Elements that merely
// compare Equivalent under Compare without being Equal — e.g. Integer(5) and
// Double(5.0), both in the numeric domain — are distinct elements and are
// both kept.
//
// NewSet returns ErrNonScalarElement if any element is an Array, Map, Set, or Flaw.
func NewSet(elems ...Value) (Value, error) {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		if !e.Kind().IsScalar() {
			return Value{}, ErrNonScalarElement
		}

		out = append(out, Copy(e))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return wireLess(out[i], out[j])
	})

	out = dedupElements(out)

	return Value{kind: KindSet, set: out}, nil
}

func dedupElements(sorted []Value) []Value {
	if len(sorted) == 0 {
		return sorted
	}

	out := sorted[:1]
	for _, e := range sorted[1:] {
		if Equal(out[len(out)-1], e) {
			continue
		}

		out = append(out, e)
	}

	return out
}

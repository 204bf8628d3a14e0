package value

import (
	"errors"
	"sort"

	"github.com/nimo-io/nimo/internal/option"
)

// ErrNonScalarKey is returned by NewMap when a proposed key is an Array,
// Map, Set, or Flaw. Only scalar variants (Logical, Integer, Double,
// String, Blob) may be a Map key.
var ErrNonScalarKey = errors.New("value: map key must be a scalar value")

// mapConfig holds NewMap's optional behavior, applied via MapOption.
type mapConfig struct {
	firstWriteWins bool
}

// MapOption configures NewMap's duplicate-key policy and similar
// construction-time behavior.
type MapOption = option.Option[*mapConfig]

// WithFirstWriteWins makes NewMap keep the first pair seen for a duplicate
// key instead of the default last-write-wins policy.
func WithFirstWriteWins() MapOption {
	return option.NoError(func(c *mapConfig) { c.firstWriteWins = true })
}

// NewMap constructs a KindMap Value from pairs. Keys are deep-copied,
// validated as scalar, and sorted into ascending wire order (spec §4.1
// invariant 8: Logical < numeric < String < Blob domains, natural order
// within a domain). When two pairs share an Equal key, the default policy
// keeps the later pair's value (last-write-wins); pass WithFirstWriteWins
// to keep the earlier one instead.
//
// NewMap returns ErrNonScalarKey if any key is an Array, Map, Set, or Flaw.
func NewMap(pairs []Pair, opts ...MapOption) (Value, error) {
	cfg := &mapConfig{}
	if err := option.Apply(cfg, opts...); err != nil {
		return Value{}, err
	}

	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if !p.Key.Kind().IsScalar() {
			return Value{}, ErrNonScalarKey
		}

		out = append(out, Pair{Key: Copy(p.Key), Val: Copy(p.Val)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return wireLess(out[i].Key, out[j].Key)
	})

	out = dedupPairs(out, cfg.firstWriteWins)

	return Value{kind: KindMap, pairs: out}, nil
}

// dedupPairs collapses runs of pairs with an Equal key (adjacent after
// sorting) into a single pair, per the first/last-write-wins policy.
func dedupPairs(sorted []Pair, firstWriteWins bool) []Pair {
	if len(sorted) == 0 {
		return sorted
	}

	out := sorted[:1]
	for _, p := range sorted[1:] {
		last := &out[len(out)-1]
		if Equal(last.Key, p.Key) {
			if !firstWriteWins {
				last.Val = p.Val
			}

			continue
		}

		out = append(out, p)
	}

	return out
}

// wireLess orders scalar values for deterministic Map-key / Set-element
// wire placement: first by comparison domain (Logical < numeric < String <
// Blob, per spec §4.1 invariant 8), then by Compare within a domain, and
// an Integer before a Double when the two compare Equivalent. That last
// tie-break keeps Equal values adjacent after sorting and makes the order
// independent of the input order.
// Compare is guaranteed valid once both operands share a domain, so the
// discarded validity flag is safe to ignore here.
func wireLess(a, b Value) bool {
	da, db := domainOf(a.kind), domainOf(b.kind)
	if da != db {
		return da < db
	}

	ord, _ := Compare(a, b)
	if ord == Equivalent && a.kind != b.kind {
		return a.kind < b.kind
	}

	return ord == Less
}

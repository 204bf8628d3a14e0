// Package value implements nimo's dynamically-typed value model.
//
// A Value is a tagged sum type with exactly nine variants: Logical, Integer,
// Double, String, Blob, Array, Map, Set, and the decode-only Flaw. The
// variant is carried intrinsically on the Value itself (via Kind) and is
// never inferred from context.
//
// # Ownership
//
// A Value owns its children exclusively. There is no sharing and no cycles:
// constructors (NewArray, NewMap, NewSet) and Copy all produce deep,
// independent trees. This mirrors the teacher's move away from reference
// counted children toward plain exclusive ownership.
//
// # Comparison
//
// Compare partitions scalar values into four domains — Logical, numeric
// (Integer and Double together), String, and Blob — and returns an Ordering
// plus a validity flag. Cross-domain comparisons, and any comparison
// involving a container variant, report valid=false; callers must check
// that flag before trusting the Ordering. Map keys and Set elements are
// kept sorted by Compare so the wire encoding of a container is
// deterministic.
package value

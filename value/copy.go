package value

// Copy returns a deep copy of v. Containers are rebuilt element by element
// so the result shares no backing storage with v.
func Copy(v Value) Value {
	out := Value{
		kind:       v.kind,
		b:          v.b,
		i:          v.i,
		d:          v.d,
		flawDesc:   v.flawDesc,
		flawOffset: v.flawOffset,
	}

	if v.raw != nil {
		out.raw = append([]byte(nil), v.raw...)
	}

	if v.arr != nil {
		out.arr = make([]Value, len(v.arr))
		for i, e := range v.arr {
			out.arr[i] = Copy(e)
		}
	}

	if v.pairs != nil {
		out.pairs = make([]Pair, len(v.pairs))
		for i, p := range v.pairs {
			out.pairs[i] = Pair{Key: Copy(p.Key), Val: Copy(p.Val)}
		}
	}

	if v.set != nil {
		out.set = make([]Value, len(v.set))
		for i, e := range v.set {
			out.set[i] = Copy(e)
		}
	}

	return out
}

package navstate

// Params maps parameter names to values. Values are strings or string
// slices; anything else is carried opaquely and compared by identity only.
// Treat a Params map as immutable once handed to a Node: replace it via
// SetParams or MergeParams instead of mutating it in place.
type Params map[string]any

// String returns the value for key as a string. The second return reports
// whether the key exists and holds a string.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Strings returns the value for key as a string slice. A scalar string value
// is returned as a one-element slice.
func (p Params) Strings(key string) ([]string, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []string:
		return t, true
	case string:
		return []string{t}, true
	}
	return nil, false
}

// Clone returns a shallow copy of p. Slice values are copied one level deep
// so the clone cannot alias the original's element storage.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if vs, ok := v.([]string); ok {
			cp := make([]string, len(vs))
			copy(cp, vs)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Merge returns a new Params holding p shallow-merged with partial. Keys in
// partial win. Neither input is mutated.
func (p Params) Merge(partial Params) Params {
	out := make(Params, len(p)+len(partial))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// Equal reports whether p and other hold the same keys with equal string or
// string-slice values. Values of other types compare by interface equality
// and must be comparable.
func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok {
			return false
		}
		if !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

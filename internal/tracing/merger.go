package tracing

// MergePolylines glues the polylines of src onto those of dst wherever
// they share an endpoint locator. Each dst polyline absorbs at most one
// source per call, the shared pixel appears once in the merged polyline,
// and sources that match nothing are appended unchanged.
func MergePolylines(dst, src []Polyline) []Polyline {
	if len(dst) == 0 {
		return src
	}
	if len(src) == 0 {
		return dst
	}

	srcEnd := len(src)
	for di, d := range dst {
		for si := 0; si < srcEnd; si++ {
			s := src[si]
			merged, ok := join(d, s)
			if !ok {
				continue
			}
			dst[di] = merged
			srcEnd--
			src[si] = src[srcEnd]
			break
		}
	}
	return append(dst, src[:srcEnd]...)
}

// join connects s to d when they share an endpoint. The four endpoint
// pairings are tried in a fixed order so that merging is deterministic.
func join(d, s Polyline) (Polyline, bool) {
	switch {
	case d[0] == s[0]:
		return prepend(reversed(s[1:]), d), true
	case d[0] == s[len(s)-1]:
		return prepend(s[:len(s)-1], d), true
	case d[len(d)-1] == s[0]:
		return append(d, s[1:]...), true
	case d[len(d)-1] == s[len(s)-1]:
		return append(d, reversed(s[:len(s)-1])...), true
	}
	return nil, false
}

func prepend(head, tail Polyline) Polyline {
	out := make(Polyline, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

func reversed(p Polyline) Polyline {
	out := make(Polyline, len(p))
	for i, px := range p {
		out[len(p)-1-i] = px
	}
	return out
}

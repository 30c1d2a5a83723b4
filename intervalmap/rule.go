package intervalmap

// Len returns the number of source values r covers.
func (r Rule[T]) Len() T {
	if r.SrcEnd <= r.SrcStart {
		return 0
	}
	return r.SrcEnd - r.SrcStart
}

// Contains reports whether x lies in r's source range.
func (r Rule[T]) Contains(x T) bool {
	return x >= r.SrcStart && x < r.SrcEnd
}

// Map shifts x by r. The second result is false when r does not cover x,
// in which case x is returned unchanged.
func (r Rule[T]) Map(x T) (T, bool) {
	if !r.Contains(x) {
		return x, false
	}
	return r.DstStart + (x - r.SrcStart), true
}

// Split cuts iv against r's source range.
//
// mapped holds at most one piece: the overlap shifted to the destination
// range with Level+1. rest holds up to two untouched pieces, the part of iv
// left of the source range and the part right of it, with Level unchanged.
// No returned piece is empty; a rule that only touches iv at a boundary
// returns iv whole in rest.
func (r Rule[T]) Split(iv Interval[T]) (mapped, rest []Interval[T]) {
	if iv.Empty() {
		return nil, nil
	}
	if iv.Start < r.SrcStart {
		rest = append(rest, Interval[T]{Start: iv.Start, End: min(iv.End, r.SrcStart), Level: iv.Level})
	}
	if r.SrcEnd < iv.End {
		rest = append(rest, Interval[T]{Start: max(iv.Start, r.SrcEnd), End: iv.End, Level: iv.Level})
	}
	if r.SrcStart < iv.End && iv.Start < r.SrcEnd {
		lo, hi := max(iv.Start, r.SrcStart), min(iv.End, r.SrcEnd)
		mapped = append(mapped, Interval[T]{
			Start: r.DstStart + (lo - r.SrcStart),
			End:   r.DstStart + (hi - r.SrcStart),
			Level: iv.Level + 1,
		})
	}
	return mapped, rest
}

// overlaps reports whether r and o share any source value.
func (r Rule[T]) overlaps(o Rule[T]) bool {
	return r.SrcStart < o.SrcEnd && o.SrcStart < r.SrcEnd
}

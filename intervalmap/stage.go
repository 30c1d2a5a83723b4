package intervalmap

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Validate reports ErrEmptyRule for a rule covering no values,
// ErrRuleOverflow for a rule whose shifted range wraps past the top of T,
// and ErrOverlappingRules for two rules sharing a source value.
func (s Stage[T]) Validate() error {
	for i, r := range s.Rules {
		if r.Len() == 0 {
			return fmt.Errorf("%w: %s rule %d", ErrEmptyRule, s.Name, i)
		}
		if r.DstStart+r.Len() < r.DstStart {
			return fmt.Errorf("%w: %s rule %d maps %d values to %d", ErrRuleOverflow, s.Name, i, r.Len(), r.DstStart)
		}
	}
	sorted := slices.Clone(s.Rules)
	slices.SortFunc(sorted, func(a, b Rule[T]) int {
		switch {
		case a.SrcStart < b.SrcStart:
			return -1
		case a.SrcStart > b.SrcStart:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].overlaps(sorted[i]) {
			return fmt.Errorf("%w: %s sources [%d,%d) and [%d,%d)", ErrOverlappingRules, s.Name,
				sorted[i-1].SrcStart, sorted[i-1].SrcEnd, sorted[i].SrcStart, sorted[i].SrcEnd)
		}
	}
	return nil
}

// Apply pushes ivs through the stage. Each rule in turn consumes the pool
// of pieces no earlier rule has claimed; what it maps is finished for this
// stage, and its remainders stay in the pool for the next rule. Pieces
// left in the pool after the last rule pass through unshifted with
// Level+1. Empty input intervals are dropped.
func (s Stage[T]) Apply(ivs []Interval[T]) []Interval[T] {
	var done []Interval[T]
	pool := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			pool = append(pool, iv)
		}
	}

	next := make([]Interval[T], 0, len(pool))
	for _, r := range s.Rules {
		next = next[:0]
		for _, iv := range pool {
			mapped, rest := r.Split(iv)
			done = append(done, mapped...)
			next = append(next, rest...)
		}
		pool, next = next, pool
	}

	for _, iv := range pool {
		iv.Level++
		done = append(done, iv)
	}
	return done
}

// MapValue maps a single value through the stage: the first rule covering
// x shifts it, otherwise x passes through.
func (s Stage[T]) MapValue(x T) T {
	for _, r := range s.Rules {
		if y, ok := r.Map(x); ok {
			return y
		}
	}
	return x
}

package intervalmap

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"
)

// Pipeline is an ordered chain of stages. It is immutable once built.
type Pipeline[T constraints.Integer] struct {
	stages []Stage[T]
	opts   Options
}

// NewPipeline copies stages into a Pipeline. Unless WithoutValidation is
// given, every stage must pass Stage.Validate.
func NewPipeline[T constraints.Integer](stages []Stage[T], opts ...Option) (*Pipeline[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline[T]{stages: make([]Stage[T], len(stages)), opts: o}
	for i, s := range stages {
		if o.Validate {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("stage %d: %w", i, err)
			}
		}
		p.stages[i] = Stage[T]{Name: s.Name, Rules: slices.Clone(s.Rules)}
	}
	return p, nil
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}

// Stage returns the i-th stage.
func (p *Pipeline[T]) Stage(i int) Stage[T] {
	return p.stages[i]
}

// Apply feeds ivs through every stage in order and returns the resulting
// pieces sorted by Start. Empty intervals are dropped before the first
// stage. The input slice is not modified.
func (p *Pipeline[T]) Apply(ivs []Interval[T]) []Interval[T] {
	cur := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			cur = append(cur, iv)
		}
	}
	for i, s := range p.stages {
		cur = s.Apply(cur)
		klog.V(4).Infof("intervalmap: stage %d %q -> %d pieces", i, s.Name, len(cur))
		p.opts.OnStage(i, s.Name, len(cur))
	}
	slices.SortFunc(cur, func(a, b Interval[T]) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
	return cur
}

// Min applies the pipeline and returns the smallest resulting value.
// Returns ErrNoIntervals when ivs holds no non-empty interval.
func (p *Pipeline[T]) Min(ivs []Interval[T]) (T, error) {
	out := p.Apply(ivs)
	if len(out) == 0 {
		var zero T
		return zero, ErrNoIntervals
	}
	return out[0].Start, nil
}

// MapValue maps a single value through every stage.
func (p *Pipeline[T]) MapValue(x T) T {
	for _, s := range p.stages {
		x = s.MapValue(x)
	}
	return x
}

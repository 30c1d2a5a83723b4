// Package intervalmap defines intervals, rules, options and sentinel errors.
package intervalmap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for interval mapping.
var (
	// ErrMalformedInput indicates text that does not follow the almanac grammar.
	ErrMalformedInput = errors.New("intervalmap: malformed input")
	// ErrEmptyRule indicates a rule with a zero-length source range.
	ErrEmptyRule = errors.New("intervalmap: rule covers no values")
	// ErrRuleOverflow indicates a rule whose destination range runs past the top of its type.
	ErrRuleOverflow = errors.New("intervalmap: rule destination overflows")
	// ErrOverlappingRules indicates two rules in one stage share source values.
	ErrOverlappingRules = errors.New("intervalmap: overlapping rules in stage")
	// ErrBrokenChain indicates consecutive maps do not connect.
	ErrBrokenChain = errors.New("intervalmap: maps do not form a chain")
	// ErrOddSeeds indicates seed ranges were requested from an odd number of values.
	ErrOddSeeds = errors.New("intervalmap: seed ranges need start/length pairs")
	// ErrNoIntervals indicates there is no non-empty interval to minimize.
	ErrNoIntervals = errors.New("intervalmap: no intervals")
)

// ParseError reports the line that failed to parse. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("intervalmap: line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("intervalmap: line %d %q: malformed", e.Line, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedInput and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.Err}
}

// Interval is the half-open range [Start, End). Level counts the stages
// the interval has passed through.
type Interval[T constraints.Integer] struct {
	Start, End T
	Level      int
}

// Span returns the level-0 interval [start, start+length).
func Span[T constraints.Integer](start, length T) Interval[T] {
	return Interval[T]{Start: start, End: start + length}
}

// Len returns the number of values in iv, or 0 when iv is empty.
func (iv Interval[T]) Len() T {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether iv holds no values.
func (iv Interval[T]) Empty() bool {
	return iv.End <= iv.Start
}

// String renders iv as "[start,end)@level".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%d,%d)@%d", iv.Start, iv.End, iv.Level)
}

// Rule maps x in [SrcStart, SrcEnd) to DstStart + (x - SrcStart).
type Rule[T constraints.Integer] struct {
	SrcStart, SrcEnd T
	DstStart         T
}

// NewRule builds a rule from the textual row order "dst src length".
func NewRule[T constraints.Integer](dst, src, length T) Rule[T] {
	return Rule[T]{SrcStart: src, SrcEnd: src + length, DstStart: dst}
}

// Stage is one mapping table. Name is informational, e.g. "seed-to-soil".
type Stage[T constraints.Integer] struct {
	Name  string
	Rules []Rule[T]
}

// Option configures a Pipeline via functional arguments.
type Option func(*Options)

// Options holds pipeline settings.
type Options struct {
	// OnStage is called after each stage with its index, name and the
	// number of pieces it produced.
	OnStage func(index int, name string, pieces int)

	// Validate checks every stage with Stage.Validate in NewPipeline.
	Validate bool
}

// DefaultOptions returns Options with a no-op hook and validation enabled.
func DefaultOptions() Options {
	return Options{
		OnStage:  func(int, string, int) {},
		Validate: true,
	}
}

// WithStageHook registers a callback run after every stage.
func WithStageHook(fn func(index int, name string, pieces int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// WithoutValidation skips the overlap check in NewPipeline. Overlapping
// rules are then applied in table order: the first rule to claim a value
// wins.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

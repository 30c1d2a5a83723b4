package intervalmap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	seedsRe  = regexp.MustCompile(`^seeds:((?:\s+\d+)*)\s*$`)
	headerRe = regexp.MustCompile(`^(?P<src>[a-z]+)-to-(?P<dst>[a-z]+) map:$`)
	ruleRe   = regexp.MustCompile(`^(?P<dst>\d+)\s+(?P<src>\d+)\s+(?P<len>\d+)$`)
)

// Almanac is a parsed puzzle: the seed list and the chain of maps that
// lead from the first category to the last.
type Almanac struct {
	Seeds  []uint64
	Stages []Stage[uint64]
}

// ParseAlmanac reads the "seeds:" line followed by any number of
// "<src>-to-<dst> map:" blocks, each holding "dst src length" rows.
// Blank lines separate blocks and are otherwise ignored. Each map must
// start where the previous one ended (ErrBrokenChain).
func ParseAlmanac(text string) (*Almanac, error) {
	a := &Almanac{}
	seen := false
	var cur *Stage[uint64]
	var lastDst string

	for i, line := range strings.Split(text, "\n") {
		n := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !seen {
			m := seedsRe.FindStringSubmatch(line)
			if m == nil {
				return nil, &ParseError{Line: n, Text: line}
			}
			seeds, err := parseNumbers(m[1])
			if err != nil {
				return nil, &ParseError{Line: n, Text: line, Err: err}
			}
			a.Seeds = seeds
			seen = true
			continue
		}
		if m := headerRe.FindStringSubmatch(line); m != nil {
			src, dst := m[headerRe.SubexpIndex("src")], m[headerRe.SubexpIndex("dst")]
			if lastDst != "" && src != lastDst {
				return nil, &ParseError{Line: n, Text: line,
					Err: fmt.Errorf("%w: %q follows %q", ErrBrokenChain, src, lastDst)}
			}
			lastDst = dst
			a.Stages = append(a.Stages, Stage[uint64]{Name: src + "-to-" + dst})
			cur = &a.Stages[len(a.Stages)-1]
			continue
		}
		m := ruleRe.FindStringSubmatch(line)
		if m == nil || cur == nil {
			return nil, &ParseError{Line: n, Text: line}
		}
		var vals [3]uint64
		for k, name := range []string{"dst", "src", "len"} {
			v, err := strconv.ParseUint(m[ruleRe.SubexpIndex(name)], 10, 64)
			if err != nil {
				return nil, &ParseError{Line: n, Text: line, Err: err}
			}
			vals[k] = v
		}
		cur.Rules = append(cur.Rules, NewRule(vals[0], vals[1], vals[2]))
	}
	if !seen {
		return nil, &ParseError{Line: 1, Text: ""}
	}
	return a, nil
}

// parseNumbers splits s on whitespace and parses each field.
func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Pipeline builds a validated Pipeline from the almanac's maps.
func (a *Almanac) Pipeline(opts ...Option) (*Pipeline[uint64], error) {
	return NewPipeline(a.Stages, opts...)
}

// SeedValues treats every seed as a single value: [s, s+1).
func (a *Almanac) SeedValues() []Interval[uint64] {
	out := make([]Interval[uint64], len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = Span(s, 1)
	}
	return out
}

// SeedRanges reads the seeds as start/length pairs.
// Returns ErrOddSeeds for an odd number of values.
func (a *Almanac) SeedRanges() ([]Interval[uint64], error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddSeeds, len(a.Seeds))
	}
	out := make([]Interval[uint64], 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Span(a.Seeds[i], a.Seeds[i+1]))
	}
	return out, nil
}

// LowestLocation parses an almanac and returns the lowest final value of
// any individual seed.
func LowestLocation(text string, opts ...Option) (uint64, error) {
	a, err := ParseAlmanac(text)
	if err != nil {
		return 0, err
	}
	p, err := a.Pipeline(opts...)
	if err != nil {
		return 0, err
	}
	return p.Min(a.SeedValues())
}

// LowestLocationForRanges parses an almanac whose seeds are start/length
// pairs and returns the lowest final value over all seed ranges.
func LowestLocationForRanges(text string, opts ...Option) (uint64, error) {
	a, err := ParseAlmanac(text)
	if err != nil {
		return 0, err
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	p, err := a.Pipeline(opts...)
	if err != nil {
		return 0, err
	}
	return p.Min(ranges)
}

// Package intervalmap pushes sets of half-open integer intervals through an
// ordered chain of piecewise-linear mapping stages.
//
// What
//
//   - A Rule maps [SrcStart, SrcEnd) onto [DstStart, DstStart+len) by a
//     constant shift.
//   - A Stage is a table of rules with disjoint source ranges; values no
//     rule covers pass through unchanged.
//   - A Pipeline applies stages in order. Each interval is split at rule
//     boundaries so that every piece is shifted by exactly one rule (or
//     none) per stage.
//   - Interval.Level counts the stages an interval has passed through,
//     whether or not a rule moved it.
//
// Why
//
//   - Mapping whole ranges instead of single values keeps the cost
//     proportional to the number of boundaries, not to the range width.
//
// Guarantees
//
//   - Coverage: the pieces produced for an interval have the same total
//     length as the interval. Nothing is lost or counted twice.
//   - No zero-length pieces: a rule that only touches an interval boundary
//     leaves the interval whole.
//   - Levels: after k stages every interval has Level == k.
//
// Complexity (n intervals, r rules in a stage)
//
//   - Rule.Split:    O(1).
//   - Stage.Apply:   O(r·(n + r)); each rule splits each piece into at most
//     three, of which at most two stay in the pool.
//   - Pipeline.Min:  sum over stages.
//
// Parsing
//
//	ParseAlmanac reads the puzzle text format:
//
//		seeds: 79 14 55 13
//
//		seed-to-soil map:
//		50 98 2
//		52 50 48
//		...
//
// Errors
//
//   - ErrMalformedInput (wrapped by *ParseError) for unreadable text.
//   - ErrEmptyRule, ErrRuleOverflow, ErrOverlappingRules from Stage.Validate.
//   - ErrBrokenChain when consecutive maps do not share a category.
//   - ErrOddSeeds when seed ranges are requested from an odd seed list.
//   - ErrNoIntervals when Min has nothing to minimize.
package intervalmap

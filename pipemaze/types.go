// Package pipemaze defines core types and options for pipe-maze analysis.
package pipemaze

// Direction is a bit set of the four compass sides a tile can open toward.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// directions lists the single-bit directions in scan order N, E, S, W.
var directions = [4]Direction{North, East, South, West}

// Opposite returns the side facing d. Only meaningful for a single bit.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return 0
}

// Offset returns the (dx, dy) step for a single-bit direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Has reports whether every bit of o is set in d.
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// Count returns the number of sides set in d.
func (d Direction) Count() int {
	n := 0
	for _, s := range directions {
		if d.Has(s) {
			n++
		}
	}
	return n
}

// Point is a cell coordinate: X is the column, Y is the row (growing south).
type Point struct {
	X, Y int
}

// Step returns the point one cell away from p toward d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// CellState is the per-cell annotation produced by a solving pass.
// Visited is set for loop cells only; Distance is valid only when Visited.
// Outside is filled by Classify.
type CellState struct {
	Visited  bool
	Distance int
	Outside  bool
}

// Option configures FindLoop via functional arguments.
type Option func(*LoopOptions)

// LoopOptions holds the callbacks used during loop discovery.
type LoopOptions struct {
	// OnEnqueue is called when a cell is scheduled, with its distance.
	OnEnqueue func(p Point, dist int)

	// OnVisit is called when a cell is visited. If it returns an error,
	// traversal aborts and FindLoop returns that error wrapped.
	OnVisit func(p Point, dist int) error
}

// DefaultOptions returns LoopOptions with no-op hooks.
func DefaultOptions() LoopOptions {
	return LoopOptions{
		OnEnqueue: func(Point, int) {},
		OnVisit:   func(Point, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p Point, dist int)) Option {
	return func(o *LoopOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(p Point, dist int) error) Option {
	return func(o *LoopOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

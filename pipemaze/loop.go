package pipemaze

import (
	"fmt"

	"k8s.io/klog/v2"
	"tailscale.com/util/deephash"
)

// Loop is the closed pipe loop through the start tile, together with the
// per-cell state arena of the solving pass that found it.
type Loop struct {
	grid       *Grid
	startShape Tile
	states     []CellState
	order      []Point
	classified bool
}

// queueItem pairs a cell with its BFS distance from the start.
type queueItem struct {
	p    Point
	dist int
}

// walker encapsulates mutable traversal state.
type walker struct {
	grid  *Grid
	opts  LoopOptions
	queue []queueItem
	loop  *Loop
}

// FindLoop runs breadth-first search from the start tile over mutual pipe
// connections and records each loop cell's distance.
// Returns ErrAmbiguousStart when the start does not connect to exactly two
// neighbors, ErrOpenLoop when a reached cell does not continue the loop, or
// a wrapped OnVisit error.
// Complexity: O(W×H) time and memory.
func FindLoop(g *Grid, opts ...Option) (*Loop, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shape, err := g.ResolveStart()
	if err != nil {
		return nil, err
	}

	w := &walker{
		grid: g,
		opts: o,
		loop: &Loop{
			grid:       g,
			startShape: shape,
			states:     make([]CellState, g.Width*g.Height),
		},
	}
	klog.V(4).Infof("pipemaze: start at (%d,%d) resolves to %s", g.start.X, g.start.Y, shape)

	w.enqueue(g.start, 0)
	if err := w.run(); err != nil {
		return nil, err
	}
	klog.V(4).Infof("pipemaze: loop of %d cells, farthest distance %d", len(w.loop.order), w.loop.MaxDistance())

	return w.loop, nil
}

// enqueue marks p visited at distance d and schedules it.
func (w *walker) enqueue(p Point, d int) {
	st := &w.loop.states[w.grid.index(p)]
	st.Visited = true
	st.Distance = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, dist: d})
}

// run processes the queue until it empties or an error occurs.
func (w *walker) run() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.loop.order = append(w.loop.order, item.p)
		if err := w.opts.OnVisit(item.p, item.dist); err != nil {
			return fmt.Errorf("pipemaze: OnVisit error at (%d,%d): %w", item.p.X, item.p.Y, err)
		}

		next := w.grid.Connected(item.p)
		if len(next) != 2 {
			return fmt.Errorf("%w: (%d,%d) %s has %d connections",
				ErrOpenLoop, item.p.X, item.p.Y, w.grid.At(item.p), len(next))
		}
		for _, q := range next {
			if w.loop.states[w.grid.index(q)].Visited {
				continue
			}
			w.enqueue(q, item.dist+1)
		}
	}
	return nil
}

// Grid returns the grid the loop was found in.
func (l *Loop) Grid() *Grid {
	return l.grid
}

// StartShape returns the pipe shape resolved under the Start tile.
func (l *Loop) StartShape() Tile {
	return l.startShape
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.order)
}

// Order returns the loop cells in BFS visit order, starting at the start.
func (l *Loop) Order() []Point {
	out := make([]Point, len(l.order))
	copy(out, l.order)
	return out
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p Point) bool {
	return l.grid.InBounds(p) && l.states[l.grid.index(p)].Visited
}

// Distance returns the BFS distance of p from the start, or false when p
// is not on the loop.
func (l *Loop) Distance(p Point) (int, bool) {
	if !l.Contains(p) {
		return 0, false
	}
	return l.states[l.grid.index(p)].Distance, true
}

// MaxDistance returns the largest distance recorded on the loop: the
// number of steps to the point farthest from the start.
func (l *Loop) MaxDistance() int {
	best := 0
	for _, p := range l.order {
		if d := l.states[l.grid.index(p)].Distance; d > best {
			best = d
		}
	}
	return best
}

// State returns a copy of the annotation for p. p must be in bounds.
func (l *Loop) State(p Point) CellState {
	return l.states[l.grid.index(p)]
}

// shapeAt returns the effective shape at p, substituting the resolved
// start shape for Start.
func (l *Loop) shapeAt(p Point) Tile {
	if t := l.grid.At(p); t != Start {
		return t
	}
	return l.startShape
}

// Fingerprint hashes the full cell-state arena. Two passes that leave the
// same annotations produce the same sum.
func (l *Loop) Fingerprint() deephash.Sum {
	return deephash.Hash(&l.states)
}

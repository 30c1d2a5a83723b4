package pipemaze

// Path returns the loop cells in walking order: it starts at the start
// tile, leaves through its first connection in N, E, S, W order, and stops
// before returning to the start.
// Complexity: O(L) where L is the loop length.
func (l *Loop) Path() []Point {
	g := l.grid
	path := make([]Point, 0, len(l.order))
	prev, cur := g.start, g.start
	for {
		path = append(path, cur)
		var next Point
		for _, q := range g.Connected(cur) {
			if q != prev || cur == g.start {
				next = q
				break
			}
		}
		if next == g.start || len(path) > len(l.order) {
			break
		}
		prev, cur = cur, next
	}
	return path
}

// EnclosedByArea counts enclosed cells from the loop's geometry alone.
// The shoelace formula gives the polygon area A through the loop cell
// centers; Pick's theorem then gives the interior lattice points as
// A - b/2 + 1, where b is the loop length.
// The result always equals the count returned by Classify.
func (l *Loop) EnclosedByArea() int {
	path := l.Path()
	if len(path) < 4 {
		return 0
	}
	// twice the signed area
	area2 := 0
	for i, a := range path {
		b := path[(i+1)%len(path)]
		area2 += a.X*b.Y - a.Y*b.X
	}
	if area2 < 0 {
		area2 = -area2
	}
	return (area2 - len(path) + 2) / 2
}

// Corners returns the bend cells of the loop in walking order. Straight
// pipes lie on polygon edges and are omitted, which makes the result the
// polygon's vertex list.
func (l *Loop) Corners() []Point {
	var out []Point
	for _, p := range l.Path() {
		switch l.shapeAt(p) {
		case Vertical, Horizontal:
			continue
		}
		out = append(out, p)
	}
	return out
}

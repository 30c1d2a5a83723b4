package pipemaze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular array of tiles. It is immutable once built.
// Tiles are stored row-major; Width and Height fix the dimensions.
type Grid struct {
	Width, Height int
	tiles         []Tile
	start         Point
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// as rows[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart or ErrMultipleStarts.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, tiles: make([]Tile, 0, w*h)}
	starts := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, t := range row {
			if t > Start {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidTile, t, x, y)
			}
			if t == Start {
				starts++
				g.start = Point{X: x, Y: y}
			}
		}
		g.tiles = append(g.tiles, row...)
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	return g, nil
}

// ParseGrid reads newline-separated rows of tile glyphs. Blank lines and a
// trailing newline are ignored; "\r\n" endings are accepted.
// Unknown glyphs return a *ParseError.
func ParseGrid(s string) (*Grid, error) {
	var rows [][]Tile
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		row := make([]Tile, 0, len(line))
		for j, r := range []rune(line) {
			t, ok := ParseTile(r)
			if !ok {
				return nil, &ParseError{Line: i + 1, Column: j + 1, Glyph: r}
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Point) Tile {
	return g.tiles[g.index(p)]
}

// Start returns the position of the Start tile.
func (g *Grid) Start() Point {
	return g.start
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// openings returns the sides the tile at p claims, without checking
// whether the neighbors agree. Start claims every side.
func (g *Grid) openings(p Point) Direction {
	t := g.At(p)
	if t == Start {
		return North | East | South | West
	}
	return t.Openings()
}

// Neighbors returns the in-bounds points the tile at p opens toward, in
// N, E, S, W order. For Start, only mutual connections are returned.
func (g *Grid) Neighbors(p Point) []Point {
	if g.At(p) == Start {
		return g.Connected(p)
	}
	var out []Point
	open := g.openings(p)
	for _, d := range directions {
		if !open.Has(d) {
			continue
		}
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// links returns the sides of p whose neighbor opens back toward p.
func (g *Grid) links(p Point) Direction {
	var out Direction
	open := g.openings(p)
	for _, d := range directions {
		if !open.Has(d) {
			continue
		}
		q := p.Step(d)
		if !g.InBounds(q) {
			continue
		}
		if g.openings(q).Has(d.Opposite()) {
			out |= d
		}
	}
	return out
}

// Connected returns the neighbors of p that share a pipe joint with it:
// p opens toward the neighbor and the neighbor opens back toward p.
func (g *Grid) Connected(p Point) []Point {
	var out []Point
	l := g.links(p)
	for _, d := range directions {
		if l.Has(d) {
			out = append(out, p.Step(d))
		}
	}
	return out
}

// ResolveStart infers the true pipe shape under the Start tile from the
// neighbors that open back toward it.
// Returns ErrAmbiguousStart unless exactly two neighbors do.
func (g *Grid) ResolveStart() (Tile, error) {
	l := g.links(g.start)
	if l.Count() != 2 {
		return Ground, fmt.Errorf("%w: %d connections at (%d,%d)", ErrAmbiguousStart, l.Count(), g.start.X, g.start.Y)
	}
	t, _ := tileFor(l)

	return t, nil
}

// String renders the grid back to its glyph form, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteString(g.At(Point{X: x, Y: y}).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package pipemaze

// Tile is one grid glyph.
type Tile uint8

const (
	Ground     Tile = iota // .
	Vertical               // |
	Horizontal             // -
	NorthEast              // L
	NorthWest              // J
	SouthWest              // 7
	SouthEast              // F
	Start                  // S
)

var tileGlyphs = [...]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthWest:  '7',
	SouthEast:  'F',
	Start:      'S',
}

// ParseTile maps a glyph to its Tile. The second result is false for an
// unknown glyph.
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case '.':
		return Ground, true
	case '|':
		return Vertical, true
	case '-':
		return Horizontal, true
	case 'L':
		return NorthEast, true
	case 'J':
		return NorthWest, true
	case '7':
		return SouthWest, true
	case 'F':
		return SouthEast, true
	case 'S':
		return Start, true
	}
	return Ground, false
}

// String returns the puzzle glyph for t.
func (t Tile) String() string {
	if int(t) < len(tileGlyphs) {
		return string(tileGlyphs[t])
	}
	return "?"
}

// Openings returns the sides t connects to. Start and Ground report none;
// the start's openings come from Grid.ResolveStart.
func (t Tile) Openings() Direction {
	switch t {
	case Vertical:
		return North | South
	case Horizontal:
		return East | West
	case NorthEast:
		return North | East
	case NorthWest:
		return North | West
	case SouthWest:
		return South | West
	case SouthEast:
		return South | East
	}
	return 0
}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool {
	return t.Openings() != 0
}

// tileFor returns the pipe shape with exactly the openings d, or false
// when d does not name two sides.
func tileFor(d Direction) (Tile, bool) {
	for t := Vertical; t <= SouthEast; t++ {
		if t.Openings() == d {
			return t, true
		}
	}
	return Ground, false
}

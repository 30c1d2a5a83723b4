package pipemaze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/pipemaze"
)

//----------------------------------------------------------------------------//
// Tile Tests
//----------------------------------------------------------------------------//

// TestParseTile round-trips every glyph and rejects unknown ones.
func TestParseTile(t *testing.T) {
	for _, r := range "|-LJ7FS." {
		tile, ok := pipemaze.ParseTile(r)
		require.True(t, ok, "glyph %q", r)
		assert.Equal(t, string(r), tile.String())
	}
	_, ok := pipemaze.ParseTile('X')
	assert.False(t, ok)
}

// TestTileOpenings checks that every pipe opens exactly two sides and that
// Ground and Start claim none.
func TestTileOpenings(t *testing.T) {
	cases := []struct {
		tile pipemaze.Tile
		want pipemaze.Direction
	}{
		{pipemaze.Vertical, pipemaze.North | pipemaze.South},
		{pipemaze.Horizontal, pipemaze.East | pipemaze.West},
		{pipemaze.NorthEast, pipemaze.North | pipemaze.East},
		{pipemaze.NorthWest, pipemaze.North | pipemaze.West},
		{pipemaze.SouthWest, pipemaze.South | pipemaze.West},
		{pipemaze.SouthEast, pipemaze.South | pipemaze.East},
		{pipemaze.Ground, 0},
		{pipemaze.Start, 0},
	}
	for _, tc := range cases {
		t.Run(tc.tile.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tile.Openings())
			assert.Equal(t, tc.want != 0, tc.tile.IsPipe())
		})
	}
}

// TestDirectionOpposite verifies that stepping out and back returns home.
func TestDirectionOpposite(t *testing.T) {
	p := pipemaze.Point{X: 3, Y: 3}
	for _, d := range []pipemaze.Direction{pipemaze.North, pipemaze.East, pipemaze.South, pipemaze.West} {
		assert.Equal(t, p, p.Step(d).Step(d.Opposite()))
		assert.Equal(t, 1, d.Count())
	}
}

//----------------------------------------------------------------------------//
// NewGrid and ParseGrid Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects malformed inputs.
func TestNewGrid_Errors(t *testing.T) {
	S, G, V := pipemaze.Start, pipemaze.Ground, pipemaze.Vertical
	cases := []struct {
		name string
		rows [][]pipemaze.Tile
		err  error
	}{
		{"EmptyRows", [][]pipemaze.Tile{}, pipemaze.ErrEmptyGrid},
		{"EmptyCols", [][]pipemaze.Tile{{}}, pipemaze.ErrEmptyGrid},
		{"NonRectangular", [][]pipemaze.Tile{{S, G}, {V}}, pipemaze.ErrNonRectangular},
		{"NoStart", [][]pipemaze.Tile{{G, V}}, pipemaze.ErrNoStart},
		{"TwoStarts", [][]pipemaze.Tile{{S, S}}, pipemaze.ErrMultipleStarts},
		{"BadValue", [][]pipemaze.Tile{{S, pipemaze.Tile(42)}}, pipemaze.ErrInvalidTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipemaze.NewGrid(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseGrid_InvalidGlyph checks the reported position of a bad glyph.
func TestParseGrid_InvalidGlyph(t *testing.T) {
	_, err := pipemaze.ParseGrid("S-7\n|X|\nL-J\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipemaze.ErrInvalidTile)

	var pe *pipemaze.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)
	assert.Equal(t, 'X', pe.Glyph)
}

// TestParseGrid_RoundTrip checks dimensions, start position and String.
func TestParseGrid_RoundTrip(t *testing.T) {
	g, err := pipemaze.ParseGrid(squareLoop)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 5, g.Height)
	assert.Equal(t, pipemaze.Point{X: 1, Y: 1}, g.Start())
	assert.Equal(t, pipemaze.Horizontal, g.At(pipemaze.Point{X: 2, Y: 1}))
	assert.Equal(t, squareLoop, g.String())

	crlf, err := pipemaze.ParseGrid(".S.\r\n...\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, crlf.Width)
	assert.Equal(t, 2, crlf.Height)
}

// TestInBounds checks InBounds on a 5×5 grid.
func TestInBounds(t *testing.T) {
	g, err := pipemaze.ParseGrid(squareLoop)
	require.NoError(t, err)
	for _, p := range []pipemaze.Point{{0, 0}, {4, 4}, {2, 3}} {
		assert.True(t, g.InBounds(p), "%v", p)
	}
	for _, p := range []pipemaze.Point{{-1, 0}, {5, 0}, {0, 5}, {2, -1}} {
		assert.False(t, g.InBounds(p), "%v", p)
	}
	assert.Equal(t, pipemaze.Point{X: 2, Y: 3}, g.Coordinate(17))
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestNeighbors_ClippedAtBorder verifies that openings pointing off the grid
// are dropped.
func TestNeighbors_ClippedAtBorder(t *testing.T) {
	g, err := pipemaze.ParseGrid("|S\n--\n")
	require.NoError(t, err)
	assert.Equal(t, []pipemaze.Point{{X: 0, Y: 1}}, g.Neighbors(pipemaze.Point{X: 0, Y: 0}))
	assert.Equal(t, []pipemaze.Point{{X: 0, Y: 1}}, g.Neighbors(pipemaze.Point{X: 1, Y: 1}))
}

// TestConnected_RequiresMutualOpening checks that a pipe pointing at a
// neighbor that does not point back is not connected.
func TestConnected_RequiresMutualOpening(t *testing.T) {
	g, err := pipemaze.ParseGrid(squareLoopJunk)
	require.NoError(t, err)

	// S: north is L (no south opening), west is 7 (no east opening).
	assert.ElementsMatch(t,
		[]pipemaze.Point{{X: 2, Y: 1}, {X: 1, Y: 2}},
		g.Connected(g.Start()))
	assert.Equal(t, g.Connected(g.Start()), g.Neighbors(g.Start()))

	// The junk 7 in the middle points west and south into loop pipes that
	// do not point back.
	assert.Empty(t, g.Connected(pipemaze.Point{X: 2, Y: 2}))
	assert.Len(t, g.Neighbors(pipemaze.Point{X: 2, Y: 2}), 2)
}

// TestResolveStart infers the start shape and rejects ambiguous starts.
func TestResolveStart(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  pipemaze.Tile
	}{
		{"SouthEast", squareLoop, pipemaze.SouthEast},
		{"SouthEastJunk", squareLoopJunk, pipemaze.SouthEast},
		{"SouthEastWinding", winding, pipemaze.SouthEast},
		{"SouthWest", junkLoop, pipemaze.SouthWest},
		{"Vertical", "|\nS\n|\n", pipemaze.Vertical},
		{"Horizontal", "-S-\n", pipemaze.Horizontal},
		{"NorthWest", ".|\n-S\n", pipemaze.NorthWest},
		{"NorthEast", "|.\nS-\n", pipemaze.NorthEast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipemaze.ParseGrid(tc.input)
			require.NoError(t, err)
			got, err := g.ResolveStart()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, input := range []string{"S\n", "-S-\n.|.\n", "-S\n"} {
		g, err := pipemaze.ParseGrid(input)
		require.NoError(t, err)
		_, err = g.ResolveStart()
		assert.ErrorIs(t, err, pipemaze.ErrAmbiguousStart, "input %q", input)
	}
}

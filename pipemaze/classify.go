package pipemaze

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Classify marks every cell as outside or enclosed by the loop using a
// left-to-right scanline per row and returns the number of enclosed cells.
//
// Each row starts outside. A vertical pipe on the loop flips the state.
// An L or F bend opens a corner run; horizontal pipes inside the run are
// skipped. The closing bend decides the run: L…J and F…7 turn back to the
// same side and do not flip, L…7 and F…J cross the row and flip.
// Cells not on the loop take the current state.
//
// The Start cell is scanned as its resolved shape. Classify only writes
// Outside flags, so running it again yields identical state. Flags are
// committed only after the whole grid has been scanned.
// Returns ErrUnexpectedTile if a loop cell does not fit the rules; the
// cell states are then left as they were.
// Complexity: O(W×H).
func (l *Loop) Classify() (int, error) {
	g := l.grid
	enclosed := 0
	flags := make([]bool, len(l.states))
	for y := 0; y < g.Height; y++ {
		outside := true
		var corner Tile // Ground means no corner run is open
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			i := g.index(p)
			if !l.states[i].Visited {
				flags[i] = outside
				if !outside {
					enclosed++
				}
				continue
			}
			// loop cells are never counted; their flag stays cleared
			t := l.shapeAt(p)
			if corner != Ground {
				switch t {
				case Horizontal:
					continue
				case NorthWest:
					if corner != NorthEast {
						outside = !outside
					}
				case SouthWest:
					if corner != SouthEast {
						outside = !outside
					}
				default:
					return 0, unexpected(p, t, corner)
				}
				corner = Ground
				continue
			}
			switch t {
			case Vertical:
				outside = !outside
			case NorthEast, SouthEast:
				corner = t
			default:
				return 0, unexpected(p, t, corner)
			}
		}
	}
	for i, f := range flags {
		l.states[i].Outside = f
	}
	l.classified = true
	klog.V(4).Infof("pipemaze: %d enclosed cells", enclosed)

	return enclosed, nil
}

func unexpected(p Point, t, corner Tile) error {
	if corner == Ground {
		return fmt.Errorf("%w: %s at (%d,%d)", ErrUnexpectedTile, t, p.X, p.Y)
	}
	return fmt.Errorf("%w: %s at (%d,%d) after open %s", ErrUnexpectedTile, t, p.X, p.Y, corner)
}

// Enclosed reports whether p was classified as enclosed by the last
// Classify call. Loop cells are never enclosed; before Classify runs
// nothing is.
func (l *Loop) Enclosed(p Point) bool {
	if !l.classified || !l.grid.InBounds(p) {
		return false
	}
	st := l.states[l.grid.index(p)]
	return !st.Visited && !st.Outside
}

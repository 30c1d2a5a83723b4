package pipemaze

// FarthestDistance parses a maze, finds the loop through the start tile and
// returns the number of steps to the loop cell farthest from the start.
func FarthestDistance(input string, opts ...Option) (int, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}
	l, err := FindLoop(g, opts...)
	if err != nil {
		return 0, err
	}
	return l.MaxDistance(), nil
}

// EnclosedTiles parses a maze, finds the loop through the start tile and
// returns the number of cells enclosed by it.
func EnclosedTiles(input string, opts ...Option) (int, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}
	l, err := FindLoop(g, opts...)
	if err != nil {
		return 0, err
	}
	return l.Classify()
}

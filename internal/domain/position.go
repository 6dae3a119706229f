package domain

// Position is the authoritative grid coordinate of an entity.
// The simulation never deals in interpolated render positions.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift returns the position offset by (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns the 8-directional board distance to other.
func (p Position) Chebyshev(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Manhattan returns the taxicab distance to other.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// DirectionTo returns the unit step (-1/0/1 per axis) toward other.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

// IsAdjacent reports whether other is within one step in any of the
// eight directions (and is not the same tile).
func (p Position) IsAdjacent(other Position) bool {
	return p != other && p.Chebyshev(other) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

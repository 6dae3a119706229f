package systems

import (
	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

// BlockerFunc reports whether something other than terrain obstructs
// the given tile. Perception passes vision-blocking entities; ranged
// targeting passes any entity.
type BlockerFunc func(domain.Position) bool

// HasLine walks a Bresenham line between p1 and p2 and reports
// whether it is clear. Endpoints are never treated as obstructions.
// Integer arithmetic only.
func HasLine(g *grid.Grid, p1, p2 domain.Position, blocked BlockerFunc) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		cur := domain.Position{X: x0, Y: y0}
		if cur != p1 && cur != p2 {
			if !g.InBounds(cur) || g.BlocksVision(cur) {
				return false
			}
			if blocked != nil && blocked(cur) {
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			return true
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// TraceRay returns the Bresenham tile sequence from start toward
// through, excluding start, extended up to maxLen tiles. It does not
// stop at obstacles; projectile advancement handles collisions at
// flight time.
func TraceRay(start, through domain.Position, maxLen int) []domain.Position {
	if start == through || maxLen <= 0 {
		return nil
	}

	x0, y0 := start.X, start.Y
	x1, y1 := through.X, through.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := start.DirectionTo(through)

	err := dx - dy
	path := make([]domain.Position, 0, maxLen)

	for len(path) < maxLen {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		path = append(path, domain.Position{X: x0, Y: y0})
		// Past the through-point the line continues with the same
		// error state, so the ray stays straight.
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package systems

import (
	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

// Octant transforms for recursive shadowcasting.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// VisibleTiles computes the field of view from origin: recursive
// shadowcasting over 8 octants with a Euclidean radius cutoff. The
// origin is always included. The optional blocked predicate lets
// callers add entity occluders on top of the terrain.
func VisibleTiles(g *grid.Grid, origin domain.Position, radius int, blocked BlockerFunc) map[domain.Position]bool {
	visible := make(map[domain.Position]bool)
	if radius <= 0 {
		return visible
	}
	visible[origin] = true

	opaque := func(p domain.Position) bool {
		if g.BlocksVision(p) {
			return true
		}
		return blocked != nil && blocked(p)
	}

	for i := 0; i < 8; i++ {
		castLight(g, origin, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i],
			opaque, visible)
	}
	return visible
}

func castLight(g *grid.Grid, origin domain.Position, row int, start, end float64, radius, xx, xy, yx, yy int, opaque BlockerFunc, visible map[domain.Position]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blockedRun := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p := domain.Position{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}

			if g.InBounds(p) && float64(dx*dx+dy*dy) < radiusSq {
				visible[p] = true
			}

			if blockedRun {
				if opaque(p) {
					newStart = rSlope
					continue
				}
				blockedRun = false
				start = newStart
			} else if opaque(p) && j < radius {
				blockedRun = true
				castLight(g, origin, j+1, start, lSlope, radius,
					xx, xy, yx, yy, opaque, visible)
				newStart = rSlope
			}
		}
		if blockedRun {
			break
		}
	}
}

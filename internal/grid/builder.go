package grid

import "delve-server/internal/domain"

// FromStrings builds a grid from a row-per-string sketch:
// '#' wall, anything else open floor. All rows must share one width.
// Used by tests and the demo floor in cmd/server.
func FromStrings(rows []string) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := New(w, h)
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				g.Carve(domain.Position{X: x, Y: y})
			}
		}
	}
	return g
}

// OpenRoom builds a grid of open floor ringed by a wall border.
func OpenRoom(width, height int) *Grid {
	g := New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			g.Carve(domain.Position{X: x, Y: y})
		}
	}
	return g
}

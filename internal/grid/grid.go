// Package grid is the tile-map collaborator of the simulation: it
// answers walkability and vision questions and nothing else. Dungeon
// generation lives elsewhere; tests build grids by hand.
package grid

import "delve-server/internal/domain"

// Tile is one map cell.
type Tile struct {
	Walkable    bool
	Transparent bool
}

// Grid is a rectangular tile map.
type Grid struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// New returns a grid filled with solid wall.
func New(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

func (g *Grid) InBounds(p domain.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsWalkable reports whether the tile itself permits movement.
// Out-of-bounds is never walkable.
func (g *Grid) IsWalkable(p domain.Position) bool {
	return g.InBounds(p) && g.tiles[p.Y][p.X].Walkable
}

// BlocksVision reports whether the tile stops sight lines.
// Out-of-bounds blocks.
func (g *Grid) BlocksVision(p domain.Position) bool {
	return !g.InBounds(p) || !g.tiles[p.Y][p.X].Transparent
}

// Set replaces the tile at p. Ignored out of bounds.
func (g *Grid) Set(p domain.Position, t Tile) {
	if g.InBounds(p) {
		g.tiles[p.Y][p.X] = t
	}
}

// Carve marks p as open floor.
func (g *Grid) Carve(p domain.Position) {
	g.Set(p, Tile{Walkable: true, Transparent: true})
}

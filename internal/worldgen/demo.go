package worldgen

import (
	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

// demoMap is the hand-authored starting floor. Two rooms joined by a
// corridor with a door; the far room holds the loot and the stairs.
var demoMap = []string{
	"####################",
	"#........#.........#",
	"#........#.........#",
	"#........+.........#",
	"#........#.........#",
	"#........#.........#",
	"####################",
}

// DemoFloor builds the starting floor: the grid, its population and
// the player's entity ID. The '+' cell in the sketch is carved floor
// with a door entity on it.
func DemoFloor() (*domain.World, *grid.Grid, domain.EntityID) {
	rows := make([]string, len(demoMap))
	var doorPos domain.Position
	for y, row := range demoMap {
		out := []byte(row)
		for x := range out {
			if out[x] == '+' {
				doorPos = domain.Position{X: x, Y: y}
				out[x] = '.'
			}
		}
		rows[y] = string(out)
	}
	g := grid.FromStrings(rows)

	w := domain.NewWorld(0)
	player := NewPlayer(w, domain.Position{X: 2, Y: 3})
	NewDoor(w, doorPos)

	NewMonster(w, "giant rat", domain.Position{X: 6, Y: 1})
	NewArcher(w, domain.Position{X: 17, Y: 1})
	NewMonster(w, "ghoul", domain.Position{X: 12, Y: 5})

	NewChest(w, domain.Position{X: 18, Y: 5}, IronSword, HealthPotion)
	NewCoffin(w, domain.Position{X: 11, Y: 1}, 0.3, ConfusionPotion)
	NewStairs(w, domain.Position{X: 18, Y: 3}, true)

	return w, g, player.ID
}

package systems

import (
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

func TestVisibleTilesIncludesOriginAndCutsAtRadius(t *testing.T) {
	g := grid.OpenRoom(40, 40)
	origin := domain.Position{X: 20, Y: 20}

	visible := VisibleTiles(g, origin, 5, nil)
	if !visible[origin] {
		t.Fatal("origin not visible to itself")
	}
	for p := range visible {
		dx := p.X - origin.X
		dy := p.Y - origin.Y
		if dx*dx+dy*dy >= 25 {
			t.Errorf("tile %v visible beyond the Euclidean radius", p)
		}
	}
	if !visible[origin.Shift(4, 0)] {
		t.Error("open tile inside the radius not visible")
	}
}

func TestVisibleTilesBlockedByWalls(t *testing.T) {
	g := grid.FromStrings([]string{
		"#########",
		"#...#...#",
		"#...#...#",
		"#...#...#",
		"#########",
	})
	visible := VisibleTiles(g, domain.Position{X: 2, Y: 2}, 8, nil)

	if visible[domain.Position{X: 6, Y: 2}] {
		t.Error("tile behind the dividing wall is visible")
	}
	if !visible[domain.Position{X: 4, Y: 2}] {
		t.Error("the wall face itself should be visible")
	}
}

func TestVisibleTilesEntityBlockerPredicate(t *testing.T) {
	g := grid.OpenRoom(20, 20)
	origin := domain.Position{X: 2, Y: 10}
	occluder := domain.Position{X: 5, Y: 10}

	visible := VisibleTiles(g, origin, 10, func(p domain.Position) bool {
		return p == occluder
	})
	if visible[domain.Position{X: 8, Y: 10}] {
		t.Error("tile directly behind the entity occluder is visible")
	}
	if !visible[occluder] {
		t.Error("the occluding tile itself should be visible")
	}
}

func TestHasLineEndpointsNeverObstruct(t *testing.T) {
	g := grid.OpenRoom(10, 10)
	a := domain.Position{X: 2, Y: 2}
	b := domain.Position{X: 6, Y: 2}

	// Blockers standing on the endpoints do not break the line.
	clear := HasLine(g, a, b, func(p domain.Position) bool {
		return p == a || p == b
	})
	if !clear {
		t.Error("line broken by its own endpoints")
	}

	blocked := HasLine(g, a, b, func(p domain.Position) bool {
		return p == domain.Position{X: 4, Y: 2}
	})
	if blocked {
		t.Error("line not broken by a blocker in the middle")
	}
	if HasLine(g, a, a, nil) != true {
		t.Error("degenerate line to self must be clear")
	}
}

func TestTraceRayExtendsPastTarget(t *testing.T) {
	start := domain.Position{X: 0, Y: 0}
	through := domain.Position{X: 3, Y: 0}

	path := TraceRay(start, through, 6)
	if len(path) != 6 {
		t.Fatalf("path length = %d, want 6", len(path))
	}
	for i, p := range path {
		want := domain.Position{X: i + 1, Y: 0}
		if p != want {
			t.Errorf("path[%d] = %v, want %v", i, p, want)
		}
	}

	if TraceRay(start, start, 5) != nil {
		t.Error("ray toward self must be empty")
	}
}

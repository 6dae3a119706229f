package systems

import (
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
)

func launch(w *domain.World, p *domain.Projectile, at domain.Position) *domain.Entity {
	return w.Add(&domain.Entity{
		ID:         w.NewID(domain.KindProjectile),
		Pos:        at,
		Projectile: p,
	})
}

func TestArrowStopsAtFirstTarget(t *testing.T) {
	g := grid.OpenRoom(20, 20)
	w := domain.NewWorld(0)
	tn := tuning.Default()
	events := &domain.EventQueue{}

	shooter := newAgent(w, domain.Position{X: 2, Y: 5}, 8)
	victim := newPlayer(w, domain.Position{X: 6, Y: 5})

	arrow := launch(w, &domain.Projectile{
		Kind:     domain.ProjectileArrow,
		Path:     TraceRay(shooter.Pos, victim.Pos, 15),
		Launched: 0,
		Speed:    15.0,
		Source:   shooter.ID,
		Damage:   5,
	}, shooter.Pos)

	// Not enough flight time yet: one tile per 1/15 s.
	AdvanceProjectiles(w, g, 0.05, tn, events)
	if w.Get(arrow.ID) == nil {
		t.Fatal("arrow despawned before reaching anything")
	}

	AdvanceProjectiles(w, g, 1.0, tn, events)
	if w.Get(arrow.ID) != nil {
		t.Fatal("arrow still in flight after passing the victim's tile")
	}
	if victim.Health.HP != 25 {
		t.Errorf("victim HP = %d, want 25 after a 5 damage arrow", victim.Health.HP)
	}
}

func TestArrowStopsAtWall(t *testing.T) {
	g := grid.FromStrings([]string{
		"########",
		"#...#..#",
		"########",
	})
	w := domain.NewWorld(0)
	tn := tuning.Default()
	events := &domain.EventQueue{}

	from := domain.Position{X: 1, Y: 1}
	arrow := launch(w, &domain.Projectile{
		Kind:     domain.ProjectileArrow,
		Path:     TraceRay(from, domain.Position{X: 6, Y: 1}, 10),
		Launched: 0,
		Speed:    15.0,
		Damage:   5,
	}, from)

	AdvanceProjectiles(w, g, 5.0, tn, events)
	if w.Get(arrow.ID) != nil {
		t.Fatal("arrow flew through a wall")
	}
	// Last good tile before the wall at x=4.
	if arrow.Pos != (domain.Position{X: 3, Y: 1}) {
		t.Errorf("arrow stopped at %v, want (3,1)", arrow.Pos)
	}
}

func TestPotionShattersWithSplash(t *testing.T) {
	g := grid.OpenRoom(20, 20)
	w := domain.NewWorld(0)
	tn := tuning.Default()
	events := &domain.EventQueue{}

	thrower := newPlayer(w, domain.Position{X: 2, Y: 2})
	target := domain.Position{X: 6, Y: 2}
	near := newAgent(w, domain.Position{X: 7, Y: 3}, 8) // Chebyshev 1 from target
	far := newAgent(w, domain.Position{X: 10, Y: 2}, 8)
	near.Health.HP = 10
	far.Health.HP = 10

	path := TraceRay(thrower.Pos, target, 10)
	// Trim the ray at the aimed tile: potions stop there.
	for i, p := range path {
		if p == target {
			path = path[:i+1]
			break
		}
	}

	pot := launch(w, &domain.Projectile{
		Kind:     domain.ProjectilePotion,
		Path:     path,
		Launched: 0,
		Speed:    12.0,
		Source:   thrower.ID,
		Payload:  &domain.PotionPayload{Damage: 4},
	}, thrower.Pos)

	AdvanceProjectiles(w, g, 2.0, tn, events)
	if w.Get(pot.ID) != nil {
		t.Fatal("potion still in flight after reaching its tile")
	}
	if near.Health.HP != 6 {
		t.Errorf("entity in splash has HP %d, want 6", near.Health.HP)
	}
	if far.Health.HP != 10 {
		t.Errorf("entity outside splash has HP %d, want 10", far.Health.HP)
	}

	var landed bool
	for _, ev := range events.Drain() {
		if ev.Type == domain.EventProjectileLanded {
			landed = true
		}
	}
	if !landed {
		t.Error("no landing event emitted")
	}
}

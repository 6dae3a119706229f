package systems

import (
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

func TestTickEffectsEmitsExpiry(t *testing.T) {
	w := domain.NewWorld(0)
	events := &domain.EventQueue{}
	e := newAgent(w, domain.Position{X: 1, Y: 1}, 8)

	AddEffect(e, domain.EffectSlowed, 2.0, 0, events)
	events.Drain()

	TickEffects(w, 1.0, 1.0, events)
	if len(events.Drain()) != 0 {
		t.Error("expiry emitted while the effect still runs")
	}
	TickEffects(w, 1.5, 2.5, events)
	evs := events.Drain()
	if len(evs) != 1 || evs[0].Type != domain.EventEffectExpired {
		t.Fatalf("events = %v, want one expiry", evs)
	}
	if e.HasEffect(domain.EffectSlowed) {
		t.Error("slowed still active after expiry")
	}
}

func TestApplyToVisibleRespectsWalls(t *testing.T) {
	g := grid.FromStrings([]string{
		"#########",
		"#...#...#",
		"#########",
	})
	w := domain.NewWorld(0)
	events := &domain.EventQueue{}

	seen := newAgent(w, domain.Position{X: 3, Y: 1}, 8)
	hidden := newAgent(w, domain.Position{X: 6, Y: 1}, 8)

	n := ApplyToVisible(w, g, domain.Position{X: 1, Y: 1}, 8, domain.EffectFeared, 10, 0, events)
	if n != 1 {
		t.Fatalf("affected %d entities, want 1", n)
	}
	if !seen.HasEffect(domain.EffectFeared) {
		t.Error("visible entity not affected")
	}
	if hidden.HasEffect(domain.EffectFeared) {
		t.Error("entity behind the wall was affected")
	}
}

package systems

import (
	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

// AddEffect attaches an effect to an entity, creating the component
// lazily, and emits the notification.
func AddEffect(e *domain.Entity, kind domain.EffectKind, duration, now float64, events *domain.EventQueue) {
	if e.Effects == nil {
		e.Effects = domain.NewStatusEffects()
	}
	e.Effects.Add(kind, duration)
	events.Push(domain.Event{
		Type:   domain.EventEffectApplied,
		Time:   now,
		Entity: e.ID,
		Effect: domain.EffectRef(kind),
	})
}

// TickEffects counts down every entity's effect durations and emits
// expiries. Iterates the ordered list so event order is stable.
func TickEffects(w *domain.World, elapsed, now float64, events *domain.EventQueue) {
	if elapsed <= 0 {
		return
	}
	for _, e := range w.Entities() {
		if e.Effects == nil {
			continue
		}
		for _, kind := range e.Effects.Tick(elapsed) {
			events.Push(domain.Event{
				Type:   domain.EventEffectExpired,
				Time:   now,
				Entity: e.ID,
				Effect: domain.EffectRef(kind),
			})
		}
	}
}

// ApplyToVisible casts an effect on every attackable entity the
// origin can currently see. Used by area curses and loud events.
func ApplyToVisible(w *domain.World, g *grid.Grid, origin domain.Position, radius int, kind domain.EffectKind, duration, now float64, events *domain.EventQueue) int {
	visible := VisibleTiles(g, origin, radius, func(p domain.Position) bool {
		return w.VisionBlockerAt(p)
	})
	affected := 0
	for _, e := range w.Entities() {
		if !e.Attackable || !visible[e.Pos] {
			continue
		}
		AddEffect(e, kind, duration, now, events)
		affected++
	}
	return affected
}

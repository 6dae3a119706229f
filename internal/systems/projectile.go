package systems

import (
	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
)

// AdvanceProjectiles catches every in-flight projectile up to the
// current simulation time, tile by tile. Arrows stop at the first
// wall or attackable entity; potions fly to the end of their path and
// shatter. Spent projectiles are removed from the world.
func AdvanceProjectiles(w *domain.World, g *grid.Grid, now float64, tn *tuning.Tuning, events *domain.EventQueue) {
	snapshot := append([]*domain.Entity(nil), w.Entities()...)
	for _, e := range snapshot {
		p := e.Projectile
		if p == nil {
			continue
		}

		reach := p.TilesTraveled(now)
		if reach > len(p.Path) {
			reach = len(p.Path)
		}

		done := false
		for p.Cursor < reach && !done {
			tile := p.Path[p.Cursor]
			p.Cursor++

			if !g.InBounds(tile) || g.BlocksVision(tile) {
				// Hit terrain. The projectile never enters the wall;
				// a potion shatters where it stopped.
				done = true
				if p.Kind == domain.ProjectilePotion {
					shatter(w, e.Pos, p, now, tn, events)
				}
				break
			}

			e.Pos = tile

			if p.Kind == domain.ProjectileArrow {
				if hit := w.AttackableAt(tile); hit != nil && hit.ID != p.Source {
					Hurt(hit, p.Source, p.Damage, false, now, events)
					done = true
					break
				}
			}

			if p.Cursor == len(p.Path) {
				done = true
				if p.Kind == domain.ProjectilePotion {
					shatter(w, tile, p, now, tn, events)
				}
			}
		}

		if done {
			events.Push(domain.Event{
				Type:   domain.EventProjectileLanded,
				Time:   now,
				Entity: e.ID,
				To:     &domain.Position{X: e.Pos.X, Y: e.Pos.Y},
			})
			w.Remove(e.ID)
		}
	}
}

// shatter applies a potion payload to every entity with health within
// the splash footprint (Chebyshev radius).
func shatter(w *domain.World, at domain.Position, p *domain.Projectile, now float64, tn *tuning.Tuning, events *domain.EventQueue) {
	radius := p.SplashRadius
	if radius <= 0 {
		radius = tn.AI.SplashRadius
	}
	pl := p.Payload
	if pl == nil {
		return
	}
	for _, e := range w.Entities() {
		if e.Health == nil || e.Pos.Chebyshev(at) > radius {
			continue
		}
		if pl.Heal > 0 {
			if healed := e.Health.Heal(pl.Heal); healed > 0 {
				events.Push(domain.Event{Type: domain.EventHealed, Time: now, Entity: e.ID, Amount: healed})
			}
		}
		if pl.Damage > 0 {
			Hurt(e, p.Source, pl.Damage, false, now, events)
		}
		if pl.HasEffect {
			AddEffect(e, pl.Effect, pl.EffectDuration, now, events)
		}
	}
}

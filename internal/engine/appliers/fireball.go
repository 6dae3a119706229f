package appliers

import (
	"delve-server/internal/domain"
	"delve-server/internal/systems"
)

// ApplyFireball detonates a blast at the target tile, damaging every
// attackable entity inside the footprint, the caster included if it
// stands too close. Only the cast range gates the target.
func ApplyFireball(ctx *Context) Result {
	e := ctx.Actor
	a := ctx.Action
	if a.TargetPos == nil {
		return Invalid
	}
	at := *a.TargetPos
	if e.Pos.Chebyshev(at) > ctx.Tuning.AI.FireballRange {
		return Blocked
	}

	radius := ctx.Tuning.AI.FireballRadius
	dmg := ctx.Tuning.AI.FireballDamage

	ctx.Events.Push(domain.Event{
		Type:   domain.EventProjectileLanded,
		Time:   ctx.Now,
		Entity: e.ID,
		To:     &at,
	})

	for _, t := range ctx.World.Entities() {
		if !t.Attackable || t.Pos.Chebyshev(at) > radius {
			continue
		}
		systems.Hurt(t, e.ID, dmg, false, ctx.Now, ctx.Events)
	}
	return Completed
}

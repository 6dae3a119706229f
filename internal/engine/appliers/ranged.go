package appliers

import (
	"delve-server/internal/domain"
	"delve-server/internal/systems"
)

// ApplyShoot looses an arrow at the target. Everything checked at
// decision time is checked again here: the weapon may have been
// dropped mid-draw, the target may have moved out of the band, an
// ally may have stepped into the line.
func ApplyShoot(ctx *Context) Result {
	e := ctx.Actor
	weapon := e.RangedWeapon()
	if weapon == nil || e.Actor == nil {
		return Invalid
	}
	if e.Actor.RangedCooldown > 0 {
		return Blocked
	}

	target := ctx.World.Get(ctx.Action.Target)
	if target == nil {
		return Invalid
	}
	dist := e.Pos.Chebyshev(target.Pos)
	if dist < weapon.MinRange || dist > weapon.MaxRange {
		return Blocked
	}
	clear := systems.HasLine(ctx.Grid, e.Pos, target.Pos, func(p domain.Position) bool {
		return ctx.World.BlockerAt(p) != nil
	})
	if !clear {
		return Blocked
	}

	// The arrow flies past the aim point until terrain stops it.
	path := systems.TraceRay(e.Pos, target.Pos, dist+ctx.Tuning.AI.ArrowOvershoot)
	if len(path) == 0 {
		return Blocked
	}

	arrow := ctx.World.Add(&domain.Entity{
		ID:   ctx.World.NewID(domain.KindProjectile),
		Name: "arrow",
		Pos:  e.Pos,
		Projectile: &domain.Projectile{
			Kind:     domain.ProjectileArrow,
			Path:     path,
			Launched: ctx.Now,
			Speed:    ctx.Tuning.AI.ArrowSpeed,
			Source:   e.ID,
			Damage:   weapon.Damage,
		},
	})

	e.Actor.RangedCooldown = ctx.Tuning.AI.RangedCooldown

	from, at := e.Pos, target.Pos
	ctx.Events.Push(domain.Event{
		Type:   domain.EventProjectileFired,
		Time:   ctx.Now,
		Entity: arrow.ID,
		Target: target.ID,
		From:   &from,
		To:     &at,
	})
	return Completed
}

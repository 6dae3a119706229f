package appliers

import (
	"delve-server/internal/domain"
	"delve-server/internal/systems"
)

// ApplyAttack strikes a melee blow, addressed either by target ID or
// by direction. The target must still exist, still be attackable and
// still be adjacent when the swing lands.
func ApplyAttack(ctx *Context) Result {
	a := ctx.Action

	var target *domain.Entity
	if a.Target != domain.InvalidID {
		target = ctx.World.Get(a.Target)
		if target == nil {
			return Invalid
		}
		if !target.Attackable || !ctx.Actor.Pos.IsAdjacent(target.Pos) {
			return Blocked
		}
	} else {
		dest := ctx.Actor.Pos.Shift(a.Dx, a.Dy)
		target = ctx.World.AttackableAt(dest)
		if target == nil {
			return Blocked
		}
	}

	return attackEntity(ctx, target)
}

// attackEntity is the shared strike path, also used when a move
// re-resolves into an attack at completion time.
func attackEntity(ctx *Context, target *domain.Entity) Result {
	if target.Health == nil {
		return Invalid
	}
	dmg, crit := systems.RollDamage(ctx.RNG, ctx.Actor, target, ctx.Tuning)
	systems.Hurt(target, ctx.Actor.ID, dmg, crit, ctx.Now, ctx.Events)
	return Completed
}

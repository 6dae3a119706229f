package appliers

import (
	"delve-server/internal/domain"
	"delve-server/internal/systems"
)

// ApplyThrow lobs a potion from the inventory at a target tile. The
// flask flies to the aim point and shatters there; the splash is
// applied by the projectile system on arrival, not here.
func ApplyThrow(ctx *Context) Result {
	e := ctx.Actor
	a := ctx.Action
	if e.Inventory == nil || a.TargetPos == nil {
		return Invalid
	}
	item, ok := e.Inventory.At(a.Slot)
	if !ok || item.Category != domain.ItemPotion || item.Potion == nil {
		return Invalid
	}
	target := *a.TargetPos
	if target == e.Pos {
		return Blocked
	}

	// A potion stops at its aim point, so trim the ray there.
	full := systems.TraceRay(e.Pos, target, e.Pos.Chebyshev(target)*2+2)
	var path []domain.Position
	for i, p := range full {
		if p == target {
			path = full[:i+1]
			break
		}
	}
	if path == nil {
		return Blocked
	}

	e.Inventory.RemoveAt(a.Slot)

	pot := ctx.World.Add(&domain.Entity{
		ID:   ctx.World.NewID(domain.KindProjectile),
		Name: item.Name,
		Pos:  e.Pos,
		Projectile: &domain.Projectile{
			Kind:         domain.ProjectilePotion,
			Path:         path,
			Launched:     ctx.Now,
			Speed:        ctx.Tuning.AI.ThrowSpeed,
			Source:       e.ID,
			Payload:      item.Potion,
			SplashRadius: ctx.Tuning.AI.SplashRadius,
		},
	})

	from := e.Pos
	ctx.Events.Push(domain.Event{
		Type:   domain.EventProjectileFired,
		Time:   ctx.Now,
		Entity: pot.ID,
		From:   &from,
		To:     &target,
	})
	return Completed
}

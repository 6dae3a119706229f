package appliers

import (
	"delve-server/internal/domain"
)

// ApplyMove steps the actor one tile. The destination is re-resolved
// from scratch: what was empty at decision time may now hold a
// hostile, a door, or a chest, in which case the turn converts into
// the corresponding interaction instead of failing outright.
func ApplyMove(ctx *Context) Result {
	e := ctx.Actor
	a := ctx.Action
	dest := e.Pos.Shift(a.Dx, a.Dy)

	if !ctx.Grid.IsWalkable(dest) {
		return Blocked
	}

	if blocker := ctx.World.BlockerAt(dest); blocker != nil {
		// Hostile in the way: the move becomes an attack.
		if blocker.Attackable && blocker.Hostile != e.Hostile {
			return attackEntity(ctx, blocker)
		}
		if blocker.Door != nil && !blocker.Door.Open {
			return openDoor(ctx, blocker)
		}
		if blocker.Container != nil && !blocker.Container.Opened {
			return openContainer(ctx, blocker)
		}
		return Blocked
	}

	from := e.Pos
	e.Pos = dest
	ctx.Events.Push(domain.Event{
		Type:   domain.EventMoved,
		Time:   ctx.Now,
		Entity: e.ID,
		From:   &from,
		To:     &dest,
	})
	return Completed
}

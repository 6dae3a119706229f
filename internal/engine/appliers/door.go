package appliers

import (
	"delve-server/internal/domain"
)

// ApplyOpenDoor opens the door in the acted direction. The door may
// already stand open (someone else got there first), which blocks the
// turn without harm.
func ApplyOpenDoor(ctx *Context) Result {
	dest := ctx.Actor.Pos.Shift(ctx.Action.Dx, ctx.Action.Dy)
	for _, e := range ctx.World.At(dest) {
		if e.Door != nil {
			if e.Door.Open {
				return Blocked
			}
			return openDoor(ctx, e)
		}
	}
	return Blocked
}

func openDoor(ctx *Context, door *domain.Entity) Result {
	door.Door.Open = true
	door.BlocksMovement = false
	door.BlocksVision = false
	ctx.Events.Push(domain.Event{
		Type:   domain.EventDoorOpened,
		Time:   ctx.Now,
		Entity: ctx.Actor.ID,
		Target: door.ID,
	})
	return Completed
}

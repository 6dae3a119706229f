package appliers

import (
	"delve-server/internal/domain"
)

// ApplyBlink teleports the actor to a tile within blink range. Range,
// walkability and occupancy are all checked against the world as it
// stands now; the tile may well have been free when the cast began.
func ApplyBlink(ctx *Context) Result {
	e := ctx.Actor
	a := ctx.Action
	if a.TargetPos == nil {
		return Invalid
	}
	dest := *a.TargetPos

	if e.Pos.Chebyshev(dest) > ctx.Tuning.AI.BlinkRange {
		return Blocked
	}
	if !ctx.Grid.IsWalkable(dest) {
		return Blocked
	}
	if ctx.World.BlockerAt(dest) != nil {
		return Blocked
	}

	from := e.Pos
	e.Pos = dest
	ctx.Events.Push(domain.Event{
		Type:   domain.EventBlinked,
		Time:   ctx.Now,
		Entity: e.ID,
		From:   &from,
		To:     &dest,
	})
	return Completed
}

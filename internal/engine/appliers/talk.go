package appliers

import (
	"delve-server/internal/domain"
)

// ApplyTalk starts a conversation with an adjacent entity. The core
// only announces it; dialogue content lives outside the simulation.
func ApplyTalk(ctx *Context) Result {
	target := ctx.World.Get(ctx.Action.Target)
	if target == nil {
		return Invalid
	}
	if !ctx.Actor.Pos.IsAdjacent(target.Pos) {
		return Blocked
	}
	ctx.Events.Push(domain.Event{
		Type:   domain.EventDialogueStarted,
		Time:   ctx.Now,
		Entity: ctx.Actor.ID,
		Target: target.ID,
	})
	return Completed
}

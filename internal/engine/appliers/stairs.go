package appliers

import (
	"delve-server/internal/domain"
)

// ApplyUseStairs announces a floor transition. The actor must be
// standing on the stairs when the action completes; the transition
// itself (floor swap, respawn) belongs to the layer above.
func ApplyUseStairs(ctx *Context) Result {
	for _, e := range ctx.World.At(ctx.Actor.Pos) {
		if e.Stairs != nil {
			ctx.Events.Push(domain.Event{
				Type:   domain.EventStairsUsed,
				Time:   ctx.Now,
				Entity: ctx.Actor.ID,
				Target: e.ID,
			})
			return Completed
		}
	}
	return Blocked
}

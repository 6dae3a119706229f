package appliers

import (
	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/worldgen"
	"delve-server/pkg/logger"
)

// ApplyOpenChest opens the container in the acted direction. Coffins
// carry a disturbance chance: opening one may raise an occupant on a
// free adjacent tile.
func ApplyOpenChest(ctx *Context) Result {
	dest := ctx.Actor.Pos.Shift(ctx.Action.Dx, ctx.Action.Dy)
	for _, e := range ctx.World.At(dest) {
		if e.Container != nil {
			if e.Container.Opened {
				return Blocked
			}
			return openContainer(ctx, e)
		}
	}
	return Blocked
}

func openContainer(ctx *Context, chest *domain.Entity) Result {
	chest.Container.Opened = true
	chest.BlocksVision = false
	ctx.Events.Push(domain.Event{
		Type:   domain.EventChestOpened,
		Time:   ctx.Now,
		Entity: ctx.Actor.ID,
		Target: chest.ID,
	})

	if chest.Container.SkeletonChance > 0 && ctx.RNG.Float64() < chest.Container.SkeletonChance {
		raiseSkeleton(ctx, chest.Pos)
	}
	return Completed
}

// raiseSkeleton spawns a hostile on the first free tile around pos.
// Silently does nothing when the coffin is fully hemmed in.
func raiseSkeleton(ctx *Context, pos domain.Position) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			at := pos.Shift(dx, dy)
			if !ctx.Grid.IsWalkable(at) || ctx.World.BlockerAt(at) != nil {
				continue
			}
			s := worldgen.NewSkeleton(ctx.World, at)
			s.Actor.LastRegen = ctx.Now
			logger.Log.WithFields(logrus.Fields{
				"entity": s.ID,
				"pos":    at,
			}).Debug("coffin occupant raised")
			ctx.Events.Push(domain.Event{
				Type:   domain.EventSpawned,
				Time:   ctx.Now,
				Entity: s.ID,
				To:     &at,
			})
			return
		}
	}
}

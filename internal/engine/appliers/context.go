// Package appliers holds one effect function per action kind. Every
// applier re-validates its own preconditions against the live world
// at completion time: between scheduling and firing, other agents may
// have moved, died, or blocked the destination, so nothing captured
// at decision time is trusted.
package appliers

import (
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
)

// Result is the outcome of applying an action. Blocked and Invalid
// are not errors: the energy was spent when the action started and
// time passed regardless.
type Result uint8

const (
	// Completed: the effect was applied.
	Completed Result = iota
	// Blocked: an occupancy or reachability check failed at
	// completion time.
	Blocked
	// Invalid: a required component or entity vanished between
	// decision and dispatch.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Completed:
		return "completed"
	case Blocked:
		return "blocked"
	default:
		return "invalid"
	}
}

// Context hands an applier the live world. Actor is the entity whose
// action is completing; Action is what it committed to at start time.
type Context struct {
	World  *domain.World
	Grid   *grid.Grid
	Tuning *tuning.Tuning
	RNG    *rand.Rand
	Events *domain.EventQueue
	Now    float64
	Actor  *domain.Entity
	Action domain.Action
}

// Func is the contract every applier satisfies.
type Func func(ctx *Context) Result

var registry = map[domain.ActionKind]Func{
	domain.ActionMove:      ApplyMove,
	domain.ActionAttack:    ApplyAttack,
	domain.ActionOpenDoor:  ApplyOpenDoor,
	domain.ActionOpenChest: ApplyOpenChest,
	domain.ActionUseStairs: ApplyUseStairs,
	domain.ActionShoot:     ApplyShoot,
	domain.ActionThrow:     ApplyThrow,
	domain.ActionBlink:     ApplyBlink,
	domain.ActionFireball:  ApplyFireball,
	domain.ActionEquip:     ApplyEquip,
	domain.ActionUnequip:   ApplyUnequip,
	domain.ActionDrop:      ApplyDrop,
	domain.ActionTalk:      ApplyTalk,
	domain.ActionWait:      ApplyWait,
}

// Apply dispatches to the applier for the action's kind. Unknown
// kinds resolve to Invalid rather than crashing the loop.
func Apply(ctx *Context) Result {
	fn, ok := registry[ctx.Action.Kind]
	if !ok {
		return Invalid
	}
	return fn(ctx)
}

package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
	"delve-server/pkg/logger"
)

// Decision is what an agent resolved to do this turn. Exactly one
// shape applies: Act carries an action to start; otherwise SleepUntil
// (when positive) asks the driver to re-poll the agent at that time;
// a zero Decision means the agent is in no state to act and should
// not be rescheduled at all.
type Decision struct {
	Act        *domain.Action
	SleepUntil float64
}

func decideAct(a domain.Action) Decision {
	return Decision{Act: &a}
}

func decideSleep(until float64) Decision {
	return Decision{SleepUntil: until}
}

// AIContext bundles the collaborators a decision needs. One instance
// lives on the driver and is reused across calls.
type AIContext struct {
	World  *domain.World
	Grid   *grid.Grid
	Tuning *tuning.Tuning
	RNG    *rand.Rand
	Events *domain.EventQueue
	Now    float64
	Player domain.EntityID
}

// CanSeeTarget implements perception: Chebyshev distance within the
// sight radius, an unobstructed straight line (terrain or
// vision-blocking entities), and the target not Invisible.
func CanSeeTarget(ctx *AIContext, from, target *domain.Entity) bool {
	if from.AI == nil {
		return false
	}
	if from.Pos.Chebyshev(target.Pos) > from.AI.SightRadius {
		return false
	}
	if target.HasEffect(domain.EffectInvisible) {
		return false
	}
	return HasLine(ctx.Grid, from.Pos, target.Pos, func(p domain.Position) bool {
		return ctx.World.VisionBlockerAt(p)
	})
}

// DecideAction evaluates one autonomous agent and resolves its next
// move. Order matters: dormancy and energy gating short-circuit the
// expensive work, status overrides preempt the automaton, and the
// ranged check runs before any movement.
func DecideAction(ctx *AIContext, e *domain.Entity) Decision {
	if e.AI == nil || e.Actor == nil {
		return Decision{}
	}
	if e.Actor.Busy() {
		// Completion is already scheduled, nothing to decide.
		return decideSleep(e.Actor.Current.End)
	}

	player := ctx.World.Get(ctx.Player)
	if player == nil {
		return decideSleep(ctx.Now + ctx.Tuning.AI.DormantRecheck)
	}

	// Dormancy: agents far from the player get a coarse periodic
	// recheck instead of a full evaluation.
	if e.Pos.Manhattan(player.Pos) > ctx.Tuning.AI.ActivityRadius {
		return decideSleep(ctx.Now + ctx.Tuning.AI.DormantRecheck)
	}

	// Energy gating: wake exactly when regeneration will cover the
	// standard action cost.
	if e.Actor.Energy < e.Actor.CostPerAction {
		at, ok := e.Actor.NextEnergyAt(e.Actor.CostPerAction)
		if !ok || at <= ctx.Now {
			return decideSleep(ctx.Now + ctx.Tuning.AI.DormantRecheck)
		}
		return decideSleep(at)
	}

	// Status overrides preempt everything the automaton would do.
	if e.HasEffect(domain.EffectConfused) {
		return decideAct(confusedStep(ctx, e))
	}
	if e.HasEffect(domain.EffectFeared) {
		return decideAct(fearedStep(ctx, e, player))
	}

	perceives := CanSeeTarget(ctx, e, player)
	advanceAutomaton(ctx, e, player, perceives)

	if perceives {
		if shot, ok := rangedOpportunity(ctx, e, player); ok {
			return decideAct(shot)
		}
	}

	return decideAct(resolveMovement(ctx, e, player))
}

// advanceAutomaton applies the three-state transition table and emits
// a notification on every state change.
func advanceAutomaton(ctx *AIContext, e *domain.Entity, player *domain.Entity, perceives bool) {
	ai := e.AI
	prev := ai.State

	switch {
	case perceives:
		ai.State = domain.StateChasing
		seen := player.Pos
		ai.LastKnown = &seen
	case ai.State == domain.StateChasing:
		// Lost sight: head for where the target was last seen.
		ai.State = domain.StateInvestigating
	case ai.State == domain.StateInvestigating:
		if ai.LastKnown == nil || e.Pos == *ai.LastKnown {
			ai.State = domain.StateIdle
			ai.LastKnown = nil
		}
	}

	if ai.State != prev {
		logger.Log.WithFields(logrus.Fields{
			"entity": e.ID,
			"from":   prev.String(),
			"to":     ai.State.String(),
		}).Debug("ai state transition")
		ctx.Events.Push(domain.Event{
			Type:   domain.EventAIStateChanged,
			Time:   ctx.Now,
			Entity: e.ID,
			State:  domain.StateRef(ai.State),
		})
	}
}

// rangedOpportunity fires when the agent wields a ranged weapon off
// cooldown, the target sits inside the firing band, and no entity
// stands on the line.
func rangedOpportunity(ctx *AIContext, e, target *domain.Entity) (domain.Action, bool) {
	weapon := e.RangedWeapon()
	if weapon == nil || e.Actor.RangedCooldown > 0 {
		return domain.Action{}, false
	}
	dist := e.Pos.Chebyshev(target.Pos)
	if dist < weapon.MinRange || dist > weapon.MaxRange {
		return domain.Action{}, false
	}
	clear := HasLine(ctx.Grid, e.Pos, target.Pos, func(p domain.Position) bool {
		return ctx.World.BlockerAt(p) != nil
	})
	if !clear {
		return domain.Action{}, false
	}
	at := target.Pos
	return domain.Action{Kind: domain.ActionShoot, Target: target.ID, TargetPos: &at}, true
}

// resolveMovement turns the automaton state into a concrete step via
// the pathfinding collaborator. Adjacent hostiles resolve to attacks;
// a missing path resolves to Wait.
func resolveMovement(ctx *AIContext, e *domain.Entity, player *domain.Entity) domain.Action {
	var goal domain.Position
	switch e.AI.State {
	case domain.StateChasing:
		if e.Pos.IsAdjacent(player.Pos) {
			dx, dy := e.Pos.DirectionTo(player.Pos)
			return domain.Action{Kind: domain.ActionAttack, Dx: dx, Dy: dy, Target: player.ID}
		}
		goal = player.Pos
	case domain.StateInvestigating:
		if e.AI.LastKnown == nil {
			return domain.Action{Kind: domain.ActionWait}
		}
		goal = *e.AI.LastKnown
	default:
		return idleWander(ctx, e)
	}

	blocked := ctx.World.BlockedPositions(e.ID)
	step, ok := NextStep(ctx.Grid, e.Pos, goal, blocked)
	if !ok {
		return domain.Action{Kind: domain.ActionWait}
	}
	dx, dy := e.Pos.DirectionTo(step)
	return moveAction(dx, dy)
}

// idleWander takes one random cardinal step while nothing demands
// attention. A single sample: if the drawn tile is a wall the agent
// simply waits this turn. Occupancy is not checked here, the move
// applier re-validates at completion.
func idleWander(ctx *AIContext, e *domain.Entity) domain.Action {
	d := cardinals[ctx.RNG.Intn(len(cardinals))]
	if !ctx.Grid.IsWalkable(e.Pos.Shift(d[0], d[1])) {
		return domain.Action{Kind: domain.ActionWait}
	}
	return moveAction(d[0], d[1])
}

var cardinals = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// confusedStep ignores the target entirely: a uniformly random
// walkable, unblocked adjacent tile, or hold when surrounded.
func confusedStep(ctx *AIContext, e *domain.Entity) domain.Action {
	var options [][2]int
	for _, d := range directions {
		next := e.Pos.Shift(d[0], d[1])
		if ctx.Grid.IsWalkable(next) && ctx.World.BlockerAt(next) == nil {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return domain.Action{Kind: domain.ActionWait}
	}
	d := options[ctx.RNG.Intn(len(options))]
	return moveAction(d[0], d[1])
}

// fearedStep retreats from the threat: the full away diagonal first,
// then either single axis, then any open tile as a last resort.
func fearedStep(ctx *AIContext, e *domain.Entity, player *domain.Entity) domain.Action {
	threat := player.Pos
	if e.AI.LastKnown != nil {
		threat = *e.AI.LastKnown
	}
	dx, dy := threat.DirectionTo(e.Pos) // points away from the threat

	candidates := [][2]int{{dx, dy}, {dx, 0}, {0, dy}}
	for _, d := range candidates {
		if d[0] == 0 && d[1] == 0 {
			continue
		}
		next := e.Pos.Shift(d[0], d[1])
		if ctx.Grid.IsWalkable(next) && ctx.World.BlockerAt(next) == nil {
			return moveAction(d[0], d[1])
		}
	}
	// Cornered: wander anywhere open rather than stand still.
	return confusedStep(ctx, e)
}

func moveAction(dx, dy int) domain.Action {
	return domain.Action{
		Kind:     domain.ActionMove,
		Dx:       dx,
		Dy:       dy,
		Diagonal: dx != 0 && dy != 0,
	}
}

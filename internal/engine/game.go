package engine

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/systems"
	"delve-server/internal/tuning"
	"delve-server/pkg/logger"
)

var (
	// ErrEnergyUnreachable: the requirement exceeds the actor's
	// maximum possible energy, so no amount of waiting helps.
	ErrEnergyUnreachable = errors.New("required energy exceeds maximum")
	// ErrEntityGone: the waited-on entity was removed mid-wait.
	ErrEntityGone = errors.New("entity removed while waiting")
)

// Journal records player actions for deterministic playback.
type Journal interface {
	Append(domain.ReplayRecord) error
}

// Game is the simulation driver: one world, one grid, one clock, one
// scheduler and one seeded PRNG. Everything runs on the calling
// goroutine; "concurrency" is chronological interleaving of agents
// through the scheduler, not threads.
type Game struct {
	World  *domain.World
	Grid   *grid.Grid
	Clock  *Clock
	Sched  *Scheduler
	Tuning *tuning.Tuning
	RNG    *rand.Rand
	Events *domain.EventQueue
	Player domain.EntityID
	// Journal is optional; nil disables recording.
	Journal Journal

	aictx *systems.AIContext
}

func NewGame(w *domain.World, g *grid.Grid, tn *tuning.Tuning, seed int64, player domain.EntityID) *Game {
	game := &Game{
		World:  w,
		Grid:   g,
		Clock:  &Clock{},
		Sched:  NewScheduler(),
		Tuning: tn,
		RNG:    rand.New(rand.NewSource(seed)),
		Events: &domain.EventQueue{},
		Player: player,
	}
	game.aictx = &systems.AIContext{
		World:  w,
		Grid:   g,
		Tuning: tn,
		RNG:    game.RNG,
		Events: game.Events,
		Player: player,
	}
	return game
}

// Bootstrap gives every autonomous agent its first wake-up so the
// event loop has something to chew on.
func (g *Game) Bootstrap() {
	for _, e := range g.World.Entities() {
		if e.AI != nil && e.Actor != nil {
			g.Sched.Schedule(e.ID, g.Clock.Now())
		}
	}
}

// StartPlayerAction starts an action for the controlled entity and
// journals it on success.
func (g *Game) StartPlayerAction(a domain.Action) error {
	p := g.World.Get(g.Player)
	if p == nil {
		return ErrNoActor
	}
	now := g.Clock.Now()
	if err := StartAction(p, a, now, g.Tuning, g.Sched); err != nil {
		return err
	}
	if g.Journal != nil {
		if err := g.Journal.Append(domain.ToRecord(now, a)); err != nil {
			logger.Log.WithError(err).Warn("journal append failed")
		}
	}
	return nil
}

// AdvanceUntilReady runs the event loop until the controlled entity
// can act again. Each iteration pops the earliest scheduled event,
// advances the clock to it, applies the periodic passes for the
// elapsed interval, completes the popped entity's action and, for
// autonomous entities, immediately re-invokes their decision loop so
// they schedule themselves onward.
func (g *Game) AdvanceUntilReady() {
	for {
		p := g.World.Get(g.Player)
		if p == nil || p.Actor == nil {
			return
		}
		if p.Actor.CanAct() {
			// One final catch-up so projectiles in flight are
			// current when control returns.
			systems.AdvanceProjectiles(g.World, g.Grid, g.Clock.Now(), g.Tuning, g.Events)
			return
		}
		if !g.step() {
			// Empty queue: nothing can ever make the player ready.
			logger.Log.Warn("scheduler drained while player not ready")
			return
		}
	}
}

// WaitForEnergy lets the controlled entity wait until regeneration
// covers required, while the rest of the world keeps acting. The wake
// time is computed from the regen phase, scheduled as a synthetic
// event, and the same loop runs up to it.
func (g *Game) WaitForEnergy(required int) error {
	for {
		p := g.World.Get(g.Player)
		if p == nil || p.Actor == nil {
			return ErrEntityGone
		}
		if p.Actor.Busy() {
			return ErrBusy
		}
		if required > p.Actor.MaxEnergy {
			return ErrEnergyUnreachable
		}
		p.Actor.Regen(g.Clock.Now())
		if p.Actor.Energy >= required {
			return nil
		}
		at, ok := p.Actor.NextEnergyAt(required)
		if !ok || at <= g.Clock.Now() {
			// A wake time not in the future means regeneration is
			// not closing the deficit (interval zero or negative);
			// scheduling it would spin the loop without progress.
			return ErrEnergyUnreachable
		}
		g.Sched.Schedule(p.ID, at)
		if !g.step() {
			return nil
		}
	}
}

// step processes exactly one scheduled event. Returns false when the
// queue is empty.
func (g *Game) step() bool {
	id, at, ok := g.Sched.PopNext()
	if !ok {
		return false
	}
	elapsed := g.Clock.AdvanceTo(at)
	now := g.Clock.Now()

	g.tick(elapsed, now)

	if e := g.World.Get(id); e != nil && e.Actor != nil && e.Actor.Current != nil && e.Actor.Current.End <= now {
		CompleteAction(g.World, g.Grid, g.Tuning, g.RNG, g.Events, e, now)
	}

	systems.SweepDead(g.World, g.Sched, now, g.Events)
	g.adoptUnscheduled(now)

	if id != g.Player {
		if e := g.World.Get(id); e != nil && e.AI != nil {
			g.decide(e, now)
		}
	}
	return true
}

// tick applies the periodic passes for one elapsed interval, in a
// fixed order: projectiles, health regen, energy regen, status
// countdown, cooldown countdown.
func (g *Game) tick(elapsed, now float64) {
	systems.AdvanceProjectiles(g.World, g.Grid, now, g.Tuning, g.Events)
	if elapsed <= 0 {
		return
	}
	for _, e := range g.World.Entities() {
		if e.Health != nil && e.HasEffect(domain.EffectRegenerating) {
			if healed := e.Health.Accrue(g.Tuning.Effects.RegeneratingHPS, elapsed); healed > 0 {
				g.Events.Push(domain.Event{Type: domain.EventHealed, Time: now, Entity: e.ID, Amount: healed})
			}
		}
	}
	for _, e := range g.World.Entities() {
		if e.Actor != nil {
			e.Actor.Regen(now)
		}
	}
	systems.TickEffects(g.World, elapsed, now, g.Events)
	for _, e := range g.World.Entities() {
		if e.Actor != nil && e.Actor.RangedCooldown > 0 {
			e.Actor.RangedCooldown -= elapsed
			if e.Actor.RangedCooldown < 0 {
				e.Actor.RangedCooldown = 0
			}
		}
	}
}

// decide runs the AI loop for one agent and acts on its decision.
func (g *Game) decide(e *domain.Entity, now float64) {
	g.aictx.Now = now
	d := systems.DecideAction(g.aictx, e)
	switch {
	case d.Act != nil:
		if err := StartAction(e, *d.Act, now, g.Tuning, g.Sched); err != nil {
			// The decision raced a state change; retry shortly.
			g.Sched.Schedule(e.ID, now+g.Tuning.Durations.Wait)
		}
	case d.SleepUntil > now:
		g.Sched.Schedule(e.ID, d.SleepUntil)
	}
	// A zero decision drops the agent: missing components mean it
	// no longer takes turns.
}

// adoptUnscheduled picks up agents that appeared mid-step (coffin
// spawns) and have no pending event yet.
func (g *Game) adoptUnscheduled(now float64) {
	for _, e := range g.World.Entities() {
		if e.AI == nil || e.Actor == nil || e.Actor.Busy() {
			continue
		}
		if !g.Sched.Has(e.ID) && e.ID != g.Player {
			g.Sched.Schedule(e.ID, now)
		}
	}
}

// Playback re-applies a journal against a freshly built game. The
// caller is responsible for reconstructing the same world and seed.
func (g *Game) Playback(records []domain.ReplayRecord) error {
	g.Bootstrap()
	for i, rec := range records {
		g.AdvanceUntilReady()
		p := g.World.Get(g.Player)
		if p == nil || p.Actor == nil {
			return fmt.Errorf("record %d: %w", i, ErrEntityGone)
		}
		if p.Actor.Energy < p.Actor.CostPerAction {
			if err := g.WaitForEnergy(p.Actor.CostPerAction); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		if err := g.StartPlayerAction(rec.ToAction()); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	g.AdvanceUntilReady()
	return nil
}

// Digest hashes the observable world state. Two runs of the same
// seed and inputs must produce identical digests.
func (g *Game) Digest() string {
	ids := make([]uint64, 0, g.World.Len())
	byID := make(map[uint64]*domain.Entity, g.World.Len())
	for _, e := range g.World.Entities() {
		ids = append(ids, uint64(e.ID))
		byID[uint64(e.ID)] = e
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := fnv.New64a()
	fmt.Fprintf(h, "t=%.6f;", g.Clock.Now())
	for _, id := range ids {
		e := byID[id]
		fmt.Fprintf(h, "%d@%d,%d", id, e.Pos.X, e.Pos.Y)
		if e.Health != nil {
			fmt.Fprintf(h, "hp%d", e.Health.HP)
		}
		if e.Actor != nil {
			fmt.Fprintf(h, "en%d", e.Actor.Energy)
		}
		fmt.Fprint(h, ";")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

package engine

import (
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/engine/appliers"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
	"delve-server/pkg/logger"
)

var (
	// ErrBusy: the actor already has an action in flight.
	ErrBusy = errors.New("actor is busy")
	// ErrInsufficientEnergy: the actor cannot afford the action.
	ErrInsufficientEnergy = errors.New("insufficient energy")
	// ErrNoActor: the entity has no Actor component.
	ErrNoActor = errors.New("entity cannot act")
)

// StartAction reserves the actor for an action: it debits the energy
// cost, stamps the in-progress marker and schedules the completion.
// On any failure nothing is mutated.
func StartAction(e *domain.Entity, a domain.Action, now float64, tn *tuning.Tuning, sched *Scheduler) error {
	if e.Actor == nil {
		return ErrNoActor
	}
	if e.Actor.Busy() {
		return ErrBusy
	}
	cost := e.Actor.CostPerAction
	if e.Actor.Energy < cost {
		return ErrInsufficientEnergy
	}

	duration := actionDuration(e, a, tn)
	e.Actor.Energy -= cost
	e.Actor.Current = &domain.ActionInProgress{
		Action: a,
		Start:  now,
		End:    now + duration,
	}
	sched.Schedule(e.ID, now+duration)

	logger.Log.WithFields(logrus.Fields{
		"entity": e.ID,
		"action": a.Kind.String(),
		"ends":   now + duration,
	}).Debug("action started")
	return nil
}

// actionDuration scales the base duration: diagonal moves take
// longer, fast actors finish sooner, Slowed actors drag.
func actionDuration(e *domain.Entity, a domain.Action, tn *tuning.Tuning) float64 {
	d := tn.Duration(a.Kind)
	if a.Kind == domain.ActionMove && a.Diagonal {
		d *= tn.Durations.DiagonalFactor
	}
	speed := e.Actor.Speed
	if speed <= 0 {
		speed = 1.0
	}
	if e.HasEffect(domain.EffectSlowed) {
		speed *= tn.Effects.SlowFactor
	}
	return d / speed
}

// CompleteAction clears the in-progress marker and dispatches to the
// matching effect applier. The energy paid at start is never
// refunded, whatever the applier returns.
func CompleteAction(w *domain.World, g *grid.Grid, tn *tuning.Tuning, rng *rand.Rand, events *domain.EventQueue, e *domain.Entity, now float64) appliers.Result {
	if e.Actor == nil || e.Actor.Current == nil {
		return appliers.Invalid
	}
	a := e.Actor.Current.Action
	e.Actor.Current = nil

	res := appliers.Apply(&appliers.Context{
		World:  w,
		Grid:   g,
		Tuning: tn,
		RNG:    rng,
		Events: events,
		Now:    now,
		Actor:  e,
		Action: a,
	})

	logger.Log.WithFields(logrus.Fields{
		"entity": e.ID,
		"action": a.Kind.String(),
		"result": res.String(),
	}).Debug("action completed")
	return res
}

package engine

import (
	"errors"
	"math/rand"
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
)

func testActor() *domain.Actor {
	return &domain.Actor{
		Energy: 5, MaxEnergy: 5, CostPerAction: 1,
		Speed: 1.0, RegenInterval: 1.0,
	}
}

func TestStartActionBusyMutatesNothing(t *testing.T) {
	tn := tuning.Default()
	s := NewScheduler()
	e := &domain.Entity{ID: id(1), Actor: testActor()}

	if err := StartAction(e, domain.Action{Kind: domain.ActionMove, Dx: 1}, 0, tn, s); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	energyAfterFirst := e.Actor.Energy
	current := e.Actor.Current

	err := StartAction(e, domain.Action{Kind: domain.ActionWait}, 0, tn, s)
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("second start = %v, want ErrBusy", err)
	}
	if e.Actor.Energy != energyAfterFirst {
		t.Error("busy failure changed energy")
	}
	if e.Actor.Current != current {
		t.Error("busy failure replaced the in-progress action")
	}
	if s.Len() != 1 {
		t.Errorf("scheduler has %d events, want the original 1", s.Len())
	}
}

func TestStartActionInsufficientEnergyMutatesNothing(t *testing.T) {
	tn := tuning.Default()
	s := NewScheduler()
	e := &domain.Entity{ID: id(1), Actor: testActor()}
	e.Actor.Energy = 0

	err := StartAction(e, domain.Action{Kind: domain.ActionMove, Dx: 1}, 0, tn, s)
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
	}
	if e.Actor.Energy != 0 || e.Actor.Current != nil {
		t.Error("failed start left partial mutation")
	}
	if s.Len() != 0 {
		t.Error("failed start scheduled a completion")
	}
}

func TestStartActionWithoutActor(t *testing.T) {
	e := &domain.Entity{ID: id(1)}
	err := StartAction(e, domain.Action{Kind: domain.ActionWait}, 0, tuning.Default(), NewScheduler())
	if !errors.Is(err, ErrNoActor) {
		t.Fatalf("err = %v, want ErrNoActor", err)
	}
}

func TestActionDurationScaling(t *testing.T) {
	tn := tuning.Default()
	e := &domain.Entity{Actor: testActor()}

	straight := actionDuration(e, domain.Action{Kind: domain.ActionMove, Dx: 1}, tn)
	if straight != tn.Durations.Move {
		t.Errorf("straight move duration = %f, want %f", straight, tn.Durations.Move)
	}

	diag := actionDuration(e, domain.Action{Kind: domain.ActionMove, Dx: 1, Dy: 1, Diagonal: true}, tn)
	if diag != tn.Durations.Move*tn.Durations.DiagonalFactor {
		t.Errorf("diagonal move duration = %f, want x%f", diag, tn.Durations.DiagonalFactor)
	}

	e.Actor.Speed = 2.0
	if got := actionDuration(e, domain.Action{Kind: domain.ActionMove, Dx: 1}, tn); got != tn.Durations.Move/2 {
		t.Errorf("fast actor duration = %f, want halved", got)
	}

	e.Actor.Speed = 1.0
	e.Effects = domain.NewStatusEffects()
	e.Effects.Add(domain.EffectSlowed, 10)
	slowed := actionDuration(e, domain.Action{Kind: domain.ActionMove, Dx: 1}, tn)
	if slowed != tn.Durations.Move/tn.Effects.SlowFactor {
		t.Errorf("slowed duration = %f, want %f", slowed, tn.Durations.Move/tn.Effects.SlowFactor)
	}
}

func TestCompleteMoveBlockedAtCompletionKeepsEnergySpent(t *testing.T) {
	tn := tuning.Default()
	s := NewScheduler()
	g := grid.OpenRoom(10, 10)
	w := domain.NewWorld(0)
	rng := rand.New(rand.NewSource(1))
	events := &domain.EventQueue{}

	mover := w.Add(&domain.Entity{
		ID: w.NewID(domain.KindPlayer), Pos: domain.Position{X: 2, Y: 2},
		BlocksMovement: true, Actor: testActor(),
	})

	// Destination empty at decision time.
	if err := StartAction(mover, domain.Action{Kind: domain.ActionMove, Dx: 1}, 0, tn, s); err != nil {
		t.Fatalf("start: %v", err)
	}
	spent := mover.Actor.Energy

	// Another entity claims the tile before completion.
	w.Add(&domain.Entity{
		ID: w.NewID(domain.KindMonster), Pos: domain.Position{X: 3, Y: 2},
		BlocksMovement: true,
	})

	res := CompleteAction(w, g, tn, rng, events, mover, 1.0)
	if res.String() != "blocked" {
		t.Fatalf("result = %v, want blocked", res)
	}
	if mover.Pos != (domain.Position{X: 2, Y: 2}) {
		t.Errorf("blocked move changed position to %v", mover.Pos)
	}
	if mover.Actor.Energy != spent {
		t.Error("energy refunded on a blocked completion")
	}
	if mover.Actor.Current != nil {
		t.Error("in-progress marker survived completion")
	}
}

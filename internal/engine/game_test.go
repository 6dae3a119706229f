package engine

import (
	"errors"
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
	"delve-server/internal/tuning"
)

func setupGame(rows []string, seed int64) (*Game, *domain.Entity) {
	g := grid.FromStrings(rows)
	w := domain.NewWorld(0)
	player := w.Add(&domain.Entity{
		ID:             w.NewID(domain.KindPlayer),
		Name:           "hero",
		Pos:            domain.Position{X: 1, Y: 1},
		BlocksMovement: true,
		Attackable:     true,
		Actor: &domain.Actor{
			Energy: 10, MaxEnergy: 10, CostPerAction: 1,
			Speed: 1.0, RegenInterval: 1.0,
		},
		Health:  &domain.Health{HP: 30, MaxHP: 30},
		Effects: domain.NewStatusEffects(),
	})
	game := NewGame(w, g, tuning.Default(), seed, player.ID)
	return game, player
}

func addMonster(game *Game, pos domain.Position, sight int) *domain.Entity {
	return game.World.Add(&domain.Entity{
		ID:             game.World.NewID(domain.KindMonster),
		Name:           "ghoul",
		Pos:            pos,
		BlocksMovement: true,
		Attackable:     true,
		Hostile:        true,
		Actor: &domain.Actor{
			Energy: 10, MaxEnergy: 10, CostPerAction: 1,
			Speed: 1.0, RegenInterval: 1.0,
		},
		AI:      &domain.AIAgent{SightRadius: sight},
		Health:  &domain.Health{HP: 10, MaxHP: 10},
		Effects: domain.NewStatusEffects(),
	})
}

var openRoom = []string{
	"##########",
	"#........#",
	"#........#",
	"#........#",
	"##########",
}

func TestThreeMovesDrainThreeEnergy(t *testing.T) {
	game, player := setupGame(openRoom, 1)
	player.Actor.Energy = 3
	player.Actor.MaxEnergy = 3
	// Freeze regeneration so exactly three turns are affordable.
	player.Actor.RegenInterval = 1e9

	for i := 0; i < 3; i++ {
		if err := game.StartPlayerAction(domain.Action{Kind: domain.ActionMove, Dx: 1}); err != nil {
			t.Fatalf("move %d refused: %v", i+1, err)
		}
		game.AdvanceUntilReady()
		if player.Actor.Current != nil {
			t.Fatalf("move %d never completed", i+1)
		}
	}

	if player.Actor.Energy != 0 {
		t.Fatalf("energy = %d after three moves, want 0", player.Actor.Energy)
	}
	if player.Pos != (domain.Position{X: 4, Y: 1}) {
		t.Errorf("player at %v, want (4,1)", player.Pos)
	}

	err := game.StartPlayerAction(domain.Action{Kind: domain.ActionMove, Dx: 1})
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("fourth move = %v, want ErrInsufficientEnergy", err)
	}
}

func TestAdvanceUntilReadyRunsMonsters(t *testing.T) {
	game, player := setupGame(openRoom, 2)
	m := addMonster(game, domain.Position{X: 7, Y: 1}, 8)
	game.Bootstrap()

	if err := game.StartPlayerAction(domain.Action{Kind: domain.ActionWait}); err != nil {
		t.Fatalf("wait refused: %v", err)
	}
	game.AdvanceUntilReady()

	if game.Clock.Now() <= 0 {
		t.Error("clock did not advance")
	}
	if player.Actor.Current != nil {
		t.Error("player still busy after AdvanceUntilReady")
	}
	// The monster saw the player and closed in.
	if m.AI.State != domain.StateChasing {
		t.Errorf("monster state = %v, want chasing", m.AI.State)
	}

	var sawStateChange bool
	for _, ev := range game.Events.Drain() {
		if ev.Type == domain.EventAIStateChanged && ev.Entity == m.ID {
			sawStateChange = true
		}
	}
	if !sawStateChange {
		t.Error("no state-change event for the monster")
	}
}

func TestMonsterClosesAndAttacks(t *testing.T) {
	game, player := setupGame(openRoom, 3)
	addMonster(game, domain.Position{X: 4, Y: 1}, 8)
	game.Bootstrap()

	hpBefore := player.Health.HP
	for i := 0; i < 8; i++ {
		if err := game.StartPlayerAction(domain.Action{Kind: domain.ActionWait}); err != nil {
			t.Fatalf("wait %d refused: %v", i, err)
		}
		game.AdvanceUntilReady()
	}
	if player.Health.HP >= hpBefore {
		t.Errorf("player HP %d -> %d; adjacent monster never landed a hit", hpBefore, player.Health.HP)
	}
}

func TestWaitForEnergy(t *testing.T) {
	game, player := setupGame(openRoom, 4)

	t.Run("reaches the requirement while time passes", func(t *testing.T) {
		player.Actor.Energy = 1
		before := game.Clock.Now()
		if err := game.WaitForEnergy(4); err != nil {
			t.Fatalf("WaitForEnergy: %v", err)
		}
		if player.Actor.Energy < 4 {
			t.Errorf("energy = %d after waiting, want >= 4", player.Actor.Energy)
		}
		if game.Clock.Now() <= before {
			t.Error("waiting consumed no simulation time")
		}
	})

	t.Run("fails when the requirement is unreachable", func(t *testing.T) {
		if err := game.WaitForEnergy(player.Actor.MaxEnergy + 1); !errors.Is(err, ErrEnergyUnreachable) {
			t.Fatalf("err = %v, want ErrEnergyUnreachable", err)
		}
	})

	t.Run("fails instead of spinning when regeneration is disabled", func(t *testing.T) {
		player.Actor.Energy = 1
		player.Actor.RegenInterval = 0
		// With no regeneration the deficit never closes; the wait
		// must return an error rather than loop on a stale wake time.
		if err := game.WaitForEnergy(5); !errors.Is(err, ErrEnergyUnreachable) {
			t.Fatalf("err = %v, want ErrEnergyUnreachable", err)
		}
	})
}

func TestDeterministicReplayDigest(t *testing.T) {
	run := func() string {
		game, _ := setupGame(openRoom, 99)
		addMonster(game, domain.Position{X: 7, Y: 3}, 8)
		game.Bootstrap()
		for i := 0; i < 10; i++ {
			game.AdvanceUntilReady()
			game.StartPlayerAction(domain.Action{Kind: domain.ActionMove, Dx: 1})
			game.AdvanceUntilReady()
		}
		return game.Digest()
	}

	first := run()
	for i := 0; i < 3; i++ {
		if again := run(); again != first {
			t.Fatalf("run %d digest %s differs from %s", i, again, first)
		}
	}
}

func TestDeadMonsterStopsActing(t *testing.T) {
	game, _ := setupGame(openRoom, 5)
	m := addMonster(game, domain.Position{X: 3, Y: 1}, 8)
	game.Bootstrap()

	m.Health.HP = 0
	if err := game.StartPlayerAction(domain.Action{Kind: domain.ActionWait}); err != nil {
		t.Fatal(err)
	}
	game.AdvanceUntilReady()

	if m.Actor != nil || m.AI != nil {
		t.Error("dead monster kept acting components")
	}
	if game.Sched.Has(m.ID) {
		t.Error("dead monster still scheduled")
	}
	if m.Container == nil {
		t.Error("dead monster left no remains")
	}
}

package systems

import (
	"math/rand"
	"testing"

	"delve-server/internal/domain"
	"delve-server/internal/tuning"
)

type fakeCanceller struct {
	cancelled []domain.EntityID
}

func (f *fakeCanceller) CancelEntity(id domain.EntityID) {
	f.cancelled = append(f.cancelled, id)
}

func TestRollDamageBoundsAndModifiers(t *testing.T) {
	tn := tuning.Default()
	rng := rand.New(rand.NewSource(7))
	w := domain.NewWorld(0)
	attacker := newAgent(w, domain.Position{X: 1, Y: 1}, 8)
	defender := newPlayer(w, domain.Position{X: 2, Y: 1})

	attacker.Equipment = &domain.Equipment{Weapon: &domain.Weapon{Damage: 10}}

	for i := 0; i < 200; i++ {
		dmg, _ := RollDamage(rng, attacker, defender, tn)
		// 10 * [0.8, 1.2], possibly *1.1 crit, rounds inside [8, 14].
		if dmg < 8 || dmg > 14 {
			t.Fatalf("damage %d outside the variance envelope", dmg)
		}
	}

	t.Run("protected halves incoming damage", func(t *testing.T) {
		defender.Effects = domain.NewStatusEffects()
		defender.Effects.Add(domain.EffectProtected, 10)
		for i := 0; i < 50; i++ {
			dmg, _ := RollDamage(rng, attacker, defender, tn)
			if dmg > 7 {
				t.Fatalf("protected defender took %d", dmg)
			}
		}
		defender.Effects.Remove(domain.EffectProtected)
	})

	t.Run("unarmed fallback", func(t *testing.T) {
		attacker.Equipment = nil
		for i := 0; i < 50; i++ {
			dmg, _ := RollDamage(rng, attacker, defender, tn)
			if dmg < 1 || dmg > 3 {
				t.Fatalf("unarmed damage %d outside envelope", dmg)
			}
		}
	})
}

func TestSweepDeadConvertsToRemains(t *testing.T) {
	w := domain.NewWorld(0)
	events := &domain.EventQueue{}
	sched := &fakeCanceller{}

	m := newAgent(w, domain.Position{X: 3, Y: 3}, 8)
	m.Equipment = &domain.Equipment{
		WeaponName: "rusty sword",
		Weapon:     &domain.Weapon{Damage: 4},
	}
	m.Health.HP = 0

	alive := newAgent(w, domain.Position{X: 5, Y: 5}, 8)

	SweepDead(w, sched, 12.0, events)

	if len(sched.cancelled) != 1 || sched.cancelled[0] != m.ID {
		t.Fatalf("cancelled = %v, want exactly the dead entity", sched.cancelled)
	}
	if m.Actor != nil || m.AI != nil || m.Health != nil {
		t.Error("acting components survived death")
	}
	if m.BlocksMovement || m.Attackable {
		t.Error("remains still block or invite attacks")
	}
	if m.Container == nil || len(m.Container.Items) != 1 {
		t.Fatalf("remains container = %+v, want the equipped weapon as loot", m.Container)
	}
	if m.Container.Items[0].Name != "rusty sword" {
		t.Errorf("loot = %q, want the dropped weapon", m.Container.Items[0].Name)
	}
	if alive.Actor == nil {
		t.Error("living entity was swept")
	}

	var died int
	for _, ev := range events.Drain() {
		if ev.Type == domain.EventDied && ev.Entity == m.ID {
			died++
		}
	}
	if died != 1 {
		t.Errorf("death events = %d, want 1", died)
	}
}

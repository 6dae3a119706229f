package domain

import "testing"

func TestActorRegen(t *testing.T) {
	t.Run("accrues whole points and keeps phase", func(t *testing.T) {
		a := &Actor{Energy: 0, MaxEnergy: 10, RegenInterval: 2.0, LastRegen: 0}

		if gained := a.Regen(1.5); gained != 0 {
			t.Fatalf("gained %d before a full interval elapsed", gained)
		}
		if a.LastRegen != 0 {
			t.Errorf("LastRegen moved to %f on a no-op regen", a.LastRegen)
		}

		gained := a.Regen(5.0) // 2.5 intervals
		if gained != 2 {
			t.Fatalf("gained = %d, want 2", gained)
		}
		// Remainder of 1.0s must carry: next point lands at t=6.
		if a.LastRegen != 4.0 {
			t.Errorf("LastRegen = %f, want 4.0", a.LastRegen)
		}
		if gained := a.Regen(6.0); gained != 1 {
			t.Errorf("gained = %d at the carried interval boundary, want 1", gained)
		}
	})

	t.Run("clamps at max but still advances the timestamp", func(t *testing.T) {
		a := &Actor{Energy: 9, MaxEnergy: 10, RegenInterval: 1.0, LastRegen: 0}
		if gained := a.Regen(5.0); gained != 1 {
			t.Fatalf("gained = %d, want 1 (clamped)", gained)
		}
		if a.LastRegen != 5.0 {
			t.Errorf("LastRegen = %f, want 5.0", a.LastRegen)
		}
	})
}

func TestActorNextEnergyAt(t *testing.T) {
	a := &Actor{Energy: 1, MaxEnergy: 5, RegenInterval: 3.0, LastRegen: 10.0}

	at, ok := a.NextEnergyAt(3)
	if !ok {
		t.Fatal("NextEnergyAt refused a reachable requirement")
	}
	if at != 16.0 { // two points, 3s each, from LastRegen=10
		t.Errorf("at = %f, want 16.0", at)
	}

	if _, ok := a.NextEnergyAt(6); ok {
		t.Error("NextEnergyAt accepted a requirement above MaxEnergy")
	}
}

func TestStatusEffectsTick(t *testing.T) {
	s := NewStatusEffects()
	s.Add(EffectConfused, 2.0)
	s.Add(EffectSlowed, 5.0)

	// Reapplying with a shorter duration must not shorten.
	s.Add(EffectSlowed, 1.0)

	expired := s.Tick(2.5)
	if len(expired) != 1 || expired[0] != EffectConfused {
		t.Fatalf("expired = %v, want [confused]", expired)
	}
	if !s.Has(EffectSlowed) {
		t.Error("slowed expired early despite the longer duration")
	}
	if s.Has(EffectConfused) {
		t.Error("confused still present after expiry")
	}
}

func TestHealthAccrue(t *testing.T) {
	h := &Health{HP: 10, MaxHP: 20}
	if healed := h.Accrue(2.0, 0.4); healed != 0 {
		t.Fatalf("healed %d from a sub-point accrual", healed)
	}
	if healed := h.Accrue(2.0, 0.4); healed != 1 {
		t.Fatalf("healed = %d, want 1 once the carry crosses a point", healed)
	}
}

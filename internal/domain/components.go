package domain

import "math"

// Actor is the energy/timing component. Anything that takes turns has
// one: the player, monsters, NPCs.
type Actor struct {
	Energy    int
	MaxEnergy int
	// CostPerAction is debited when an action starts.
	CostPerAction int
	// Speed divides action durations. 2.0 acts twice as fast.
	Speed float64
	// RegenInterval is seconds per point of regenerated energy.
	RegenInterval float64
	LastRegen     float64
	// RangedCooldown blocks further shots until it reaches zero.
	RangedCooldown float64
	Current        *ActionInProgress
}

// Busy reports whether an action is already in flight.
func (a *Actor) Busy() bool {
	return a.Current != nil
}

// CanAct reports whether the actor is free and can afford its
// standard action right now.
func (a *Actor) CanAct() bool {
	return a.Current == nil && a.Energy >= a.CostPerAction
}

// Regen applies energy regeneration up to now and returns the points
// gained. LastRegen keeps the fractional remainder of the interval so
// regeneration stays phase-accurate across uneven steps.
func (a *Actor) Regen(now float64) int {
	if a.RegenInterval <= 0 {
		return 0
	}
	elapsed := now - a.LastRegen
	if elapsed < a.RegenInterval {
		return 0
	}
	gained := int(math.Floor(elapsed / a.RegenInterval))
	a.LastRegen = now - math.Mod(elapsed, a.RegenInterval)
	if a.Energy >= a.MaxEnergy {
		return 0
	}
	before := a.Energy
	a.Energy += gained
	if a.Energy > a.MaxEnergy {
		a.Energy = a.MaxEnergy
	}
	return a.Energy - before
}

// NextEnergyAt returns the simulation time at which the actor will
// have at least required energy, assuming no further spending. The
// second result is false when required exceeds MaxEnergy.
func (a *Actor) NextEnergyAt(required int) (float64, bool) {
	if required > a.MaxEnergy {
		return 0, false
	}
	deficit := required - a.Energy
	if deficit <= 0 {
		return a.LastRegen, true
	}
	return a.LastRegen + float64(deficit)*a.RegenInterval, true
}

// Health is hit points plus the fractional carry used by regeneration
// so integer HP still accrues smoothly over time.
type Health struct {
	HP         int
	MaxHP      int
	regenCarry float64
}

// Heal adds hp, clamped to MaxHP, and returns the amount actually
// restored.
func (h *Health) Heal(hp int) int {
	if hp <= 0 || h.HP >= h.MaxHP {
		return 0
	}
	before := h.HP
	h.HP += hp
	if h.HP > h.MaxHP {
		h.HP = h.MaxHP
	}
	return h.HP - before
}

// Accrue converts a fractional heal rate over elapsed seconds into
// whole points, banking the remainder.
func (h *Health) Accrue(rate, elapsed float64) int {
	h.regenCarry += rate * elapsed
	whole := int(math.Floor(h.regenCarry))
	if whole <= 0 {
		return 0
	}
	h.regenCarry -= float64(whole)
	return h.Heal(whole)
}

// AIAgent drives an autonomous entity. LastKnown is nil while the
// agent has never perceived a target or has given up.
type AIAgent struct {
	SightRadius int
	State       AIState
	LastKnown   *Position
}

// Door is a blocking tile entity until opened.
type Door struct {
	Open bool
}

// Container is a lootable chest, coffin or corpse.
type Container struct {
	Items  []Item
	Opened bool
	// SkeletonChance is the probability that opening disturbs an
	// occupant (coffins).
	SkeletonChance float64
}

// Stairs connects floors.
type Stairs struct {
	Down bool
}

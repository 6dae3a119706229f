package systems

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/tuning"
	"delve-server/pkg/logger"
)

// EventCanceller is the slice of the scheduler the death sweep needs:
// purging pending events for entities that no longer act.
type EventCanceller interface {
	CancelEntity(id domain.EntityID)
}

// RollDamage computes an attack's damage from the attacker's weapon,
// random variance, crit roll, and status modifiers on both sides.
func RollDamage(rng *rand.Rand, attacker, defender *domain.Entity, tn *tuning.Tuning) (int, bool) {
	base := tn.Combat.UnarmedDamage
	if attacker.Equipment != nil && attacker.Equipment.Weapon != nil {
		base = attacker.Equipment.Weapon.Damage
	}

	spread := tn.Combat.VarianceMax - tn.Combat.VarianceMin
	dmg := float64(base) * (tn.Combat.VarianceMin + rng.Float64()*spread)

	crit := rng.Float64() < tn.Combat.CritChance
	if crit {
		dmg *= tn.Combat.CritMultiplier
	}
	if attacker.HasEffect(domain.EffectStrengthened) {
		dmg *= tn.Combat.StrengthMultiplier
	}
	if defender.HasEffect(domain.EffectProtected) {
		dmg *= tn.Combat.ProtectMultiplier
	}

	final := int(math.Round(dmg))
	if final < 1 {
		final = 1
	}
	return final, crit
}

// Hurt applies damage to an entity if it can take any, emitting the
// attack event. Returns the amount dealt.
func Hurt(target *domain.Entity, by domain.EntityID, dmg int, crit bool, now float64, events *domain.EventQueue) int {
	if target.Health == nil {
		return 0
	}
	target.Health.HP -= dmg
	events.Push(domain.Event{
		Type:   domain.EventAttacked,
		Time:   now,
		Entity: by,
		Target: target.ID,
		Amount: dmg,
		Crit:   crit,
	})
	return dmg
}

// SweepDead finds every entity at or below zero HP, cancels its
// scheduled events, and converts it into lootable remains: all acting
// and blocking components stripped, inventory moved into a container.
// Projectiles in flight from the dead entity keep flying.
func SweepDead(w *domain.World, sched EventCanceller, now float64, events *domain.EventQueue) {
	// Snapshot: conversion mutates components but not membership, yet
	// a future change should not be able to break this loop.
	snapshot := append([]*domain.Entity(nil), w.Entities()...)
	for _, e := range snapshot {
		if e.Health == nil || e.Health.HP > 0 {
			continue
		}

		sched.CancelEntity(e.ID)

		logger.Log.WithFields(logrus.Fields{
			"entity": e.ID,
			"name":   e.Name,
		}).Debug("entity died, converting to remains")

		var loot []domain.Item
		if e.Inventory != nil {
			loot = e.Inventory.Items
		}
		if e.Equipment != nil && e.Equipment.Weapon != nil {
			loot = append(loot, domain.Item{
				Name:     e.Equipment.WeaponName,
				Category: domain.ItemWeapon,
				Weapon:   e.Equipment.Weapon,
			})
		}

		e.Actor = nil
		e.AI = nil
		e.Health = nil
		e.Effects = nil
		e.Equipment = nil
		e.Inventory = nil
		e.Attackable = false
		e.BlocksMovement = false
		e.BlocksVision = false
		e.Container = &domain.Container{Items: loot}

		at := e.Pos
		events.Push(domain.Event{Type: domain.EventDied, Time: now, Entity: e.ID, To: &at})
	}
}

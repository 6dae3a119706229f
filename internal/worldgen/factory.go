// Package worldgen spawns the entities a floor is populated with.
// Presets live here so balancing stays in one place; the numeric
// simulation knobs live in tuning.
package worldgen

import (
	"delve-server/internal/domain"
)

// Item presets used as starting gear and chest loot.
var (
	IronSword = domain.Item{
		Name:     "iron sword",
		Category: domain.ItemWeapon,
		Weapon:   &domain.Weapon{Damage: 6},
	}
	ShortBow = domain.Item{
		Name:     "short bow",
		Category: domain.ItemWeapon,
		Weapon:   &domain.Weapon{Damage: 4, Ranged: true, MinRange: 2, MaxRange: 8},
	}
	HealthPotion = domain.Item{
		Name:     "health potion",
		Category: domain.ItemPotion,
		Potion:   &domain.PotionPayload{Heal: 20},
	}
	ConfusionPotion = domain.Item{
		Name:     "potion of confusion",
		Category: domain.ItemPotion,
		Potion: &domain.PotionPayload{
			Effect:         domain.EffectConfused,
			HasEffect:      true,
			EffectDuration: 30,
		},
	}
)

// NewPlayer spawns the controlled entity with its starting gear.
func NewPlayer(w *domain.World, pos domain.Position) *domain.Entity {
	sword := IronSword
	p := &domain.Entity{
		ID:             w.NewID(domain.KindPlayer),
		Name:           "hero",
		Pos:            pos,
		BlocksMovement: true,
		Attackable:     true,
		Actor: &domain.Actor{
			Energy:        30,
			MaxEnergy:     30,
			CostPerAction: 10,
			Speed:         1.0,
			RegenInterval: 0.5,
		},
		Health:  &domain.Health{HP: 100, MaxHP: 100},
		Effects: domain.NewStatusEffects(),
		Equipment: &domain.Equipment{
			Weapon:     sword.Weapon,
			WeaponName: sword.Name,
		},
		Inventory: &domain.Inventory{
			Items: []domain.Item{ShortBow, HealthPotion, ConfusionPotion},
		},
	}
	return w.Add(p)
}

// NewMonster spawns a melee hostile that chases on sight.
func NewMonster(w *domain.World, name string, pos domain.Position) *domain.Entity {
	m := &domain.Entity{
		ID:             w.NewID(domain.KindMonster),
		Name:           name,
		Pos:            pos,
		BlocksMovement: true,
		Attackable:     true,
		Hostile:        true,
		Actor: &domain.Actor{
			Energy:        20,
			MaxEnergy:     20,
			CostPerAction: 10,
			Speed:         0.8,
			RegenInterval: 0.6,
		},
		Health:  &domain.Health{HP: 30, MaxHP: 30},
		Effects: domain.NewStatusEffects(),
		AI:      &domain.AIAgent{SightRadius: 8},
		Inventory: &domain.Inventory{
			Items: []domain.Item{HealthPotion},
		},
	}
	return w.Add(m)
}

// NewArcher spawns a ranged hostile that holds its distance.
func NewArcher(w *domain.World, pos domain.Position) *domain.Entity {
	bow := ShortBow
	a := NewMonster(w, "skeleton archer", pos)
	a.Health.HP = 20
	a.Health.MaxHP = 20
	a.Equipment = &domain.Equipment{
		Weapon:     bow.Weapon,
		WeaponName: bow.Name,
	}
	return a
}

// NewSkeleton spawns the hostile a disturbed coffin releases.
func NewSkeleton(w *domain.World, pos domain.Position) *domain.Entity {
	s := NewMonster(w, "skeleton", pos)
	s.Health.HP = 15
	s.Health.MaxHP = 15
	s.Inventory = nil
	return s
}

// NewDoor spawns a closed door. It blocks movement and vision until
// opened.
func NewDoor(w *domain.World, pos domain.Position) *domain.Entity {
	d := &domain.Entity{
		ID:             w.NewID(domain.KindDoor),
		Name:           "door",
		Pos:            pos,
		BlocksMovement: true,
		BlocksVision:   true,
		Door:           &domain.Door{},
	}
	return w.Add(d)
}

// NewChest spawns a lootable chest with the given contents.
func NewChest(w *domain.World, pos domain.Position, items ...domain.Item) *domain.Entity {
	c := &domain.Entity{
		ID:             w.NewID(domain.KindChest),
		Name:           "chest",
		Pos:            pos,
		BlocksMovement: true,
		Container:      &domain.Container{Items: items},
	}
	return w.Add(c)
}

// NewCoffin spawns a container that may release a skeleton when
// opened.
func NewCoffin(w *domain.World, pos domain.Position, skeletonChance float64, items ...domain.Item) *domain.Entity {
	c := NewChest(w, pos, items...)
	c.Name = "coffin"
	c.Container.SkeletonChance = skeletonChance
	return c
}

// NewStairs spawns a staircase. Walkable; using it is an action.
func NewStairs(w *domain.World, pos domain.Position, down bool) *domain.Entity {
	s := &domain.Entity{
		ID:     w.NewID(domain.KindStairs),
		Name:   "stairs",
		Pos:    pos,
		Stairs: &domain.Stairs{Down: down},
	}
	return w.Add(s)
}

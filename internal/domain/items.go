package domain

import "math"

// ItemCategory is a coarse grouping for inventory and throw handling.
type ItemCategory uint8

const (
	ItemMisc ItemCategory = iota
	ItemWeapon
	ItemPotion
)

// Weapon describes the combat profile of an equippable item. Ranged
// weapons carry a firing band; melee weapons leave it zero.
type Weapon struct {
	Damage   int
	Ranged   bool
	MinRange int
	MaxRange int
}

// PotionPayload describes what a potion does when drunk or when it
// shatters on a splash tile.
type PotionPayload struct {
	Heal   int
	Damage int
	Effect EffectKind
	// HasEffect distinguishes "apply Effect" from the zero value,
	// EffectConfused being a valid kind.
	HasEffect      bool
	EffectDuration float64
}

// Item is an inventory entry. Exactly one of Weapon/Potion is set for
// the corresponding category.
type Item struct {
	Name     string
	Category ItemCategory
	Weapon   *Weapon
	Potion   *PotionPayload
}

// Inventory is an ordered bag of items. Slots are stable until an
// item is removed.
type Inventory struct {
	Items []Item
}

func (inv *Inventory) At(slot int) (Item, bool) {
	if slot < 0 || slot >= len(inv.Items) {
		return Item{}, false
	}
	return inv.Items[slot], true
}

func (inv *Inventory) RemoveAt(slot int) (Item, bool) {
	it, ok := inv.At(slot)
	if !ok {
		return Item{}, false
	}
	inv.Items = append(inv.Items[:slot], inv.Items[slot+1:]...)
	return it, true
}

// Equipment holds what an entity currently wields.
type Equipment struct {
	Weapon     *Weapon
	WeaponName string
}

// ProjectileKind selects collision and landing behaviour.
type ProjectileKind uint8

const (
	// ProjectileArrow flies until it hits something attackable or a wall.
	ProjectileArrow ProjectileKind = iota
	// ProjectilePotion flies to its target tile and shatters there.
	ProjectilePotion
)

// Projectile is the traced flight of a shot or thrown object. Path is
// the precomputed tile sequence; arrival at Path[i] happens at
// Launched + (i+1)/Speed seconds. Cursor is the last index already
// processed by the advancement pass.
type Projectile struct {
	Kind     ProjectileKind
	Path     []Position
	Launched float64
	Speed    float64
	Cursor   int
	Source   EntityID
	Damage   int
	Payload  *PotionPayload
	// SplashRadius widens the landing effect of a potion.
	SplashRadius int
}

// TilesTraveled returns how many path tiles the projectile has fully
// reached by time now.
func (p *Projectile) TilesTraveled(now float64) int {
	if now <= p.Launched || p.Speed <= 0 {
		return 0
	}
	return int(math.Floor((now - p.Launched) * p.Speed))
}

package appliers

import (
	"delve-server/internal/domain"
)

// ApplyEquip wields the weapon in the given inventory slot, swapping
// the currently held one back into the bag.
func ApplyEquip(ctx *Context) Result {
	e := ctx.Actor
	if e.Inventory == nil {
		return Invalid
	}
	item, ok := e.Inventory.At(ctx.Action.Slot)
	if !ok || item.Category != domain.ItemWeapon || item.Weapon == nil {
		return Invalid
	}

	e.Inventory.RemoveAt(ctx.Action.Slot)
	if e.Equipment == nil {
		e.Equipment = &domain.Equipment{}
	}
	if e.Equipment.Weapon != nil {
		e.Inventory.Items = append(e.Inventory.Items, domain.Item{
			Name:     e.Equipment.WeaponName,
			Category: domain.ItemWeapon,
			Weapon:   e.Equipment.Weapon,
		})
	}
	e.Equipment.Weapon = item.Weapon
	e.Equipment.WeaponName = item.Name

	ctx.Events.Push(domain.Event{
		Type:   domain.EventEquipped,
		Time:   ctx.Now,
		Entity: e.ID,
		Text:   item.Name,
	})
	return Completed
}

// ApplyUnequip stows the held weapon back into the inventory.
func ApplyUnequip(ctx *Context) Result {
	e := ctx.Actor
	if e.Equipment == nil || e.Equipment.Weapon == nil {
		return Blocked
	}
	if e.Inventory == nil {
		e.Inventory = &domain.Inventory{}
	}
	e.Inventory.Items = append(e.Inventory.Items, domain.Item{
		Name:     e.Equipment.WeaponName,
		Category: domain.ItemWeapon,
		Weapon:   e.Equipment.Weapon,
	})
	name := e.Equipment.WeaponName
	e.Equipment.Weapon = nil
	e.Equipment.WeaponName = ""

	ctx.Events.Push(domain.Event{
		Type:   domain.EventUnequipped,
		Time:   ctx.Now,
		Entity: e.ID,
		Text:   name,
	})
	return Completed
}

// ApplyDrop leaves the item from the given slot on the floor as a
// lootable remnant.
func ApplyDrop(ctx *Context) Result {
	e := ctx.Actor
	if e.Inventory == nil {
		return Invalid
	}
	item, ok := e.Inventory.RemoveAt(ctx.Action.Slot)
	if !ok {
		return Invalid
	}

	at := e.Pos
	dropped := ctx.World.Add(&domain.Entity{
		ID:        ctx.World.NewID(domain.KindItem),
		Name:      item.Name,
		Pos:       at,
		Container: &domain.Container{Items: []domain.Item{item}, Opened: true},
	})

	ctx.Events.Push(domain.Event{
		Type:   domain.EventItemDropped,
		Time:   ctx.Now,
		Entity: e.ID,
		Target: dropped.ID,
		To:     &at,
		Text:   item.Name,
	})
	return Completed
}

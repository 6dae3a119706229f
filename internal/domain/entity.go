package domain

// Entity is a bag of optional components. The simulation never
// assumes a component is present: every access nil-checks, because
// entities routinely lose components (death) between a decision and
// its completion.
type Entity struct {
	ID   EntityID
	Name string
	Pos  Position

	// Flat flags queried constantly by movement and perception.
	BlocksMovement bool
	BlocksVision   bool
	Attackable     bool
	Hostile        bool

	Actor      *Actor
	AI         *AIAgent
	Health     *Health
	Effects    *StatusEffects
	Equipment  *Equipment
	Inventory  *Inventory
	Door       *Door
	Container  *Container
	Stairs     *Stairs
	Projectile *Projectile
}

// HasEffect is a nil-safe status check.
func (e *Entity) HasEffect(kind EffectKind) bool {
	return e.Effects != nil && e.Effects.Has(kind)
}

// RangedWeapon returns the equipped ranged weapon, or nil.
func (e *Entity) RangedWeapon() *Weapon {
	if e.Equipment == nil || e.Equipment.Weapon == nil || !e.Equipment.Weapon.Ranged {
		return nil
	}
	return e.Equipment.Weapon
}

// Alive reports whether the entity still has hit points to lose.
func (e *Entity) Alive() bool {
	return e.Health != nil && e.Health.HP > 0
}

package domain

// ActionKind enumerates every action the lifecycle knows how to
// start and complete.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionAttack
	ActionOpenDoor
	ActionOpenChest
	ActionUseStairs
	ActionShoot
	ActionThrow
	ActionBlink
	ActionFireball
	ActionEquip
	ActionUnequip
	ActionDrop
	ActionTalk
	ActionWait
)

var actionNames = map[ActionKind]string{
	ActionNone:      "none",
	ActionMove:      "move",
	ActionAttack:    "attack",
	ActionOpenDoor:  "open_door",
	ActionOpenChest: "open_chest",
	ActionUseStairs: "use_stairs",
	ActionShoot:     "shoot",
	ActionThrow:     "throw",
	ActionBlink:     "blink",
	ActionFireball:  "fireball",
	ActionEquip:     "equip",
	ActionUnequip:   "unequip",
	ActionDrop:      "drop",
	ActionTalk:      "talk",
	ActionWait:      "wait",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "none"
}

// Action is a concrete, fully resolved order for one entity. Which
// fields are meaningful depends on Kind: directional actions carry
// Dx/Dy, targeted ones carry Target or TargetPos, inventory ones
// carry Slot.
type Action struct {
	Kind      ActionKind
	Dx, Dy    int
	Diagonal  bool
	Target    EntityID
	TargetPos *Position
	Slot      int
}

// ActionInProgress stamps an action onto an actor between start and
// completion. End is the scheduled completion time.
type ActionInProgress struct {
	Action Action
	Start  float64
	End    float64
}

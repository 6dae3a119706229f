package domain

// EntityKind classifies an entity for ID packing and spawn bookkeeping.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMonster
	KindNPC
	KindDoor
	KindChest
	KindStairs
	KindItem
	KindProjectile
	KindRemains
)

var kindNames = map[EntityKind]string{
	KindUnknown:    "unknown",
	KindPlayer:     "player",
	KindMonster:    "monster",
	KindNPC:        "npc",
	KindDoor:       "door",
	KindChest:      "chest",
	KindStairs:     "stairs",
	KindItem:       "item",
	KindProjectile: "projectile",
	KindRemains:    "remains",
}

func (k EntityKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// AIState is the automaton state of an autonomous agent.
type AIState uint8

const (
	StateIdle AIState = iota
	StateChasing
	StateInvestigating
)

var aiStateNames = map[AIState]string{
	StateIdle:          "idle",
	StateChasing:       "chasing",
	StateInvestigating: "investigating",
}

func (s AIState) String() string {
	if n, ok := aiStateNames[s]; ok {
		return n
	}
	return "unknown"
}

// MarshalJSON emits the state name; the frontend keys animations on it.
func (s AIState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

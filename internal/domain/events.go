package domain

// EventType tags an outbound notification. The simulation only ever
// pushes these; presentation and persistence layers drain them.
type EventType string

const (
	EventMoved            EventType = "moved"
	EventAttacked         EventType = "attacked"
	EventDied             EventType = "died"
	EventDoorOpened       EventType = "door_opened"
	EventChestOpened      EventType = "chest_opened"
	EventStairsUsed       EventType = "stairs_used"
	EventBlinked          EventType = "blinked"
	EventAIStateChanged   EventType = "ai_state_changed"
	EventDialogueStarted  EventType = "dialogue_started"
	EventProjectileFired  EventType = "projectile_fired"
	EventProjectileLanded EventType = "projectile_landed"
	EventEffectApplied    EventType = "effect_applied"
	EventEffectExpired    EventType = "effect_expired"
	EventHealed           EventType = "healed"
	EventEquipped         EventType = "equipped"
	EventUnequipped       EventType = "unequipped"
	EventItemDropped      EventType = "item_dropped"
	EventWaited           EventType = "waited"
	EventSpawned          EventType = "spawned"
)

// Event is a flat notification record. Unused fields stay zero and
// are omitted on the wire.
type Event struct {
	Type   EventType   `json:"type"`
	Time   float64     `json:"t"`
	Entity EntityID    `json:"entity,omitempty"`
	Target EntityID    `json:"target,omitempty"`
	From   *Position   `json:"from,omitempty"`
	To     *Position   `json:"to,omitempty"`
	Amount int         `json:"amount,omitempty"`
	Crit   bool        `json:"crit,omitempty"`
	Effect *EffectKind `json:"effect,omitempty"`
	State  *AIState    `json:"state,omitempty"`
	Text   string      `json:"text,omitempty"`
}

// EffectRef is a convenience for filling Event.Effect inline.
func EffectRef(k EffectKind) *EffectKind { return &k }

// StateRef is a convenience for filling Event.State inline.
func StateRef(s AIState) *AIState { return &s }

// EventQueue is the one-way channel from the simulation to the
// outside. Push appends, Drain hands the batch over and resets.
// Never read back by the core.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

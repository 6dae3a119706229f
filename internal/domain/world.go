package domain

// World is the entity store: a registry for by-ID lookup plus an
// insertion-ordered list so full sweeps iterate deterministically.
// The scheduler deliberately never holds *Entity, only EntityID; this
// store is the single place IDs resolve to live state.
type World struct {
	byID    map[EntityID]*Entity
	ordered []*Entity
	Floor   int16
	nextIdx uint64
}

func NewWorld(floor int16) *World {
	return &World{
		byID:  make(map[EntityID]*Entity),
		Floor: floor,
	}
}

// NewID allocates the next packed ID for this floor.
func (w *World) NewID(kind EntityKind) EntityID {
	w.nextIdx++
	return PackEntityID(kind, w.Floor, w.nextIdx)
}

// Add registers the entity, assigning an ID if it has none.
func (w *World) Add(e *Entity) *Entity {
	if e.ID == InvalidID {
		e.ID = w.NewID(KindUnknown)
	}
	w.byID[e.ID] = e
	w.ordered = append(w.ordered, e)
	return e
}

// Get returns nil for unknown IDs; callers treat that as the entity
// having despawned.
func (w *World) Get(id EntityID) *Entity {
	return w.byID[id]
}

// Remove drops the entity from both indexes. Safe on unknown IDs.
func (w *World) Remove(id EntityID) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	for i, e := range w.ordered {
		if e.ID == id {
			w.ordered = append(w.ordered[:i], w.ordered[i+1:]...)
			break
		}
	}
}

// Entities returns the insertion-ordered live list. Callers must not
// mutate the slice; Remove during iteration is done via a copied
// snapshot by the sweeps that need it.
func (w *World) Entities() []*Entity {
	return w.ordered
}

func (w *World) Len() int {
	return len(w.ordered)
}

// At returns every entity standing on pos, in insertion order.
func (w *World) At(pos Position) []*Entity {
	var out []*Entity
	for _, e := range w.ordered {
		if e.Pos == pos {
			out = append(out, e)
		}
	}
	return out
}

// BlockerAt returns the first movement-blocking entity on pos, or nil.
func (w *World) BlockerAt(pos Position) *Entity {
	for _, e := range w.ordered {
		if e.Pos == pos && e.BlocksMovement {
			return e
		}
	}
	return nil
}

// AttackableAt returns the first attackable entity on pos, or nil.
func (w *World) AttackableAt(pos Position) *Entity {
	for _, e := range w.ordered {
		if e.Pos == pos && e.Attackable {
			return e
		}
	}
	return nil
}

// VisionBlockerAt reports whether any entity on pos blocks sight.
func (w *World) VisionBlockerAt(pos Position) bool {
	for _, e := range w.ordered {
		if e.Pos == pos && e.BlocksVision {
			return true
		}
	}
	return false
}

// BlockedPositions collects every movement-blocking tile, excluding
// the given entity. The pathfinder feeds on this set.
func (w *World) BlockedPositions(exclude EntityID) map[Position]struct{} {
	out := make(map[Position]struct{})
	for _, e := range w.ordered {
		if e.ID == exclude || !e.BlocksMovement {
			continue
		}
		out[e.Pos] = struct{}{}
	}
	return out
}

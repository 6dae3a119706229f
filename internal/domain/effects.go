package domain

// EffectKind enumerates the status effects the simulation reacts to.
type EffectKind uint8

const (
	EffectConfused EffectKind = iota
	EffectFeared
	EffectInvisible
	EffectSlowed
	EffectStrengthened
	EffectProtected
	EffectRegenerating
)

var effectNames = map[EffectKind]string{
	EffectConfused:     "confused",
	EffectFeared:       "feared",
	EffectInvisible:    "invisible",
	EffectSlowed:       "slowed",
	EffectStrengthened: "strengthened",
	EffectProtected:    "protected",
	EffectRegenerating: "regenerating",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return "unknown"
}

func (k EffectKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// StatusEffects holds the active effects of one entity with their
// remaining durations in simulation seconds.
type StatusEffects struct {
	Remaining map[EffectKind]float64
}

func NewStatusEffects() *StatusEffects {
	return &StatusEffects{Remaining: make(map[EffectKind]float64)}
}

// Add applies an effect. Reapplying keeps the longer of the two
// durations rather than stacking.
func (s *StatusEffects) Add(kind EffectKind, duration float64) {
	if cur, ok := s.Remaining[kind]; !ok || duration > cur {
		s.Remaining[kind] = duration
	}
}

func (s *StatusEffects) Has(kind EffectKind) bool {
	_, ok := s.Remaining[kind]
	return ok
}

func (s *StatusEffects) Remove(kind EffectKind) {
	delete(s.Remaining, kind)
}

// Tick counts all durations down by elapsed and returns the kinds
// that expired during this step. Kinds are visited in declaration
// order so the emitted events replay identically.
func (s *StatusEffects) Tick(elapsed float64) []EffectKind {
	var expired []EffectKind
	for kind := EffectConfused; kind <= EffectRegenerating; kind++ {
		left, ok := s.Remaining[kind]
		if !ok {
			continue
		}
		left -= elapsed
		if left <= 0 {
			delete(s.Remaining, kind)
			expired = append(expired, kind)
			continue
		}
		s.Remaining[kind] = left
	}
	return expired
}

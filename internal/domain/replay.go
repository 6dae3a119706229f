package domain

// Replay types describe the input journal: the seed plus every player
// action in order is enough to reproduce a run, because the
// simulation itself is deterministic.

// ReplayMagic identifies a journal file.
const ReplayMagic = "DLVR"

// ReplayVersion bumps on any change to the record layout.
const ReplayVersion uint16 = 1

// ReplayHeader is the fixed-size uncompressed prologue of a journal.
type ReplayHeader struct {
	Magic    [4]byte
	Version  uint16
	_        uint16 // alignment padding, zero
	Seed     int64
	Created  int64 // unix seconds
	Reserved [8]byte
}

// ReplayRecord is one player action as issued. Fixed-size so records
// stream with encoding/binary. HasTarget/HasPos gate the optional
// fields, since zero is a valid coordinate.
type ReplayRecord struct {
	Time      float64
	Kind      uint8
	Dx, Dy    int8
	Diagonal  uint8
	HasTarget uint8
	HasPos    uint8
	_         [2]byte
	Target    uint64
	PosX      int32
	PosY      int32
	Slot      int32
	_         [4]byte
}

// ToRecord flattens an Action for the journal.
func ToRecord(t float64, a Action) ReplayRecord {
	rec := ReplayRecord{
		Time: t,
		Kind: uint8(a.Kind),
		Dx:   int8(a.Dx),
		Dy:   int8(a.Dy),
		Slot: int32(a.Slot),
	}
	if a.Diagonal {
		rec.Diagonal = 1
	}
	if a.Target != InvalidID {
		rec.HasTarget = 1
		rec.Target = uint64(a.Target)
	}
	if a.TargetPos != nil {
		rec.HasPos = 1
		rec.PosX = int32(a.TargetPos.X)
		rec.PosY = int32(a.TargetPos.Y)
	}
	return rec
}

// ToAction rebuilds the Action from a journal record.
func (r ReplayRecord) ToAction() Action {
	a := Action{
		Kind:     ActionKind(r.Kind),
		Dx:       int(r.Dx),
		Dy:       int(r.Dy),
		Diagonal: r.Diagonal != 0,
		Slot:     int(r.Slot),
	}
	if r.HasTarget != 0 {
		a.Target = EntityID(r.Target)
	}
	if r.HasPos != 0 {
		a.TargetPos = &Position{X: int(r.PosX), Y: int(r.PosY)}
	}
	return a
}

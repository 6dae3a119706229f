package domain

import (
	"fmt"
	"strconv"
)

// EntityID is a packed identifier (Kind + Floor + Index).
type EntityID uint64

// InvalidID is the zero value; no live entity carries it because the
// world allocates indices starting from 1.
const InvalidID EntityID = 0

// Bit layout.
const (
	bitsIndex = 40
	bitsFloor = 16
	bitsKind  = 8

	shiftFloor = bitsIndex
	shiftKind  = bitsIndex + bitsFloor

	maskIndex = (1 << bitsIndex) - 1
	maskFloor = (1 << bitsFloor) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID builds an ID from its components.
func PackEntityID(kind EntityKind, floor int16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(floor) & maskFloor) << shiftFloor
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

func (id EntityID) Kind() EntityKind {
	return EntityKind((id >> shiftKind) & maskKind)
}

func (id EntityID) Floor() int16 {
	return int16((id >> shiftFloor) & maskFloor)
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

// MarshalJSON serializes the ID as a string because JS loses precision
// on large integers.
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON accepts either a quoted string or a bare number.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

// String renders [Kind:Floor:Idx] for logs.
func (id EntityID) String() string {
	return fmt.Sprintf("[%d:%d:%d]", id.Kind(), id.Floor(), id.Index())
}

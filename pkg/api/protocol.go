// Package api defines the wire protocol of the websocket layer.
// Everything the simulation reports travels as domain events; the
// client talks back in small JSON commands.
package api

import "delve-server/internal/domain"

// Client command actions.
const (
	ActionMove     = "MOVE"
	ActionAttack   = "ATTACK"
	ActionShoot    = "SHOOT"
	ActionThrow    = "THROW"
	ActionBlink    = "BLINK"
	ActionFireball = "FIREBALL"
	ActionEquip    = "EQUIP"
	ActionUnequip  = "UNEQUIP"
	ActionDrop     = "DROP"
	ActionTalk     = "TALK"
	ActionStairs   = "STAIRS"
	ActionWait     = "WAIT"
)

// ClientCommand is one request from a connected client.
type ClientCommand struct {
	Action string          `json:"action"`
	Dx     int             `json:"dx,omitempty"`
	Dy     int             `json:"dy,omitempty"`
	Target domain.EntityID `json:"target,omitempty"`
	X      *int            `json:"x,omitempty"`
	Y      *int            `json:"y,omitempty"`
	Slot   int             `json:"slot,omitempty"`
}

// Server message types.
const (
	MsgEvents = "EVENTS"
	MsgError  = "ERROR"
	MsgHello  = "HELLO"
)

// ServerMessage is one push to a client. Events batches everything
// that happened since the last player turn resolved.
type ServerMessage struct {
	Type   string          `json:"type"`
	Time   float64         `json:"t"`
	You    domain.EntityID `json:"you,omitempty"`
	Events []domain.Event  `json:"events,omitempty"`
	Error  string          `json:"error,omitempty"`
}

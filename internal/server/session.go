package server

import (
	"errors"

	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/internal/engine"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
)

// Session owns one running Game. The simulation is not thread-safe,
// so every command funnels through one channel into one goroutine;
// results fan out through the hub.
type Session struct {
	game     *engine.Game
	hub      *Hub
	commands chan sessionCommand
}

type sessionCommand struct {
	cmd   api.ClientCommand
	reply chan api.ServerMessage
}

func NewSession(game *engine.Game, hub *Hub) *Session {
	return &Session{
		game:     game,
		hub:      hub,
		commands: make(chan sessionCommand, 64),
	}
}

// Submit hands a client command to the simulation goroutine and
// waits for the direct reply. Broadcast events flow separately.
func (s *Session) Submit(cmd api.ClientCommand) api.ServerMessage {
	reply := make(chan api.ServerMessage, 1)
	s.commands <- sessionCommand{cmd: cmd, reply: reply}
	return <-reply
}

// Run drives the simulation until the command channel closes.
func (s *Session) Run() {
	s.game.Bootstrap()
	for sc := range s.commands {
		sc.reply <- s.handle(sc.cmd)
	}
}

func (s *Session) handle(cmd api.ClientCommand) api.ServerMessage {
	intent, err := translate(cmd)
	if err != nil {
		return api.ServerMessage{Type: api.MsgError, Time: s.game.Clock.Now(), Error: err.Error()}
	}

	player := s.game.World.Get(s.game.Player)
	if player == nil || player.Actor == nil {
		return api.ServerMessage{Type: api.MsgError, Time: s.game.Clock.Now(), Error: "you are dead"}
	}

	action, err := engine.ResolveIntent(s.game.World, player, intent)
	if err != nil {
		return api.ServerMessage{Type: api.MsgError, Time: s.game.Clock.Now(), Error: err.Error()}
	}

	err = s.game.StartPlayerAction(action)
	if errors.Is(err, engine.ErrInsufficientEnergy) {
		// Wait out the regen, then try once more.
		if werr := s.game.WaitForEnergy(player.Actor.CostPerAction); werr == nil {
			err = s.game.StartPlayerAction(action)
		}
	}
	if err != nil {
		return api.ServerMessage{Type: api.MsgError, Time: s.game.Clock.Now(), Error: err.Error()}
	}

	s.game.AdvanceUntilReady()

	events := s.game.Events.Drain()
	msg := api.ServerMessage{Type: api.MsgEvents, Time: s.game.Clock.Now(), Events: events}
	s.hub.Broadcast(msg)

	logger.Log.WithFields(logrus.Fields{
		"action": action.Kind.String(),
		"events": len(events),
		"time":   msg.Time,
	}).Debug("command processed")
	return msg
}

// translate maps the wire command onto a simulation intent.
func translate(cmd api.ClientCommand) (engine.Intent, error) {
	in := engine.Intent{
		Dx:     cmd.Dx,
		Dy:     cmd.Dy,
		Target: cmd.Target,
		Slot:   cmd.Slot,
	}
	if cmd.X != nil && cmd.Y != nil {
		in.TargetPos = &domain.Position{X: *cmd.X, Y: *cmd.Y}
	}

	switch cmd.Action {
	case api.ActionMove:
		in.Kind = engine.IntentMove
	case api.ActionAttack:
		in.Kind = engine.IntentAttack
	case api.ActionShoot:
		in.Kind = engine.IntentShoot
	case api.ActionThrow:
		in.Kind = engine.IntentThrow
	case api.ActionBlink:
		in.Kind = engine.IntentBlink
	case api.ActionFireball:
		in.Kind = engine.IntentFireball
	case api.ActionEquip:
		in.Kind = engine.IntentEquip
	case api.ActionUnequip:
		in.Kind = engine.IntentUnequip
	case api.ActionDrop:
		in.Kind = engine.IntentDrop
	case api.ActionTalk:
		in.Kind = engine.IntentTalk
	case api.ActionStairs:
		in.Kind = engine.IntentUseStairs
	case api.ActionWait:
		in.Kind = engine.IntentWait
	default:
		return in, errors.New("unknown action: " + cmd.Action)
	}
	return in, nil
}

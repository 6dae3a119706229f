package engine

import (
	"errors"

	"delve-server/internal/domain"
)

// ErrBadIntent: a high-level request is missing equipment or
// targeting parameters. Intent resolution fails closed.
var ErrBadIntent = errors.New("intent cannot be resolved")

// ResolveMove turns a raw movement vector into a concrete action kind
// by inspecting what occupies the destination right now. Resolution
// is deliberately cheap and non-authoritative: the applier re-checks
// everything when the action completes.
func ResolveMove(w *domain.World, e *domain.Entity, dx, dy int) domain.Action {
	move := domain.Action{
		Kind:     domain.ActionMove,
		Dx:       dx,
		Dy:       dy,
		Diagonal: dx != 0 && dy != 0,
	}
	dest := e.Pos.Shift(dx, dy)

	if target := w.AttackableAt(dest); target != nil && target.Hostile != e.Hostile {
		move.Kind = domain.ActionAttack
		move.Target = target.ID
		return move
	}
	for _, o := range w.At(dest) {
		if o.Door != nil && !o.Door.Open {
			move.Kind = domain.ActionOpenDoor
			return move
		}
		if o.Container != nil && !o.Container.Opened && o.BlocksMovement {
			move.Kind = domain.ActionOpenChest
			return move
		}
	}
	// Possibly still an invalid move; the applier will say so.
	return move
}

// IntentKind is a high-level request from the input layer.
type IntentKind uint8

const (
	IntentWait IntentKind = iota
	IntentMove
	IntentAttack
	IntentShoot
	IntentThrow
	IntentBlink
	IntentFireball
	IntentEquip
	IntentUnequip
	IntentDrop
	IntentTalk
	IntentUseStairs
)

// Intent carries the raw parameters of a request before resolution.
type Intent struct {
	Kind      IntentKind
	Dx, Dy    int
	Target    domain.EntityID
	TargetPos *domain.Position
	Slot      int
}

// ResolveIntent lowers an intent into a startable action. It fails
// closed: a shot without a ranged weapon or a targeted cast without
// coordinates is refused here, before any energy is spent.
func ResolveIntent(w *domain.World, e *domain.Entity, in Intent) (domain.Action, error) {
	switch in.Kind {
	case IntentWait:
		return domain.Action{Kind: domain.ActionWait}, nil

	case IntentMove:
		if in.Dx == 0 && in.Dy == 0 || abs(in.Dx) > 1 || abs(in.Dy) > 1 {
			return domain.Action{}, ErrBadIntent
		}
		return ResolveMove(w, e, in.Dx, in.Dy), nil

	case IntentAttack:
		if in.Target == domain.InvalidID {
			if in.Dx == 0 && in.Dy == 0 {
				return domain.Action{}, ErrBadIntent
			}
			return domain.Action{Kind: domain.ActionAttack, Dx: in.Dx, Dy: in.Dy}, nil
		}
		return domain.Action{Kind: domain.ActionAttack, Target: in.Target}, nil

	case IntentShoot:
		if e.RangedWeapon() == nil || in.Target == domain.InvalidID {
			return domain.Action{}, ErrBadIntent
		}
		return domain.Action{Kind: domain.ActionShoot, Target: in.Target}, nil

	case IntentThrow:
		if in.TargetPos == nil || !potionAt(e, in.Slot) {
			return domain.Action{}, ErrBadIntent
		}
		return domain.Action{Kind: domain.ActionThrow, TargetPos: in.TargetPos, Slot: in.Slot}, nil

	case IntentBlink:
		if in.TargetPos == nil {
			return domain.Action{}, ErrBadIntent
		}
		return domain.Action{Kind: domain.ActionBlink, TargetPos: in.TargetPos}, nil

	case IntentFireball:
		if in.TargetPos == nil {
			return domain.Action{}, ErrBadIntent
		}
		return domain.Action{Kind: domain.ActionFireball, TargetPos: in.TargetPos}, nil

	case IntentEquip:
		return domain.Action{Kind: domain.ActionEquip, Slot: in.Slot}, nil

	case IntentUnequip:
		return domain.Action{Kind: domain.ActionUnequip}, nil

	case IntentDrop:
		return domain.Action{Kind: domain.ActionDrop, Slot: in.Slot}, nil

	case IntentTalk:
		if in.Target == domain.InvalidID {
			return domain.Action{}, ErrBadIntent
		}
		return domain.Action{Kind: domain.ActionTalk, Target: in.Target}, nil

	case IntentUseStairs:
		return domain.Action{Kind: domain.ActionUseStairs}, nil
	}
	return domain.Action{}, ErrBadIntent
}

func potionAt(e *domain.Entity, slot int) bool {
	if e.Inventory == nil {
		return false
	}
	item, ok := e.Inventory.At(slot)
	return ok && item.Category == domain.ItemPotion
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

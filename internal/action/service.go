package action

import (
	"context"
	"fmt"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/event"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// Service runs actor-initiated inventory changes against the actor's TU
// budget, one at a time per actor.
type Service interface {
	// MoveItem drags item from one container to (x, y) in another. Pass
	// inventory.None for either coordinate to let the engine pick.
	MoveItem(ctx context.Context, chr *character.Character, from domain.ContainerID, item *inventory.Item, to domain.ContainerID, x, y int) (MoveResult, error)

	// Release empties every container of the actor's inventory and returns
	// the number of item nodes freed.
	Release(ctx context.Context, chr *character.Character) (int, error)
}

// MoveResult is the outcome of one move attempt. Item is the node that
// holds the result: the placed item, or the weapon after a reload.
type MoveResult struct {
	Action  inventory.Action
	Item    *inventory.Item
	TUSpent int
}

// Outcome is the stable name of the engine action.
func (r MoveResult) Outcome() string { return r.Action.String() }

type service struct {
	engine *inventory.Engine
	bus    event.Bus
}

// NewService creates an action service. bus may be nil.
func NewService(engine *inventory.Engine, bus event.Bus) Service {
	return &service{engine: engine, bus: bus}
}

func (s *service) MoveItem(ctx context.Context, chr *character.Character, from domain.ContainerID, item *inventory.Item, to domain.ContainerID, x, y int) (MoveResult, error) {
	if chr == nil || chr.Inventory == nil {
		return MoveResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoCharacter)
	}
	if item == nil || item.Def() == nil {
		return MoveResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoItem)
	}

	log := logger.FromContext(ctx).With(LogFieldActor, chr.ID)
	if !chr.TryLock() {
		log.Warn(LogMsgActorBusy)
		return MoveResult{}, fmt.Errorf("%w: %s", domain.ErrActorLocked, chr.ID)
	}
	defer chr.Unlock()

	// The node may be freed by the move, so read what we report first.
	itemID := item.Def().ID
	log = log.With(LogFieldItem, itemID, LogFieldFrom, from.String(), LogFieldTo, to.String())

	inv := chr.Inventory
	if from.Valid() && to.Valid() && !inv.CanHoldItemWeight(from, to, item, chr.MaxLoad()) {
		weight := inv.Weight() + item.Weight()
		log.Info(LogMsgMoveRejected, LogFieldOutcome, inventory.ActionNone.String())
		return MoveResult{Action: inventory.ActionNone},
			fmt.Errorf("%w: "+ErrMsgOverloaded, domain.ErrOverloaded, chr.Name, weight, chr.MaxLoad())
	}

	before := chr.TU
	act, placed := s.engine.Move(inv, from, item, to, x, y, &chr.TU)
	res := MoveResult{Action: act, Item: placed, TUSpent: before - chr.TU}

	if act.Changed() {
		log.Info(LogMsgItemMoved,
			LogFieldOutcome, res.Outcome(),
			LogFieldTUSpent, res.TUSpent,
			LogFieldTULeft, chr.TU)
	} else {
		log.Debug(LogMsgMoveRejected, LogFieldOutcome, res.Outcome())
	}

	s.publish(ctx, event.NewItemMovedEvent(chr.ID, itemID, from.String(), to.String(), res.Outcome(), res.TUSpent))
	return res, nil
}

func (s *service) Release(ctx context.Context, chr *character.Character) (int, error) {
	if chr == nil || chr.Inventory == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoCharacter)
	}
	if !chr.TryLock() {
		return 0, fmt.Errorf("%w: %s", domain.ErrActorLocked, chr.ID)
	}
	defer chr.Unlock()

	freed := s.engine.Destroy(chr.Inventory)
	chr.ResetTU()
	logger.FromContext(ctx).Info(LogMsgInventoryFreed, LogFieldActor, chr.ID, LogFieldFreed, freed)
	s.publish(ctx, event.NewInventoryReleasedEvent(chr.ID, freed))
	return freed, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

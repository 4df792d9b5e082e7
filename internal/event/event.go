package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Event types published by the action and loadout layers
const (
	ItemMoved         Type = "inventory.item_moved"
	LoadoutGenerated  Type = "loadout.generated"
	InventoryReleased Type = "inventory.released"
)

// ItemMovedPayloadV1 describes one move attempt and its outcome, including
// outcomes that changed nothing.
type ItemMovedPayloadV1 struct {
	ActorID   string `json:"actor_id"`
	Item      string `json:"item"`
	From      string `json:"from"`
	To        string `json:"to"`
	Outcome   string `json:"outcome"`
	TUSpent   int    `json:"tu_spent"`
	Timestamp int64  `json:"timestamp"`
}

// LoadoutGeneratedPayloadV1 describes the result of equipping one actor.
type LoadoutGeneratedPayloadV1 struct {
	ActorID   string   `json:"actor_id"`
	Team      string   `json:"team"`
	Equipment string   `json:"equipment"`
	Items     []string `json:"items"`
	Armed     bool     `json:"armed"`
	Weight    float64  `json:"weight"`
	Timestamp int64    `json:"timestamp"`
}

// InventoryReleasedPayloadV1 reports how many item nodes an actor returned
// to the allocator when its inventory was destroyed.
type InventoryReleasedPayloadV1 struct {
	ActorID string `json:"actor_id"`
	Freed   int    `json:"freed"`
}

// NewItemMovedEvent creates an item moved event.
func NewItemMovedEvent(actorID, item, from, to, outcome string, tuSpent int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemMoved,
		Payload: ItemMovedPayloadV1{
			ActorID:   actorID,
			Item:      item,
			From:      from,
			To:        to,
			Outcome:   outcome,
			TUSpent:   tuSpent,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLoadoutGeneratedEvent creates a loadout generated event.
func NewLoadoutGeneratedEvent(actorID, team, equipment string, items []string, armed bool, weight float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LoadoutGenerated,
		Payload: LoadoutGeneratedPayloadV1{
			ActorID:   actorID,
			Team:      team,
			Equipment: equipment,
			Items:     items,
			Armed:     armed,
			Weight:    weight,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewInventoryReleasedEvent creates an inventory released event.
func NewInventoryReleasedEvent(actorID string, freed int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryReleased,
		Payload: InventoryReleasedPayloadV1{ActorID: actorID, Freed: freed},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins
// their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

package inventory

import (
	"fmt"
	"log/slog"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

// Engine performs every mutation of inventories built from one set of
// definition tables. It is not safe for concurrent use: the last removed
// item is scratch state shared by consecutive steps of one operation.
type Engine struct {
	name   string
	tables Tables
	alloc  Allocator

	lastRemoved Item
}

// NewEngine creates an engine. name only shows up in logs. A nil allocator
// gets a fresh pool tagged with name.
func NewEngine(name string, tables Tables, alloc Allocator) *Engine {
	if alloc == nil {
		alloc = NewPoolAllocator(name)
	}
	return &Engine{
		name:   name,
		tables: tables,
		alloc:  alloc,
	}
}

func (e *Engine) Name() string { return e.name }

func (e *Engine) log() *slog.Logger {
	return slog.Default().With(LogFieldEngine, e.name)
}

// NewInventory returns an empty inventory over the engine's tables.
func (e *Engine) NewInventory() *Inventory {
	return New(e.tables)
}

// fatal reports a broken inventory invariant. These are programming errors,
// so the engine refuses to continue.
func (e *Engine) fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.log().Error(LogMsgInvariantBreach, "error", msg)
	panic(msg)
}

func inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < shape.BigMaxWidth && y < shape.BigMaxHeight
}

// Add places amount units of item in container id at (x, y), or wherever
// there is room when the position is None or out of bounds. Temp containers
// stack onto an existing node of the same definition and return it.
func (e *Engine) Add(inv *Inventory, item Item, id domain.ContainerID, x, y, amount int) (*Item, error) {
	if item.def == nil {
		return nil, ErrNoDefinition
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	c := inv.Container(id)
	if c == nil || c.def == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoContainer, id)
	}
	def := c.def
	if !def.Temp && amount != 1 {
		return nil, fmt.Errorf("%w: %d in %s", ErrInvalidAmount, amount, def.Name)
	}
	if def.Single && c.head != nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerOccupied, def.Name)
	}

	if def.Temp {
		for it := c.head; it != nil; it = it.next {
			if it.def == item.def {
				it.amount += amount
				e.log().Debug(LogMsgStacked,
					LogFieldItem, item.def.ID,
					LogFieldContainer, def.Name,
					LogFieldAmount, it.amount)
				return it, nil
			}
		}
	}

	if !inBounds(x, y) {
		x, y = inv.FindSpace(def, &item, nil)
		if x == None || y == None {
			e.log().Debug(LogMsgNoSpace, LogFieldItem, item.def.ID, LogFieldContainer, def.Name)
			return nil, fmt.Errorf("%w: %s in %s", ErrNoSpace, item.def.ID, def.Name)
		}
	}

	fit := inv.CanHoldItem(def, &item, x, y, nil)
	if fit == DoesNotFit {
		e.log().Debug(LogMsgNoSpace, LogFieldItem, item.def.ID, LogFieldContainer, def.Name)
		return nil, fmt.Errorf("%w: %s at %d,%d in %s", ErrNoSpace, item.def.ID, x, y, def.Name)
	}

	node := e.alloc.Alloc()
	*node = item
	node.next = nil
	node.amount = amount
	node.x, node.y = x, y
	node.rotated = rotationFor(fit, item.rotated)
	c.append(node)
	return node, nil
}

// TryAdd puts one unit of item wherever it fits in container id.
func (e *Engine) TryAdd(inv *Inventory, item Item, id domain.ContainerID) (*Item, error) {
	return e.Add(inv, item, id, None, None, 1)
}

// Remove takes target out of container id. A stacked node in a temp
// container only loses one unit.
func (e *Engine) Remove(inv *Inventory, id domain.ContainerID, target *Item) error {
	c := inv.Container(id)
	if c == nil || c.def == nil {
		return fmt.Errorf("%w: %d", ErrNoContainer, id)
	}
	if target == nil || !c.contains(target) {
		return fmt.Errorf("%w: %s", ErrNotInContainer, c.def.Name)
	}

	e.lastRemoved = *target
	e.lastRemoved.next = nil

	if c.def.Temp && target.amount > 1 {
		target.amount--
		e.log().Debug(LogMsgPartialRemove,
			LogFieldItem, target.def.ID,
			LogFieldContainer, c.def.Name,
			LogFieldAmount, target.amount)
		return nil
	}

	if c.def.Single && c.head.next != nil {
		e.fatal(FatalMsgSingleHoldsMany, c.def.Name, e.name, c.Count())
	}
	if !c.def.Temp && target.amount != 1 {
		e.fatal(FatalMsgAmountNotOne, target.def.ID, c.def.Name, e.name, target.amount)
	}

	e.unlink(c, target)
	e.alloc.Free(target)
	return nil
}

func (e *Engine) unlink(c *Container, target *Item) {
	if c.head == target {
		c.head = target.next
		return
	}
	for prev := c.head; prev.next != nil; prev = prev.next {
		if prev.next == target {
			prev.next = target.next
			return
		}
	}
}

// EmptyContainer frees every node in container id and returns how many
// there were.
func (e *Engine) EmptyContainer(inv *Inventory, id domain.ContainerID) int {
	c := inv.Container(id)
	if c == nil {
		return 0
	}
	freed := 0
	for it := c.head; it != nil; {
		next := it.next
		e.alloc.Free(it)
		freed++
		it = next
	}
	c.head = nil
	if freed > 0 && c.def != nil {
		e.log().Debug(LogMsgContainerEmptied, LogFieldContainer, c.def.Name, LogFieldFreed, freed)
	}
	return freed
}

// Destroy empties every container of inv, temp ones included.
func (e *Engine) Destroy(inv *Inventory) int {
	freed := 0
	for id := range domain.ContainerCount {
		freed += e.EmptyContainer(inv, id)
	}
	return freed
}

// UsedSlots is the number of item nodes currently allocated by the engine.
func (e *Engine) UsedSlots() int {
	return e.alloc.Used()
}

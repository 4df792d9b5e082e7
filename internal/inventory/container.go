package inventory

import (
	"iter"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

// Container is one named container of an inventory: its definition and the
// head of its item chain.
type Container struct {
	id   domain.ContainerID
	def  *domain.ContainerDef
	head *Item
}

func (c *Container) ID() domain.ContainerID     { return c.id }
func (c *Container) Def() *domain.ContainerDef { return c.def }

// First returns the head of the chain, nil when empty.
func (c *Container) First() *Item { return c.head }

// NextItem walks the chain: nil yields the first item, the last item yields nil.
func (c *Container) NextItem(prev *Item) *Item {
	if prev == nil {
		return c.head
	}
	return prev.next
}

// All iterates the chain in insertion order.
func (c *Container) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for it := c.head; it != nil; {
			next := it.next
			if !yield(it) {
				return
			}
			it = next
		}
	}
}

// Count returns the number of nodes in the chain.
func (c *Container) Count() int {
	n := 0
	for it := c.head; it != nil; it = it.next {
		n++
	}
	return n
}

func (c *Container) Empty() bool { return c.head == nil }

func (c *Container) contains(target *Item) bool {
	for it := c.head; it != nil; it = it.next {
		if it == target {
			return true
		}
	}
	return false
}

func (c *Container) append(item *Item) {
	item.next = nil
	if c.head == nil {
		c.head = item
		return
	}
	tail := c.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = item
}

package inventory

import (
	"iter"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

// Tables resolves container definitions by id.
type Tables interface {
	Container(id domain.ContainerID) *domain.ContainerDef
}

// Inventory holds one item chain per container of an actor or floor entity.
type Inventory struct {
	containers [domain.ContainerCount]Container
}

// New returns an empty inventory whose containers use the given definitions.
func New(tables Tables) *Inventory {
	inv := &Inventory{}
	for id := range inv.containers {
		cid := domain.ContainerID(id)
		inv.containers[id] = Container{id: cid, def: tables.Container(cid)}
	}
	return inv
}

// Container returns the container with the given id, nil for an invalid id.
func (inv *Inventory) Container(id domain.ContainerID) *Container {
	if !id.Valid() {
		return nil
	}
	return &inv.containers[id]
}

// NextContainer walks the defined containers in id order. A nil prev starts
// the walk; temp containers are skipped unless includeTemp is set.
func (inv *Inventory) NextContainer(prev *Container, includeTemp bool) *Container {
	start := 0
	if prev != nil {
		start = int(prev.id) + 1
	}
	for i := start; i < len(inv.containers); i++ {
		c := &inv.containers[i]
		if c.def == nil {
			continue
		}
		if c.def.Temp && !includeTemp {
			continue
		}
		return c
	}
	return nil
}

// Containers iterates what NextContainer walks.
func (inv *Inventory) Containers(includeTemp bool) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		for c := inv.NextContainer(nil, includeTemp); c != nil; c = inv.NextContainer(c, includeTemp) {
			if !yield(c) {
				return
			}
		}
	}
}

func (inv *Inventory) head(id domain.ContainerID) *Item {
	if c := inv.Container(id); c != nil {
		return c.head
	}
	return nil
}

func (inv *Inventory) RightHand() *Item { return inv.head(domain.ContainerRight) }
func (inv *Inventory) LeftHand() *Item  { return inv.head(domain.ContainerLeft) }
func (inv *Inventory) Armour() *Item    { return inv.head(domain.ContainerArmour) }
func (inv *Inventory) Headgear() *Item  { return inv.head(domain.ContainerHeadgear) }
func (inv *Inventory) Implant() *Item   { return inv.head(domain.ContainerImplant) }

// ItemAtPos returns the item covering (x, y). Single containers return their
// only item wherever asked; scroll containers have no positions.
func (inv *Inventory) ItemAtPos(def *domain.ContainerDef, x, y int) *Item {
	c := inv.Container(def.ID)
	if c == nil {
		return nil
	}
	if def.Single {
		return c.head
	}
	if def.Scroll {
		return nil
	}
	for it := c.head; it != nil; it = it.next {
		if it.Occupies(x, y) {
			return it
		}
	}
	return nil
}

// FindInContainer returns the first item in the container that IsSameAs item.
func (inv *Inventory) FindInContainer(id domain.ContainerID, item *Item) *Item {
	c := inv.Container(id)
	if c == nil {
		return nil
	}
	for it := c.head; it != nil; it = it.next {
		if it.IsSameAs(item) {
			return it
		}
	}
	return nil
}

// ContainsItem reports whether a matching item sits in the container.
func (inv *Inventory) ContainsItem(id domain.ContainerID, item *Item) bool {
	return inv.FindInContainer(id, item) != nil
}

// FindDef returns the first item of the given definition in the container.
func (inv *Inventory) FindDef(id domain.ContainerID, def *domain.ItemDef) *Item {
	c := inv.Container(id)
	if c == nil {
		return nil
	}
	for it := c.head; it != nil; it = it.next {
		if it.def == def {
			return it
		}
	}
	return nil
}

// CountItems counts item nodes over all containers.
func (inv *Inventory) CountItems() int {
	n := 0
	for i := range inv.containers {
		n += inv.containers[i].Count()
	}
	return n
}

// Weight sums what the owner carries; temp containers do not count.
func (inv *Inventory) Weight() float64 {
	w := 0.0
	for c := range inv.Containers(false) {
		for it := c.head; it != nil; it = it.next {
			w += it.Weight() * float64(it.amount)
		}
	}
	return w
}

// CanHoldItemWeight reports whether moving item from a temp container into
// a carried one keeps the load within maxWeight. Wearing new armour replaces
// the old one. A negative maxWeight disables the check.
func (inv *Inventory) CanHoldItemWeight(from, to domain.ContainerID, item *Item, maxWeight float64) bool {
	fc, tc := inv.Container(from), inv.Container(to)
	if fc == nil || tc == nil || fc.def == nil || tc.def == nil {
		return false
	}
	if tc.def.Temp || !fc.def.Temp {
		return true
	}
	w := inv.Weight()
	if item.IsArmour() {
		if armour := inv.Armour(); armour != nil {
			w -= armour.Weight()
		}
	}
	return maxWeight < 0 || maxWeight >= w+item.Weight()
}

// OccupiedGrid marks every cell of the container that cannot take a new
// item: cells outside its shape plus cells of placed items other than ignore.
func (inv *Inventory) OccupiedGrid(def *domain.ContainerDef, ignore *Item) shape.Grid {
	g := def.Shape.Inverted()
	c := inv.Container(def.ID)
	if c == nil {
		return g
	}
	for it := c.head; it != nil; it = it.next {
		if it == ignore {
			continue
		}
		g.Merge(it.Shape(), it.x, it.y)
	}
	return g
}

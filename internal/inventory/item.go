package inventory

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

// Item is a placed item. Nodes living in an Inventory are owned by it and
// change only through Engine operations; the zero value has no definition.
type Item struct {
	def      *domain.ItemDef
	ammoDef  *domain.ItemDef
	ammoLeft int
	amount   int
	x, y     int
	rotated  bool
	next     *Item
}

// ItemOption adjusts an Item built with NewItem.
type ItemOption func(*Item)

// WithAmmo loads the item with left rounds of ammo.
func WithAmmo(ammo *domain.ItemDef, left int) ItemOption {
	return func(i *Item) {
		i.ammoDef = ammo
		i.ammoLeft = left
	}
}

// WithRotation marks the item as turned by 90 degrees.
func WithRotation(rotated bool) ItemOption {
	return func(i *Item) {
		i.rotated = rotated
	}
}

// WithPosition sets the stored position, used when restoring saved state.
func WithPosition(x, y int) ItemOption {
	return func(i *Item) {
		i.x, i.y = x, y
	}
}

// NewItem builds an unplaced item value to hand to Engine.Add.
func NewItem(def *domain.ItemDef, opts ...ItemOption) Item {
	item := Item{def: def, amount: 1, x: None, y: None}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

func (i *Item) Def() *domain.ItemDef     { return i.def }
func (i *Item) AmmoDef() *domain.ItemDef { return i.ammoDef }
func (i *Item) AmmoLeft() int            { return i.ammoLeft }
func (i *Item) Amount() int              { return i.amount }
func (i *Item) X() int                   { return i.x }
func (i *Item) Y() int                   { return i.y }
func (i *Item) Rotated() bool            { return i.rotated }

// Next returns the following item in the same container.
func (i *Item) Next() *Item { return i.next }

// Shape is the footprint as placed, honouring rotation.
func (i *Item) Shape() shape.Mask {
	if i.def == nil {
		return 0
	}
	if i.rotated {
		return i.def.Shape.Rotated()
	}
	return i.def.Shape
}

// Occupies reports whether container cell (x, y) is covered by the item.
func (i *Item) Occupies(x, y int) bool {
	return i.Shape().IsSet(x-i.x, y-i.y)
}

// IsSameAs compares definition and load, ignoring position and amount.
func (i *Item) IsSameAs(other *Item) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil {
		return false
	}
	return i.def == other.def && i.ammoDef == other.ammoDef && i.ammoLeft == other.ammoLeft
}

// Weight of one unit, including a loaded separate ammo.
func (i *Item) Weight() float64 {
	if i.def == nil {
		return 0
	}
	w := i.def.Weight
	if i.ammoDef != nil && i.ammoDef != i.def && i.ammoLeft > 0 {
		w += i.ammoDef.Weight
	}
	return w
}

func (i *Item) IsArmour() bool {
	return i.def != nil && i.def.IsArmour()
}

func (i *Item) IsHeldTwoHanded() bool {
	return i.def != nil && i.def.HoldTwoHanded
}

// MustReload reports whether a reloadable weapon is empty.
func (i *Item) MustReload() bool {
	return i.def != nil && i.def.IsReloadable() && i.ammoLeft <= 0
}

// FireDefs returns the firing modes available with the current load.
func (i *Item) FireDefs() []domain.FireDef {
	if i.def == nil || i.ammoDef == nil {
		return nil
	}
	return i.ammoDef.FireDefsFor(i.def)
}

// MinFireTime is the cheapest firing mode in TUs, zero when the item cannot fire.
func (i *Item) MinFireTime() int {
	best := 0
	for _, fd := range i.FireDefs() {
		if best == 0 || fd.Time < best {
			best = fd.Time
		}
	}
	return best
}

package inventory

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

// Fit is the result of a placement test. FitsBoth is Fits|FitsOnlyRotated.
type Fit int

const (
	DoesNotFit      Fit = 0
	Fits            Fit = 1
	FitsOnlyRotated Fit = 2
	FitsBoth        Fit = Fits | FitsOnlyRotated
)

func (f Fit) String() string {
	switch f {
	case DoesNotFit:
		return "does_not_fit"
	case Fits:
		return "fits"
	case FitsOnlyRotated:
		return "fits_only_rotated"
	case FitsBoth:
		return "fits_both"
	}
	return "unknown"
}

// admits applies the slot-type, hand and uniqueness rules that hold
// regardless of position.
func (inv *Inventory) admits(def *domain.ContainerDef, item *Item, ignore *Item) bool {
	itemDef := item.def
	if itemDef == nil {
		return false
	}

	// Armour goes only where armour is allowed; armour slots take nothing else.
	if itemDef.IsArmour() {
		if !def.Armour && !def.All {
			return false
		}
	} else {
		if def.Armour {
			return false
		}
		if def.Implant && !itemDef.Implant {
			return false
		}
		if def.Headgear && !itemDef.Headgear {
			return false
		}
	}

	if itemDef.HoldTwoHanded {
		if def.IsLeftDef() {
			return false
		}
		if def.IsRightDef() {
			if left := inv.LeftHand(); left != nil && left != ignore {
				return false
			}
		}
	}
	if def.IsLeftDef() {
		if right := inv.RightHand(); right != nil && right != ignore && right.IsHeldTwoHanded() {
			return false
		}
		if itemDef.FireTwoHanded {
			return false
		}
	}

	if def.Unique {
		c := inv.Container(def.ID)
		for it := c.head; it != nil; it = it.next {
			if it != ignore && it.def == itemDef {
				return false
			}
		}
	}
	return true
}

func fitOnGrid(occupied *shape.Grid, item *Item, x, y int) Fit {
	fit := DoesNotFit
	base := item.def.Shape
	if !occupied.Collides(base, x, y) {
		fit |= Fits
	}
	if rotated := base.Rotated(); rotated != base && !occupied.Collides(rotated, x, y) {
		fit |= FitsOnlyRotated
	}
	return fit
}

// CanHoldItem tests whether item could be placed in the container at (x, y).
// ignore is left out of the occupied cells, so an item can be tested against
// its own container while it is still there.
func (inv *Inventory) CanHoldItem(def *domain.ContainerDef, item *Item, x, y int, ignore *Item) Fit {
	if def == nil || !inv.admits(def, item, ignore) {
		return DoesNotFit
	}

	if def.Single {
		if head := inv.Container(def.ID).head; head != nil && head != ignore {
			return DoesNotFit
		}
		if fit := inv.shapeFit(def, item, x, y, ignore); fit != DoesNotFit {
			return fit
		}
		return Fits
	}

	if def.Scroll {
		return Fits
	}
	return inv.shapeFit(def, item, x, y, ignore)
}

func (inv *Inventory) shapeFit(def *domain.ContainerDef, item *Item, x, y int, ignore *Item) Fit {
	occupied := inv.OccupiedGrid(def, ignore)
	return fitOnGrid(&occupied, item, x, y)
}

// FindSpace returns the first position, scanning rows top to bottom and each
// row left to right, where the item fits in either orientation. It returns
// (None, None) when there is no such position. Scroll containers always
// report (0, 0).
func (inv *Inventory) FindSpace(def *domain.ContainerDef, item *Item, ignore *Item) (int, int) {
	if def == nil || !inv.admits(def, item, ignore) {
		return None, None
	}
	if def.Scroll {
		return 0, 0
	}
	if def.Single {
		if head := inv.Container(def.ID).head; head != nil && head != ignore {
			return None, None
		}
		return 0, 0
	}

	occupied := inv.OccupiedGrid(def, ignore)
	for y := 0; y < shape.BigMaxHeight; y++ {
		for x := 0; x < shape.BigMaxWidth; x++ {
			if fitOnGrid(&occupied, item, x, y) != DoesNotFit {
				return x, y
			}
		}
	}
	return None, None
}

// rotationFor picks the orientation to store for a placement result,
// keeping the item's own orientation when both would do.
func rotationFor(fit Fit, wanted bool) bool {
	switch fit {
	case FitsOnlyRotated:
		return true
	case FitsBoth:
		return wanted
	}
	return false
}

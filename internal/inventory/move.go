package inventory

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

// Action is the outcome of a move.
type Action int

const (
	ActionNone Action = iota
	ActionNoTime
	ActionNoReload
	ActionReload
	ActionReloadSwap
	ActionArmour
	ActionMove
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionNoTime:     "notime",
	ActionNoReload:   "noreload",
	ActionReload:     "reload",
	ActionReloadSwap: "reload_swap",
	ActionArmour:     "armour",
	ActionMove:       "move",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Changed reports whether the action altered the inventory.
func (a Action) Changed() bool {
	return a >= ActionReload
}

// MoveCost is the TU price of moving an item between two containers, before
// any reload time.
func MoveCost(from, to *domain.ContainerDef) int {
	cost := from.Out + to.In
	if from.ID == to.ID {
		if from.IsFloorDef() {
			return 0
		}
		cost /= 2
	}
	return cost
}

// Move drags fItem from container from to (tx, ty) in container to. Passing
// None for a coordinate lets the engine pick the spot. tu is the caller's
// remaining budget; nil means unlimited. The budget is checked before
// anything changes and charged only when the move goes through.
//
// Besides the action, Move returns the item that ended up holding the
// result: the placed item, or the weapon for reloads.
func (e *Engine) Move(inv *Inventory, from domain.ContainerID, fItem *Item, to domain.ContainerID, tx, ty int, tu *int) (Action, *Item) {
	fc, tc := inv.Container(from), inv.Container(to)
	if fc == nil || tc == nil || fc.def == nil || tc.def == nil || fItem == nil {
		return ActionNone, nil
	}
	fromDef, toDef := fc.def, tc.def
	if !fc.contains(fItem) {
		return ActionNone, nil
	}

	if from == to && fItem.x == tx && fItem.y == ty {
		return ActionNone, nil
	}

	cost := MoveCost(fromDef, toDef)
	if tu != nil && *tu < cost {
		return ActionNoTime, nil
	}

	if from == to {
		if fromDef.Scroll {
			return ActionNone, nil
		}
		// A stack cannot be split by dragging inside its own container.
		if fItem.amount > 1 {
			if inv.CanHoldItem(toDef, fItem, tx, ty, fItem)&Fits == 0 {
				return ActionNone, nil
			}
			fItem.x, fItem.y = tx, ty
			charge(tu, cost)
			return ActionMove, fItem
		}
	}

	if fItem.def.FireTwoHanded && fromDef.IsRightDef() && toDef.IsLeftDef() {
		return ActionNone, nil
	}

	if (toDef.Armour && !fItem.IsArmour()) ||
		(toDef.Implant && !fItem.def.Implant) ||
		(toDef.Headgear && !fItem.def.Headgear) {
		return ActionNone, nil
	}

	var fit Fit
	if toDef.Single {
		tx, ty = 0, 0
		fit = inv.CanHoldItem(toDef, fItem, 0, 0, fItem)
	} else {
		if tx == None || ty == None {
			tx, ty = inv.FindSpace(toDef, fItem, fItem)
		}
		if tx == None || ty == None {
			return ActionNone, nil
		}
		fit = inv.CanHoldItem(toDef, fItem, tx, ty, fItem)
	}

	alreadyRemoved := false
	switch {
	case toDef.Armour && from != to && fit == DoesNotFit:
		icTo := inv.ItemAtPos(toDef, tx, ty)
		if icTo == nil || icTo.def == fItem.def {
			return ActionNone, nil
		}
		if !e.swapArmour(inv, from, fItem, to, icTo) {
			return ActionNone, nil
		}
		alreadyRemoved = true

	case fit == DoesNotFit:
		ic := inv.ItemAtPos(toDef, tx, ty)
		if ic != nil && !toDef.IsEquipDef() && fItem.def.IsLoadableInWeapon(ic.def) {
			return e.reload(inv, from, fItem, ic, cost, tu)
		}
		if ic == nil || !toDef.Temp {
			return ActionNone, nil
		}
		// Dropped onto another item in a pool: any free spot will do, and
		// a stack of the same definition needs none.
		tx, ty = inv.FindSpace(toDef, fItem, fItem)
		if (tx == None || ty == None) && inv.FindDef(to, fItem.def) == nil {
			return ActionNone, nil
		}
	}

	if !alreadyRemoved {
		if err := e.Remove(inv, from, fItem); err != nil {
			return ActionNone, nil
		}
	}

	placed, err := e.Add(inv, e.lastRemoved, to, tx, ty, 1)
	if err != nil {
		// Put the item back where it was so a failed move leaves no trace.
		cached := e.lastRemoved
		if _, rerr := e.Add(inv, cached, from, cached.x, cached.y, 1); rerr != nil {
			e.fatal(FatalMsgRestoreItemFailed, cached.def.ID, fromDef.Name, e.name)
		}
		return ActionNone, nil
	}
	charge(tu, cost)

	if toDef.IsArmourDef() {
		return ActionArmour, placed
	}
	return ActionMove, placed
}

// swapArmour takes the source armour out and moves the worn armour icTo back
// to where the source was. On failure the source is restored. The cached
// source item is preserved across the inner move.
func (e *Engine) swapArmour(inv *Inventory, from domain.ContainerID, fItem *Item, to domain.ContainerID, icTo *Item) bool {
	fromX, fromY := fItem.x, fItem.y
	if err := e.Remove(inv, from, fItem); err != nil {
		return false
	}
	source := e.lastRemoved

	action, _ := e.Move(inv, to, icTo, from, fromX, fromY, nil)
	if !action.Changed() {
		action, _ = e.Move(inv, to, icTo, from, None, None, nil)
	}
	e.lastRemoved = source

	if !action.Changed() {
		e.log().Warn(LogMsgArmourSwapFailed,
			LogFieldItem, source.def.ID,
			LogFieldContainer, inv.Container(from).def.Name)
		if _, err := e.Add(inv, source, from, fromX, fromY, 1); err != nil {
			e.fatal(FatalMsgRestoreItemFailed, source.def.ID, inv.Container(from).def.Name, e.name)
		}
		return false
	}
	return true
}

// reload loads the ammo fItem into weapon ic, handing any different ammo
// already in it back to the source container.
func (e *Engine) reload(inv *Inventory, from domain.ContainerID, fItem, ic *Item, cost int, tu *int) (Action, *Item) {
	weapon := ic.def
	full := ic.ammoDef != nil && ic.ammoLeft >= weapon.Ammo
	if full && ic.ammoDef == fItem.def {
		return ActionNoReload, nil
	}

	cost += weapon.ReloadTime
	if tu != nil && *tu < cost {
		return ActionNoTime, nil
	}

	if !full {
		if err := e.Remove(inv, from, fItem); err != nil {
			return ActionNone, nil
		}
		ic.ammoDef = e.lastRemoved.def
		ic.ammoLeft = weapon.Ammo
		charge(tu, cost)
		return ActionReload, ic
	}

	fromDef := inv.Container(from).def
	old := NewItem(ic.ammoDef)
	ox, oy, ok := inv.returnSpot(fromDef, &old, fItem)
	if !ok {
		return ActionNone, nil
	}

	if err := e.Remove(inv, from, fItem); err != nil {
		return ActionNone, nil
	}
	loaded := e.lastRemoved.def
	if _, err := e.Add(inv, old, from, ox, oy, 1); err != nil {
		e.fatal(FatalMsgReturnAmmoFailed, old.def.ID, fromDef.Name, e.name)
	}
	e.log().Debug(LogMsgReloadSwap,
		LogFieldWeapon, weapon.ID,
		LogFieldAmmo, loaded.ID,
		LogFieldItem, old.def.ID)
	ic.ammoDef = loaded
	charge(tu, cost)
	return ActionReloadSwap, ic
}

// returnSpot finds where ammo swapped out of a weapon can go in the source
// container once leaving has left it. The floor takes it anywhere; other
// containers prefer the cell the new ammo came from.
func (inv *Inventory) returnSpot(def *domain.ContainerDef, old, leaving *Item) (int, int, bool) {
	if def.Temp && inv.FindDef(def.ID, old.def) != nil {
		return None, None, true
	}
	ignore := leaving
	if leaving.amount > 1 {
		ignore = nil
	}
	if !def.IsFloorDef() && inBounds(leaving.x, leaving.y) &&
		inv.CanHoldItem(def, old, leaving.x, leaving.y, ignore) != DoesNotFit {
		return leaving.x, leaving.y, true
	}
	x, y := inv.FindSpace(def, old, ignore)
	if x == None || y == None {
		return None, None, false
	}
	return x, y, true
}

func charge(tu *int, cost int) {
	if tu != nil {
		*tu -= cost
	}
}

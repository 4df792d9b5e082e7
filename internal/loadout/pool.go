package loadout

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

// pool is the candidate lists for one equipment table, in definition order,
// keeping only items the table actually offers.
type pool struct {
	primaries []*domain.ItemDef // two-handed primary weapons
	sidearms  []*domain.ItemDef // secondary weapons that take loads
	extras    []*domain.ItemDef // grenades, blades and other misc weapons
	fallbacks []*domain.ItemDef // secondary weapons without reload
	armours   []*domain.ItemDef
	misc      []*domain.ItemDef // non-weapon misc items
}

func buildPool(items []*domain.ItemDef, ed *domain.EquipmentDef) *pool {
	p := &pool{}
	for _, def := range items {
		if ed.Count(def) <= 0 {
			continue
		}
		switch {
		case def.IsArmour():
			p.armours = append(p.armours, def)
		case def.Weapon:
			if def.Primary && def.FireTwoHanded {
				p.primaries = append(p.primaries, def)
			}
			if def.Secondary && def.IsReloadable() {
				p.sidearms = append(p.sidearms, def)
			}
			if def.Secondary && !def.IsReloadable() {
				p.fallbacks = append(p.fallbacks, def)
			}
			if (def.Secondary && !def.IsReloadable()) || def.Misc {
				p.extras = append(p.extras, def)
			}
		case def.Misc:
			p.misc = append(p.misc, def)
		}
	}
	return p
}

// mostExpensive returns the priciest definition, the first on ties.
func mostExpensive(defs []*domain.ItemDef) *domain.ItemDef {
	var best *domain.ItemDef
	for _, def := range defs {
		if best == nil || def.Price > best.Price {
			best = def
		}
	}
	return best
}

// isHeavy reports whether a primary fires loads other than plain rounds or
// beams, the kind of weapon that warrants carrying a sidearm as well.
func isHeavy(weapon *domain.ItemDef) bool {
	if len(weapon.Ammos) == 0 || weapon.Ammos[0].DamageType == nil {
		return false
	}
	switch weapon.Ammos[0].DamageType.ID {
	case domain.DamageNormal, domain.DamageParticle:
		return false
	}
	return true
}

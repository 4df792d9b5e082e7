package domain

import "github.com/ufoaiorg/ufoai-sub020/internal/shape"

// ItemDef is the static definition of an item, loaded once from the
// definition tables and never mutated afterwards.
//
// Links between weapons and ammunition go both ways:
//   - Ammos on a weapon lists every ammo definition that loads into it
//   - Weapons on an ammo lists every weapon it can be loaded into
//
// Weapons that need no separate ammunition list only themselves in Weapons.
type ItemDef struct {
	Idx   int        `json:"idx"`
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Shape shape.Mask `json:"shape"`

	Weight float64 `json:"weight"`
	Price  int     `json:"price"`

	Weapon    bool `json:"weapon"`
	Primary   bool `json:"primary"`
	Secondary bool `json:"secondary"`
	Misc      bool `json:"misc"`

	HoldTwoHanded bool `json:"hold_two_handed"`
	FireTwoHanded bool `json:"fire_two_handed"`

	Headgear bool `json:"headgear"`
	Implant  bool `json:"implant"`

	OneShot bool `json:"one_shot"` // weapon carries its own charge
	Deplete bool `json:"deplete"`  // gone once empty
	Thrown  bool `json:"thrown"`

	Ammo       int `json:"ammo"`        // rounds per load
	ReloadTime int `json:"reload_time"` // TUs to reload

	DamageType *DamageType `json:"-"`

	Weapons  []*ItemDef `json:"-"`
	Ammos    []*ItemDef `json:"-"`
	FireDefs []FireDef  `json:"fire_defs,omitempty"`
}

// FireDef is one firing mode. Ammunition carries the fire definitions for
// each weapon it loads into; weapons without ammunition carry their own.
type FireDef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weapon   string `json:"weapon"`
	Time     int    `json:"time"`
	Range    int    `json:"range"`
	Shots    int    `json:"shots"`
	Reaction bool   `json:"reaction"`
}

// ItemTypeArmour marks armour definitions.
const ItemTypeArmour = "armour"

// ItemTypeAmmo marks ammunition definitions.
const ItemTypeAmmo = "ammo"

// IsArmour reports whether the definition is body armour.
func (d *ItemDef) IsArmour() bool {
	return d.Type == ItemTypeArmour
}

// IsAmmo reports whether the definition is a load for some other weapon.
func (d *ItemDef) IsAmmo() bool {
	return d.Type == ItemTypeAmmo
}

// IsReloadable reports whether the weapon takes separate loads.
func (d *ItemDef) IsReloadable() bool {
	return d.ReloadTime > 0
}

// IsLoadableInWeapon reports whether d can be loaded into weapon. A
// definition that lists only itself as its weapon is never loadable.
func (d *ItemDef) IsLoadableInWeapon(weapon *ItemDef) bool {
	if weapon == nil {
		return false
	}
	if len(d.Weapons) == 1 && d.Weapons[0] == d {
		return false
	}
	for _, w := range d.Weapons {
		if w == weapon {
			return true
		}
	}
	return false
}

// FireDefsFor returns the fire definitions d provides when used in weapon.
func (d *ItemDef) FireDefsFor(weapon *ItemDef) []FireDef {
	if weapon == nil {
		return nil
	}
	var out []FireDef
	for _, fd := range d.FireDefs {
		if fd.Weapon == weapon.ID {
			out = append(out, fd)
		}
	}
	return out
}

// DisplayName prefers Name and falls back to ID.
func (d *ItemDef) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

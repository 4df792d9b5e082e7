package domain

// Damage type ids the loadout rules look up by name.
const (
	DamageNormal   = "normal"
	DamageParticle = "particlebeam"
)

// DamageType classifies what a load does on impact.
type DamageType struct {
	Idx  int    `json:"idx"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamDef describes an actor race or unit type.
type TeamDef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Robot   bool   `json:"robot"`
	Weapons bool   `json:"weapons"` // may carry weapons from equipment tables
	Armour  bool   `json:"armour"`  // may wear armour

	// OnlyWeapon is the fixed weapon of melee-only teams.
	OnlyWeapon *ItemDef `json:"-"`
	// RobotWeapon is the built-in weapon of robot units.
	RobotWeapon *ItemDef `json:"-"`
}

// EquipmentDef is a probability table over item definitions, indexed by
// ItemDef.Idx. A count is a percentage weight; values above 100 mean
// count/100 guaranteed units plus a count%100 percent chance of one more.
type EquipmentDef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// Count returns the table entry for def, zero when absent.
func (e *EquipmentDef) Count(def *ItemDef) int {
	if e == nil || def == nil || def.Idx < 0 || def.Idx >= len(e.Counts) {
		return 0
	}
	return e.Counts[def.Idx]
}

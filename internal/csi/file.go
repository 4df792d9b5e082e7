package csi

// document is the on-disk layout of a definition file. YAML and JSON files
// share it; the embedded schema checks the raw document and the validate
// tags check the decoded one.
type document struct {
	DamageTypes []damageTypeEntry `yaml:"damage_types" json:"damage_types" validate:"dive"`
	Containers  []containerEntry  `yaml:"containers" json:"containers" validate:"dive"`
	Items       []itemEntry       `yaml:"items" json:"items" validate:"required,min=1,dive"`
	Teams       []teamEntry       `yaml:"teams" json:"teams" validate:"dive"`
	Equipment   []equipmentEntry  `yaml:"equipment" json:"equipment" validate:"dive"`
}

type damageTypeEntry struct {
	ID   string `yaml:"id" json:"id" validate:"required"`
	Name string `yaml:"name" json:"name"`
}

type containerEntry struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Size     []int    `yaml:"size" json:"size" validate:"omitempty,len=2,dive,min=1,max=32"`
	Shape    []string `yaml:"shape" json:"shape" validate:"omitempty,max=16"`
	Single   bool     `yaml:"single" json:"single"`
	Scroll   bool     `yaml:"scroll" json:"scroll"`
	Temp     bool     `yaml:"temp" json:"temp"`
	Armour   bool     `yaml:"armour" json:"armour"`
	Headgear bool     `yaml:"headgear" json:"headgear"`
	Implant  bool     `yaml:"implant" json:"implant"`
	All      bool     `yaml:"all" json:"all"`
	Unique   bool     `yaml:"unique" json:"unique"`
	In       int      `yaml:"in" json:"in" validate:"gte=0"`
	Out      int      `yaml:"out" json:"out" validate:"gte=0"`
}

type fireDefEntry struct {
	ID       string `yaml:"id" json:"id" validate:"required"`
	Name     string `yaml:"name" json:"name"`
	Weapon   string `yaml:"weapon" json:"weapon" validate:"required"`
	Time     int    `yaml:"time" json:"time" validate:"gte=0"`
	Range    int    `yaml:"range" json:"range" validate:"gte=0"`
	Shots    int    `yaml:"shots" json:"shots" validate:"gte=0"`
	Reaction bool   `yaml:"reaction" json:"reaction"`
}

type itemEntry struct {
	ID     string   `yaml:"id" json:"id" validate:"required"`
	Name   string   `yaml:"name" json:"name"`
	Type   string   `yaml:"type" json:"type"`
	Size   []int    `yaml:"size" json:"size" validate:"omitempty,len=2,dive,min=1"`
	Shape  []string `yaml:"shape" json:"shape" validate:"omitempty,max=4"`
	Weight float64  `yaml:"weight" json:"weight" validate:"gte=0"`
	Price  int      `yaml:"price" json:"price" validate:"gte=0"`

	Weapon    bool `yaml:"weapon" json:"weapon"`
	Primary   bool `yaml:"primary" json:"primary"`
	Secondary bool `yaml:"secondary" json:"secondary"`
	Misc      bool `yaml:"misc" json:"misc"`

	HoldTwoHanded bool `yaml:"hold_two_handed" json:"hold_two_handed"`
	FireTwoHanded bool `yaml:"fire_two_handed" json:"fire_two_handed"`
	Headgear      bool `yaml:"headgear" json:"headgear"`
	Implant       bool `yaml:"implant" json:"implant"`
	OneShot       bool `yaml:"one_shot" json:"one_shot"`
	Deplete       bool `yaml:"deplete" json:"deplete"`
	Thrown        bool `yaml:"thrown" json:"thrown"`

	Ammo       int    `yaml:"ammo" json:"ammo" validate:"gte=0"`
	ReloadTime int    `yaml:"reload_time" json:"reload_time" validate:"gte=0"`
	DamageType string `yaml:"damage_type" json:"damage_type"`

	Weapons  []string       `yaml:"weapons" json:"weapons" validate:"dive,required"`
	FireDefs []fireDefEntry `yaml:"fire_defs" json:"fire_defs" validate:"dive"`
}

type teamEntry struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Name        string `yaml:"name" json:"name"`
	Robot       bool   `yaml:"robot" json:"robot"`
	Weapons     bool   `yaml:"weapons" json:"weapons"`
	Armour      bool   `yaml:"armour" json:"armour"`
	OnlyWeapon  string `yaml:"only_weapon" json:"only_weapon"`
	RobotWeapon string `yaml:"robot_weapon" json:"robot_weapon" validate:"required_if=Robot true"`
}

type equipmentEntry struct {
	ID    string         `yaml:"id" json:"id" validate:"required"`
	Name  string         `yaml:"name" json:"name"`
	Items map[string]int `yaml:"items" json:"items" validate:"required,dive,keys,required,endkeys,gte=0"`
}

package domain

import "github.com/ufoaiorg/ufoai-sub020/internal/shape"

// ContainerID indexes the fixed set of containers every inventory has.
type ContainerID int

const (
	ContainerRight ContainerID = iota
	ContainerLeft
	ContainerImplant
	ContainerHeadgear
	ContainerBackpack
	ContainerBelt
	ContainerHolster
	ContainerArmour
	ContainerFloor
	ContainerEquip
	ContainerCount
)

// ContainerNone marks "no container".
const ContainerNone ContainerID = -1

var containerNames = [ContainerCount]string{
	ContainerRight:    "right",
	ContainerLeft:     "left",
	ContainerImplant:  "implant",
	ContainerHeadgear: "headgear",
	ContainerBackpack: "backpack",
	ContainerBelt:     "belt",
	ContainerHolster:  "holster",
	ContainerArmour:   "armour",
	ContainerFloor:    "floor",
	ContainerEquip:    "equip",
}

// String returns the data-file name of the container id.
func (id ContainerID) String() string {
	if !id.Valid() {
		return "none"
	}
	return containerNames[id]
}

// Valid reports whether id is one of the fixed containers.
func (id ContainerID) Valid() bool {
	return id >= 0 && id < ContainerCount
}

// ParseContainerID maps a data-file name to its id.
func ParseContainerID(name string) (ContainerID, bool) {
	for id, n := range containerNames {
		if n == name {
			return ContainerID(id), true
		}
	}
	return ContainerNone, false
}

// ContainerDef is the static description of one container.
type ContainerDef struct {
	ID    ContainerID `json:"id"`
	Name  string      `json:"name"`
	Shape shape.Grid  `json:"-"`

	Single   bool `json:"single"`   // at most one item, shape ignored
	Scroll   bool `json:"scroll"`   // endless room, no repositioning
	Temp     bool `json:"temp"`     // stacks amounts per definition
	Armour   bool `json:"armour"`   // armour only
	Headgear bool `json:"headgear"` // headgear only
	Implant  bool `json:"implant"`  // implants only
	All      bool `json:"all"`      // accepts armour besides normal items
	Unique   bool `json:"unique"`   // one item per definition

	In  int `json:"in"`  // TUs to move an item in
	Out int `json:"out"` // TUs to move an item out
}

func (c *ContainerDef) IsRightDef() bool    { return c.ID == ContainerRight }
func (c *ContainerDef) IsLeftDef() bool     { return c.ID == ContainerLeft }
func (c *ContainerDef) IsFloorDef() bool    { return c.ID == ContainerFloor }
func (c *ContainerDef) IsEquipDef() bool    { return c.ID == ContainerEquip }
func (c *ContainerDef) IsArmourDef() bool   { return c.ID == ContainerArmour }
func (c *ContainerDef) IsHeadgearDef() bool { return c.ID == ContainerHeadgear }

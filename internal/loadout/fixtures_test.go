package loadout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
)

const testTables = `
damage_types:
  - id: normal
  - id: blast

containers:
  - {id: right, single: true, size: [3, 3], in: 3, out: 3}
  - {id: left, single: true, size: [3, 3], in: 3, out: 3}
  - {id: implant, single: true, implant: true, size: [1, 1], in: 10, out: 10}
  - {id: headgear, single: true, headgear: true, size: [2, 2], in: 4, out: 4}
  - {id: backpack, size: [6, 5], in: 14, out: 8}
  - {id: belt, size: [4, 2], in: 8, out: 4}
  - {id: holster, size: [2, 4], in: 8, out: 4}
  - {id: armour, single: true, armour: true, size: [3, 3], in: 20, out: 20}
  - {id: floor, temp: true, all: true, size: [16, 8], in: 14, out: 12}
  - {id: equip, temp: true, scroll: true, all: true}

items:
  - {id: rifle, weapon: true, primary: true, fire_two_handed: true, size: [4, 2], weight: 4, price: 800, ammo: 30, reload_time: 12}
  - id: rifle_ammo
    type: ammo
    size: [1, 2]
    weight: 1
    damage_type: normal
    weapons: [rifle]
    fire_defs:
      - {id: snap, weapon: rifle, time: 8}
  - {id: launcher, weapon: true, primary: true, hold_two_handed: true, fire_two_handed: true, size: [5, 2], weight: 8, price: 1600, ammo: 1, reload_time: 20}
  - id: rocket
    type: ammo
    size: [2, 1]
    weight: 2
    damage_type: blast
    weapons: [launcher]
    fire_defs:
      - {id: launch, weapon: launcher, time: 24}
  - {id: marksman, weapon: true, primary: true, fire_two_handed: true, size: [4, 1], weight: 1, price: 900, ammo: 5, reload_time: 10}
  - id: marksman_ammo
    type: ammo
    size: [1, 1]
    weight: 1
    damage_type: normal
    weapons: [marksman]
    fire_defs:
      - {id: aimed, weapon: marksman, time: 20}
  - {id: pistol, weapon: true, secondary: true, size: [2, 2], weight: 1, price: 200, ammo: 12, reload_time: 8}
  - id: pistol_ammo
    type: ammo
    size: [1, 1]
    weight: 0.5
    damage_type: normal
    weapons: [pistol]
    fire_defs:
      - {id: snap, weapon: pistol, time: 6}
  - id: knife
    weapon: true
    secondary: true
    size: [1, 2]
    weight: 0.5
    price: 30
    weapons: [knife]
    fire_defs:
      - {id: slash, weapon: knife, time: 4}
  - id: grenade
    weapon: true
    secondary: true
    one_shot: true
    size: [1, 1]
    weight: 0.5
    price: 50
    ammo: 1
    damage_type: blast
    weapons: [grenade]
    fire_defs:
      - {id: throw, weapon: grenade, time: 10}
  - {id: armour_light, type: armour, size: [3, 3], weight: 5, price: 300}
  - {id: armour_heavy, type: armour, size: [3, 3], weight: 10, price: 600}
  - {id: goggles, misc: true, headgear: true, size: [2, 1], weight: 0.5}
  - {id: medikit, misc: true, size: [2, 2], weight: 1}
  - id: claw
    weapon: true
    fire_two_handed: true
    weight: 1
    weapons: [claw]
    fire_defs:
      - {id: swipe, weapon: claw, time: 3}
  - {id: drone_gun, weapon: true, fire_two_handed: true, size: [3, 2], ammo: 50, reload_time: 10}
  - id: drone_ammo
    type: ammo
    damage_type: normal
    weapons: [drone_gun]
    fire_defs:
      - {id: burst, weapon: drone_gun, time: 12}
  - {id: sentry_blade, weapon: true, fire_two_handed: true}
  - {id: turret_gun, weapon: true}

teams:
  - {id: human, weapons: true, armour: true}
  - {id: civilian}
  - {id: spider, only_weapon: claw}
  - {id: duelist, only_weapon: pistol}
  - {id: drone, robot: true, robot_weapon: drone_gun}
  - {id: sentry, robot: true, robot_weapon: sentry_blade}
  - {id: turret, robot: true, robot_weapon: turret_gun}

equipment:
  - id: rifle_kit
    items: {rifle: 100, rifle_ammo: 200, armour_light: 100, medikit: 10}
  - id: heavy_kit
    items: {launcher: 100, rocket: 100, pistol: 100, pistol_ammo: 100}
  - id: sidearm_kit
    items: {pistol: 100, pistol_ammo: 100}
  - id: scraps
    items: {knife: 50, grenade: 50}
  - id: blades
    items: {knife: 250}
  - id: rockets_only
    items: {launcher: 100, rocket: 100}
  - id: marksman_kit
    items: {marksman: 100, marksman_ammo: 300}
  - id: armour_kit
    items: {rifle: 30, rifle_ammo: 100, armour_heavy: 50}
  - id: civvies
    items: {pistol: 100, pistol_ammo: 100, goggles: 10}
`

// scriptedRand replays queued rolls and falls back to fixed values once a
// queue runs dry. IntN results are clamped into [0, n).
type scriptedRand struct {
	ints         []int
	floats       []float64
	intDefault   int
	floatDefault float64
}

func (r *scriptedRand) IntN(n int) int {
	v := r.intDefault
	if len(r.ints) > 0 {
		v, r.ints = r.ints[0], r.ints[1:]
	}
	return min(max(v, 0), n-1)
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.floatDefault
}

// alwaysRoll makes every d100 succeed and every chance fail.
func alwaysRoll() *scriptedRand {
	return &scriptedRand{floatDefault: 0.99}
}

type fixture struct {
	reg    *csi.Registry
	engine *inventory.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg, err := csi.NewLoader().Load([]byte(testTables), csi.FormatYAML)
	require.NoError(t, err)
	return &fixture{reg: reg, engine: inventory.NewEngine(t.Name(), reg, nil)}
}

func (f *fixture) generator(t *testing.T, rng *scriptedRand, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(f.engine, f.reg, DefaultConfig(), rng, opts...)
	require.NoError(t, err)
	return g
}

func (f *fixture) actor(t *testing.T, team string, skills character.Skills) *character.Character {
	t.Helper()
	td, err := f.reg.Team(team)
	require.NoError(t, err)
	chr, err := character.New(team, td, skills, f.engine.NewInventory())
	require.NoError(t, err)
	return chr
}

func (f *fixture) equipment(t *testing.T, id string) *domain.EquipmentDef {
	t.Helper()
	ed, err := f.reg.Equipment(id)
	require.NoError(t, err)
	return ed
}

func (f *fixture) item(t *testing.T, id string) *domain.ItemDef {
	t.Helper()
	def, err := f.reg.Item(id)
	require.NoError(t, err)
	return def
}

func strong() character.Skills {
	return character.Skills{Power: 100, Speed: 100, Accuracy: 50, Mind: 50}
}

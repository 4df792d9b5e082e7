package inventory

import (
	"testing"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

type testTables struct {
	containers [domain.ContainerCount]*domain.ContainerDef
}

func (tt *testTables) Container(id domain.ContainerID) *domain.ContainerDef {
	if !id.Valid() {
		return nil
	}
	return tt.containers[id]
}

type fixture struct {
	tables *testTables
	engine *Engine
	inv    *Inventory

	assault, assaultAmmo          *domain.ItemDef
	rpg, rpgAmmo, rpgIncendiary   *domain.ItemDef
	pistol, pistolAmmo            *domain.ItemDef
	knife, grenade                *domain.ItemDef
	lightArmour, mediumArmour     *domain.ItemDef
	irgoggles, medikit, brainchip *domain.ItemDef
}

func grid(t *testing.T, w, h int) shape.Grid {
	t.Helper()
	g, err := shape.GridRect(w, h)
	if err != nil {
		t.Fatalf("grid %dx%d: %v", w, h, err)
	}
	return g
}

func newTestTables(t *testing.T) *testTables {
	t.Helper()
	tt := &testTables{}
	add := func(def domain.ContainerDef) {
		d := def
		d.Name = d.ID.String()
		tt.containers[d.ID] = &d
	}
	add(domain.ContainerDef{ID: domain.ContainerRight, Shape: grid(t, 3, 3), Single: true, In: 3, Out: 3})
	add(domain.ContainerDef{ID: domain.ContainerLeft, Shape: grid(t, 3, 3), Single: true, In: 3, Out: 3})
	add(domain.ContainerDef{ID: domain.ContainerImplant, Shape: grid(t, 1, 1), Single: true, Implant: true, In: 10, Out: 10})
	add(domain.ContainerDef{ID: domain.ContainerHeadgear, Shape: grid(t, 2, 2), Single: true, Headgear: true, In: 4, Out: 4})
	add(domain.ContainerDef{ID: domain.ContainerBackpack, Shape: grid(t, 6, 4), In: 14, Out: 8})
	add(domain.ContainerDef{ID: domain.ContainerBelt, Shape: grid(t, 4, 2), In: 8, Out: 4})
	add(domain.ContainerDef{ID: domain.ContainerHolster, Shape: grid(t, 2, 4), In: 8, Out: 4})
	add(domain.ContainerDef{ID: domain.ContainerArmour, Shape: grid(t, 3, 3), Single: true, Armour: true, In: 20, Out: 20})
	add(domain.ContainerDef{ID: domain.ContainerFloor, Shape: grid(t, 16, 8), Temp: true, All: true, In: 14, Out: 12})
	add(domain.ContainerDef{ID: domain.ContainerEquip, Shape: grid(t, 32, 16), Temp: true, Scroll: true, All: true})
	return tt
}

func link(weapon *domain.ItemDef, ammos ...*domain.ItemDef) {
	for _, a := range ammos {
		weapon.Ammos = append(weapon.Ammos, a)
		a.Weapons = append(a.Weapons, weapon)
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{tables: newTestTables(t)}

	f.assault = &domain.ItemDef{Idx: 0, ID: "assault", Shape: shape.MustRect(4, 2), Weight: 4,
		Weapon: true, Primary: true, FireTwoHanded: true, Ammo: 30, ReloadTime: 12}
	f.assaultAmmo = &domain.ItemDef{Idx: 1, ID: "assault_ammo", Type: domain.ItemTypeAmmo, Shape: shape.MustRect(1, 2), Weight: 1}
	link(f.assault, f.assaultAmmo)

	f.rpg = &domain.ItemDef{Idx: 2, ID: "rpg", Shape: shape.MustRect(5, 2), Weight: 8,
		Weapon: true, Primary: true, HoldTwoHanded: true, FireTwoHanded: true, Ammo: 1, ReloadTime: 20}
	f.rpgAmmo = &domain.ItemDef{Idx: 3, ID: "rpg_ammo", Type: domain.ItemTypeAmmo, Shape: shape.MustRect(2, 1), Weight: 2}
	f.rpgIncendiary = &domain.ItemDef{Idx: 4, ID: "rpg_incendiary_ammo", Type: domain.ItemTypeAmmo, Shape: shape.MustRect(2, 1), Weight: 2}
	link(f.rpg, f.rpgAmmo, f.rpgIncendiary)

	f.pistol = &domain.ItemDef{Idx: 5, ID: "pistol", Shape: shape.MustRect(2, 2), Weight: 1,
		Weapon: true, Secondary: true, Ammo: 12, ReloadTime: 8}
	f.pistolAmmo = &domain.ItemDef{Idx: 6, ID: "pistol_ammo", Type: domain.ItemTypeAmmo, Shape: shape.MustRect(1, 1), Weight: 0.5}
	link(f.pistol, f.pistolAmmo)

	f.knife = &domain.ItemDef{Idx: 7, ID: "knife", Shape: shape.MustRect(1, 2), Weight: 0.5, Weapon: true, Secondary: true}
	link(f.knife, f.knife)
	f.grenade = &domain.ItemDef{Idx: 8, ID: "grenade", Shape: shape.MustRect(1, 1), Weight: 0.5,
		Weapon: true, Secondary: true, OneShot: true, Deplete: true, Thrown: true, Ammo: 1}
	link(f.grenade, f.grenade)

	f.lightArmour = &domain.ItemDef{Idx: 9, ID: "armour_light", Type: domain.ItemTypeArmour, Shape: shape.MustRect(3, 3), Weight: 5}
	f.mediumArmour = &domain.ItemDef{Idx: 10, ID: "armour_medium", Type: domain.ItemTypeArmour, Shape: shape.MustRect(3, 3), Weight: 10}

	f.irgoggles = &domain.ItemDef{Idx: 11, ID: "irgoggles", Shape: shape.MustRect(2, 1), Weight: 0.5, Headgear: true, Misc: true}
	f.medikit = &domain.ItemDef{Idx: 12, ID: "medikit", Shape: shape.MustRect(2, 2), Weight: 1, Misc: true}
	f.brainchip = &domain.ItemDef{Idx: 13, ID: "brainchip", Shape: shape.MustRect(1, 1), Implant: true, Misc: true}

	f.engine = NewEngine("test", f.tables, NewPoolAllocator("test"))
	f.inv = f.engine.NewInventory()
	return f
}

func (f *fixture) add(t *testing.T, def *domain.ItemDef, id domain.ContainerID, opts ...ItemOption) *Item {
	t.Helper()
	item, err := f.engine.TryAdd(f.inv, NewItem(def, opts...), id)
	if err != nil {
		t.Fatalf("add %s to %s: %v", def.ID, id, err)
	}
	return item
}

func (f *fixture) def(id domain.ContainerID) *domain.ContainerDef {
	return f.tables.Container(id)
}

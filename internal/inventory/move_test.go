package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestMove_RightHandToBackpack(t *testing.T) {
	f := newFixture(t)
	assault := f.add(t, f.assault, domain.ContainerRight)

	action, placed := f.engine.Move(f.inv, domain.ContainerRight, assault, domain.ContainerBackpack, None, None, nil)
	require.Equal(t, ActionMove, action)
	require.NotNil(t, placed)

	probe := NewItem(f.assault)
	assert.False(t, f.inv.ContainsItem(domain.ContainerRight, &probe))
	assert.True(t, f.inv.ContainsItem(domain.ContainerBackpack, &probe))
	assert.Same(t, placed, f.inv.Container(domain.ContainerBackpack).First())
	assert.Equal(t, 1, f.engine.UsedSlots())
}

func TestMove_ReloadAndSwap(t *testing.T) {
	f := newFixture(t)
	rpg := f.add(t, f.rpg, domain.ContainerRight)
	ammo := f.add(t, f.rpgAmmo, domain.ContainerBackpack)

	action, weapon := f.engine.Move(f.inv, domain.ContainerBackpack, ammo, domain.ContainerRight, None, None, nil)
	require.Equal(t, ActionReload, action)
	assert.Same(t, rpg, weapon)
	assert.False(t, f.inv.ContainsItem(domain.ContainerBackpack, &Item{def: f.rpgAmmo}))
	assert.Same(t, f.rpgAmmo, rpg.AmmoDef())
	assert.Equal(t, 1, rpg.AmmoLeft())

	incendiary := f.add(t, f.rpgIncendiary, domain.ContainerBackpack)
	ix, iy := incendiary.X(), incendiary.Y()

	action, weapon = f.engine.Move(f.inv, domain.ContainerBackpack, incendiary, domain.ContainerRight, None, None, nil)
	require.Equal(t, ActionReloadSwap, action)
	assert.Same(t, rpg, weapon)
	assert.Nil(t, f.inv.FindDef(domain.ContainerBackpack, f.rpgIncendiary))

	returned := f.inv.FindDef(domain.ContainerBackpack, f.rpgAmmo)
	require.NotNil(t, returned)
	assert.Equal(t, ix, returned.X())
	assert.Equal(t, iy, returned.Y())
	assert.Same(t, f.rpgIncendiary, rpg.AmmoDef())
	assert.Equal(t, 1, rpg.AmmoLeft())
	assert.Equal(t, 2, f.engine.UsedSlots())
}

func TestMove_NoReload(t *testing.T) {
	f := newFixture(t)
	rpg := f.add(t, f.rpg, domain.ContainerRight, WithAmmo(f.rpgAmmo, 1))
	ammo := f.add(t, f.rpgAmmo, domain.ContainerBackpack)

	action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, ammo, domain.ContainerRight, None, None, intPtr(100))
	assert.Equal(t, ActionNoReload, action)
	assert.True(t, f.inv.ContainsItem(domain.ContainerBackpack, ammo))
	assert.Same(t, f.rpgAmmo, rpg.AmmoDef())
}

func TestMove_ReloadCostsReloadTime(t *testing.T) {
	f := newFixture(t)
	f.add(t, f.rpg, domain.ContainerRight)
	ammo := f.add(t, f.rpgAmmo, domain.ContainerBackpack)

	// backpack out 8 + right in 3 + reload 20
	tu := 30
	action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, ammo, domain.ContainerRight, None, None, &tu)
	assert.Equal(t, ActionNoTime, action)
	assert.Equal(t, 30, tu)
	assert.True(t, f.inv.ContainsItem(domain.ContainerBackpack, ammo))

	tu = 40
	action, _ = f.engine.Move(f.inv, domain.ContainerBackpack, ammo, domain.ContainerRight, None, None, &tu)
	assert.Equal(t, ActionReload, action)
	assert.Equal(t, 9, tu)
}

func TestMove_ReloadSwapToFloor(t *testing.T) {
	f := newFixture(t)
	pistol := f.add(t, f.pistol, domain.ContainerRight, WithAmmo(f.pistolAmmo, 12))
	other := &domain.ItemDef{Idx: 20, ID: "pistol_ammo_ap", Type: domain.ItemTypeAmmo, Shape: f.pistolAmmo.Shape}
	link(f.pistol, other)

	stack, err := f.engine.Add(f.inv, NewItem(other), domain.ContainerFloor, None, None, 3)
	require.NoError(t, err)

	action, _ := f.engine.Move(f.inv, domain.ContainerFloor, stack, domain.ContainerRight, None, None, nil)
	require.Equal(t, ActionReloadSwap, action)
	assert.Same(t, other, pistol.AmmoDef())
	assert.Equal(t, 12, pistol.AmmoLeft())
	assert.Equal(t, 2, stack.Amount())

	old := f.inv.FindDef(domain.ContainerFloor, f.pistolAmmo)
	require.NotNil(t, old)
	assert.Equal(t, 1, old.Amount())
}

func TestMove_ReloadSwapNeedsRoomForOldAmmo(t *testing.T) {
	f := newFixture(t)
	// The old load is bigger than the new one and the pack is full.
	big := &domain.ItemDef{Idx: 21, ID: "assault_drum", Type: domain.ItemTypeAmmo, Shape: f.medikit.Shape}
	link(f.assault, big)
	weapon := f.add(t, f.assault, domain.ContainerRight, WithAmmo(big, 30))
	for i := 0; i < 6; i++ {
		f.add(t, f.pistol, domain.ContainerBackpack)
	}
	first := f.inv.Container(domain.ContainerBackpack).First()
	require.NoError(t, f.engine.Remove(f.inv, domain.ContainerBackpack, first))
	clip := f.add(t, f.assaultAmmo, domain.ContainerBackpack)
	filler := f.add(t, f.assaultAmmo, domain.ContainerBackpack)
	require.NotNil(t, filler)

	action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, clip, domain.ContainerRight, None, None, nil)
	assert.Equal(t, ActionNone, action)
	assert.Same(t, big, weapon.AmmoDef())
	assert.True(t, f.inv.ContainsItem(domain.ContainerBackpack, clip))
}

func TestMove_NoTimeLeavesInventoryUntouched(t *testing.T) {
	f := newFixture(t)
	assault := f.add(t, f.assault, domain.ContainerRight)
	backpack := f.def(domain.ContainerBackpack)
	before := f.inv.OccupiedGrid(backpack, nil)

	tu := 16
	action, placed := f.engine.Move(f.inv, domain.ContainerRight, assault, domain.ContainerBackpack, None, None, &tu)
	assert.Equal(t, ActionNoTime, action)
	assert.Nil(t, placed)
	assert.Equal(t, 16, tu)
	assert.Same(t, assault, f.inv.RightHand())
	assert.Equal(t, before, f.inv.OccupiedGrid(backpack, nil))

	tu = 17
	action, placed = f.engine.Move(f.inv, domain.ContainerRight, assault, domain.ContainerBackpack, None, None, &tu)
	require.Equal(t, ActionMove, action)
	assert.Equal(t, 0, tu)

	fresh := newFixture(t)
	freshAssault := fresh.add(t, fresh.assault, domain.ContainerRight)
	freshAction, freshPlaced := fresh.engine.Move(fresh.inv, domain.ContainerRight, freshAssault, domain.ContainerBackpack, None, None, nil)
	assert.Equal(t, freshAction, action)
	assert.Equal(t, freshPlaced.X(), placed.X())
	assert.Equal(t, freshPlaced.Y(), placed.Y())
	assert.Equal(t, freshPlaced.Rotated(), placed.Rotated())
}

func TestMove_NoOps(t *testing.T) {
	t.Run("same position", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, f.pistol, domain.ContainerBackpack)
		tu := 0
		action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, item, domain.ContainerBackpack, 0, 0, &tu)
		assert.Equal(t, ActionNone, action, "checked before the budget")
	})

	t.Run("scroll container", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, f.pistol, domain.ContainerEquip)
		action, _ := f.engine.Move(f.inv, domain.ContainerEquip, item, domain.ContainerEquip, 3, 3, nil)
		assert.Equal(t, ActionNone, action)
	})

	t.Run("item not in source", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, f.pistol, domain.ContainerBackpack)
		action, _ := f.engine.Move(f.inv, domain.ContainerBelt, item, domain.ContainerRight, None, None, nil)
		assert.Equal(t, ActionNone, action)
	})

	t.Run("fire two handed from right to left", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, f.assault, domain.ContainerRight)
		action, _ := f.engine.Move(f.inv, domain.ContainerRight, item, domain.ContainerLeft, None, None, nil)
		assert.Equal(t, ActionNone, action)
		assert.Same(t, item, f.inv.RightHand())
	})

	t.Run("slot type mismatch", func(t *testing.T) {
		f := newFixture(t)
		medikit := f.add(t, f.medikit, domain.ContainerBackpack)
		for _, id := range []domain.ContainerID{domain.ContainerArmour, domain.ContainerHeadgear, domain.ContainerImplant} {
			action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, medikit, id, None, None, nil)
			assert.Equal(t, ActionNone, action, id.String())
		}
		assert.True(t, f.inv.ContainsItem(domain.ContainerBackpack, medikit))
	})

	t.Run("blocked target", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.knife, domain.ContainerBelt)
		medikit := f.add(t, f.medikit, domain.ContainerBackpack)
		action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, medikit, domain.ContainerBelt, 0, 0, nil)
		assert.Equal(t, ActionNone, action)
	})

	t.Run("full target", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.pistol, domain.ContainerHolster)
		f.add(t, f.pistol, domain.ContainerHolster)
		knife := f.add(t, f.knife, domain.ContainerBackpack)
		action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, knife, domain.ContainerHolster, None, None, nil)
		assert.Equal(t, ActionNone, action)
	})

	t.Run("ammo onto weapon in the equip pool", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.pistol, domain.ContainerEquip)
		clip := f.add(t, f.pistolAmmo, domain.ContainerBackpack)
		action, _ := f.engine.Move(f.inv, domain.ContainerBackpack, clip, domain.ContainerEquip, 0, 0, nil)
		assert.Equal(t, ActionMove, action, "pool takes it as a plain item")
		assert.Nil(t, f.inv.FindDef(domain.ContainerEquip, f.pistol).AmmoDef())
	})
}

func TestMove_WithinContainer(t *testing.T) {
	f := newFixture(t)
	pistol := f.add(t, f.pistol, domain.ContainerBackpack)

	// backpack out 8 + in 14, halved
	tu := 11
	action, placed := f.engine.Move(f.inv, domain.ContainerBackpack, pistol, domain.ContainerBackpack, 4, 2, &tu)
	require.Equal(t, ActionMove, action)
	assert.Equal(t, 0, tu)
	assert.Equal(t, 4, placed.X())
	assert.Equal(t, 2, placed.Y())
	assert.Equal(t, 1, f.inv.Container(domain.ContainerBackpack).Count())

	t.Run("floor moves are free", func(t *testing.T) {
		f := newFixture(t)
		knife := f.add(t, f.knife, domain.ContainerFloor)
		tu := 0
		action, placed := f.engine.Move(f.inv, domain.ContainerFloor, knife, domain.ContainerFloor, 5, 5, &tu)
		require.Equal(t, ActionMove, action)
		assert.Equal(t, 5, placed.X())
	})

	t.Run("stack is repositioned whole", func(t *testing.T) {
		f := newFixture(t)
		stack, err := f.engine.Add(f.inv, NewItem(f.grenade), domain.ContainerFloor, None, None, 4)
		require.NoError(t, err)
		action, placed := f.engine.Move(f.inv, domain.ContainerFloor, stack, domain.ContainerFloor, 7, 3, nil)
		require.Equal(t, ActionMove, action)
		assert.Same(t, stack, placed)
		assert.Equal(t, 4, stack.Amount())
		assert.Equal(t, 7, stack.X())
		assert.Equal(t, 3, stack.Y())
	})
}

func TestMove_PickUpFromStack(t *testing.T) {
	f := newFixture(t)
	stack, err := f.engine.Add(f.inv, NewItem(f.grenade), domain.ContainerFloor, None, None, 3)
	require.NoError(t, err)

	action, placed := f.engine.Move(f.inv, domain.ContainerFloor, stack, domain.ContainerBelt, None, None, nil)
	require.Equal(t, ActionMove, action)
	assert.Equal(t, 1, placed.Amount())
	assert.Equal(t, 2, stack.Amount())
	assert.Equal(t, 2, f.engine.UsedSlots())
}

func TestMove_OntoItemInPool(t *testing.T) {
	f := newFixture(t)
	f.add(t, f.pistol, domain.ContainerFloor)
	knife := f.add(t, f.knife, domain.ContainerBackpack)

	action, placed := f.engine.Move(f.inv, domain.ContainerBackpack, knife, domain.ContainerFloor, 0, 0, nil)
	require.Equal(t, ActionMove, action)
	assert.Equal(t, []int{2, 0}, []int{placed.X(), placed.Y()})
}

func TestMove_Armour(t *testing.T) {
	t.Run("into empty slot", func(t *testing.T) {
		f := newFixture(t)
		armour := f.add(t, f.lightArmour, domain.ContainerFloor)
		action, placed := f.engine.Move(f.inv, domain.ContainerFloor, armour, domain.ContainerArmour, None, None, nil)
		require.Equal(t, ActionArmour, action)
		assert.Same(t, placed, f.inv.Armour())
	})

	t.Run("swaps worn armour back to the floor", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.pistol, domain.ContainerFloor)
		f.add(t, f.lightArmour, domain.ContainerArmour)
		medium := f.add(t, f.mediumArmour, domain.ContainerFloor)
		mx, my := medium.X(), medium.Y()

		tu := 100
		action, placed := f.engine.Move(f.inv, domain.ContainerFloor, medium, domain.ContainerArmour, None, None, &tu)
		require.Equal(t, ActionArmour, action)
		assert.Same(t, f.mediumArmour, placed.Def())
		assert.Same(t, placed, f.inv.Armour())
		assert.Equal(t, 100-12-20, tu)

		light := f.inv.FindDef(domain.ContainerFloor, f.lightArmour)
		require.NotNil(t, light)
		assert.Equal(t, []int{mx, my}, []int{light.X(), light.Y()})
		assert.Nil(t, f.inv.FindDef(domain.ContainerFloor, f.mediumArmour))
		assert.Equal(t, 3, f.engine.UsedSlots())
	})

	t.Run("same armour is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.lightArmour, domain.ContainerArmour)
		spare := f.add(t, f.lightArmour, domain.ContainerFloor)
		action, _ := f.engine.Move(f.inv, domain.ContainerFloor, spare, domain.ContainerArmour, None, None, nil)
		assert.Equal(t, ActionNone, action)
		assert.True(t, f.inv.ContainsItem(domain.ContainerFloor, spare))
	})

	t.Run("failed swap restores the source", func(t *testing.T) {
		f := newFixture(t)
		worn := f.add(t, f.lightArmour, domain.ContainerArmour)
		// Cover the floor with distinct pebbles so the worn armour has
		// nowhere to go, leaving one cell for a small vest.
		for y := 0; y < 8; y++ {
			for x := 0; x < 16; x++ {
				if x == 0 && y == 0 {
					continue
				}
				d := &domain.ItemDef{Idx: 100 + y*16 + x, ID: "pebble", Shape: f.pistolAmmo.Shape}
				_, err := f.engine.Add(f.inv, NewItem(d), domain.ContainerFloor, x, y, 1)
				require.NoError(t, err)
			}
		}
		vestDef := &domain.ItemDef{Idx: 400, ID: "armour_vest", Type: domain.ItemTypeArmour, Shape: f.pistolAmmo.Shape}
		vest, err := f.engine.Add(f.inv, NewItem(vestDef), domain.ContainerFloor, 0, 0, 1)
		require.NoError(t, err)
		used := f.engine.UsedSlots()

		tu := 100
		action, _ := f.engine.Move(f.inv, domain.ContainerFloor, vest, domain.ContainerArmour, None, None, &tu)
		assert.Equal(t, ActionNone, action)
		assert.Equal(t, 100, tu)
		assert.Same(t, worn, f.inv.Armour())

		restored := f.inv.FindDef(domain.ContainerFloor, vestDef)
		require.NotNil(t, restored)
		assert.Equal(t, []int{0, 0}, []int{restored.X(), restored.Y()})
		assert.Equal(t, used, f.engine.UsedSlots())
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "reload_swap", ActionReloadSwap.String())
	assert.Equal(t, "notime", ActionNoTime.String())
	assert.Equal(t, "unknown", Action(42).String())
	assert.True(t, ActionArmour.Changed())
	assert.False(t, ActionNoReload.Changed())
}

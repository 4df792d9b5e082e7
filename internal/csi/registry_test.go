package csi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"assault", "assault_ammo", "pistol", "pistol_ammo", "rpg", "rpg_ammo", "knife"}

	tests := []struct {
		name string
		id   string
		want []string
	}{
		{name: "typo", id: "pistl", want: []string{"pistol"}},
		{name: "prefix ranks first", id: "assault_am", want: []string{"assault_ammo", "assault"}},
		{name: "capped", id: "rpg_", want: []string{"rpg_ammo", "rpg"}},
		{name: "too short", id: "rp", want: nil},
		{name: "nothing close", id: "plasma_blade", want: []string{}},
		{name: "exact match skipped", id: "knife", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.id, candidates))
		})
	}
}

func TestSuggest_AtMostThree(t *testing.T) {
	got := Suggest("ammo", []string{"ammo_a", "ammo_b", "ammo_c", "ammo_d"})
	assert.Equal(t, []string{"ammo_a", "ammo_b", "ammo_c"}, got)
}

func TestRegistry_Lookups(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	t.Run("item by idx", func(t *testing.T) {
		first := reg.ItemByIdx(0)
		require.NotNil(t, first)
		assert.Equal(t, "assault", first.ID)
		assert.Nil(t, reg.ItemByIdx(-1))
		assert.Nil(t, reg.ItemByIdx(reg.NumItems()))
	})

	t.Run("unknown item suggests", func(t *testing.T) {
		_, err := reg.Item("granade")
		require.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Contains(t, err.Error(), "did you mean grenade?")
	})

	t.Run("container by name", func(t *testing.T) {
		def, err := reg.ContainerByName("backpack")
		require.NoError(t, err)
		assert.Equal(t, domain.ContainerBackpack, def.ID)

		_, err = reg.ContainerByName("backpak")
		require.ErrorIs(t, err, domain.ErrContainerNotFound)
		assert.Contains(t, err.Error(), "backpack")
	})

	t.Run("container id out of range", func(t *testing.T) {
		assert.Nil(t, reg.Container(domain.ContainerNone))
		assert.Nil(t, reg.Container(domain.ContainerCount))
	})

	t.Run("damage types", func(t *testing.T) {
		dt, err := reg.DamageType(domain.DamageParticle)
		require.NoError(t, err)
		assert.Equal(t, "Particle Beam", dt.Name)
		assert.Len(t, reg.DamageTypes(), 5)

		_, err = reg.DamageType("plasm")
		assert.ErrorIs(t, err, domain.ErrDamageTypeNotFound)
	})

	t.Run("teams and equipment", func(t *testing.T) {
		_, err := reg.Team("humans")
		require.ErrorIs(t, err, domain.ErrTeamNotFound)
		assert.Contains(t, err.Error(), "did you mean human?")

		_, err = reg.Equipment("nothing")
		assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
	})
}

func TestRegistry_ContainerUndefined(t *testing.T) {
	reg, err := NewLoader().Load([]byte(minimalJSON), FormatJSON)
	require.NoError(t, err)

	_, err = reg.ContainerByName("belt")
	require.ErrorIs(t, err, domain.ErrContainerNotFound)
	assert.Contains(t, err.Error(), `container "belt" is not defined`)
}

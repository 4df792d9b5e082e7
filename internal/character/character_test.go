package character

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
)

func newCharacter(t *testing.T, skills Skills) (*Character, *inventory.Engine, *csi.Registry) {
	t.Helper()
	reg, err := csi.Default()
	require.NoError(t, err)
	team, err := reg.Team("human")
	require.NoError(t, err)

	engine := inventory.NewEngine(t.Name(), reg, nil)
	chr, err := New("Sgt. Kowalski", team, skills, engine.NewInventory())
	require.NoError(t, err)
	return chr, engine, reg
}

func TestNew(t *testing.T) {
	chr, _, _ := newCharacter(t, Skills{Power: 40, Speed: 50})

	assert.Len(t, chr.ID, 36)
	assert.Equal(t, "Sgt. Kowalski", chr.Name)
	assert.Equal(t, 37, chr.TU, "27 + 50*20/100, unencumbered")
	assert.Equal(t, 40.0, chr.MaxLoad())
	assert.False(t, chr.Locked())

	other, _, _ := newCharacter(t, Skills{Power: 40, Speed: 50})
	assert.NotEqual(t, chr.ID, other.ID)
}

func TestNew_Rejects(t *testing.T) {
	reg, err := csi.Default()
	require.NoError(t, err)
	team, err := reg.Team("human")
	require.NoError(t, err)
	inv := inventory.NewEngine("reject", reg, nil).NewInventory()

	tests := []struct {
		name   string
		team   *domain.TeamDef
		skills Skills
		inv    *inventory.Inventory
		msg    string
	}{
		{name: "no team", skills: Skills{}, inv: inv, msg: ErrMsgNoTeam},
		{name: "no inventory", team: team, skills: Skills{}, msg: ErrMsgNoInventory},
		{name: "skill too high", team: team, skills: Skills{Speed: 101}, inv: inv, msg: "speed skill 101"},
		{name: "negative skill", team: team, skills: Skills{Mind: -1}, inv: inv, msg: "mind skill -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("x", tt.team, tt.skills, tt.inv)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMaxTU_Encumbrance(t *testing.T) {
	chr, _, _ := newCharacter(t, Skills{Power: 50, Speed: 100})

	tests := []struct {
		weight  float64
		penalty float64
		tu      int
	}{
		{weight: 0, penalty: 0, tu: 47},
		{weight: 10, penalty: 0, tu: 47},
		{weight: 10.5, penalty: WeightNormalPenalty, tu: 32},
		{weight: 25, penalty: WeightNormalPenalty, tu: 32},
		{weight: 25.5, penalty: WeightHeavyPenalty, tu: 23},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.penalty, chr.EncumbrancePenalty(tt.weight), "weight %v", tt.weight)
		assert.Equal(t, tt.tu, chr.MaxTU(tt.weight), "weight %v", tt.weight)
	}
}

func TestResetTU_UsesCarriedWeight(t *testing.T) {
	chr, engine, reg := newCharacter(t, Skills{Power: 20, Speed: 0})
	armour, err := reg.Item("armour_medium")
	require.NoError(t, err)

	_, err = engine.TryAdd(chr.Inventory, inventory.NewItem(armour), domain.ContainerArmour)
	require.NoError(t, err)

	chr.TU = 0
	chr.ResetTU()
	assert.Equal(t, 18, chr.TU, "10 of 20 carried is above the light threshold")
}

func TestTryLock(t *testing.T) {
	chr, _, _ := newCharacter(t, Skills{Power: 30})

	require.True(t, chr.TryLock())
	assert.True(t, chr.Locked())
	assert.False(t, chr.TryLock(), "advisory lock is not reentrant")

	chr.Unlock()
	assert.False(t, chr.Locked())
	assert.True(t, chr.TryLock())
	chr.Unlock()
}

func TestTryLock_Concurrent(t *testing.T) {
	chr, _, _ := newCharacter(t, Skills{Power: 30})

	var winners atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if chr.TryLock() {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

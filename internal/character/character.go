package character

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
)

// Skills are the abilities that bound what an actor can carry and how
// fast it acts. Each is in 0..MaxSkill.
type Skills struct {
	Power    int `json:"power" validate:"gte=0,lte=100"`
	Speed    int `json:"speed" validate:"gte=0,lte=100"`
	Accuracy int `json:"accuracy" validate:"gte=0,lte=100"`
	Mind     int `json:"mind" validate:"gte=0,lte=100"`
}

// Validate checks every skill is within range.
func (s Skills) Validate() error {
	for _, sk := range []struct {
		name  string
		value int
	}{
		{"power", s.Power},
		{"speed", s.Speed},
		{"accuracy", s.Accuracy},
		{"mind", s.Mind},
	} {
		if sk.value < 0 || sk.value > MaxSkill {
			return fmt.Errorf("%w: "+ErrMsgSkillOutOfRange, domain.ErrInvalidInput, sk.name, sk.value, MaxSkill)
		}
	}
	return nil
}

// Character is one actor: its team, skills, current time units and the
// inventory it carries.
type Character struct {
	ID        string
	Name      string
	Team      *domain.TeamDef
	Skills    Skills
	TU        int
	Inventory *inventory.Inventory

	locked atomic.Bool
}

// New creates a character with a fresh id and a full TU budget for what it
// carries.
func New(name string, team *domain.TeamDef, skills Skills, inv *inventory.Inventory) (*Character, error) {
	if team == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoTeam)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoInventory)
	}
	if err := skills.Validate(); err != nil {
		return nil, err
	}
	c := &Character{
		ID:        uuid.NewString(),
		Name:      name,
		Team:      team,
		Skills:    skills,
		Inventory: inv,
	}
	c.ResetTU()
	return c, nil
}

// MaxLoad is the weight the actor can carry.
func (c *Character) MaxLoad() float64 {
	return float64(c.Skills.Power)
}

// EncumbrancePenalty is the share of TUs lost while carrying weight.
func (c *Character) EncumbrancePenalty(weight float64) float64 {
	load := c.MaxLoad()
	switch {
	case weight > load*WeightHeavy:
		return WeightHeavyPenalty
	case weight > load*WeightLight:
		return WeightNormalPenalty
	default:
		return 0
	}
}

// MaxTU is the per-turn TU budget while carrying weight.
func (c *Character) MaxTU(weight float64) int {
	base := MinTU + c.Skills.Speed*SpeedTUFactor/MaxSkill
	return int(float64(base) * (1 - c.EncumbrancePenalty(weight)))
}

// ResetTU refills the TU budget for the start of a turn.
func (c *Character) ResetTU() {
	c.TU = c.MaxTU(c.Inventory.Weight())
}

// TryLock takes the actor's advisory lock, reporting false when someone
// else already holds it. Callers must Unlock on every path.
func (c *Character) TryLock() bool {
	return c.locked.CompareAndSwap(false, true)
}

// Unlock releases the advisory lock.
func (c *Character) Unlock() {
	c.locked.Store(false)
}

// Locked reports whether the advisory lock is held.
func (c *Character) Locked() bool {
	return c.locked.Load()
}

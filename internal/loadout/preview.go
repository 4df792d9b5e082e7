package loadout

import (
	"context"
	"fmt"
	"sync"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
	"github.com/ufoaiorg/ufoai-sub020/internal/utils"
)

// Tables is what a Previewer resolves requests against.
type Tables interface {
	inventory.Tables
	ItemSource
	Team(id string) (*domain.TeamDef, error)
	Equipment(id string) (*domain.EquipmentDef, error)
}

// PreviewRequest describes a throwaway actor to equip.
type PreviewRequest struct {
	Name      string
	Team      string
	Equipment string
	Skills    character.Skills
	// Seed makes the roll reproducible; zero falls back to the previewer's
	// default seed, then to the clock.
	Seed int64
}

// Preview is a generated loadout, copied out before the actor's items are
// released.
type Preview struct {
	ActorID    string                    `json:"actor_id"`
	Team       string                    `json:"team"`
	Equipment  string                    `json:"equipment,omitempty"`
	Kind       string                    `json:"kind"`
	Armed      bool                      `json:"armed"`
	Weight     float64                   `json:"weight"`
	MaxLoad    float64                   `json:"max_load"`
	TU         int                       `json:"tu"`
	Containers []inventory.ContainerView `json:"containers"`
}

// reseedable lets one generator serve requests with their own seeds.
type reseedable struct {
	src utils.Rand
}

func (r *reseedable) Float64() float64 { return r.src.Float64() }
func (r *reseedable) IntN(n int) int   { return r.src.IntN(n) }

// Previewer equips throwaway actors on demand, e.g. for the HTTP preview
// endpoint and the debug CLI. Candidate pools are shared across requests.
type Previewer struct {
	mu     sync.Mutex
	tables Tables
	engine *inventory.Engine
	rng    *reseedable
	gen    *Generator
	seed   int64
}

// NewPreviewer creates a previewer with its own engine.
func NewPreviewer(tables Tables, cfg Config, opts ...Option) (*Previewer, error) {
	engine := inventory.NewEngine("preview", tables, nil)
	rng := &reseedable{src: utils.NewRand(0)}
	gen, err := NewGenerator(engine, tables, cfg, rng, opts...)
	if err != nil {
		return nil, err
	}
	return &Previewer{tables: tables, engine: engine, rng: rng, gen: gen}, nil
}

// SetDefaultSeed fixes the seed used by requests that leave Seed zero.
func (p *Previewer) SetDefaultSeed(seed int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seed = seed
}

// Preview equips a new actor as described by req and returns its loadout.
// The actor's items are freed before returning.
func (p *Previewer) Preview(ctx context.Context, req PreviewRequest) (*Preview, error) {
	team, err := p.tables.Team(req.Team)
	if err != nil {
		return nil, err
	}
	var ed *domain.EquipmentDef
	if req.Equipment != "" {
		if ed, err = p.tables.Equipment(req.Equipment); err != nil {
			return nil, err
		}
	}

	name := req.Name
	if name == "" {
		name = team.Name
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	chr, err := character.New(name, team, req.Skills, p.engine.NewInventory())
	if err != nil {
		return nil, err
	}
	defer p.engine.Destroy(chr.Inventory)

	seed := req.Seed
	if seed == 0 {
		seed = p.seed
	}
	p.rng.src = utils.NewRand(seed)
	res, err := p.gen.EquipActor(ctx, chr, ed)
	if err != nil {
		return nil, fmt.Errorf("equip %s: %w", team.ID, err)
	}

	return &Preview{
		ActorID:    chr.ID,
		Team:       team.ID,
		Equipment:  req.Equipment,
		Kind:       res.Kind,
		Armed:      res.Armed,
		Weight:     chr.Inventory.Weight(),
		MaxLoad:    chr.MaxLoad(),
		TU:         chr.TU,
		Containers: inventory.Snapshot(chr.Inventory, false),
	}, nil
}

// InUse reports how many item nodes the preview engine holds; zero between
// requests.
func (p *Previewer) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine.UsedSlots()
}

package loadout

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ufoaiorg/ufoai-sub020/internal/character"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/event"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
	"github.com/ufoaiorg/ufoai-sub020/internal/utils"
)

// ItemSource lists the item definitions equipment tables index into.
type ItemSource interface {
	Items() []*domain.ItemDef
}

// Result summarises one EquipActor call.
type Result struct {
	Kind  string   `json:"kind"`
	Items []string `json:"items"`
	Armed bool     `json:"armed"`
}

// Generator fills actor inventories from equipment tables. Calls are
// serialised: the engine and random source it drives are single-owner.
type Generator struct {
	mu     sync.Mutex
	engine *inventory.Engine
	items  ItemSource
	cfg    Config
	rng    utils.Rand
	pools  *lru.Cache[string, *pool]
	bus    event.Bus
}

// Option configures a Generator.
type Option func(*Generator)

// WithEventBus publishes a LoadoutGenerated event after every call.
func WithEventBus(bus event.Bus) Option {
	return func(g *Generator) { g.bus = bus }
}

// NewGenerator creates a generator. rng may be nil for a clock-seeded source.
func NewGenerator(engine *inventory.Engine, items ItemSource, cfg Config, rng utils.Rand, opts ...Option) (*Generator, error) {
	if engine == nil || items == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoEngine)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if rng == nil {
		rng = utils.NewRand(0)
	}

	g := &Generator{engine: engine, items: items, cfg: cfg, rng: rng}
	if cfg.PoolCacheSize > 0 {
		cache, err := lru.New[string, *pool](cfg.PoolCacheSize)
		if err != nil {
			return nil, err
		}
		g.pools = cache
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// CachedPools reports how many equipment tables have cached candidate pools.
func (g *Generator) CachedPools() int {
	if g.pools == nil {
		return 0
	}
	return g.pools.Len()
}

func (g *Generator) poolFor(ed *domain.EquipmentDef) *pool {
	if g.pools == nil {
		return buildPool(g.items.Items(), ed)
	}
	if p, ok := g.pools.Get(ed.ID); ok {
		return p
	}
	p := buildPool(g.items.Items(), ed)
	g.pools.Add(ed.ID, p)
	return p
}

// equipState is the bookkeeping of one EquipActor call.
type equipState struct {
	log    *slog.Logger
	chr    *character.Character
	ed     *domain.EquipmentDef
	result Result
}

// EquipActor fills the actor's inventory according to its team: melee-only
// teams get their fixed weapon, robots their built-in gun, everyone else a
// randomised kit drawn from ed. Items that would break the actor's weight
// or TU budget are skipped. ed may be nil for melee and robot teams.
func (g *Generator) EquipActor(ctx context.Context, chr *character.Character, ed *domain.EquipmentDef) (Result, error) {
	if chr == nil || chr.Team == nil || chr.Inventory == nil {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoCharacter)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	team := chr.Team
	st := &equipState{
		log: logger.FromContext(ctx).With(LogFieldActor, chr.ID, LogFieldTeam, team.ID),
		chr: chr,
		ed:  ed,
	}

	var err error
	switch {
	case team.Robot:
		err = g.equipRobot(st)
	case team.OnlyWeapon != nil:
		err = g.equipMelee(st, team.OnlyWeapon)
	default:
		if ed == nil {
			return Result{}, fmt.Errorf("%w: "+ErrMsgNoEquipment, domain.ErrInvalidInput, team.ID)
		}
		st.log = st.log.With(LogFieldEquipment, ed.ID)
		g.equipNormal(st)
	}
	if err != nil {
		return Result{}, err
	}

	chr.ResetTU()
	if !st.result.Armed && team.Weapons {
		st.log.Warn(LogMsgUnarmed)
	}
	st.log.Info(LogMsgLoadoutGenerated,
		LogFieldKind, st.result.Kind,
		LogFieldCount, len(st.result.Items),
		LogFieldArmed, st.result.Armed)
	g.publish(ctx, st)
	return st.result, nil
}

func (g *Generator) publish(ctx context.Context, st *equipState) {
	if g.bus == nil {
		return
	}
	edID := ""
	if st.ed != nil {
		edID = st.ed.ID
	}
	evt := event.NewLoadoutGeneratedEvent(st.chr.ID, st.chr.Team.ID, edID,
		st.result.Items, st.result.Armed, st.chr.Inventory.Weight())
	if err := g.bus.Publish(ctx, evt); err != nil {
		st.log.Warn(LogMsgPublishFailed, "error", err)
	}
}

// equipMelee puts the team's only weapon in the right hand.
func (g *Generator) equipMelee(st *equipState, weapon *domain.ItemDef) error {
	st.result.Kind = KindMelee
	if !weapon.FireTwoHanded {
		return fmt.Errorf("%w: "+ErrMsgMeleeNotTwoHanded, domain.ErrInvalidInput, weapon.ID, st.chr.Team.ID)
	}
	item := inventory.NewItem(weapon, inventory.WithAmmo(weapon, weapon.Ammo))
	return g.install(st, item)
}

// equipRobot installs the built-in weapon loaded with its first ammo. A
// built-in weapon without ammo is a melee weapon.
func (g *Generator) equipRobot(st *equipState) error {
	team := st.chr.Team
	weapon := team.RobotWeapon
	if weapon == nil {
		weapon = team.OnlyWeapon
	}
	if weapon == nil {
		return fmt.Errorf("%w: "+ErrMsgRobotWeaponMissing, domain.ErrInvalidInput, team.ID)
	}
	if len(weapon.Ammos) == 0 {
		if !weapon.FireTwoHanded {
			return fmt.Errorf("%w: "+ErrMsgRobotWeaponUnusable, domain.ErrInvalidInput, weapon.ID, team.ID)
		}
		return g.equipMelee(st, weapon)
	}

	st.result.Kind = KindRobot
	item := inventory.NewItem(weapon, inventory.WithAmmo(weapon.Ammos[0], weapon.Ammo))
	return g.install(st, item)
}

// install adds a fixed weapon to the right hand without budget checks.
func (g *Generator) install(st *equipState, item inventory.Item) error {
	if _, err := g.engine.TryAdd(st.chr.Inventory, item, domain.ContainerRight); err != nil {
		return fmt.Errorf(ErrMsgNotPacked+": %w", item.Def().ID, st.chr.Team.ID, err)
	}
	st.result.Items = append(st.result.Items, item.Def().ID)
	st.result.Armed = true
	return nil
}

func (g *Generator) equipNormal(st *equipState) {
	st.result.Kind = KindNormal
	team := st.chr.Team
	p := g.poolFor(st.ed)
	cfg := g.cfg

	var primary *domain.ItemDef
	missedPrimary := 0

	if team.Weapons {
		// Every primary rolls on its own; the priciest success wins and the
		// counts of failed rolls buy extra clips.
		for _, def := range p.primaries {
			count := st.ed.Count(def)
			if g.rng.IntN(cfg.PrimaryRollRange) < count {
				if primary == nil || def.Price > primary.Price {
					primary = def
				}
			} else {
				missedPrimary += count
			}
		}
		if primary != nil && g.packWeapon(st, primary, missedPrimary) {
			st.result.Armed = true
		}

		if !st.result.Armed || (primary != nil && isHeavy(primary)) {
			g.packSidearm(st, p.sidearms, primary)
		}

		passes := 1
		if !st.result.Armed && utils.Chance(g.rng, cfg.WeaponlessBonus) {
			passes++
		}
		for range passes {
			for _, def := range p.extras {
				for range g.units(st.ed.Count(def)) {
					if g.packWeapon(st, def, 0) {
						st.result.Armed = true
					}
				}
			}
		}

		if !st.result.Armed {
			if def := mostExpensive(p.fallbacks); def != nil && g.packWeapon(st, def, 0) {
				st.result.Armed = true
			}
		}
	}

	if team.Armour && len(p.armours) > 0 {
		g.packArmour(st, p.armours, missedPrimary)
	}

	if len(p.misc) > 0 {
		g.packMisc(st, p.misc)
	}
}

// packSidearm rolls one reloadable sidearm, with better odds for actors
// still unarmed, and maybe a second one for empty-handed actors.
func (g *Generator) packSidearm(st *equipState, sidearms []*domain.ItemDef, primary *domain.ItemDef) {
	cfg := g.cfg
	bonus := 1.0
	if !st.result.Armed {
		bonus += cfg.WeaponlessBonus
	}

	var sidearm *domain.ItemDef
	for _, def := range sidearms {
		if float64(g.rng.IntN(cfg.PrimaryRollRange)) < float64(st.ed.Count(def))*bonus {
			if sidearm == nil || def.Price > sidearm.Price {
				sidearm = def
			}
		}
	}
	if sidearm == nil || !g.packWeapon(st, sidearm, 0) {
		return
	}
	st.result.Armed = true

	if primary == nil && !sidearm.FireTwoHanded && utils.Chance(g.rng, cfg.AkimboChance) {
		g.packWeapon(st, sidearm, 0)
	}
}

// units turns a table count into a number of copies: count/100 guaranteed
// plus a count%100 percent chance of one more.
func (g *Generator) units(count int) int {
	if count <= 0 {
		return 0
	}
	n := count / 100
	if float64(count%100) > g.rng.Float64()*100 {
		n++
	}
	return n
}

// packArmour rolls one d100 against the armour counts laid end to end. An
// actor who missed primaries may get a second try.
func (g *Generator) packArmour(st *equipState, armours []*domain.ItemDef, missedPrimary int) {
	cfg := g.cfg
	attempts := 1
	if missedPrimary > 0 {
		odds := math.Min(1, float64(missedPrimary)/float64(cfg.PrimaryRollRange))
		if utils.Chance(g.rng, odds) {
			attempts++
		}
	}

	for range attempts {
		roll := g.rng.IntN(cfg.PrimaryRollRange)
		for _, def := range armours {
			count := st.ed.Count(def)
			if roll < count {
				if g.tryAdd(st, inventory.NewItem(def), domain.ContainerArmour) {
					return
				}
			}
			roll -= count
		}
	}
}

// packMisc rolls for exactly one misc item and files it where it belongs.
func (g *Generator) packMisc(st *equipState, misc []*domain.ItemDef) {
	weights := make([]int, len(misc))
	for i, def := range misc {
		weights[i] = st.ed.Count(def)
	}
	idx := utils.WeightedIndex(g.rng, weights, g.cfg.MiscRollRange)
	if idx < 0 {
		return
	}

	def := misc[idx]
	target := domain.ContainerBackpack
	switch {
	case def.Headgear:
		target = domain.ContainerHeadgear
	case def.Implant:
		target = domain.ContainerImplant
	}
	g.tryAdd(st, inventory.NewItem(def), target)
}

// packWeapon loads a weapon, puts it in the first hand or holder with room
// and packs spare clips into the backpack. It reports whether the weapon
// was packed.
func (g *Generator) packWeapon(st *equipState, weapon *domain.ItemDef, missedPrimary int) bool {
	var ammo *domain.ItemDef
	var load inventory.ItemOption
	switch {
	case weapon.OneShot, !weapon.IsReloadable():
		load = inventory.WithAmmo(weapon, weapon.Ammo)
	default:
		ammo = g.pickAmmo(st.ed, weapon)
		if ammo == nil {
			st.log.Debug(LogMsgNoAmmo, LogFieldItem, weapon.ID)
			return false
		}
		load = inventory.WithAmmo(ammo, weapon.Ammo)
	}
	item := inventory.NewItem(weapon, load)

	inv := st.chr.Inventory
	allowLeft := true
	if right := inv.RightHand(); right != nil && right.Def().FireTwoHanded {
		allowLeft = false
	}

	clipMult := g.cfg.ClipMultiplier
	packed := g.tryAdd(st, item, domain.ContainerRight)
	if packed {
		clipMult = g.cfg.HandClipMultiplier
	}
	if !packed && allowLeft {
		packed = g.tryAdd(st, item, domain.ContainerLeft)
	}
	if !packed {
		packed = g.tryAdd(st, item, domain.ContainerBelt)
	}
	if !packed {
		packed = g.tryAdd(st, item, domain.ContainerHolster)
	}
	if !packed {
		return false
	}

	if ammo != nil {
		clips := int(float64(1+st.ed.Count(ammo)) * (1 + float64(missedPrimary)/100))
		numPacked := 0
		for range clips {
			if !g.tryAdd(st, inventory.NewItem(ammo), domain.ContainerBackpack) {
				break
			}
			numPacked++
			if numPacked > clipMult || numPacked*weapon.Ammo > g.cfg.ClipRoundCap {
				break
			}
		}
	}
	return true
}

// pickAmmo chooses uniformly among the weapon's ammo types the table offers.
func (g *Generator) pickAmmo(ed *domain.EquipmentDef, weapon *domain.ItemDef) *domain.ItemDef {
	var offered []*domain.ItemDef
	for _, ammo := range weapon.Ammos {
		if ed.Count(ammo) > 0 {
			offered = append(offered, ammo)
		}
	}
	if len(offered) == 0 {
		return nil
	}
	return offered[g.rng.IntN(len(offered))]
}

// tryAdd packs one unit if the actor can still carry it and still fire the
// slowest carried weapon, or the new one, within its TU budget afterwards.
func (g *Generator) tryAdd(st *equipState, item inventory.Item, id domain.ContainerID) bool {
	chr := st.chr
	weight := chr.Inventory.Weight() + item.Weight()
	if maxWeight := chr.MaxLoad(); weight > maxWeight {
		st.log.Debug(LogMsgSkippedWeight,
			LogFieldItem, item.Def().ID,
			LogFieldWeight, weight,
			LogFieldMaxWeight, maxWeight)
		return false
	}
	if tu, maxTU := max(item.MinFireTime(), carriedFireTime(chr.Inventory)), chr.MaxTU(weight); tu > maxTU {
		st.log.Debug(LogMsgSkippedTU,
			LogFieldItem, item.Def().ID,
			LogFieldTU, tu,
			LogFieldMaxTU, maxTU)
		return false
	}

	if _, err := g.engine.TryAdd(chr.Inventory, item, id); err != nil {
		return false
	}
	st.result.Items = append(st.result.Items, item.Def().ID)
	return true
}

// carriedFireTime is the TU cost of the slowest weapon outside temp containers.
func carriedFireTime(inv *inventory.Inventory) int {
	need := 0
	for c := range inv.Containers(false) {
		for item := range c.All() {
			need = max(need, item.MinFireTime())
		}
	}
	return need
}

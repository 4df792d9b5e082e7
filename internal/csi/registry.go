package csi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

// Registry is the read-only set of static definitions shared by every
// engine and generator built from it. It is safe for concurrent reads.
type Registry struct {
	items       []*domain.ItemDef
	itemsByID   map[string]*domain.ItemDef
	containers  [domain.ContainerCount]*domain.ContainerDef
	damageTypes []*domain.DamageType
	damageByID  map[string]*domain.DamageType
	teams       []*domain.TeamDef
	teamsByID   map[string]*domain.TeamDef
	equipment   []*domain.EquipmentDef
	equipByID   map[string]*domain.EquipmentDef
}

func newRegistry() *Registry {
	return &Registry{
		itemsByID:  make(map[string]*domain.ItemDef),
		damageByID: make(map[string]*domain.DamageType),
		teamsByID:  make(map[string]*domain.TeamDef),
		equipByID:  make(map[string]*domain.EquipmentDef),
	}
}

// Container returns the definition for id, nil when it is not defined.
func (r *Registry) Container(id domain.ContainerID) *domain.ContainerDef {
	if !id.Valid() {
		return nil
	}
	return r.containers[id]
}

// ContainerByName resolves a container by its file name, e.g. "backpack".
func (r *Registry) ContainerByName(name string) (*domain.ContainerDef, error) {
	id, ok := domain.ParseContainerID(name)
	if !ok {
		return nil, notFound(domain.ErrContainerNotFound, name, r.containerNames())
	}
	def := r.containers[id]
	if def == nil {
		return nil, fmt.Errorf("%w: "+ErrMsgContainerUndefined, domain.ErrContainerNotFound, name)
	}
	return def, nil
}

// Containers lists the defined containers in id order.
func (r *Registry) Containers() []*domain.ContainerDef {
	out := make([]*domain.ContainerDef, 0, len(r.containers))
	for _, c := range r.containers {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) containerNames() []string {
	names := make([]string, 0, len(r.containers))
	for _, c := range r.Containers() {
		names = append(names, c.Name)
	}
	return names
}

// Item resolves an item definition by id.
func (r *Registry) Item(id string) (*domain.ItemDef, error) {
	if def, ok := r.itemsByID[id]; ok {
		return def, nil
	}
	return nil, notFound(domain.ErrItemNotFound, id, keys(r.itemsByID))
}

// ItemByIdx returns the item with table index idx, nil when out of range.
func (r *Registry) ItemByIdx(idx int) *domain.ItemDef {
	if idx < 0 || idx >= len(r.items) {
		return nil
	}
	return r.items[idx]
}

// Items lists every item definition in table order.
func (r *Registry) Items() []*domain.ItemDef {
	return r.items
}

func (r *Registry) NumItems() int { return len(r.items) }

// DamageType resolves a damage type by id.
func (r *Registry) DamageType(id string) (*domain.DamageType, error) {
	if dt, ok := r.damageByID[id]; ok {
		return dt, nil
	}
	return nil, notFound(domain.ErrDamageTypeNotFound, id, keys(r.damageByID))
}

func (r *Registry) DamageTypes() []*domain.DamageType { return r.damageTypes }

// Team resolves a team definition by id.
func (r *Registry) Team(id string) (*domain.TeamDef, error) {
	if team, ok := r.teamsByID[id]; ok {
		return team, nil
	}
	return nil, notFound(domain.ErrTeamNotFound, id, keys(r.teamsByID))
}

func (r *Registry) Teams() []*domain.TeamDef { return r.teams }

// Equipment resolves an equipment table by id.
func (r *Registry) Equipment(id string) (*domain.EquipmentDef, error) {
	if ed, ok := r.equipByID[id]; ok {
		return ed, nil
	}
	return nil, notFound(domain.ErrEquipmentNotFound, id, keys(r.equipByID))
}

func (r *Registry) EquipmentDefs() []*domain.EquipmentDef { return r.equipment }

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func notFound(sentinel error, id string, candidates []string) error {
	if hints := Suggest(id, candidates); len(hints) > 0 {
		return fmt.Errorf("%w: %s ("+ErrMsgDidYouMean+")", sentinel, id, strings.Join(hints, ", "))
	}
	return fmt.Errorf("%w: %s", sentinel, id)
}

// Suggest returns up to MaxSuggestions candidates close to id, nearest
// first. Prefix matches rank ahead of edit-distance matches.
func Suggest(id string, candidates []string) []string {
	if len(id) < SuggestionMinLength {
		return nil
	}

	type scored struct {
		val  string
		dist int
	}
	limit := len(id)/3 + 1
	var results []scored
	for _, cand := range candidates {
		switch {
		case cand == id:
			continue
		case strings.HasPrefix(cand, id):
			results = append(results, scored{val: cand, dist: 0})
		default:
			if dist := levenshtein.ComputeDistance(id, cand); dist <= limit {
				results = append(results, scored{val: cand, dist: dist})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})

	out := make([]string, 0, MaxSuggestions)
	for i := 0; i < len(results) && i < MaxSuggestions; i++ {
		out = append(out, results[i].val)
	}
	return out
}

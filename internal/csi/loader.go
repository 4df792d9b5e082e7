package csi

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
	"github.com/ufoaiorg/ufoai-sub020/internal/validation"
)

//go:embed data/*.yaml
var dataFS embed.FS

var errEmptyShape = errors.New("empty shape")

// Loader turns definition files into a Registry.
type Loader struct {
	schema   validation.SchemaValidator
	validate *validator.Validate
	title    cases.Caser
}

// NewLoader creates a loader using the embedded definition schema.
func NewLoader() *Loader {
	return &Loader{
		schema:   validation.NewSchemaValidator(),
		validate: validator.New(),
		title:    cases.Title(language.English),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the embedded definition set. It is
// loaded once and shared.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		data, err := dataFS.ReadFile(DefaultDataFile)
		if err != nil {
			defaultErr = err
			return
		}
		slog.Debug(LogMsgUsingEmbedded, LogFieldPath, DefaultDataFile)
		defaultRegistry, defaultErr = NewLoader().Load(data, FormatYAML)
	})
	return defaultRegistry, defaultErr
}

// LoadFile reads a .yaml, .yml or .json definition file. An empty path
// selects the embedded set.
func (l *Loader) LoadFile(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	slog.Info(LogMsgLoadingFile, LogFieldPath, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return l.Load(data, format)
}

// Load decodes, validates and links one definition document.
func (l *Loader) Load(data []byte, format string) (*Registry, error) {
	var raw any
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnknownFormat, format)
	}

	if err := l.schema.ValidateDocument(raw, validation.CSISchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSchemaFailed, err)
	}
	if err := l.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgStructFailed, err)
	}

	reg, err := l.build(&doc)
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgLoaded,
		LogFieldItems, len(reg.items),
		LogFieldContainers, len(reg.Containers()),
		LogFieldTeams, len(reg.teams),
		LogFieldEquipment, len(reg.equipment))
	return reg, nil
}

// displayName turns "rpg_ammo" into "Rpg Ammo" when a file gives no name.
func (l *Loader) displayName(name, id string) string {
	if name != "" {
		return name
	}
	return l.title.String(strings.ReplaceAll(id, "_", " "))
}

func (l *Loader) build(doc *document) (*Registry, error) {
	reg := newRegistry()

	for i, e := range doc.DamageTypes {
		if _, dup := reg.damageByID[e.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, domain.ErrInvalidInput, "damage type", e.ID)
		}
		dt := &domain.DamageType{Idx: i, ID: e.ID, Name: l.displayName(e.Name, e.ID)}
		reg.damageTypes = append(reg.damageTypes, dt)
		reg.damageByID[e.ID] = dt
	}

	for _, e := range doc.Containers {
		def, err := l.buildContainer(e)
		if err != nil {
			return nil, err
		}
		if reg.containers[def.ID] != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, domain.ErrInvalidInput, "container", e.ID)
		}
		reg.containers[def.ID] = def
	}

	for i, e := range doc.Items {
		if _, dup := reg.itemsByID[e.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, domain.ErrInvalidInput, "item", e.ID)
		}
		def, err := l.buildItem(reg, i, e)
		if err != nil {
			return nil, err
		}
		reg.items = append(reg.items, def)
		reg.itemsByID[e.ID] = def
	}

	if err := linkItems(reg, doc.Items); err != nil {
		return nil, err
	}

	for _, e := range doc.Teams {
		if _, dup := reg.teamsByID[e.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, domain.ErrInvalidInput, "team", e.ID)
		}
		team, err := l.buildTeam(reg, e)
		if err != nil {
			return nil, err
		}
		reg.teams = append(reg.teams, team)
		reg.teamsByID[e.ID] = team
	}

	for _, e := range doc.Equipment {
		if _, dup := reg.equipByID[e.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateID, domain.ErrInvalidInput, "equipment", e.ID)
		}
		ed := &domain.EquipmentDef{ID: e.ID, Name: l.displayName(e.Name, e.ID), Counts: make([]int, len(reg.items))}
		for itemID, count := range e.Items {
			def, err := reg.Item(itemID)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgUnknownReference+": %w", "equipment", e.ID, "item", itemID, err)
			}
			ed.Counts[def.Idx] = count
		}
		reg.equipment = append(reg.equipment, ed)
		reg.equipByID[e.ID] = ed
	}

	return reg, nil
}

func (l *Loader) buildContainer(e containerEntry) (*domain.ContainerDef, error) {
	id, ok := domain.ParseContainerID(e.ID)
	if !ok {
		return nil, notFound(domain.ErrContainerNotFound, e.ID, containerIDNames())
	}

	var grid shape.Grid
	var err error
	switch {
	case len(e.Shape) > 0:
		grid, err = shape.ParseGrid(e.Shape)
	case len(e.Size) == 2:
		grid, err = shape.GridRect(e.Size[0], e.Size[1])
	case e.Scroll:
		grid, err = shape.GridRect(shape.BigMaxWidth, shape.BigMaxHeight)
	case e.Single:
		grid, err = shape.GridRect(1, 1)
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidShape, domain.ErrInvalidInput, "container", e.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidShape+": %v", domain.ErrInvalidInput, "container", e.ID, err)
	}

	return &domain.ContainerDef{
		ID:       id,
		Name:     e.ID,
		Shape:    grid,
		Single:   e.Single,
		Scroll:   e.Scroll,
		Temp:     e.Temp,
		Armour:   e.Armour,
		Headgear: e.Headgear,
		Implant:  e.Implant,
		All:      e.All,
		Unique:   e.Unique,
		In:       e.In,
		Out:      e.Out,
	}, nil
}

func containerIDNames() []string {
	names := make([]string, 0, domain.ContainerCount)
	for id := range domain.ContainerCount {
		names = append(names, id.String())
	}
	return names
}

func (l *Loader) buildItem(reg *Registry, idx int, e itemEntry) (*domain.ItemDef, error) {
	var mask shape.Mask
	var err error
	switch {
	case len(e.Shape) > 0:
		mask, err = shape.ParseMask(e.Shape)
	case len(e.Size) == 2:
		mask, err = shape.Rect(e.Size[0], e.Size[1])
	default:
		mask = shape.MustRect(1, 1)
	}
	if err == nil && mask.Empty() {
		err = errEmptyShape
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidShape+": %v", domain.ErrInvalidInput, "item", e.ID, err)
	}

	def := &domain.ItemDef{
		Idx:           idx,
		ID:            e.ID,
		Name:          l.displayName(e.Name, e.ID),
		Type:          e.Type,
		Shape:         mask,
		Weight:        e.Weight,
		Price:         e.Price,
		Weapon:        e.Weapon,
		Primary:       e.Primary,
		Secondary:     e.Secondary,
		Misc:          e.Misc,
		HoldTwoHanded: e.HoldTwoHanded,
		FireTwoHanded: e.FireTwoHanded,
		Headgear:      e.Headgear,
		Implant:       e.Implant,
		OneShot:       e.OneShot,
		Deplete:       e.Deplete,
		Thrown:        e.Thrown,
		Ammo:          e.Ammo,
		ReloadTime:    e.ReloadTime,
	}

	if e.DamageType != "" {
		dt, err := reg.DamageType(e.DamageType)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUnknownReference+": %w", "item", e.ID, "damage type", e.DamageType, err)
		}
		def.DamageType = dt
	}

	for _, fd := range e.FireDefs {
		def.FireDefs = append(def.FireDefs, domain.FireDef{
			ID:       fd.ID,
			Name:     l.displayName(fd.Name, fd.ID),
			Weapon:   fd.Weapon,
			Time:     fd.Time,
			Range:    fd.Range,
			Shots:    fd.Shots,
			Reaction: fd.Reaction,
		})
	}
	return def, nil
}

// linkItems wires ammo to the weapons it loads into, both ways. Fire
// definitions must name a weapon the item actually loads into.
func linkItems(reg *Registry, entries []itemEntry) error {
	for _, e := range entries {
		ammo := reg.itemsByID[e.ID]
		for _, weaponID := range e.Weapons {
			weapon, err := reg.Item(weaponID)
			if err != nil {
				return fmt.Errorf(ErrMsgUnknownReference+": %w", "item", e.ID, "weapon", weaponID, err)
			}
			ammo.Weapons = append(ammo.Weapons, weapon)
			weapon.Ammos = append(weapon.Ammos, ammo)
		}
		for _, fd := range e.FireDefs {
			if !linked(ammo, fd.Weapon) {
				return fmt.Errorf("%w: "+ErrMsgUnknownReference, domain.ErrItemNotFound, "fire definition", fd.ID, "weapon", fd.Weapon)
			}
		}
	}
	return nil
}

func linked(ammo *domain.ItemDef, weaponID string) bool {
	for _, w := range ammo.Weapons {
		if w.ID == weaponID {
			return true
		}
	}
	return false
}

func (l *Loader) buildTeam(reg *Registry, e teamEntry) (*domain.TeamDef, error) {
	team := &domain.TeamDef{
		ID:      e.ID,
		Name:    l.displayName(e.Name, e.ID),
		Robot:   e.Robot,
		Weapons: e.Weapons,
		Armour:  e.Armour,
	}
	if e.OnlyWeapon != "" {
		def, err := reg.Item(e.OnlyWeapon)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUnknownReference+": %w", "team", e.ID, "weapon", e.OnlyWeapon, err)
		}
		team.OnlyWeapon = def
	}
	if e.RobotWeapon != "" {
		def, err := reg.Item(e.RobotWeapon)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUnknownReference+": %w", "team", e.ID, "weapon", e.RobotWeapon, err)
		}
		team.RobotWeapon = def
	}
	return team, nil
}

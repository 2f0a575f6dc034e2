package items

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/automoto/lootbound/shared/gamemath"
)

var (
	ErrUnknownItem = errors.New("unknown item")
	ErrUnknownMob  = errors.New("unknown mob type")
)

//go:embed data/registry.yaml
var defaultRegistry []byte

// LootEntry is one weighted line of a loadout or drop table. Weight 0 uses
// the item's rarity weight.
type LootEntry struct {
	Item   string  `yaml:"item"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Weight float64 `yaml:"weight"`
	Always bool    `yaml:"always"`
}

// MobType is the data-driven stat block of a mob.
type MobType struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	AnimationKey string `yaml:"animation"`

	Health    float64 `yaml:"health"`
	Mana      float64 `yaml:"mana"`
	ManaRegen float64 `yaml:"mana_regen"`
	Stamina   float64 `yaml:"stamina"`

	PatrolSpeed float64 `yaml:"patrol_speed"`
	ChaseSpeed  float64 `yaml:"chase_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Friction    float64 `yaml:"friction"`
	Gravity     float64 `yaml:"gravity"`

	ChaseRange       float64 `yaml:"chase_range"`
	StoppingDistance float64 `yaml:"stopping_distance"`
	PatrolDistance   float64 `yaml:"patrol_distance"`
	AttackDamage     float64 `yaml:"attack_damage"` // unarmed

	MaxJumps           int     `yaml:"max_jumps"`
	JumpStrength       float64 `yaml:"jump_strength"`
	DoubleJumpStrength float64 `yaml:"double_jump_strength"`
	TripleJumpStrength float64 `yaml:"triple_jump_strength"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	InventorySize   int     `yaml:"inventory_size"`

	Loadout      []LootEntry `yaml:"loadout"`
	LoadoutRolls int         `yaml:"loadout_rolls"`
	Drops        []LootEntry `yaml:"drops"`
	DropRolls    int         `yaml:"drop_rolls"`
}

type registryFile struct {
	Items []*Item    `yaml:"items"`
	Mobs  []*MobType `yaml:"mobs"`
}

// Registry resolves item and mob ids. It is built once and passed to
// whatever needs lookups.
type Registry struct {
	items   map[string]*Item
	mobs    map[string]*MobType
	itemIDs []string
	mobIDs  []string
}

// New validates the templates and builds a registry.
func New(items []*Item, mobs []*MobType) (*Registry, error) {
	r := &Registry{
		items: make(map[string]*Item, len(items)),
		mobs:  make(map[string]*MobType, len(mobs)),
	}
	for _, it := range items {
		if it == nil || it.ID == "" {
			return nil, errors.New("item with empty id")
		}
		if _, dup := r.items[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item %q", it.ID)
		}
		if err := validateItem(it); err != nil {
			return nil, fmt.Errorf("item %q: %w", it.ID, err)
		}
		r.items[it.ID] = it
		r.itemIDs = append(r.itemIDs, it.ID)
	}
	for _, it := range items {
		if it.Ammo == "" || strings.EqualFold(it.Ammo, ManaAmmo) {
			continue
		}
		if !r.hasAmmo(it.Ammo) {
			return nil, fmt.Errorf("item %q: ammo %q: %w", it.ID, it.Ammo, ErrUnknownItem)
		}
	}
	for _, m := range mobs {
		if m == nil || m.ID == "" {
			return nil, errors.New("mob type with empty id")
		}
		if _, dup := r.mobs[m.ID]; dup {
			return nil, fmt.Errorf("duplicate mob type %q", m.ID)
		}
		if err := r.validateMob(m); err != nil {
			return nil, fmt.Errorf("mob type %q: %w", m.ID, err)
		}
		r.mobs[m.ID] = m
		r.mobIDs = append(r.mobIDs, m.ID)
	}
	return r, nil
}

// Parse decodes a YAML registry document.
func Parse(data []byte) (*Registry, error) {
	var f registryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return New(f.Items, f.Mobs)
}

// LoadRegistry reads a YAML registry from fsys.
func LoadRegistry(fsys fs.FS, path string) (*Registry, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	r, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Default returns the built-in registry.
func Default() (*Registry, error) {
	return Parse(defaultRegistry)
}

// Template returns the shared template for id. Callers must not modify it.
func (r *Registry) Template(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Create returns a fresh copy of item id.
func (r *Registry) Create(id string) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return it.Clone(), nil
}

// MobType returns the stat block for id.
func (r *Registry) MobType(id string) (*MobType, error) {
	m, ok := r.mobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMob, id)
	}
	return m, nil
}

// ItemIDs lists item ids in declaration order.
func (r *Registry) ItemIDs() []string {
	return append([]string(nil), r.itemIDs...)
}

// MobTypes lists mob type ids sorted.
func (r *Registry) MobTypes() []string {
	out := append([]string(nil), r.mobIDs...)
	sort.Strings(out)
	return out
}

func (r *Registry) hasAmmo(name string) bool {
	for _, it := range r.items {
		if it.IsAmmoFor(name) {
			return true
		}
	}
	return false
}

func validateItem(it *Item) error {
	if it.MaxStack < 0 {
		return fmt.Errorf("max_stack %d is negative", it.MaxStack)
	}
	if it.Damage < 0 || it.Range < 0 || it.ManaCost < 0 {
		return errors.New("damage, range and mana_cost must not be negative")
	}
	if it.Category == CategoryThrowable && it.Ammo != "" && !strings.EqualFold(it.Ammo, ManaAmmo) {
		return errors.New("throwables are their own ammo")
	}
	if c := it.Charge; c != nil {
		if c.MinTime < 0 || c.MaxTime <= 0 || c.MinTime > c.MaxTime {
			return fmt.Errorf("charge times min %.2f max %.2f are invalid", c.MinTime, c.MaxTime)
		}
		for _, curve := range []Curve{c.Damage, c.Speed, c.Size, c.ManaCost} {
			if !gamemath.KnownEase(curve.Ease) {
				return fmt.Errorf("unknown ease %q", curve.Ease)
			}
		}
	}
	return nil
}

func (r *Registry) validateMob(m *MobType) error {
	if m.Health <= 0 {
		return errors.New("health must be positive")
	}
	if m.MaxJumps < 0 || m.MaxJumps > 3 {
		return fmt.Errorf("max_jumps must be 0..3, got %d", m.MaxJumps)
	}
	if m.CollisionWidth <= 0 || m.CollisionHeight <= 0 {
		return errors.New("collision size must be positive")
	}
	for _, tbl := range [][]LootEntry{m.Loadout, m.Drops} {
		for _, e := range tbl {
			if _, ok := r.items[e.Item]; !ok {
				return fmt.Errorf("loot entry %q: %w", e.Item, ErrUnknownItem)
			}
			if e.Max != 0 && e.Max < e.Min {
				return fmt.Errorf("loot entry %q: max %d below min %d", e.Item, e.Max, e.Min)
			}
		}
	}
	return nil
}

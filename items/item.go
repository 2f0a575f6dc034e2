// Package items holds the item model, attack-mode resolution, inventories
// and the data-driven item and mob registry.
package items

import (
	"fmt"
	"strings"

	"github.com/automoto/lootbound/shared/gamemath"
	"github.com/automoto/lootbound/status"
)

// ManaAmmo is the ammo name of weapons that spend mana instead of items.
const ManaAmmo = "mana"

type Category int

const (
	CategoryMaterial Category = iota
	CategoryMelee
	CategoryRanged
	CategoryThrowable
	CategoryArmor
	CategoryConsumable
	CategoryBlock
	CategoryKey
	CategoryAccessory
)

var categoryNames = map[Category]string{
	CategoryMaterial:   "material",
	CategoryMelee:      "melee",
	CategoryRanged:     "ranged",
	CategoryThrowable:  "throwable",
	CategoryArmor:      "armor",
	CategoryConsumable: "consumable",
	CategoryBlock:      "block",
	CategoryKey:        "key",
	CategoryAccessory:  "accessory",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c *Category) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for cat, name := range categoryNames {
		if name == s {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown item category %q", string(b))
}

// Rarity is ordered; the ordinal feeds weapon scoring.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

// dropWeights are the default loot weights for entries without their own.
var dropWeights = [...]float64{50, 25, 10, 4, 1}

func (r Rarity) String() string {
	if r >= 0 && int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

func (r *Rarity) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*r = Common
		return nil
	}
	for i, name := range rarityNames {
		if name == s {
			*r = Rarity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rarity %q", string(b))
}

// DropWeight is the default loot weight of the rarity.
func (r Rarity) DropWeight() float64 {
	if r >= 0 && int(r) < len(dropWeights) {
		return dropWeights[r]
	}
	return 1
}

// AttackMode is how an equipped item attacks.
type AttackMode int

const (
	ModeNone AttackMode = iota
	ModeMelee
	ModeRanged
	ModeThrowable
	ModeMagic
)

func (m AttackMode) String() string {
	switch m {
	case ModeMelee:
		return "melee"
	case ModeRanged:
		return "ranged"
	case ModeThrowable:
		return "throwable"
	case ModeMagic:
		return "magic"
	}
	return "none"
}

// Projectile reports whether the mode fires projectiles.
func (m AttackMode) Projectile() bool {
	return m == ModeRanged || m == ModeThrowable || m == ModeMagic
}

// Curve maps charge percent onto a multiplier between Min and Max.
type Curve struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Ease string  `yaml:"ease"`
}

// At returns the multiplier at charge percent p. An unset curve is 1.
func (c Curve) At(p float64) float64 {
	if c.Min == 0 && c.Max == 0 {
		return 1
	}
	return gamemath.Interpolate(c.Ease, c.Min, c.Max, p)
}

// ChargeProfile configures charged fire.
type ChargeProfile struct {
	MinTime  float64 `yaml:"min_time"`
	MaxTime  float64 `yaml:"max_time"`
	Damage   Curve   `yaml:"damage"`
	Speed    Curve   `yaml:"speed"`
	Size     Curve   `yaml:"size"`
	ManaCost Curve   `yaml:"mana_cost"`
}

// Percent converts a charge timer into [0,1].
func (c *ChargeProfile) Percent(timer float64) float64 {
	if c == nil || c.MaxTime <= 0 {
		return 0
	}
	return gamemath.Clamp(timer/c.MaxTime, 0, 1)
}

// Item is an item template or instance. Fields that do not apply to a
// category stay zero.
type Item struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Rarity   Rarity   `yaml:"rarity"`
	MaxStack int      `yaml:"max_stack"`

	// Weapons
	Damage      float64 `yaml:"damage"`
	Range       float64 `yaml:"range"`
	AttackSpeed float64 `yaml:"attack_speed"`
	Knockback   float64 `yaml:"knockback"`

	// Ranged and magic
	Ammo              string         `yaml:"ammo"`
	Projectile        string         `yaml:"projectile"`
	ProjectileSpeed   float64        `yaml:"projectile_speed"`
	ProjectileSize    float64        `yaml:"projectile_size"`
	ProjectileLife    float64        `yaml:"projectile_lifetime"`
	ProjectileGravity float64        `yaml:"projectile_gravity"`
	ManaCost          float64        `yaml:"mana_cost"`
	Charge            *ChargeProfile `yaml:"charge"`

	// Ammo
	AmmoType    string  `yaml:"ammo_type"`
	BonusDamage float64 `yaml:"bonus_damage"`

	// On-hit payload for weapons, ammo and throwables.
	Effect *status.Payload `yaml:"effect"`

	// Consumables
	Heal        float64 `yaml:"heal"`
	RestoreMana float64 `yaml:"restore_mana"`
	UseTime     float64 `yaml:"use_time"`
	Food        bool    `yaml:"food"`
}

// DisplayName falls back to the id.
func (it *Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// AttackMode resolves how the item attacks. A nil item is an unarmed melee
// attack.
func (it *Item) AttackMode() AttackMode {
	if it == nil {
		return ModeMelee
	}
	switch {
	case strings.EqualFold(it.Ammo, ManaAmmo):
		return ModeMagic
	case it.Category == CategoryThrowable:
		return ModeThrowable
	case it.Ammo != "":
		return ModeRanged
	case it.Category == CategoryMelee:
		return ModeMelee
	case it.Category == CategoryRanged:
		return ModeRanged
	}
	return ModeNone
}

func (it *Item) IsWeapon() bool {
	return it != nil && it.AttackMode() != ModeNone
}

func (it *Item) IsMagic() bool {
	return it != nil && it.AttackMode() == ModeMagic
}

func (it *Item) Chargeable() bool {
	return it != nil && it.Charge != nil && it.Charge.MaxTime > 0
}

// Stackable reports whether more than one unit fits in a slot.
func (it *Item) Stackable() bool {
	return it.MaxStack > 1
}

// StackLimit is MaxStack with a floor of 1.
func (it *Item) StackLimit() int {
	if it.MaxStack < 1 {
		return 1
	}
	return it.MaxStack
}

// IsAmmoFor reports whether the item satisfies an ammo name.
func (it *Item) IsAmmoFor(name string) bool {
	if it == nil || name == "" {
		return false
	}
	return strings.EqualFold(it.ID, name) ||
		strings.EqualFold(it.Name, name) ||
		(it.AmmoType != "" && strings.EqualFold(it.AmmoType, name))
}

// Usable reports whether the item can be quick-used.
func (it *Item) Usable() bool {
	return it != nil && it.Category == CategoryConsumable && (it.Heal > 0 || it.RestoreMana > 0)
}

// Clone returns a deep copy.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	c := *it
	if it.Charge != nil {
		ch := *it.Charge
		c.Charge = &ch
	}
	if it.Effect != nil {
		ef := *it.Effect
		c.Effect = &ef
	}
	return &c
}

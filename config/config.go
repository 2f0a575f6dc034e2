package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config groups every tunable of the simulation. Values are per tick for
// speeds and accelerations, seconds for timers.
type Config struct {
	Window    WindowConfig    `toml:"window"`
	Logging   LoggingConfig   `toml:"logging"`
	Physics   PhysicsConfig   `toml:"physics"`
	Player    PlayerConfig    `toml:"player"`
	Combat    CombatConfig    `toml:"combat"`
	MobAI     MobAIConfig     `toml:"mob_ai"`
	Animation AnimationConfig `toml:"animation"`
	Data      DataConfig      `toml:"data"`
}

// WindowConfig sizes the debug window and the fixed update rate.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// PhysicsConfig contains world-wide physics values.
type PhysicsConfig struct {
	MaxFallSpeed          float64 `toml:"max_fall_speed"`
	MaxRiseSpeed          float64 `toml:"max_rise_speed"`
	PlatformDropThreshold float64 `toml:"platform_drop_threshold"` // pixels above a platform top that still count as standing on it
	CellSize              int     `toml:"cell_size"`
	PickupGravity         float64 `toml:"pickup_gravity"`
	OffLevelMargin        float64 `toml:"off_level_margin"`
}

// PoolConfig seeds a resource pool.
type PoolConfig struct {
	Max       float64 `toml:"max"`
	RegenRate float64 `toml:"regen_rate"`
	DrainRate float64 `toml:"drain_rate"`
}

// StartingItem is granted to the player at spawn.
type StartingItem struct {
	ID    string `toml:"id"`
	Count int    `toml:"count"`
	Equip bool   `toml:"equip"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration     float64 `toml:"acceleration"`
	AttackAccel      float64 `toml:"attack_accel"`
	MaxSpeed         float64 `toml:"max_speed"`
	SprintMultiplier float64 `toml:"sprint_multiplier"`

	// Jumping
	MaxJumps           int     `toml:"max_jumps"`
	JumpStrength       float64 `toml:"jump_strength"`
	DoubleJumpStrength float64 `toml:"double_jump_strength"`
	TripleJumpStrength float64 `toml:"triple_jump_strength"`

	// Physics
	Gravity        float64 `toml:"gravity"`
	Friction       float64 `toml:"friction"`
	AttackFriction float64 `toml:"attack_friction"`

	// Resources
	Health  PoolConfig `toml:"health"`
	Mana    PoolConfig `toml:"mana"`
	Stamina PoolConfig `toml:"stamina"`

	InvulnTime float64 `toml:"invuln_time"`

	// Inventory
	InventorySize int            `toml:"inventory_size"`
	StartingItems []StartingItem `toml:"starting_items"`

	// Dimensions
	CollisionWidth  float64 `toml:"collision_width"`
	CollisionHeight float64 `toml:"collision_height"`
	AnimationKey    string  `toml:"animation_key"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	UnarmedDamage    float64 `toml:"unarmed_damage"`
	UnarmedRange     float64 `toml:"unarmed_range"`
	HitboxHeight     float64 `toml:"hitbox_height"`
	AttackCooldown   float64 `toml:"attack_cooldown"` // seconds at attack speed 1
	AttackDuration   float64 `toml:"attack_duration"` // hit-active window, seconds
	Knockback        float64 `toml:"knockback"`
	KnockbackUpward  float64 `toml:"knockback_upward"`
	ProjectileRange  float64 `toml:"projectile_range"` // attack range of ranged weapons without their own
	ProjectileSize   float64 `toml:"projectile_size"`
	ProjectileSpeed  float64 `toml:"projectile_speed"`
	ProjectileLife   float64 `toml:"projectile_life"`
	DefaultMinCharge float64 `toml:"default_min_charge"`
	DefaultMaxCharge float64 `toml:"default_max_charge"`
}

// MobAIConfig holds weapon-selection scoring weights and movement behavior
// shared by every mob type.
type MobAIConfig struct {
	WeaponSwitchCooldown  float64 `toml:"weapon_switch_cooldown"`
	RangedOutOfReachBonus float64 `toml:"ranged_out_of_reach_bonus"`
	MeleeInReachBonus     float64 `toml:"melee_in_reach_bonus"`
	MagicStarvedPenalty   float64 `toml:"magic_starved_penalty"`
	RarityWeight          float64 `toml:"rarity_weight"`
	HysteresisMultiplier  float64 `toml:"hysteresis_multiplier"`
	DefaultPatrolDistance float64 `toml:"default_patrol_distance"`
	MaxVerticalChase      float64 `toml:"max_vertical_chase"`
}

// AnimationConfig contains state windows that drive animation selection.
type AnimationConfig struct {
	HurtDuration  float64 `toml:"hurt_duration"`
	DeathDuration float64 `toml:"death_duration"`
	FireDuration  float64 `toml:"fire_duration"`
	WalkThreshold float64 `toml:"walk_threshold"`
	RunThreshold  float64 `toml:"run_threshold"`
}

// DataConfig points at external data files. Empty paths use the embedded
// defaults.
type DataConfig struct {
	RegistryPath string `toml:"registry_path"`
	LevelPath    string `toml:"level_path"`
	AssetsDir    string `toml:"assets_dir"`
}

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Player.MaxJumps < 1 || c.Player.MaxJumps > 3 {
		return fmt.Errorf("player.max_jumps must be 1..3, got %d", c.Player.MaxJumps)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Physics.CellSize <= 0 {
		return fmt.Errorf("physics.cell_size must be positive, got %d", c.Physics.CellSize)
	}
	if c.Combat.AttackDuration > c.Combat.AttackCooldown {
		return fmt.Errorf("combat.attack_duration %.2f exceeds attack_cooldown %.2f",
			c.Combat.AttackDuration, c.Combat.AttackCooldown)
	}
	if c.Player.InventorySize <= 0 {
		return fmt.Errorf("player.inventory_size must be positive, got %d", c.Player.InventorySize)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 360,
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Physics: PhysicsConfig{
			MaxFallSpeed:          10.0,
			MaxRiseSpeed:          -16.0,
			PlatformDropThreshold: 4.0,
			CellSize:              16,
			PickupGravity:         0.5,
			OffLevelMargin:        100,
		},
		Player: PlayerConfig{
			Acceleration:     0.75,
			AttackAccel:      0.1,
			MaxSpeed:         4.0,
			SprintMultiplier: 1.6,

			MaxJumps:           3,
			JumpStrength:       11.0,
			DoubleJumpStrength: 9.0,
			TripleJumpStrength: 7.5,

			Gravity:        0.75,
			Friction:       0.5,
			AttackFriction: 0.2,

			Health:  PoolConfig{Max: 100, RegenRate: 0.5},
			Mana:    PoolConfig{Max: 50, RegenRate: 2},
			Stamina: PoolConfig{Max: 100, RegenRate: 15, DrainRate: 20},

			InvulnTime: 0.75,

			InventorySize: 24,
			StartingItems: []StartingItem{
				{ID: "wooden_sword", Count: 1, Equip: true},
				{ID: "short_bow", Count: 1},
				{ID: "arrow", Count: 20},
				{ID: "ember_staff", Count: 1},
				{ID: "throwing_knife", Count: 5},
				{ID: "apple", Count: 3},
			},

			CollisionWidth:  16,
			CollisionHeight: 40,
			AnimationKey:    "player",
		},
		Combat: CombatConfig{
			UnarmedDamage:    5,
			UnarmedRange:     20,
			HitboxHeight:     20,
			AttackCooldown:   0.5,
			AttackDuration:   0.2,
			Knockback:        4.0,
			KnockbackUpward:  -4.0,
			ProjectileRange:  240,
			ProjectileSize:   8,
			ProjectileSpeed:  7,
			ProjectileLife:   2.5,
			DefaultMinCharge: 0.25,
			DefaultMaxCharge: 1.5,
		},
		MobAI: MobAIConfig{
			WeaponSwitchCooldown:  1.5,
			RangedOutOfReachBonus: 50,
			MeleeInReachBonus:     30,
			MagicStarvedPenalty:   100,
			RarityWeight:          5,
			HysteresisMultiplier:  1.5,
			DefaultPatrolDistance: 32.0,
			MaxVerticalChase:      144.0,
		},
		Animation: AnimationConfig{
			HurtDuration:  0.3,
			DeathDuration: 1.0,
			FireDuration:  0.25,
			WalkThreshold: 0.1,
			RunThreshold:  2.5,
		},
	}
}

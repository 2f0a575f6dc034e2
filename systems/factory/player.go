package factory

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/resource"
	"github.com/automoto/lootbound/tags"
)

// CreatePlayer spawns player index at (x, y) reading its actions from src.
func CreatePlayer(w donburi.World, index int, x, y float64, src input.Source) (*donburi.Entry, error) {
	env := components.GetEnv(w)
	cfg := env.Config.Player
	player := archetypes.Player.Spawn(w)

	obj := newObject(player, x, y, cfg.CollisionWidth, cfg.CollisionHeight,
		tags.ResolvCharacter, tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{Index: index, WeaponCursor: -1})
	components.PlayerInput.SetValue(player, components.PlayerInputData{Source: src})

	initCharacter(env, player, characterSpec{
		Physics: components.PhysicsData{
			Gravity:        cfg.Gravity,
			Friction:       cfg.Friction,
			AttackFriction: cfg.AttackFriction,
			MaxSpeed:       cfg.MaxSpeed,
		},
		Jump: components.NewJumpData(cfg.MaxJumps, cfg.JumpStrength, cfg.DoubleJumpStrength, cfg.TripleJumpStrength),
		Resources: components.ResourcesData{
			Health:  resource.NewPool(cfg.Health.Max, cfg.Health.RegenRate, cfg.Health.DrainRate),
			Mana:    resource.NewPool(cfg.Mana.Max, cfg.Mana.RegenRate, cfg.Mana.DrainRate),
			Stamina: resource.NewPool(cfg.Stamina.Max, cfg.Stamina.RegenRate, cfg.Stamina.DrainRate),
		},
		InventorySize: cfg.InventorySize,
		AnimationKey:  cfg.AnimationKey,
	})

	for _, si := range cfg.StartingItems {
		if err := grant(env, player, si.ID, max(si.Count, 1), si.Equip); err != nil {
			w.Remove(player.Entity())
			return nil, err
		}
	}

	addToSpace(w, obj)
	env.Log.Info("player spawned",
		zap.Int("index", index),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return player, nil
}

package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/resource"
	"github.com/automoto/lootbound/tags"
)

// CreateMob spawns a mob of registry type typeID at (x, y). Its loadout is
// rolled and the first weapon it receives is equipped.
func CreateMob(w donburi.World, typeID string, x, y float64) (*donburi.Entry, error) {
	env := components.GetEnv(w)
	mt, err := env.Registry.MobType(typeID)
	if err != nil {
		return nil, fmt.Errorf("create mob: %w", err)
	}
	mob := archetypes.Mob.Spawn(w)

	obj := newObject(mob, x, y, mt.CollisionWidth, mt.CollisionHeight,
		tags.ResolvCharacter, tags.ResolvMob)

	patrol := mt.PatrolDistance
	if patrol <= 0 {
		patrol = env.Config.MobAI.DefaultPatrolDistance
	}
	center := x + mt.CollisionWidth/2
	components.Mob.SetValue(mob, components.MobData{
		TypeID:      mt.ID,
		Type:        mt,
		PatrolLeft:  center - patrol,
		PatrolRight: center + patrol,
		PatrolDir:   1,
	})

	gravity := mt.Gravity
	if gravity <= 0 {
		gravity = env.Config.Player.Gravity
	}
	initCharacter(env, mob, characterSpec{
		Physics: components.PhysicsData{
			Gravity:        gravity,
			Friction:       mt.Friction,
			AttackFriction: mt.Friction,
			MaxSpeed:       mt.MaxSpeed,
		},
		Jump: components.NewJumpData(mt.MaxJumps, mt.JumpStrength, mt.DoubleJumpStrength, mt.TripleJumpStrength),
		Resources: components.ResourcesData{
			Health:  resource.NewPool(mt.Health, 0, 0),
			Mana:    resource.NewPool(mt.Mana, mt.ManaRegen, 0),
			Stamina: resource.NewPool(mt.Stamina, 0, 0),
		},
		InventorySize: mt.InventorySize,
		AnimationKey:  mt.AnimationKey,
	})

	equip := true
	for _, d := range env.Registry.Roll(mt.Loadout, mt.LoadoutRolls, env.Rand) {
		tpl, ok := env.Registry.Template(d.ItemID)
		first := equip && ok && tpl.IsWeapon()
		if err := grant(env, mob, d.ItemID, d.Count, first); err != nil {
			w.Remove(mob.Entity())
			return nil, err
		}
		if first {
			equip = false
		}
	}

	addToSpace(w, obj)
	env.Log.Debug("mob spawned",
		zap.String("type", mt.ID),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return mob, nil
}

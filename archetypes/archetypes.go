package archetypes

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

var (
	Block = newArchetype(
		tags.Block,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	// character is shared by players and mobs.
	character = []donburi.IComponentType{
		components.Object,
		components.Physics,
		components.Facing,
		components.Jump,
		components.Resources,
		components.StatusEffect,
		components.Combat,
		components.Inventory,
		components.Equipment,
		components.ItemUse,
		components.DamageQueue,
		components.Animation,
		components.Flash,
	}
	Player = newArchetype(append([]donburi.IComponentType{
		tags.Player,
		components.Player,
		components.PlayerInput,
	}, character...)...)
	Mob = newArchetype(append([]donburi.IComponentType{
		tags.Mob,
		components.Mob,
	}, character...)...)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Env = newArchetype(
		components.Env,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}

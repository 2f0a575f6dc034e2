package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/status"
	"github.com/automoto/lootbound/tags"
)

// HitboxConfig sizes a melee hitbox.
type HitboxConfig struct {
	Width     float64
	Height    float64
	Damage    float64
	Knockback float64
	Effect    *status.Payload
}

// CreateHitbox places a hitbox in front of owner and links it as the
// owner's active hitbox.
func CreateHitbox(w donburi.World, owner *donburi.Entry, hc HitboxConfig) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)

	ownerObject := components.Object.Get(owner)
	x := ownerObject.X + ownerObject.W
	if components.Facing.Get(owner).X < 0 {
		x = ownerObject.X - hc.Width
	}
	y := ownerObject.Y + (ownerObject.H-hc.Height)/2

	addToSpace(w, newObject(hitbox, x, y, hc.Width, hc.Height, tags.ResolvHitbox))
	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity:    owner,
		Damage:         hc.Damage,
		KnockbackForce: hc.Knockback,
		Width:          hc.Width,
		HitEntities:    make(map[*donburi.Entry]bool),
		Effect:         hc.Effect,
	})
	components.Combat.Get(owner).ActiveHitbox = hitbox
	return hitbox
}

package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

// CreateProjectile launches data from the center of its owner and records
// it in the owner's projectile list.
func CreateProjectile(w donburi.World, data components.ProjectileData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)

	size := max(data.Size, 1)
	data.Size = size
	data.Active = true

	x, y := 0.0, 0.0
	if data.Owner != nil && data.Owner.Valid() {
		owner := components.Object.Get(data.Owner)
		x, y = owner.CenterX(), owner.CenterY()
		combat := components.Combat.Get(data.Owner)
		combat.Projectiles = append(combat.Projectiles, p)
	}
	components.Projectile.SetValue(p, data)
	addToSpace(w, newObject(p, x-size/2, y-size/2, size, size, tags.ResolvProjectile))
	return p
}

package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

// UpdateHitboxes keeps every melee hitbox in front of its owner and hits
// each overlapping enemy once. A hitbox lives as long as its owner's swing
// is hit-active.
func UpdateHitboxes(w donburi.World) {
	env := components.GetEnv(w)
	var expired []*donburi.Entry
	for e := range tags.Hitbox.Iter(w) {
		hitbox := components.Hitbox.Get(e)
		owner := hitbox.OwnerEntity
		if !alive(owner) || !components.Combat.Get(owner).IsAttacking {
			expired = append(expired, e)
			continue
		}
		hitboxObject := components.Object.Get(e).Object
		updateHitboxPosition(hitbox, hitboxObject)
		checkHitboxCollisions(env, hitbox, hitboxObject)
	}
	for _, e := range expired {
		removeHitbox(w, e)
	}
}

func removeHitbox(w donburi.World, e *donburi.Entry) {
	if owner := components.Hitbox.Get(e).OwnerEntity; owner != nil && owner.Valid() {
		if combat := components.Combat.Get(owner); combat.ActiveHitbox == e {
			combat.ActiveHitbox = nil
		}
	}
	removeEntity(w, e)
}

func updateHitboxPosition(hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	owner := hitbox.OwnerEntity
	ownerObject := components.Object.Get(owner).Object

	// Position hitbox in front of owner based on facing direction
	hitboxX := ownerObject.X + ownerObject.W
	if components.Facing.Get(owner).X < 0 {
		hitboxX = ownerObject.X - hitboxObject.W
	}
	hitboxObject.X = hitboxX
	hitboxObject.Y = ownerObject.Y + (ownerObject.H-hitboxObject.H)/2
	hitboxObject.Update()
}

func checkHitboxCollisions(env *components.EnvData, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	owner := hitbox.OwnerEntity
	check := hitboxObject.Check(0, 0, targetTag(owner))
	if check == nil {
		return
	}
	facing := components.Facing.Get(owner).X
	for _, obj := range check.Objects {
		target, ok := entryOf(obj)
		if !ok || !shouldHitTarget(hitbox, target, hitboxObject, obj) {
			continue
		}
		hitbox.HitEntities[target] = true
		components.DamageQueue.Get(target).Push(components.DamageEventData{
			Amount:     hitbox.Damage,
			KnockbackX: facing * hitbox.KnockbackForce,
			KnockbackY: env.Config.Combat.KnockbackUpward,
			Source:     owner,
			Effect:     hitbox.Effect,
		})
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry, hitboxObject, targetObject *resolv.Object) bool {
	// Don't hit the owner of the hitbox
	if hitbox.OwnerEntity == target {
		return false
	}
	// Don't hit if already hit this target
	if hitbox.HitEntities[target] {
		return false
	}
	return alive(target) && overlaps(hitboxObject, targetObject)
}

package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/shared/gamemath"
	"github.com/automoto/lootbound/tags"
)

// UpdateProjectiles moves every projectile and resolves its hits. Spent
// projectiles are only marked during the pass, then removed from their
// owner's list and the world together.
func UpdateProjectiles(w donburi.World) {
	env := components.GetEnv(w)
	for e := range components.Projectile.Iter(w) {
		p := components.Projectile.Get(e)
		if !p.Active {
			continue
		}
		object := components.Object.Get(e).Object

		p.SpeedY += p.Gravity
		object.X += p.SpeedX
		object.Y += p.SpeedY
		object.Update()

		p.Lifetime -= env.DT
		switch {
		case p.Lifetime <= 0, outOfLevel(env, object), touchesSolid(object):
			p.Active = false
		default:
			if target, ok := projectileTarget(p, object); ok {
				hitWithProjectile(env, target, p)
				p.Active = false
			}
		}
	}
	removeSpentProjectiles(w)
}

func outOfLevel(env *components.EnvData, object *resolv.Object) bool {
	if env.Level == nil {
		return false
	}
	return object.X+object.W < 0 || object.X > float64(env.Level.MapWidth) ||
		object.Y > float64(env.Level.MapHeight) || object.Y+object.H < -env.Config.Physics.OffLevelMargin
}

func touchesSolid(object *resolv.Object) bool {
	check := object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if overlaps(object, o) {
			return true
		}
	}
	return false
}

// projectileTarget returns the first living character of the opposing side
// the projectile overlaps.
func projectileTarget(p *components.ProjectileData, object *resolv.Object) (*donburi.Entry, bool) {
	check := object.Check(0, 0, p.Target)
	if check == nil {
		return nil, false
	}
	for _, o := range check.Objects {
		if !overlaps(object, o) {
			continue
		}
		if target, ok := entryOf(o); ok && target != p.Owner && alive(target) {
			return target, true
		}
	}
	return nil, false
}

func hitWithProjectile(env *components.EnvData, target *donburi.Entry, p *components.ProjectileData) {
	ev := components.DamageEventData{
		Amount:           p.Damage,
		Effect:           p.Effect,
		EffectMultiplier: p.EffectMultiplier,
	}
	if p.Owner != nil && p.Owner.Valid() {
		ev.Source = p.Owner
	}
	if p.Knockback > 0 {
		ev.KnockbackX = gamemath.Sign(p.SpeedX) * p.Knockback
		ev.KnockbackY = env.Config.Combat.KnockbackUpward
	}
	components.DamageQueue.Get(target).Push(ev)
}

// removeSpentProjectiles compacts inactive projectiles out of their owner's
// list and the world.
func removeSpentProjectiles(w donburi.World) {
	var spent []*donburi.Entry
	for e := range components.Projectile.Iter(w) {
		if !components.Projectile.Get(e).Active {
			spent = append(spent, e)
		}
	}
	if len(spent) == 0 {
		return
	}
	env := components.GetEnv(w)
	for _, e := range spent {
		p := components.Projectile.Get(e)
		if owner := p.Owner; owner != nil && owner.Valid() {
			components.Combat.Get(owner).RemoveProjectile(e)
		}
		env.Log.Debug("projectile removed", zap.String("kind", p.Kind))
		removeEntity(w, e)
	}
}

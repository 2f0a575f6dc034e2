package systems

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/status"
	"github.com/automoto/lootbound/systems/factory"
	"github.com/automoto/lootbound/tags"
)

// attackRange is the reach of it. Weapons without their own range use the
// unarmed range for melee and the projectile range otherwise.
func attackRange(cfg *config.Config, it *items.Item) float64 {
	if it != nil && it.Range > 0 {
		return it.Range
	}
	if it.AttackMode().Projectile() {
		return cfg.Combat.ProjectileRange
	}
	return cfg.Combat.UnarmedRange
}

// attackCooldown scales the base cooldown by the weapon's attack speed.
func attackCooldown(cfg *config.Config, it *items.Item) float64 {
	cd := cfg.Combat.AttackCooldown
	if it != nil && it.AttackSpeed > 0 {
		cd /= it.AttackSpeed
	}
	return cd
}

// targetTag is the resolv tag of the side e fights against.
func targetTag(e *donburi.Entry) string {
	if e.HasComponent(tags.Player) {
		return tags.ResolvMob
	}
	return tags.ResolvPlayer
}

// startMeleeAttack swings the equipped weapon, or fists, and spawns the
// hitbox. It does nothing while the cooldown runs.
func startMeleeAttack(w donburi.World, env *components.EnvData, e *donburi.Entry) bool {
	cfg := env.Config
	combat := components.Combat.Get(e)
	weapon := components.Equipment.Get(e).Weapon

	cd := attackCooldown(cfg, weapon)
	if !combat.StartAttack(cd, cfg.Combat.AttackDuration) {
		return false
	}

	hc := factory.HitboxConfig{
		Width:     attackRange(cfg, weapon),
		Height:    cfg.Combat.HitboxHeight,
		Damage:    unarmedDamage(cfg, e),
		Knockback: cfg.Combat.Knockback,
	}
	if old := combat.ActiveHitbox; old != nil && old.Valid() {
		removeHitbox(w, old)
	}
	if weapon != nil {
		hc.Damage = weapon.Damage
		hc.Effect = weapon.Effect
		if weapon.Knockback > 0 {
			hc.Knockback = weapon.Knockback
		}
	}
	factory.CreateHitbox(w, e, hc)
	return true
}

func unarmedDamage(cfg *config.Config, e *donburi.Entry) float64 {
	if e.HasComponent(components.Mob) {
		if mt := components.Mob.Get(e).Type; mt != nil && mt.AttackDamage > 0 {
			return mt.AttackDamage
		}
	}
	return cfg.Combat.UnarmedDamage
}

// fireWeapon launches a projectile from the equipped weapon toward
// (aimX, aimY), a unit vector. A charged shot at percent p scales damage
// and speed by the weapon's curves, and size only for magic. Every failure
// is silent and leaves no trace: no cooldown, no resource spent, no
// projectile.
func fireWeapon(w donburi.World, env *components.EnvData, e *donburi.Entry, charged bool, p, aimX, aimY float64) bool {
	combat := components.Combat.Get(e)
	if !combat.CanAttack() {
		return false
	}
	eq := components.Equipment.Get(e)
	weapon := eq.Weapon
	mode := weapon.AttackMode()
	if weapon == nil || !mode.Projectile() {
		return false
	}
	cfg := env.Config.Combat

	var profile *items.ChargeProfile
	if charged && weapon.Chargeable() {
		profile = weapon.Charge
	}

	shot := components.ProjectileData{
		Owner:     e,
		Target:    targetTag(e),
		Kind:      weapon.Projectile,
		Damage:    weapon.Damage,
		Knockback: orDefault(weapon.Knockback, cfg.Knockback),
		Gravity:   weapon.ProjectileGravity,
		Lifetime:  orDefault(weapon.ProjectileLife, cfg.ProjectileLife),
		Size:      orDefault(weapon.ProjectileSize, cfg.ProjectileSize),
		Effect:    clonePayload(weapon.Effect),
	}
	if shot.Kind == "" {
		shot.Kind = weapon.ID
	}
	speed := orDefault(weapon.ProjectileSpeed, cfg.ProjectileSpeed)

	inv := components.Inventory.Get(e)
	switch mode {
	case items.ModeMagic:
		cost := weapon.ManaCost
		if profile != nil {
			cost *= profile.ManaCost.At(p)
		}
		if !components.Resources.Get(e).Mana.Spend(cost) {
			return false
		}
	case items.ModeThrowable:
		if !eq.ConsumeHeld(inv) {
			return false
		}
	case items.ModeRanged:
		if weapon.Ammo != "" {
			slot := inv.FindAmmo(weapon.Ammo)
			if slot < 0 {
				return false
			}
			ammo := inv.RemoveOne(slot)
			shot.Kind = ammo.ID
			shot.Damage += ammo.BonusDamage
			if ammo.Effect != nil {
				shot.Effect = clonePayload(ammo.Effect)
			}
		}
	}

	if profile != nil {
		dmgMult := profile.Damage.At(p)
		shot.Damage *= dmgMult
		shot.EffectMultiplier = dmgMult
		speed *= profile.Speed.At(p)
		if mode == items.ModeMagic {
			shot.Size *= profile.Size.At(p)
		}
	}
	shot.SpeedX = aimX * speed
	shot.SpeedY = aimY * speed

	combat.StartFire(attackCooldown(env.Config, weapon), env.Config.Animation.FireDuration)
	factory.CreateProjectile(w, shot)
	env.Log.Debug("projectile fired",
		zap.String("kind", shot.Kind),
		zap.Float64("damage", shot.Damage),
		zap.Float64("charge", p))
	return true
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func clonePayload(p *status.Payload) *status.Payload {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

package systems

import (
	"image/color"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/systems/factory"
	"github.com/automoto/lootbound/tags"
)

const hitFlashDuration = 0.1

var hitFlashTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// UpdateCombatTimers advances attack, hurt, invulnerability, flash and
// item-use timers.
func UpdateCombatTimers(w donburi.World) {
	env := components.GetEnv(w)
	for e := range components.Combat.Iter(w) {
		components.Combat.Get(e).Tick(env.DT)
		components.Flash.Get(e).Update(env.DT)
		if !e.HasComponent(components.Death) {
			updateItemUse(env, e)
		}
	}
}

// UpdateCombat applies the damage queued this tick and starts the death
// sequence of everything it killed.
func UpdateCombat(w donburi.World) {
	env := components.GetEnv(w)
	type kill struct {
		victim, killer *donburi.Entry
	}
	var kills []kill

	for e := range components.DamageQueue.Iter(w) {
		queue := components.DamageQueue.Get(e)
		if len(queue.Pending) == 0 {
			continue
		}
		events := queue.Drain()
		if !alive(e) {
			continue
		}
		for _, ev := range events {
			if applyDamage(env, e, ev) {
				kills = append(kills, kill{victim: e, killer: ev.Source})
				break
			}
		}
	}

	for _, k := range kills {
		startDeathSequence(w, env, k.victim, k.killer)
	}
}

// applyDamage runs one hit through health, status, knockback and hurt. It
// reports whether the hit was lethal. Status ticks hurt like any hit but
// carry no knockback and stay outside the invulnerability window.
func applyDamage(env *components.EnvData, e *donburi.Entry, ev components.DamageEventData) bool {
	combat := components.Combat.Get(e)
	if !ev.Tick && combat.Invuln() {
		return false
	}

	res := components.Resources.Get(e)
	res.Health.Reduce(ev.Amount)

	if ev.Effect != nil {
		ev.Effect.ApplyTo(components.StatusEffect.Get(e), ev.EffectMultiplier)
	}

	if !ev.Tick {
		physics := components.Physics.Get(e)
		if ev.KnockbackX != 0 || ev.KnockbackY != 0 {
			physics.SpeedX = ev.KnockbackX
			physics.SpeedY = ev.KnockbackY
		}
		if e.HasComponent(tags.Player) {
			combat.InvulnTimer = env.Config.Player.InvulnTime
		}
	}

	combat.HurtTimer = env.Config.Animation.HurtDuration
	// Getting hit interrupts charging and item use
	combat.CancelCharge()
	components.ItemUse.Get(e).Cancel()
	components.Flash.Get(e).Start(hitFlashDuration, hitFlashTint)

	return !res.Alive()
}

// startDeathSequence marks e as dying. Mobs drop their loot and credit the
// player that killed them.
func startDeathSequence(w donburi.World, env *components.EnvData, e, killer *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	res := components.Resources.Get(e)
	res.Health.Reduce(res.Health.Current)
	res.Sprinting = false

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	combat := components.Combat.Get(e)
	combat.CancelCharge()
	combat.IsAttacking = false
	components.StatusEffect.Get(e).Clear()
	components.ItemUse.Get(e).Cancel()

	donburi.Add(e, components.Death, &components.DeathData{
		Timer: env.Config.Animation.DeathDuration,
	})

	if e.HasComponent(components.Mob) {
		mob := components.Mob.Get(e)
		dropLoot(w, env, e, mob)
		if killer != nil && killer.Valid() && killer.HasComponent(components.Player) {
			components.Player.Get(killer).Kills++
		}
		env.Log.Info("mob died", zap.String("type", mob.TypeID))
		return
	}
	if e.HasComponent(components.Player) {
		env.Log.Info("player died", zap.Int("index", components.Player.Get(e).Index))
	}
}

// dropLoot rolls the mob's drop table into pickups at its center.
func dropLoot(w donburi.World, env *components.EnvData, e *donburi.Entry, mob *components.MobData) {
	if mob.Type == nil {
		return
	}
	object := components.Object.Get(e)
	for _, d := range env.Registry.Roll(mob.Type.Drops, mob.Type.DropRolls, env.Rand) {
		it, err := env.Registry.Create(d.ItemID)
		if err != nil {
			env.Log.Warn("loot item skipped", zap.String("mob", mob.TypeID), zap.Error(err))
			continue
		}
		factory.CreatePickup(w, it, d.Count, object.CenterX(), object.CenterY())
	}
}

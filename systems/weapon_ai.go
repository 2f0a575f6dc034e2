package systems

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/items"
)

// scoreWeapon rates it against a target distance away. currentRange is the
// reach of the weapon in hand and mana the mob's current mana.
func scoreWeapon(cfg *config.Config, it *items.Item, distance, currentRange, mana float64) float64 {
	ai := cfg.MobAI
	mode := it.AttackMode()
	score := it.Damage
	if mode.Projectile() && distance > currentRange {
		score += ai.RangedOutOfReachBonus
	}
	if mode == items.ModeMelee && distance <= attackRange(cfg, it) {
		score += ai.MeleeInReachBonus
	}
	if mode == items.ModeMagic && mana < it.ManaCost {
		score -= ai.MagicStarvedPenalty
	}
	score += float64(it.Rarity) * ai.RarityWeight
	return score
}

// selectWeapon returns the best scoring candidate. Ties keep the first one
// seen, and the equipped weapon is always listed first.
func selectWeapon(cfg *config.Config, cands []items.Candidate, distance, currentRange, mana float64) (items.Candidate, bool) {
	var best items.Candidate
	bestScore := 0.0
	found := false
	for _, c := range cands {
		s := scoreWeapon(cfg, c.Item, distance, currentRange, mana)
		if !found || s > bestScore {
			best, bestScore, found = c, s, true
		}
	}
	return best, found
}

// chooseWeapon re-evaluates the mob's weapons once the switch cooldown has
// run out, equipping the best one when it is not already in hand.
func chooseWeapon(env *components.EnvData, e *donburi.Entry, mob *components.MobData) {
	if mob.WeaponSwitchTimer > 0 {
		mob.WeaponSwitchTimer = max(mob.WeaponSwitchTimer-env.DT, 0)
		return
	}
	if !mob.HasTarget() {
		return
	}
	mob.WeaponSwitchTimer = env.Config.MobAI.WeaponSwitchCooldown

	eq := components.Equipment.Get(e)
	inv := components.Inventory.Get(e)
	mana := components.Resources.Get(e).Mana.Current
	currentRange := attackRange(env.Config, eq.Weapon)

	best, ok := selectWeapon(env.Config, eq.Candidates(inv), mob.TargetDistance, currentRange, mana)
	if !ok || best.Slot < 0 {
		return
	}
	if eq.Equip(inv, best.Slot) {
		env.Log.Debug("mob switched weapon",
			zap.String("mob", mob.TypeID),
			zap.String("weapon", best.Item.ID),
			zap.Float64("distance", mob.TargetDistance))
	}
}

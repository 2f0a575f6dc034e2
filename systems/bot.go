package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	cfg "github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/shared/gamemath"
	"github.com/automoto/lootbound/tags"
)

// UpdateBots generates input for bot-controlled players based on AI decisions.
// Must run BEFORE UpdateInput so the decisions are polled this tick.
func UpdateBots(w donburi.World) {
	env := components.GetEnv(w)

	var mobs []*donburi.Entry
	for e := range tags.Mob.Iter(w) {
		if alive(e) {
			mobs = append(mobs, e)
		}
	}

	for _, e := range collect(w, components.Bot) {
		bot := components.Bot.Get(e)
		if bot.Source == nil {
			continue
		}
		if !alive(e) {
			bot.Source.ReleaseAll()
			continue
		}
		updateBotAI(env, e, bot, mobs)
	}
}

func updateBotAI(env *components.EnvData, e *donburi.Entry, bot *components.BotData, mobs []*donburi.Entry) {
	tuning := bot.Difficulty.Tuning()
	self := components.Object.Get(e)

	bot.Target, bot.TargetDX = findNearestMob(self, mobs, tuning.ChaseRange)
	bot.DistanceToTarget = math.Abs(bot.TargetDX)

	// State machine with reaction delay
	bot.DecisionTimer -= env.DT
	if bot.DecisionTimer <= 0 {
		updateBotState(env, e, bot, tuning)
		bot.DecisionTimer = tuning.ReactionDelay
	}
	generateBotInputs(e, bot)
}

func findNearestMob(self *components.ObjectData, mobs []*donburi.Entry, chaseRange float64) (*donburi.Entry, float64) {
	var nearest *donburi.Entry
	nearestDX := 0.0
	nearestDist := math.MaxFloat64
	for _, m := range mobs {
		dx := components.Object.Get(m).CenterX() - self.CenterX()
		dist := math.Abs(dx)
		if dist > chaseRange || dist >= nearestDist {
			continue
		}
		nearest, nearestDX, nearestDist = m, dx, dist
	}
	return nearest, nearestDX
}

func updateBotState(env *components.EnvData, e *donburi.Entry, bot *components.BotData, tuning cfg.BotDifficultyConfig) {
	res := components.Resources.Get(e)

	// Retreat if low health and there is something to eat
	if bot.Target != nil && res.Health.Fraction() < tuning.RetreatThreshold &&
		components.Inventory.Get(e).FirstUsable() >= 0 {
		bot.AIState = components.BotStateRetreat
		return
	}
	if bot.Target == nil {
		bot.AIState = components.BotStateIdle
		return
	}

	self := components.Object.Get(e)
	reach := attackRange(env.Config, components.Equipment.Get(e).Weapon)*tuning.Reach + self.W/2
	if bot.DistanceToTarget <= reach {
		bot.AIState = components.BotStateAttack
		return
	}
	bot.AIState = components.BotStateChase
}

func generateBotInputs(e *donburi.Entry, bot *components.BotData) {
	src := bot.Source
	physics := components.Physics.Get(e)
	dir := gamemath.Sign(bot.TargetDX)

	var move float64
	jump, attack, use := false, false, false
	switch bot.AIState {
	case components.BotStateChase:
		move = dir
		jump = physics.BlockedX
	case components.BotStateAttack:
		if dir != 0 && dir != components.Facing.Get(e).X {
			move = dir
		}
		attack = true
	case components.BotStateRetreat:
		move = -dir
		use = !components.ItemUse.Get(e).Active()
	}

	src.Set(cfg.ActionMoveLeft, move < 0)
	src.Set(cfg.ActionMoveRight, move > 0)
	tap(src, cfg.ActionJump, jump)
	tap(src, cfg.ActionUseItem, use)
	generateAttackInput(e, src, attack)
}

// generateAttackInput holds attack through a charge and lets go once it is
// ready. Other weapons get a fresh press whenever the cooldown allows.
func generateAttackInput(e *donburi.Entry, src *input.Scripted, attack bool) {
	if !attack {
		src.Set(cfg.ActionAttack, false)
		return
	}
	combat := components.Combat.Get(e)
	if weapon := components.Equipment.Get(e).Weapon; weapon.Chargeable() && weapon.AttackMode().Projectile() {
		src.Set(cfg.ActionAttack, !combat.ChargeReady)
		return
	}
	tap(src, cfg.ActionAttack, combat.CanAttack())
}

// tap alternates press and release while want holds so every press is
// seen as a new one.
func tap(src *input.Scripted, action cfg.ActionID, want bool) {
	src.Set(action, want && !src.Pressed(action))
}

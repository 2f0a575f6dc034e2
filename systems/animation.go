package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/components"
)

// UpdateAnimations resolves one animation state per character and advances
// its frames.
func UpdateAnimations(w donburi.World) {
	env := components.GetEnv(w)
	for e := range components.Animation.Iter(w) {
		anim := components.Animation.Get(e)
		anim.SetAnimation(animations.Resolve(characterFlags(env, e), anim.Library))
		anim.Controller.Update(env.DT)
	}
}

// characterFlags gathers the conditions the resolver reads.
func characterFlags(env *components.EnvData, e *donburi.Entry) animations.Flags {
	ac := env.Config.Animation
	physics := components.Physics.Get(e)
	combat := components.Combat.Get(e)
	use := components.ItemUse.Get(e)
	res := components.Resources.Get(e)
	speed := math.Abs(physics.SpeedX)

	return animations.Flags{
		Dead:       e.HasComponent(components.Death) || !res.Alive(),
		Hurt:       combat.Hurt(),
		Eating:     use.Eating(),
		UsingItem:  use.Active(),
		Firing:     combat.Firing() || combat.Charging,
		Attacking:  combat.IsAttacking,
		Airborne:   !physics.Grounded(),
		Rising:     physics.SpeedY < 0,
		JumpNumber: components.Jump.Get(e).CurrentJumpNumber,
		Moving:     speed > ac.WalkThreshold,
		Running:    speed > ac.RunThreshold,
		Sprinting:  res.Sprinting,
	}
}

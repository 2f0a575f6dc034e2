package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/shared/gamemath"
)

// UpdatePhysics applies friction, the speed cap and gravity. Gravity is
// added every tick, grounded or not; collision zeroes it again on contact.
func UpdatePhysics(w donburi.World) {
	env := components.GetEnv(w)
	pc := env.Config.Physics
	components.Physics.Each(w, func(e *donburi.Entry) {
		// Dying entities freeze in place
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		combat := components.Combat.Get(e)

		friction := physics.Friction
		if combat.IsAttacking {
			friction = physics.AttackFriction
		}
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, friction)

		// Knockback may exceed the cap until the hurt window ends
		if !combat.Hurt() {
			physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, speedLimit(env, e, physics))
		}

		physics.SpeedY += physics.Gravity
		physics.SpeedY = gamemath.Clamp(physics.SpeedY, pc.MaxRiseSpeed, pc.MaxFallSpeed)
	})
}

// speedLimit is the horizontal cap after the status slow and sprinting.
func speedLimit(env *components.EnvData, e *donburi.Entry, physics *components.PhysicsData) float64 {
	limit := physics.MaxSpeed * components.StatusEffect.Get(e).Speed()
	if components.Resources.Get(e).Sprinting {
		limit *= env.Config.Player.SprintMultiplier
	}
	return limit
}

package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/shared/gamemath"
	"github.com/automoto/lootbound/tags"
)

// UpdateMobs runs the controller of every living mob. Targets come from
// UpdateMobTargets earlier in the tick.
func UpdateMobs(w donburi.World) {
	env := components.GetEnv(w)
	for _, e := range collect(w, tags.Mob) {
		if !alive(e) {
			continue
		}
		updateMob(w, env, e)
	}
}

func updateMob(w donburi.World, env *components.EnvData, e *donburi.Entry) {
	mob := components.Mob.Get(e)
	if mob.Type == nil {
		return
	}
	physics := components.Physics.Get(e)
	combat := components.Combat.Get(e)
	object := components.Object.Get(e).Object

	eq := components.Equipment.Get(e)
	eq.Sync(components.Inventory.Get(e))
	chooseWeapon(env, e, mob)

	// Knocked back, let physics carry it
	if combat.Hurt() {
		return
	}
	if !mob.HasTarget() {
		handlePatrol(mob, physics, components.Facing.Get(e), object)
		return
	}
	handleChase(w, env, e, mob, physics)
}

// handlePatrol walks between the patrol bounds, turning at either end or
// when a wall blocks the way.
func handlePatrol(mob *components.MobData, physics *components.PhysicsData, facing *components.FacingData, object *resolv.Object) {
	cx := object.X + object.W/2
	switch {
	case cx <= mob.PatrolLeft:
		mob.PatrolDir = 1
	case cx >= mob.PatrolRight:
		mob.PatrolDir = -1
	case physics.BlockedX:
		mob.PatrolDir = -mob.PatrolDir
	}
	if mob.PatrolDir == 0 {
		mob.PatrolDir = 1
	}
	physics.SpeedX = mob.PatrolDir * mob.Type.PatrolSpeed
	facing.X = mob.PatrolDir
}

// handleChase faces the target, closes in to the stopping distance and
// attacks once the target is within reach of the weapon in hand.
func handleChase(w donburi.World, env *components.EnvData, e *donburi.Entry, mob *components.MobData, physics *components.PhysicsData) {
	facing := components.Facing.Get(e)
	combat := components.Combat.Get(e)
	weapon := components.Equipment.Get(e).Weapon

	if dir := gamemath.Sign(mob.TargetDX); dir != 0 {
		facing.X = dir
	}

	switch {
	case combat.IsAttacking:
		physics.SpeedX = 0
	case mob.TargetDistance > mob.Type.StoppingDistance:
		physics.SpeedX = facing.X * mob.Type.ChaseSpeed
	default:
		physics.SpeedX = 0
	}

	// Hop over whatever stopped the chase
	jump := components.Jump.Get(e)
	if physics.BlockedX && physics.Grounded() && jump.MaxJumps > 0 {
		if strength, ok := jump.Request(true); ok {
			physics.SpeedY = -strength
		}
	}

	if mob.TargetDistance > attackRange(env.Config, weapon) || !combat.CanAttack() {
		return
	}
	if weapon.AttackMode().Projectile() {
		aimX, aimY := aimAt(mob.TargetDX, mob.TargetDY, facing.X)
		fireWeapon(w, env, e, false, 0, aimX, aimY)
		return
	}
	startMeleeAttack(w, env, e)
}

// aimAt normalizes (dx, dy), falling back to straight ahead.
func aimAt(dx, dy, facing float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return facing, 0
	}
	return dx / l, dy / l
}

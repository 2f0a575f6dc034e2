package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

// contactEpsilon absorbs float error left over from snapping.
const contactEpsilon = 0.01

// UpdateCollisions moves every character by its speed, resolving the
// horizontal axis first and then the vertical one against solids and
// platforms.
func UpdateCollisions(w donburi.World) {
	env := components.GetEnv(w)
	var fell []*donburi.Entry
	components.Physics.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		object := components.Object.Get(e).Object

		resolveObjectHorizontalCollision(physics, object)
		resolveObjectVerticalCollision(env, e, physics, object)
		object.Update()

		if env.Level != nil && object.Y > float64(env.Level.MapHeight)+env.Config.Physics.OffLevelMargin {
			fell = append(fell, e)
		}
	})
	for _, e := range fell {
		env.Log.Debug("entity fell out of the level", zap.Float64("y", components.Object.Get(e).Y))
		startDeathSequence(w, env, e, nil)
	}
}

// resolveObjectHorizontalCollision moves the object along X, stopping flush
// against the nearest solid in the way. Solids the object already overlaps
// are ignored so it can walk out of them.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.BlockedX = false
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsY(object, solid) || overlapsX(object, solid) {
				continue
			}
			if dx > 0 {
				if gap := solid.X - (object.X + object.W); gap >= -contactEpsilon && gap < dx {
					dx = max(gap, 0)
					physics.BlockedX = true
				}
			} else {
				if gap := solid.X + solid.W - object.X; gap <= contactEpsilon && gap > dx {
					dx = min(gap, 0)
					physics.BlockedX = true
				}
			}
		}
	}

	if physics.BlockedX {
		physics.SpeedX = 0
	}
	object.X += dx
}

// resolveObjectVerticalCollision moves the object along Y. Falling onto a
// solid or platform snaps to its top and grounds the entity. Rising into a
// solid snaps below it without touching the grounded or jump state.
func resolveObjectVerticalCollision(env *components.EnvData, e *donburi.Entry, physics *components.PhysicsData, object *resolv.Object) {
	wasGrounded := physics.Grounded()
	physics.OnGround = nil
	dy := physics.SpeedY

	if dy < 0 {
		if _, gap, ok := findCeiling(object, dy); ok {
			dy = -gap
			physics.SpeedY = 0
		}
		object.Y += dy
		return
	}

	// Probe one pixel further so a resting entity keeps its ground
	ground, gap, ok := findGround(object, dy+1, physics.IgnorePlatform, env.Config.Physics.PlatformDropThreshold)
	if !ok {
		object.Y += dy
		return
	}
	object.Y += gap
	physics.SpeedY = 0
	physics.OnGround = ground
	if ground != physics.IgnorePlatform {
		physics.IgnorePlatform = nil
	}
	if !wasGrounded {
		components.Jump.Get(e).Land()
	}
}

// findGround returns the nearest surface below the object within reach and
// the distance to it. A platform counts only while the object's feet are
// no more than dropThreshold below its top.
func findGround(object *resolv.Object, reach float64, ignore *resolv.Object, dropThreshold float64) (*resolv.Object, float64, bool) {
	check := object.Check(0, reach, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return nil, 0, false
	}

	var best *resolv.Object
	bestGap := reach
	for _, o := range check.Objects {
		if !overlapsX(object, o) {
			continue
		}
		gap := o.Y - (object.Y + object.H)
		switch {
		case o.HasTags(tags.ResolvSolid):
			if gap < -contactEpsilon {
				continue
			}
		case o.HasTags(tags.ResolvPlatform):
			if o == ignore || gap < -dropThreshold {
				continue
			}
		default:
			continue
		}
		if gap <= bestGap {
			best, bestGap = o, gap
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestGap, true
}

// findCeiling returns the nearest solid the object would bump its head on
// while moving up by dy, and the distance to its underside.
func findCeiling(object *resolv.Object, dy float64) (*resolv.Object, float64, bool) {
	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return nil, 0, false
	}
	var best *resolv.Object
	bestGap := -dy
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsX(object, solid) {
			continue
		}
		gap := object.Y - (solid.Y + solid.H)
		if gap < -contactEpsilon || gap >= bestGap {
			continue
		}
		best, bestGap = solid, max(gap, 0)
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestGap, true
}

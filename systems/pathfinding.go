package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

// UpdateMobTargets picks the nearest living player for every mob. A mob
// keeps its current target out to ChaseRange times the hysteresis
// multiplier so it does not flicker at the edge of its range.
func UpdateMobTargets(w donburi.World) {
	env := components.GetEnv(w)
	ai := env.Config.MobAI

	var players []*donburi.Entry
	for e := range tags.Player.Iter(w) {
		if alive(e) {
			players = append(players, e)
		}
	}

	tags.Mob.Each(w, func(e *donburi.Entry) {
		mob := components.Mob.Get(e)
		if !alive(e) || mob.Type == nil {
			mob.Target = nil
			return
		}
		self := components.Object.Get(e)

		var best *donburi.Entry
		var bestDX, bestDY float64
		bestDist := math.Inf(1)
		for _, p := range players {
			other := components.Object.Get(p)
			dx := other.CenterX() - self.CenterX()
			dy := other.CenterY() - self.CenterY()
			if ai.MaxVerticalChase > 0 && math.Abs(dy) > ai.MaxVerticalChase {
				continue
			}
			reach := mob.Type.ChaseRange
			if p == mob.Target && ai.HysteresisMultiplier > 1 {
				reach *= ai.HysteresisMultiplier
			}
			dist := math.Abs(dx)
			if dist > reach || dist >= bestDist {
				continue
			}
			best, bestDist, bestDX, bestDY = p, dist, dx, dy
		}

		mob.Target = best
		if best == nil {
			mob.TargetDistance, mob.TargetDX, mob.TargetDY = 0, 0, 0
			return
		}
		mob.TargetDistance, mob.TargetDX, mob.TargetDY = bestDist, bestDX, bestDY
	})
}

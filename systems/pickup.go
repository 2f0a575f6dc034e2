package systems

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/tags"
)

// UpdatePickups drops loose items to the ground and hands them to the first
// living player touching them. A pickup stays in the world with whatever
// did not fit.
func UpdatePickups(w donburi.World) {
	env := components.GetEnv(w)
	pc := env.Config.Physics
	var gone []*donburi.Entry

	for e := range tags.Pickup.Iter(w) {
		pickup := components.Pickup.Get(e)
		object := components.Object.Get(e).Object

		pickup.SpeedY = min(pickup.SpeedY+pc.PickupGravity, pc.MaxFallSpeed)
		if _, gap, ok := findGround(object, pickup.SpeedY, nil, pc.PlatformDropThreshold); ok {
			object.Y += gap
			pickup.SpeedY = 0
		} else {
			object.Y += pickup.SpeedY
		}
		object.Update()

		if outOfLevel(env, object) {
			gone = append(gone, e)
			continue
		}

		check := object.Check(0, 0, tags.ResolvPlayer)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			player, ok := entryOf(o)
			if !ok || !alive(player) || !overlaps(object, o) {
				continue
			}
			left := components.Inventory.Get(player).Add(pickup.Item, pickup.Count)
			if left == pickup.Count {
				continue
			}
			env.Log.Debug("item picked up",
				zap.Int("player", components.Player.Get(player).Index),
				zap.String("item", pickup.Item.ID),
				zap.Int("count", pickup.Count-left))
			pickup.Count = left
			if left == 0 {
				gone = append(gone, e)
				break
			}
		}
	}

	for _, e := range gone {
		removeEntity(w, e)
	}
}

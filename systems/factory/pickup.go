package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/tags"
)

// PickupSize is the side of a dropped item's collision box.
const PickupSize = 8

// CreatePickup drops count units of it centered on (x, y).
func CreatePickup(w donburi.World, it *items.Item, count int, x, y float64) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(w)
	addToSpace(w, newObject(pickup, x-PickupSize/2, y-PickupSize/2, PickupSize, PickupSize, tags.ResolvPickup))
	components.Pickup.SetValue(pickup, components.PickupData{Item: it, Count: count})
	return pickup
}

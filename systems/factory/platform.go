package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/tags"
)

// CreatePlatform adds a one-way platform. Characters pass through it from
// below and land on its top.
func CreatePlatform(w donburi.World, x, y, width, height float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	addToSpace(w, newObject(platform, x, y, width, height, tags.ResolvPlatform))
	return platform
}

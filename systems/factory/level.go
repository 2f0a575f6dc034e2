package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/shared/leveldata"
)

// CreateLevel builds the collision space and the static geometry of level.
func CreateLevel(w donburi.World, level *leveldata.CollisionData, cellSize int) *donburi.Entry {
	space := CreateSpace(w, level.MapWidth, level.MapHeight, cellSize, cellSize)
	for _, r := range level.SolidRects {
		CreateBlock(w, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Platforms {
		CreatePlatform(w, r.X, r.Y, r.W, r.H)
	}
	return space
}

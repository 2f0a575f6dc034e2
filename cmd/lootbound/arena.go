package main

import "github.com/automoto/lootbound/shared/leveldata"

// demoArena is the level used when no TMX file is given: a walled floor
// with a few platforms and one of every mob type.
func demoArena() *leveldata.CollisionData {
	const groundY = 320
	level := leveldata.Flat(1280, 360, groundY)
	level.SolidRects = append(level.SolidRects,
		leveldata.Rect{X: 520, Y: groundY - 32, W: 48, H: 32},
		leveldata.Rect{X: 900, Y: groundY - 16, W: 32, H: 16},
	)
	level.Platforms = []leveldata.Rect{
		{X: 160, Y: 250, W: 96, H: 8},
		{X: 320, Y: 200, W: 96, H: 8},
		{X: 700, Y: 240, W: 128, H: 8},
		{X: 1020, Y: 220, W: 96, H: 8},
	}
	level.MobSpawns = []leveldata.MobSpawn{
		{X: 420, Y: groundY - 48, TypeID: "slime"},
		{X: 640, Y: groundY - 96, TypeID: "skeleton_archer"},
		{X: 760, Y: 180, TypeID: "goblin_mage"},
		{X: 1100, Y: groundY - 64, TypeID: "goblin_rogue"},
	}
	return level
}

// Package leveldata provides level geometry for the simulation. It has no
// dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// CollisionData holds everything the simulation needs from a level.
type CollisionData struct {
	SolidRects  []Rect
	Platforms   []Rect // one-way, passable from below
	SpawnPoints []SpawnPoint
	MobSpawns   []MobSpawn
	GroundY     float64
	MapWidth    int
	MapHeight   int
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// MobSpawn places a mob of a registry type.
type MobSpawn struct {
	X, Y   float64
	TypeID string
}

// IsSolid reports whether a point is inside solid geometry or below the
// ground line.
func (d *CollisionData) IsSolid(x, y float64) bool {
	if d.GroundY > 0 && y >= d.GroundY {
		return true
	}
	for _, r := range d.SolidRects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Spawn returns the player spawn for index, wrapping around. Without
// spawn points it falls back to the left edge just above the ground.
func (d *CollisionData) Spawn(index int) SpawnPoint {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{X: 32, Y: d.GroundY - 64}
	}
	if index < 0 {
		index = 0
	}
	return d.SpawnPoints[index%len(d.SpawnPoints)]
}

// Flat builds a walled arena: a floor at groundY spanning the width and a
// wall on each side, all inside the map bounds.
func Flat(width, height int, groundY float64) *CollisionData {
	w, h := float64(width), float64(height)
	const thick = 16
	return &CollisionData{
		SolidRects: []Rect{
			{X: 0, Y: groundY, W: w, H: h - groundY},
			{X: 0, Y: 0, W: thick, H: groundY},
			{X: w - thick, Y: 0, W: thick, H: groundY},
		},
		SpawnPoints: []SpawnPoint{{X: 32, Y: groundY - 64}},
		GroundY:     groundY,
		MapWidth:    width,
		MapHeight:   height,
	}
}

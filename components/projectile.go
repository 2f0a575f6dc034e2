package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/status"
)

type ProjectileData struct {
	Owner     *donburi.Entry
	Target    string // resolv tag of the side it hurts
	Kind      string
	Damage    float64
	Knockback float64
	SpeedX    float64
	SpeedY    float64
	Gravity   float64
	Lifetime  float64 // seconds left
	Size      float64
	Effect    *status.Payload
	// EffectMultiplier scales the payload's damage per tick, 0 means 1.
	EffectMultiplier float64
	Active           bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/status"
)

type HitboxData struct {
	OwnerEntity    *donburi.Entry          // The entity that created this hitbox
	Damage         float64                 // Damage this hitbox deals
	KnockbackForce float64                 // Knockback strength
	Width          float64                 // reach in front of the owner
	HitEntities    map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
	Effect         *status.Payload
}

var Hitbox = donburi.NewComponentType[HitboxData]()

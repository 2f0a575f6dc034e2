package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX         float64
	SpeedY         float64
	Gravity        float64
	Friction       float64
	AttackFriction float64
	MaxSpeed       float64
	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object
	BlockedX       bool // horizontal sweep hit a wall this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()

func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}

// FacingData is the horizontal direction an entity looks, -1 or 1.
type FacingData struct {
	X float64
}

var Facing = donburi.NewComponentType[FacingData]()

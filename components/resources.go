package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/resource"
)

// ResourcesData holds the health, mana and stamina pools. Sprinting is the
// exclusive action that drains stamina and blocks its regeneration.
type ResourcesData struct {
	Health    resource.Pool
	Mana      resource.Pool
	Stamina   resource.Pool
	Sprinting bool
}

var Resources = donburi.NewComponentType[ResourcesData]()

// Update regenerates every pool and drains stamina while sprinting.
func (r *ResourcesData) Update(dt float64) {
	r.Health.Regenerate(dt)
	r.Mana.Regenerate(dt)
	if r.Sprinting {
		r.Stamina.Drain(dt)
		return
	}
	r.Stamina.Regenerate(dt)
}

func (r *ResourcesData) Alive() bool {
	return !r.Health.Empty()
}

package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
)

// UpdateResources regenerates health and mana and drains stamina while
// sprinting. Sprinting stops when stamina runs out.
func UpdateResources(w donburi.World) {
	env := components.GetEnv(w)
	components.Resources.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		res := components.Resources.Get(e)
		res.Update(env.DT)
		if res.Stamina.Empty() {
			res.Sprinting = false
		}
	})
}

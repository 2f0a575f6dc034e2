package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
)

// UpdateDeaths counts down every death sequence and removes the entity,
// its hitbox and its projectiles once it has played out.
func UpdateDeaths(w donburi.World) {
	env := components.GetEnv(w)
	var done []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= env.DT
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})
	for _, e := range done {
		removeCharacter(w, e)
	}
}

func removeCharacter(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Combat) {
		combat := components.Combat.Get(e)
		if hb := combat.ActiveHitbox; hb != nil && hb.Valid() {
			removeEntity(w, hb)
		}
		for _, p := range combat.Projectiles {
			removeEntity(w, p)
		}
		combat.Projectiles = nil
	}
	removeEntity(w, e)
}

package systems

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
)

// UpdateStatusEffects advances every active status effect. Tick damage goes
// through the damage queue like any other hit, flagged so it carries no
// knockback.
func UpdateStatusEffects(w donburi.World) {
	env := components.GetEnv(w)
	for e := range components.StatusEffect.Iter(w) {
		if e.HasComponent(components.Death) {
			continue
		}
		effect := components.StatusEffect.Get(e)
		if !effect.Active() {
			continue
		}
		kind := effect.Kind
		if dmg := effect.Update(env.DT); dmg > 0 {
			components.DamageQueue.Get(e).Push(components.DamageEventData{Amount: dmg, Tick: true})
		}
		if !effect.Active() {
			env.Log.Debug("status effect expired", zap.Stringer("kind", kind))
		}
	}
}

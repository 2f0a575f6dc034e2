package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/status"
)

type DamageEventData struct {
	Amount     float64
	KnockbackX float64
	KnockbackY float64
	Source     *donburi.Entry // nil for status ticks and the environment
	Effect     *status.Payload
	// EffectMultiplier scales Effect's damage per tick, 0 means 1.
	EffectMultiplier float64
	// Tick marks damage from an active status effect. It carries no
	// knockback and neither respects nor grants invulnerability.
	Tick bool
}

// DamageQueueData collects hits during a tick. It is permanently attached so
// queuing never changes an entity's archetype mid-iteration.
type DamageQueueData struct {
	Pending []DamageEventData
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()

func (q *DamageQueueData) Push(ev DamageEventData) {
	q.Pending = append(q.Pending, ev)
}

// Drain returns the pending events and empties the queue.
func (q *DamageQueueData) Drain() []DamageEventData {
	out := q.Pending
	q.Pending = nil
	return out
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// System is one step of a simulation tick.
type System func(w donburi.World)

// WithGameplayChecks adapts s to the ecs scheduler. It does nothing while
// the ECS is paused.
func WithGameplayChecks(s System) ecs.System {
	return func(e *ecs.ECS) {
		if e.IsPaused() {
			return
		}
		s(e.World)
	}
}

// NewECS wraps w in an ECS that runs pipeline in order on every Update.
func NewECS(w donburi.World, pipeline []System) *ecs.ECS {
	e := ecs.NewECS(w)
	for _, s := range pipeline {
		e.AddSystem(WithGameplayChecks(s))
	}
	return e
}

// Pipeline returns the systems of one tick in the order they must run.
// Input and AI decisions come first, then movement and collision, then
// hits and their consequences. Removal happens last so no system sees a
// half-removed entity.
func Pipeline() []System {
	return []System{
		UpdateBots,
		UpdateInput,
		UpdateMobTargets,
		UpdateCombatTimers,
		UpdatePlayers,
		UpdateMobs,
		UpdateResources,
		UpdateStatusEffects,
		UpdatePhysics,
		UpdateCollisions,
		UpdateProjectiles,
		UpdateHitboxes,
		UpdateCombat,
		UpdatePickups,
		UpdateAnimations,
		UpdateDeaths,
	}
}

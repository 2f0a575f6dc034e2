package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
)

// CreateEnv adds the world singleton.
func CreateEnv(w donburi.World, env components.EnvData) *donburi.Entry {
	e := archetypes.Env.Spawn(w)
	components.Env.SetValue(e, env)
	return e
}

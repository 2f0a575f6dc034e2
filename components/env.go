package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/shared/leveldata"
)

// EnvData is the world singleton carrying everything systems need beyond
// components: configuration, lookups, logging, randomness and the clock.
type EnvData struct {
	Config     *config.Config
	Registry   *items.Registry
	Log        *zap.Logger
	Rand       *rand.Rand
	Animations *animations.Catalog
	Level      *leveldata.CollisionData

	DT      float64 // seconds of the current tick
	Tick    uint64
	Elapsed float64
}

var Env = donburi.NewComponentType[EnvData]()

// GetEnv returns the singleton. It panics when the world was not built
// with one, which is a construction bug.
func GetEnv(w donburi.World) *EnvData {
	return Env.Get(Env.MustFirst(w))
}

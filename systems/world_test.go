package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/shared/leveldata"
	"github.com/automoto/lootbound/systems/factory"
)

// Flat arena: floor top at 200, walls at x 0..16 and 304..320.
const (
	testGroundY = 200
	testDT      = 1.0 / 60
)

func newTestWorld(t *testing.T, reg *items.Registry) (donburi.World, *components.EnvData) {
	t.Helper()
	if reg == nil {
		var err error
		reg, err = items.Default()
		if err != nil {
			t.Fatalf("default registry: %v", err)
		}
	}
	cfg := config.Default()
	cfg.Player.StartingItems = nil
	level := leveldata.Flat(320, 240, testGroundY)

	w := donburi.NewWorld()
	factory.CreateEnv(w, components.EnvData{
		Config:     cfg,
		Registry:   reg,
		Log:        zap.NewNop(),
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Animations: animations.NewCatalog(nil, "", config.CharacterAnimations, zap.NewNop()),
		Level:      level,
		DT:         testDT,
	})
	factory.CreateLevel(w, level, cfg.Physics.CellSize)
	return w, components.GetEnv(w)
}

// spawnPlayer places a player whose feet rest at y+40.
func spawnPlayer(t *testing.T, w donburi.World, x, y float64) (*donburi.Entry, *input.Scripted) {
	t.Helper()
	src := &input.Scripted{}
	e, err := factory.CreatePlayer(w, 0, x, y, src)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	return e, src
}

func spawnMob(t *testing.T, w donburi.World, typeID string, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateMob(w, typeID, x, y)
	if err != nil {
		t.Fatalf("create mob %s: %v", typeID, err)
	}
	return e
}

// give adds count units of id to e's inventory and returns the slot.
func give(t *testing.T, env *components.EnvData, e *donburi.Entry, id string, count int) int {
	t.Helper()
	it, err := env.Registry.Create(id)
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
	inv := components.Inventory.Get(e)
	if left := inv.Add(it, count); left != 0 {
		t.Fatalf("inventory full, %d %s left over", left, id)
	}
	return inv.Find(id)
}

func equip(t *testing.T, env *components.EnvData, e *donburi.Entry, id string, count int) {
	t.Helper()
	slot := give(t, env, e, id, count)
	if !components.Equipment.Get(e).Equip(components.Inventory.Get(e), slot) {
		t.Fatalf("equip %s failed", id)
	}
}

func tick(w donburi.World, n int) {
	e := NewECS(w, Pipeline())
	for range n {
		e.Update()
	}
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	for range c.Iter(w) {
		n++
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

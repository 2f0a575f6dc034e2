// Package game assembles a world from config, registry and level data and
// steps it through the ordered systems.
package game

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/shared/leveldata"
	"github.com/automoto/lootbound/systems"
	"github.com/automoto/lootbound/systems/factory"
	"github.com/automoto/lootbound/tags"
)

// World owns one simulation. It is not safe for concurrent use; Loop
// drives it from a single goroutine.
type World struct {
	ecs     *ecs.ECS
	env     *components.EnvData
	log     *zap.Logger
	level   *leveldata.CollisionData
	players []*donburi.Entry
}

type options struct {
	log      *zap.Logger
	seed     uint64
	animFS   fs.FS
	animDir  string
	pipeline []systems.System
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSeed seeds loadout and loot rolls.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithAnimationFS loads sprite sheets from dir in fsys. Without it every
// defined animation is available as frames only.
func WithAnimationFS(fsys fs.FS, dir string) Option {
	return func(o *options) {
		o.animFS = fsys
		o.animDir = dir
	}
}

// WithSystems replaces the default system order.
func WithSystems(s ...systems.System) Option {
	return func(o *options) { o.pipeline = s }
}

// New builds a world with the level geometry in place. Players and mobs
// are spawned separately.
func New(cfg *config.Config, reg *items.Registry, level *leveldata.CollisionData, opts ...Option) (*World, error) {
	if cfg == nil || reg == nil || level == nil {
		return nil, errors.New("new world: config, registry and level are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	o := options{log: zap.NewNop(), seed: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pipeline == nil {
		o.pipeline = systems.Pipeline()
	}

	w := donburi.NewWorld()
	factory.CreateEnv(w, components.EnvData{
		Config:     cfg,
		Registry:   reg,
		Log:        o.log,
		Rand:       rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
		Animations: animations.NewCatalog(o.animFS, o.animDir, config.CharacterAnimations, o.log),
		Level:      level,
		DT:         1 / float64(cfg.Window.TPS),
	})
	factory.CreateLevel(w, level, cfg.Physics.CellSize)

	o.log.Info("world created",
		zap.Int("width", level.MapWidth),
		zap.Int("height", level.MapHeight),
		zap.Int("solids", len(level.SolidRects)),
		zap.Int("platforms", len(level.Platforms)),
		zap.Uint64("seed", o.seed))

	return &World{
		ecs:   systems.NewECS(w, o.pipeline),
		env:   components.GetEnv(w),
		log:   o.log,
		level: level,
	}, nil
}

// SpawnPlayer places the next player at its level spawn point.
func (w *World) SpawnPlayer(src input.Source) (*donburi.Entry, error) {
	index := len(w.players)
	sp := w.level.Spawn(index)
	e, err := factory.CreatePlayer(w.ecs.World, index, sp.X, sp.Y, src)
	if err != nil {
		return nil, fmt.Errorf("spawn player %d: %w", index, err)
	}
	w.players = append(w.players, e)
	return e, nil
}

// SpawnBot places a player driven by the bot AI.
func (w *World) SpawnBot(difficulty config.BotDifficulty) (*donburi.Entry, error) {
	src := &input.Scripted{}
	e, err := w.SpawnPlayer(src)
	if err != nil {
		return nil, err
	}
	donburi.Add(e, components.Bot, &components.BotData{
		Source:     src,
		Difficulty: difficulty,
	})
	w.log.Info("bot joined",
		zap.Int("index", components.Player.Get(e).Index),
		zap.Stringer("difficulty", difficulty))
	return e, nil
}

// SpawnMobs creates every mob the level places. Unknown types are skipped
// with a warning so one bad marker does not take the level down.
func (w *World) SpawnMobs() int {
	n := 0
	for _, ms := range w.level.MobSpawns {
		if _, err := factory.CreateMob(w.ecs.World, ms.TypeID, ms.X, ms.Y); err != nil {
			w.log.Warn("mob spawn skipped",
				zap.String("type", ms.TypeID),
				zap.Float64("x", ms.X),
				zap.Float64("y", ms.Y),
				zap.Error(err))
			continue
		}
		n++
	}
	return n
}

// Update advances the simulation by dt seconds. A paused world keeps its
// clock and runs no gameplay systems.
func (w *World) Update(dt float64) {
	if !w.ecs.IsPaused() {
		w.env.DT = dt
		w.env.Tick++
		w.env.Elapsed += dt
	}
	w.ecs.Update()
}

// Draw runs the renderers registered on the ECS, layer by layer.
func (w *World) Draw(screen any) {
	w.ecs.Draw(screen)
}

func (w *World) Pause()       { w.ecs.Pause() }
func (w *World) Resume()      { w.ecs.Resume() }
func (w *World) Paused() bool { return w.ecs.IsPaused() }

// ECS exposes the scheduler and its entity store for renderers and tests.
func (w *World) ECS() *ecs.ECS { return w.ecs }

func (w *World) Env() *components.EnvData { return w.env }

func (w *World) Level() *leveldata.CollisionData { return w.level }

// Players returns the spawned players that are still in the world.
func (w *World) Players() []*donburi.Entry {
	out := w.players[:0:0]
	for _, e := range w.players {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

var (
	mobQuery        = donburi.NewQuery(filter.Contains(tags.Mob))
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))
	pickupQuery     = donburi.NewQuery(filter.Contains(tags.Pickup))
)

// Stats is a snapshot of what is in the world.
type Stats struct {
	Tick        uint64
	Elapsed     float64
	Players     int
	Mobs        int
	Projectiles int
	Pickups     int
	Kills       int
}

func (w *World) Stats() Stats {
	s := Stats{Tick: w.env.Tick, Elapsed: w.env.Elapsed}
	for e := range tags.Player.Iter(w.ecs.World) {
		s.Players++
		s.Kills += components.Player.Get(e).Kills
	}
	s.Mobs = mobQuery.Count(w.ecs.World)
	s.Projectiles = projectileQuery.Count(w.ecs.World)
	s.Pickups = pickupQuery.Count(w.ecs.World)
	return s
}

// MarshalLogObject lets Stats go straight into a zap field.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("tick", s.Tick)
	enc.AddFloat64("elapsed", s.Elapsed)
	enc.AddInt("players", s.Players)
	enc.AddInt("mobs", s.Mobs)
	enc.AddInt("projectiles", s.Projectiles)
	enc.AddInt("pickups", s.Pickups)
	enc.AddInt("kills", s.Kills)
	return nil
}

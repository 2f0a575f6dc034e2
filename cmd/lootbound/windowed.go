package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/game"
	"github.com/automoto/lootbound/input/keyboard"
	"github.com/automoto/lootbound/render"
)

var errQuit = errors.New("quit")

// windowed adapts a World to ebiten's game loop. Ebiten calls Update at
// the configured TPS, so every call is exactly one tick.
type windowed struct {
	ctx      context.Context
	world    *game.World
	keys     *keyboard.Device
	renderer *render.Renderer
	width    int
	height   int
	dt       float64
}

func newWindowed(ctx context.Context, world *game.World, keys *keyboard.Device, cfg *config.Config) *windowed {
	g := &windowed{
		ctx:      ctx,
		world:    world,
		keys:     keys,
		renderer: render.New(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dt:       1 / float64(cfg.Window.TPS),
	}
	g.renderer.Register(world.ECS())
	return g
}

func (g *windowed) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.world.Paused() {
			g.world.Resume()
		} else {
			g.world.Pause()
		}
	}
	// the device is sampled before the input system reads it
	g.keys.Poll()
	g.world.Update(g.dt)
	return nil
}

func (g *windowed) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

func (g *windowed) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

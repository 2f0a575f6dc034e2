package game

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop steps a World at a fixed tick rate.
type Loop struct {
	world    *World
	tickRate int
	log      *zap.Logger
	// OnTick runs after every update, on the loop goroutine.
	OnTick func(*World)
}

func NewLoop(world *World, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = world.env.Config.Window.TPS
	}
	return &Loop{
		world:    world,
		tickRate: tickRate,
		log:      world.log,
	}
}

// Run ticks until ctx is done. Each tick advances the world by exactly
// 1/tickRate seconds regardless of scheduling jitter.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info("game loop started", zap.Int("tps", l.tickRate))
	dt := 1 / float64(l.tickRate)
	for {
		select {
		case <-ctx.Done():
			l.log.Info("game loop stopped", zap.Object("stats", l.world.Stats()))
			return nil
		case <-ticker.C:
			l.step(dt)
		}
	}
}

// RunTicks advances n ticks back to back without waiting, for headless
// runs and tests. It stops early when ctx is done.
func (l *Loop) RunTicks(ctx context.Context, n int) error {
	dt := 1 / float64(l.tickRate)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.step(dt)
	}
	return nil
}

func (l *Loop) step(dt float64) {
	l.world.Update(dt)
	if l.OnTick != nil {
		l.OnTick(l.world)
	}
}

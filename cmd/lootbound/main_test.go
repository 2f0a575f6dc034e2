package main

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/game"
	"github.com/automoto/lootbound/items"
)

func TestDemoArenaSpawnsEveryMobType(t *testing.T) {
	reg, err := items.Default()
	if err != nil {
		t.Fatal(err)
	}
	w, err := game.New(config.Default(), reg, demoArena(), game.WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := w.SpawnMobs(), len(reg.MobTypes()); got != want {
		t.Fatalf("spawned %d mobs, want %d", got, want)
	}
}

func TestRunHeadless(t *testing.T) {
	reg, err := items.Default()
	if err != nil {
		t.Fatal(err)
	}
	w, err := game.New(config.Default(), reg, demoArena(), game.WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatal(err)
	}
	w.SpawnMobs()
	if err := runHeadless(context.Background(), zap.NewNop(), w, 120, 2, config.BotDifficultyHard); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	s := w.Stats()
	if s.Tick != 120 {
		t.Errorf("tick = %d, want 120", s.Tick)
	}
	if s.Elapsed <= 1.9 {
		t.Errorf("elapsed = %v, want two seconds", s.Elapsed)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	reg, err := items.Default()
	if err != nil {
		t.Fatal(err)
	}
	w, err := game.New(config.Default(), reg, demoArena(), game.WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runHeadless(ctx, zap.NewNop(), w, 10, 1, config.BotDifficultyEasy); err != nil {
		t.Fatalf("canceled run should exit cleanly, got %v", err)
	}
	if w.Stats().Tick != 0 {
		t.Error("canceled run advanced the world")
	}
}

func TestOverrideData(t *testing.T) {
	d := config.DataConfig{LevelPath: "a.tmx", RegistryPath: "r.yaml"}
	overrideData(&d, "", "other.yaml", "sprites")
	want := config.DataConfig{LevelPath: "a.tmx", RegistryPath: "other.yaml", AssetsDir: "sprites"}
	if d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
}

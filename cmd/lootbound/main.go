package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/game"
	"github.com/automoto/lootbound/input/keyboard"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/shared/leveldata"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lootbound:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	levelPath := flag.String("level", "", "TMX level file (built-in arena when empty)")
	registryPath := flag.String("registry", "", "YAML item and mob registry (built-in when empty)")
	assetsDir := flag.String("assets", "", "directory of animation sprite sheets")
	seed := flag.Uint64("seed", 1, "seed for loadout and loot rolls")
	headless := flag.Int("headless", 0, "run N ticks without a window, bots playing")
	bots := flag.Int("bots", 1, "bot players in headless mode")
	var difficulty config.BotDifficulty = config.BotDifficultyNormal
	flag.TextVar(&difficulty, "difficulty", difficulty, "bot difficulty: easy, normal or hard")
	debug := flag.Bool("debug", false, "outline collision objects")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	overrideData(&cfg.Data, *levelPath, *registryPath, *assetsDir)

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := loadRegistry(cfg.Data.RegistryPath)
	if err != nil {
		return err
	}
	level, err := loadLevel(cfg.Data.LevelPath)
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(logger), game.WithSeed(*seed)}
	if cfg.Data.AssetsDir != "" {
		opts = append(opts, game.WithAnimationFS(os.DirFS(cfg.Data.AssetsDir), "."))
	}
	world, err := game.New(cfg, reg, level, opts...)
	if err != nil {
		return err
	}
	mobs := world.SpawnMobs()
	logger.Info("level ready",
		zap.String("level", levelName(cfg.Data.LevelPath)),
		zap.Int("mobs", mobs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless > 0 {
		return runHeadless(ctx, logger, world, *headless, *bots, difficulty)
	}

	keys := keyboard.New()
	if _, err := world.SpawnPlayer(keys); err != nil {
		return err
	}
	ebiten.SetWindowTitle("lootbound")
	ebiten.SetWindowSize(cfg.Window.Width*2, cfg.Window.Height*2)
	ebiten.SetTPS(cfg.Window.TPS)
	g := newWindowed(ctx, world, keys, cfg)
	g.renderer.Debug = *debug
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func runHeadless(ctx context.Context, logger *zap.Logger, world *game.World, ticks, bots int, difficulty config.BotDifficulty) error {
	for range max(bots, 1) {
		if _, err := world.SpawnBot(difficulty); err != nil {
			return err
		}
	}
	loop := game.NewLoop(world, 0)
	err := loop.RunTicks(ctx, ticks)
	logger.Info("headless run finished", zap.Object("stats", world.Stats()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// overrideData lets flags replace the data paths of the config file.
func overrideData(d *config.DataConfig, level, registry, assets string) {
	if level != "" {
		d.LevelPath = level
	}
	if registry != "" {
		d.RegistryPath = registry
	}
	if assets != "" {
		d.AssetsDir = assets
	}
}

func loadRegistry(path string) (*items.Registry, error) {
	if path == "" {
		return items.Default()
	}
	return items.LoadRegistry(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func loadLevel(path string) (*leveldata.CollisionData, error) {
	if path == "" {
		return demoArena(), nil
	}
	return leveldata.LoadCollisionData(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func levelName(path string) string {
	if path == "" {
		return "arena"
	}
	return filepath.Base(path)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"space-rogue/internal/config"
	"space-rogue/internal/domain"
	"space-rogue/internal/engine"
	"space-rogue/internal/metrics"
	"space-rogue/internal/version"
	"space-rogue/pkg/logger"
	"space-rogue/pkg/mapparse"
	"space-rogue/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги поверх конфига
	var configPath string
	var seed int64
	var ticks int
	var showVersion bool
	flag.StringVar(&configPath, "config", "", "Path to YAML config (defaults to $SPACEROGUE_CONFIG)")
	flag.Int64Var(&seed, "seed", 0, "Sector seed (0 = from config or random)")
	flag.IntVar(&ticks, "ticks", -1, "Number of ticks to simulate (-1 = from config)")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if ticks >= 0 {
		cfg.Ticks = ticks
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	logger.Log.Info("Starting Space Rogue...")
	logger.Log.Info(version.String())

	if err := run(cfg); err != nil {
		logger.Log.Fatal(err)
	}
	logger.Log.Info("Done.")
}

func run(cfg *config.Config) error {
	seed := cfg.ResolveSeed()
	logger.Log.Infof("🎲 Master Seed: %d", seed)

	table := mapparse.DefaultTable()
	if cfg.World.TileTable != "" {
		loaded, err := mapparse.LoadTable(cfg.World.TileTable)
		if err != nil {
			return err
		}
		table = loaded
	}

	// 2. Сектор
	sector, err := worldgen.NewSector(fmt.Sprintf("Sector-%d", seed%1000), seed).
		WithSize(cfg.World.Width, cfg.World.Height).
		WithTable(table).
		DockShip(cfg.World.Ship).
		WithPlayer("Pilot", cfg.World.VisionRange).
		SpawnMobs(cfg.World.MobKind, cfg.World.Mobs).
		Build()
	if err != nil {
		return fmt.Errorf("build sector: %w", err)
	}

	// 3. Симуляция до конца или до Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.New()
	inst := engine.NewInstance(1, sector.World, sector.PlayerID, seed, rec)
	reports, err := inst.RunContext(ctx, cfg.Ticks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	summarize(reports)

	// 4. Что пилот знает о секторе
	view, err := inst.BuildViewFor(sector.PlayerID, table)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}
	for _, line := range view.Map {
		fmt.Println(line)
	}

	if cfg.Metrics.Dump {
		lines, err := rec.Lines()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, line := range lines {
			logger.Log.WithField("component", "metrics").Info(line)
		}
	}
	return nil
}

func summarize(reports []engine.TickReport) {
	var moves, attacks, blocked, turns int
	for _, r := range reports {
		turns += r.Turns
		moves += r.Count(domain.IntentMove, engine.OutcomeApplied)
		attacks += r.Count(domain.IntentAttack, engine.OutcomeApplied)
		blocked += r.Count(domain.IntentMove, engine.OutcomeBlocked)
	}
	logger.Log.WithFields(logrus.Fields{
		"ticks":   len(reports),
		"turns":   turns,
		"moves":   moves,
		"attacks": attacks,
		"blocked": blocked,
	}).Info("Simulation finished")
}

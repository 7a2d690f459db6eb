package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/ui"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"
)

const windowTitle = "Boids: flocking with pointer repulsion"

var (
	configFile string
	debug      bool
	population int
	boundary   string
	seed       uint64
	showStats  bool
	ticks      int
	pointerX   float64
	pointerY   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "boids",
		Short:        "flocking simulation",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (json or yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&population, "population", simulation.DefaultPopulation, "number of boids")
	rootCmd.PersistentFlags().StringVar(&boundary, "boundary", "wraparound", "boundary mode: wraparound, clamped or circular")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "show the FPS overlay")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the flock headless and print a report",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	simulateCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")
	simulateCmd.Flags().Float64Var(&pointerX, "pointer-x", -1000, "repulsor x")
	simulateCmd.Flags().Float64Var(&pointerY, "pointer-y", -1000, "repulsor y")

	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() golog.Logger {
	if debug {
		return golog.New(golog.DebugLevel, os.Stderr)
	}
	return golog.New(golog.InfoLevel, os.Stderr)
}

// loadConfig reads the optional file then applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(configFile); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("population") {
		cfg.Population = population
	}
	if flags.Changed("boundary") {
		cfg.BoundaryMode = boundary
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("stats") {
		cfg.ShowStats = showStats
	}
	if flags.Changed("pointer-x") {
		cfg.Pointer.X = pointerX
	}
	if flags.Changed("pointer-y") {
		cfg.Pointer.Y = pointerY
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	// the render surface covers the available display area unless a size is configured
	monitorW, monitorH := ebiten.Monitor().Size()
	width, height := cfg.CanvasSize(monitorW, monitorH)
	if width <= 0 || height <= 0 {
		width, height = simulation.DefaultCanvasWidth, simulation.DefaultCanvasHeight
	}

	s := simulation.ResolveSeed(cfg.Seed)
	flock, err := simulation.NewFlock(cfg, float64(width), float64(height), simulation.NewRand(s))
	if err != nil {
		return err
	}
	if mode := flock.Options().Boundary; !mode.Implemented() {
		logger.Warnf("boundary mode %s is reserved, boids are not confined", mode)
	}
	logger.Infof("starting %d boids on %dx%d, mode=%s, seed=%d", flock.Len(), width, height, flock.Options().Boundary, s)

	game := ui.NewGame(flock, width, height, cfg.BackgroundColor(), logger)
	game.ShowStats = cfg.ShowStats

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := simulation.NewRunner(cfg, newLogger()).Run(ctx, ticks)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))
	return nil
}

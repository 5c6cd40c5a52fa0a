package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-system-go/internal/config"
	"github.com/olivierh59500/particle-system-go/internal/executor"
	"github.com/olivierh59500/particle-system-go/internal/loop"
	"github.com/olivierh59500/particle-system-go/internal/particle"
	"github.com/olivierh59500/particle-system-go/internal/physics"
	"github.com/olivierh59500/particle-system-go/internal/sim"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("[particles] ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("particles", flag.ContinueOnError)
	small := fs.Bool("small", false, "Use the 800x600, 200 particle, single thread preset.")

	cfg := config.Default()
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	fs.IntVar(&cfg.Particles, "p", cfg.Particles, "Number of particles to spawn.")
	fs.IntVar(&cfg.Threads, "t", cfg.Threads, "Number of chunks the particle range is split into.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines for the pool executor, 0 uses every CPU.")
	fs.IntVar(&cfg.TPS, "fps", cfg.TPS, "Target frames per second.")
	fs.IntVar(&cfg.SubSteps, "substeps", cfg.SubSteps, "Update passes per frame.")
	fs.StringVar(&cfg.Executor, "executor", cfg.Executor, "Chunk executor: pool, forkjoin or sequential.")
	fs.StringVar(&cfg.ReadMode, "reads", cfg.ReadMode, "Force pass reads: snapshot or shared.")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Initial state: random, flow or hue.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 uses the current time.")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to run headless, 0 runs until interrupted.")
	fs.BoolVar(&cfg.ShowHUD, "hud", cfg.ShowHUD, "Show the status overlay.")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *small {
		// Explicit flags win over the preset.
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		preset := config.SmallPreset()
		if !set["width"] {
			cfg.Width = preset.Width
		}
		if !set["height"] {
			cfg.Height = preset.Height
		}
		if !set["p"] {
			cfg.Particles = preset.Particles
		}
		if !set["t"] {
			cfg.Threads = preset.Threads
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

func newExecutor(cfg config.Config) executor.Executor {
	switch cfg.Executor {
	case config.ExecutorSequential:
		return executor.Sequential{}
	case config.ExecutorForkJoin:
		return executor.ForkJoin{Limit: cfg.Workers}
	default:
		return executor.NewPool(cfg.Workers)
	}
}

func seedOptions(cfg config.Config) particle.Options {
	opts := particle.Options{Range: cfg.Range, Radius: cfg.ParticleSize, Seed: cfg.Seed}
	switch cfg.Pattern {
	case config.SeedFlow:
		opts.Pattern = particle.Flow
	case config.SeedHue:
		opts.Pattern = particle.Hue
	}
	return opts
}

func newWorld(cfg config.Config, exec executor.Executor) *sim.World {
	mode := sim.Snapshot
	if cfg.ReadMode == config.ReadShared {
		mode = sim.Shared
	}
	params := physics.Params{Range: cfg.Range, Strength: cfg.Strength, MinDistance: cfg.MinDistance}
	ps := particle.Seed(cfg.Particles, seedOptions(cfg))
	return sim.NewWorld(ps, cfg.Threads, exec, params, mode)
}

func run(cfg config.Config) error {
	exec := newExecutor(cfg)
	defer exec.Close()

	world := newWorld(cfg, exec)
	log.Printf("%d particles, %d chunks, %s executor, %s reads, seed %d",
		cfg.Particles, cfg.Threads, cfg.Executor, cfg.ReadMode, cfg.Seed)

	if cfg.Headless {
		return runHeadless(cfg, world)
	}

	g := loop.NewGame(world, cfg.Width, cfg.Height, cfg.TPS, cfg.SubSteps, seedOptions(cfg))
	g.ShowHUD = cfg.ShowHUD

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	log.Printf("quit after %d frames", g.Loop.Frames())
	return nil
}

func runHeadless(cfg config.Config, world *sim.World) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	var l *loop.Loop
	report := func() {
		if l == nil || (l.Frames()+1)%cfg.TPS != 0 {
			return
		}
		s := world.Stats()
		log.Printf("frame %d: steps %d, kinetic %.4f, max speed %.4f",
			l.Frames()+1, s.Steps, s.Kinetic, s.MaxSpeed)
	}
	l = loop.New(world, loop.SignalEvents{C: sigs}, loop.SystemClock{}, loop.Options{
		FPS:      cfg.TPS,
		SubSteps: cfg.SubSteps,
		Pace:     true,
		Render:   report,
	})

	if err := l.Run(context.Background(), cfg.Frames); err != nil {
		return err
	}
	log.Printf("%s after %d frames", l.State(), l.Frames())
	return nil
}

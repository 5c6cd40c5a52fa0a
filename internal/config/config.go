package config

import (
	"errors"
	"fmt"
)

const (
	WindowWidth  = 1920
	WindowHeight = 1080
	WindowTitle  = "Particle System"

	// Simulation parameters
	SimulationRange   = 5.0
	NumParticles      = 2000
	RepulsionStrength = 0.3
	MinDistance       = 0.1
	BaseParticleSize  = 1.0

	TargetFPS  = 144
	NumThreads = 32

	// Small variant
	SmallWindowWidth  = 800
	SmallWindowHeight = 600
	SmallNumParticles = 200
	SmallNumThreads   = 1
)

// Executor strategies
const (
	ExecutorPool       = "pool"
	ExecutorForkJoin   = "forkjoin"
	ExecutorSequential = "sequential"
)

// Read modes for the force pass
const (
	ReadSnapshot = "snapshot"
	ReadShared   = "shared"
)

// Seed patterns
const (
	SeedRandom = "random"
	SeedFlow   = "flow"
	SeedHue    = "hue"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime values of the simulation. Every field defaults to
// the constants above.
type Config struct {
	Width, Height int
	Title         string

	Range        float32
	Particles    int
	Strength     float32
	MinDistance  float32
	ParticleSize float32
	TPS          int
	Threads      int
	Workers      int // 0 means hardware concurrency
	SubSteps     int
	Executor     string
	ReadMode     string
	Pattern      string
	Seed         int64 // 0 means time based
	Headless     bool
	Frames       int // headless frame limit, 0 runs until interrupted
	ShowHUD      bool
}

// Default returns the configuration of the large variant.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Title:        WindowTitle,
		Range:        SimulationRange,
		Particles:    NumParticles,
		Strength:     RepulsionStrength,
		MinDistance:  MinDistance,
		ParticleSize: BaseParticleSize,
		TPS:          TargetFPS,
		Threads:      NumThreads,
		SubSteps:     1,
		Executor:     ExecutorPool,
		ReadMode:     ReadSnapshot,
		Pattern:      SeedRandom,
		ShowHUD:      true,
	}
}

// SmallPreset returns the 800x600 single-threaded variant.
func SmallPreset() Config {
	c := Default()
	c.Width = SmallWindowWidth
	c.Height = SmallWindowHeight
	c.Particles = SmallNumParticles
	c.Threads = SmallNumThreads
	return c
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Range <= 0:
		return fmt.Errorf("%w: simulation range %v", ErrInvalidConfig, c.Range)
	case c.Particles <= 0:
		return fmt.Errorf("%w: particle count %d", ErrInvalidConfig, c.Particles)
	case c.MinDistance <= 0:
		return fmt.Errorf("%w: minimum distance %v", ErrInvalidConfig, c.MinDistance)
	case c.ParticleSize <= 0:
		return fmt.Errorf("%w: particle size %v", ErrInvalidConfig, c.ParticleSize)
	case c.TPS <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.TPS)
	case c.Threads <= 0:
		return fmt.Errorf("%w: thread count %d", ErrInvalidConfig, c.Threads)
	case c.Workers < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, c.Workers)
	case c.SubSteps <= 0:
		return fmt.Errorf("%w: sub-steps %d", ErrInvalidConfig, c.SubSteps)
	case c.Frames < 0:
		return fmt.Errorf("%w: frame limit %d", ErrInvalidConfig, c.Frames)
	}
	switch c.Executor {
	case ExecutorPool, ExecutorForkJoin, ExecutorSequential:
	default:
		return fmt.Errorf("%w: unknown executor %q", ErrInvalidConfig, c.Executor)
	}
	switch c.ReadMode {
	case ReadSnapshot, ReadShared:
	default:
		return fmt.Errorf("%w: unknown read mode %q", ErrInvalidConfig, c.ReadMode)
	}
	switch c.Pattern {
	case SeedRandom, SeedFlow, SeedHue:
	default:
		return fmt.Errorf("%w: unknown seed pattern %q", ErrInvalidConfig, c.Pattern)
	}
	return nil
}

package sim

import (
	"math"

	"github.com/olivierh59500/particle-system-go/internal/executor"
	"github.com/olivierh59500/particle-system-go/internal/particle"
	"github.com/olivierh59500/particle-system-go/internal/physics"
)

// ReadMode decides which state the force pass of one step observes.
type ReadMode int

const (
	// Snapshot reads the state at the start of the step and writes into a
	// second buffer. Results do not depend on scheduling.
	Snapshot ReadMode = iota
	// Shared reads and writes a single buffer. Chunks running concurrently
	// may observe partially updated neighbors.
	Shared
)

// World owns the particle store and drives one step at a time.
type World struct {
	front, back []particle.Particle
	chunks      []executor.Range
	exec        executor.Executor
	params      physics.Params
	mode        ReadMode
	steps       uint64
}

// NewWorld takes ownership of ps. chunks is the number of contiguous ranges
// handed to exec per step.
func NewWorld(ps []particle.Particle, chunks int, exec executor.Executor, params physics.Params, mode ReadMode) *World {
	w := &World{
		front:  ps,
		chunks: executor.Partition(len(ps), chunks),
		exec:   exec,
		params: params,
		mode:   mode,
	}
	if mode == Snapshot {
		w.back = make([]particle.Particle, len(ps))
	}
	return w
}

// Step advances every particle by dt.
func (w *World) Step(dt float32) {
	src, dst := w.front, w.front
	if w.mode == Snapshot {
		dst = w.back
	}
	w.exec.For(w.chunks, func(r executor.Range) {
		physics.Step(src, dst, r.Start, r.End, dt, w.params)
	})
	if w.mode == Snapshot {
		w.front, w.back = w.back, w.front
	}
	w.steps++
}

// Particles returns the current state. The slice is only valid until the
// next call to Step.
func (w *World) Particles() []particle.Particle { return w.front }

func (w *World) Range() float32 { return w.params.Range }

func (w *World) Steps() uint64 { return w.steps }

// Reseed replaces every particle with a freshly seeded one using opts.
func (w *World) Reseed(opts particle.Options) {
	copy(w.front, particle.Seed(len(w.front), opts))
	w.steps = 0
}

// Stats summarizes the current state.
type Stats struct {
	Steps    uint64
	Kinetic  float64 // total kinetic energy with unit masses
	MaxSpeed float64
}

func (w *World) Stats() Stats {
	s := Stats{Steps: w.steps}
	for _, p := range w.front {
		v2 := float64(p.VX)*float64(p.VX) + float64(p.VY)*float64(p.VY)
		s.Kinetic += 0.5 * v2
		s.MaxSpeed = math.Max(s.MaxSpeed, math.Sqrt(v2))
	}
	return s
}

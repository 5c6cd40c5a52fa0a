package sim

import (
	"testing"

	"github.com/olivierh59500/particle-system-go/internal/executor"
	"github.com/olivierh59500/particle-system-go/internal/particle"
	"github.com/olivierh59500/particle-system-go/internal/physics"
)

var params = physics.Params{Range: 5, Strength: 0.3, MinDistance: 0.1}

func seed(n int) []particle.Particle {
	return particle.Seed(n, particle.Options{Range: 5, Radius: 1, Seed: 99})
}

func TestSnapshotIsDeterministicAcrossExecutors(t *testing.T) {
	pool := executor.NewPool(4)
	defer pool.Close()

	execs := map[string]executor.Executor{
		"forkjoin": executor.ForkJoin{},
		"pool":     pool,
	}
	want := NewWorld(seed(300), 1, executor.Sequential{}, params, Snapshot)
	for n := 0; n < 20; n++ {
		want.Step(1.0 / 144)
	}

	for name, e := range execs {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(seed(300), 32, e, params, Snapshot)
			for n := 0; n < 20; n++ {
				w.Step(1.0 / 144)
			}
			got := w.Particles()
			for i := range got {
				if got[i] != want.Particles()[i] {
					t.Fatalf("particle %d: %+v, want %+v", i, got[i], want.Particles()[i])
				}
			}
		})
	}
}

func TestSharedModeUsesUpdatedNeighbors(t *testing.T) {
	// With a single chunk the second particle sees the first one already moved.
	ps := []particle.Particle{{X: -1}, {X: 1}}
	shared := NewWorld(ps, 1, executor.Sequential{}, params, Shared)
	shared.Step(1)

	snap := NewWorld([]particle.Particle{{X: -1}, {X: 1}}, 1, executor.Sequential{}, params, Snapshot)
	snap.Step(1)

	a, b := shared.Particles()[1].VX, snap.Particles()[1].VX
	if a >= b {
		t.Errorf("shared vx = %v, snapshot vx = %v; shared should see a larger gap", a, b)
	}
	if s := snap.Particles(); s[0].VX != -s[1].VX {
		t.Errorf("snapshot step is not symmetric: %v vs %v", s[0].VX, s[1].VX)
	}
}

func TestStepKeepsColorRadiusAndBounds(t *testing.T) {
	ps := seed(100)
	orig := make([]particle.Particle, len(ps))
	copy(orig, ps)

	w := NewWorld(ps, 8, executor.ForkJoin{}, params, Snapshot)
	for n := 0; n < 50; n++ {
		w.Step(1.0 / 60)
	}
	for i, p := range w.Particles() {
		if p.Color != orig[i].Color || p.Radius != orig[i].Radius {
			t.Errorf("particle %d: color/radius changed", i)
		}
		if p.X < -5 || p.X > 5 || p.Y < -5 || p.Y > 5 {
			t.Errorf("particle %d out of bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
	if w.Steps() != 50 {
		t.Errorf("Steps() = %d, want 50", w.Steps())
	}
}

func TestReseedAndStats(t *testing.T) {
	w := NewWorld([]particle.Particle{{VX: 3, VY: 4}, {X: 1}}, 1, executor.Sequential{}, params, Snapshot)
	s := w.Stats()
	if s.MaxSpeed != 5 || s.Kinetic != 12.5 {
		t.Errorf("Stats() = %+v, want max speed 5 and kinetic 12.5", s)
	}

	w.Step(0.1)
	w.Reseed(particle.Options{Range: 5, Radius: 2, Seed: 1})
	if w.Steps() != 0 {
		t.Errorf("Steps() after reseed = %d", w.Steps())
	}
	for i, p := range w.Particles() {
		if p.Radius != 2 {
			t.Errorf("particle %d radius = %v after reseed", i, p.Radius)
		}
	}
}

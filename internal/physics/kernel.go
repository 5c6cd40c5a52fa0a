// Package physics implements the all-pairs repulsion kernel and the symplectic
// Euler integration step with wall reflection.
package physics

import (
	"math"

	"github.com/olivierh59500/particle-system-go/internal/particle"
)

// Params are the constants of the force model.
type Params struct {
	Range       float32 // half extent of the square domain
	Strength    float32 // repulsion coefficient
	MinDistance float32 // floor applied to pair distances
}

// Force returns the total repulsion acting on ps[i]. Pair distances below
// MinDistance are floored, so a single pair contributes at most
// Strength/MinDistance².
func Force(ps []particle.Particle, i int, p Params) (fx, fy float32) {
	xi, yi := ps[i].X, ps[i].Y
	for j := range ps {
		if i == j {
			continue
		}
		dx := xi - ps[j].X
		dy := yi - ps[j].Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if dist < p.MinDistance {
			dist = p.MinDistance
		}

		f := p.Strength / (dist * dist)
		fx += f * dx / dist
		fy += f * dy / dist
	}
	return fx, fy
}

// Integrate applies force (fx, fy) to q over dt with unit mass and reflects
// q off the walls at ±r.
func Integrate(q *particle.Particle, fx, fy, dt, r float32) {
	q.VX += fx * dt
	q.VY += fy * dt
	q.X += q.VX * dt
	q.Y += q.VY * dt

	q.X, q.VX = reflect(q.X, q.VX, r)
	q.Y, q.VY = reflect(q.Y, q.VY, r)
}

// reflect snaps a coordinate that left [-r, r] back onto the crossed wall and
// flips its velocity.
func reflect(x, v, r float32) (float32, float32) {
	if x < -r || x > r {
		if x < 0 {
			return -r, -v
		}
		return r, -v
	}
	return x, v
}

// Step advances every particle in [start, end). Forces are read from src and
// the results written to dst. src and dst may be the same slice, in which
// case particles updated earlier in the range are visible to later ones.
func Step(src, dst []particle.Particle, start, end int, dt float32, p Params) {
	for i := start; i < end; i++ {
		fx, fy := Force(src, i, p)
		q := src[i]
		Integrate(&q, fx, fy, dt, p.Range)
		dst[i] = q
	}
}

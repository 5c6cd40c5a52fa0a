package particle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Particle is a single simulated body. Radius and Color are set once when the
// store is seeded and never change afterwards.
type Particle struct {
	X, Y   float32 // Position
	VX, VY float32 // Velocity
	Radius float32
	Color  color.RGBA
}

// Pattern selects how a store is initialized.
type Pattern int

const (
	Random Pattern = iota // uniform positions, velocities and colors
	Flow                  // velocities follow a Perlin noise field
	Hue                   // uniform motion, colors spread around the hue wheel
)

// Options controls Seed.
type Options struct {
	Range   float32 // half extent of the domain
	Radius  float32
	Pattern Pattern
	Seed    int64
}

// Perlin field parameters for the Flow pattern
const (
	flowAlpha  = 2.0
	flowBeta   = 2.0
	flowOctave = 3
	flowScale  = 0.35
	maxSpeed   = 0.5
)

// Seed allocates n particles and initializes them according to opts.
func Seed(n int, opts Options) []Particle {
	rng := rand.New(rand.NewSource(opts.Seed))
	r := opts.Range

	var noise *perlin.Perlin
	if opts.Pattern == Flow {
		noise = perlin.NewPerlin(flowAlpha, flowBeta, flowOctave, opts.Seed)
	}

	ps := make([]Particle, n)
	for i := range ps {
		p := &ps[i]
		p.X = rng.Float32()*r*2 - r
		p.Y = rng.Float32()*r*2 - r
		p.VX = rng.Float32()*1 - maxSpeed
		p.VY = rng.Float32()*1 - maxSpeed
		p.Radius = opts.Radius
		p.Color = color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}

		switch opts.Pattern {
		case Flow:
			// Direction from the noise field, magnitude stays random
			v := noise.Noise2D(float64(p.X)*flowScale, float64(p.Y)*flowScale)
			angle := (v + 1) * math.Pi
			speed := rng.Float64() * maxSpeed
			p.VX = float32(math.Cos(angle) * speed)
			p.VY = float32(math.Sin(angle) * speed)
		case Hue:
			p.Color = hueColor(float64(i) / float64(n) * 360)
		}
	}
	return ps
}

func hueColor(h float64) color.RGBA {
	r, g, b := hsvToRGB(h, 1, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB converts hue in degrees, saturation and value in [0, 1] to RGB
// components in [0, 1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

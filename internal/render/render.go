package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-system-go/internal/particle"
)

var background = color.RGBA{0, 0, 0, 255}

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.RGBA)
}

// EbitenCanvas draws onto an ebiten screen image.
type EbitenCanvas struct {
	Screen *ebiten.Image
}

func (e EbitenCanvas) Clear(c color.Color) {
	e.Screen.Fill(c)
}

func (e EbitenCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(e.Screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// ToScreen maps a simulation coordinate in [-r, r] onto [0, dim].
func ToScreen(coord, r float32, dim int) int {
	return int((coord + r) / (2 * r) * float32(dim))
}

// Draw clears c to black and draws every particle as a filled square of side
// 2*radius centered on its screen position.
func Draw(c Canvas, ps []particle.Particle, r float32, width, height int) {
	c.Clear(background)
	for i := range ps {
		p := &ps[i]
		sx := ToScreen(p.X, r, width)
		sy := ToScreen(p.Y, r, height)
		c.FillRect(sx-int(p.Radius), sy-int(p.Radius), int(p.Radius*2), int(p.Radius*2), p.Color)
	}
}

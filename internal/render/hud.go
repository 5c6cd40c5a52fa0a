package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is the status overlay shown in the top left corner.
type HUD struct {
	Particles int
	Steps     uint64
	Kinetic   float64
	Paused    bool
}

func (h HUD) String() string {
	s := fmt.Sprintf("FPS: %0.1f  TPS: %0.1f\nParticles: %d  Steps: %d\nKinetic: %0.3f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), h.Particles, h.Steps, h.Kinetic)
	if h.Paused {
		s += "\nPAUSED"
	}
	return s + "\n[Space] pause  [R] reseed  [D] overlay  [Esc] quit"
}

func DrawHUD(screen *ebiten.Image, h HUD) {
	ebitenutil.DebugPrint(screen, h.String())
}

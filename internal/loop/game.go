package loop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-system-go/internal/particle"
	"github.com/olivierh59500/particle-system-go/internal/render"
	"github.com/olivierh59500/particle-system-go/internal/sim"
)

// WindowEvents reports a quit when the window is being closed or Escape is
// pressed. Window closing must be handled by the program for the former, see
// ebiten.SetWindowClosingHandled.
type WindowEvents struct{}

func (WindowEvents) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Game runs a Loop inside ebiten. Ebiten presents the frame after Draw and
// paces Update through its TPS setting, so the loop itself does not sleep.
type Game struct {
	Loop          *Loop
	World         *sim.World
	Width, Height int
	ShowHUD       bool
	// Seed is used when the world is reseeded from the keyboard.
	Seed particle.Options
	// Events is polled by the loop every tick. NewGame sets WindowEvents.
	Events Events
}

// NewGame wires a loop to the window's events and the system clock.
func NewGame(w *sim.World, width, height, tps, subSteps int, seed particle.Options) *Game {
	g := &Game{
		World:   w,
		Width:   width,
		Height:  height,
		ShowHUD: true,
		Seed:    seed,
		Events:  WindowEvents{},
	}
	g.Loop = New(w, g, SystemClock{}, Options{FPS: tps, SubSteps: subSteps})
	return g
}

// QuitRequested forwards to the game's event source.
func (g *Game) QuitRequested() bool {
	return g.Events != nil && g.Events.QuitRequested()
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()
	if g.Loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	ps := g.World.Particles()
	render.Draw(render.EbitenCanvas{Screen: screen}, ps, g.World.Range(), g.Width, g.Height)
	if g.ShowHUD {
		render.DrawHUD(screen, render.HUD{
			Particles: len(ps),
			Steps:     g.World.Steps(),
			Kinetic:   g.World.Stats().Kinetic,
			Paused:    g.Loop.Paused,
		})
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Loop.Paused = !g.Loop.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Seed.Seed = time.Now().UnixNano()
		g.World.Reseed(g.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ShowHUD = !g.ShowHUD
	}
}

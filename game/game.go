// Package game runs the demo's window loop: it advances the orbit
// simulation at a fixed tick rate, renders the scene, and stops on the
// quit signal.
package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orrery/assets"
	"github.com/plus3/orrery/ecs"
	"github.com/plus3/orrery/scene"
	"github.com/plus3/orrery/sim"
)

const (
	ScreenWidth    = 1920
	ScreenHeight   = 1080
	TicksPerSecond = 60
	SunSize        = 100

	tickDelta = 1.0 / float64(TicksPerSecond)
)

// State is the loop state. The only transition is Running -> Stopped on
// the quit signal; Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

// Game implements ebiten.Game for the solar-system demo.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	render    *scene.RenderSystem
	screen    *scene.Screen
	state     State
	overlay   *Overlay

	// quitPressed polls the cancel keys; injectable for tests.
	quitPressed func() bool
}

// New builds the demo world: the fixed scene geometry, the eight planets
// in order, and the orbit scheduler. Textures come from lib.
func New(lib *assets.Library) *Game {
	storage := ecs.NewStorage()

	sunRect := image.Rect(
		(ScreenWidth-SunSize)/2,
		(ScreenHeight-SunSize)/2,
		(ScreenWidth+SunSize)/2,
		(ScreenHeight+SunSize)/2,
	)
	ecs.PutSingleton(storage, scene.Frame{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		Sun:    sunRect,
	})
	ecs.PutSingleton(storage, sim.Center{
		X: float64(sunRect.Min.X) + SunSize/2,
		Y: float64(sunRect.Min.Y) + SunSize/2,
	})
	screen := ecs.PutSingleton(storage, scene.Screen{})

	for _, p := range sim.Planets() {
		sim.SpawnPlanet(storage, p)
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.OrbitSystem{})

	return &Game{
		storage:   storage,
		scheduler: scheduler,
		render:    &scene.RenderSystem{Library: lib},
		screen:    screen,
		state:     Running,
		quitPressed: func() bool {
			return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
		},
	}
}

// State returns the current loop state
func (g *Game) State() State {
	return g.state
}

// Update polls the quit signal once per tick, then advances the simulation.
// Once stopped, no further updates happen.
func (g *Game) Update() error {
	if g.state == Stopped {
		return ebiten.Termination
	}

	if g.quitPressed() {
		g.state = Stopped
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.Update(g)
	}

	g.scheduler.Once(tickDelta)
	return nil
}

// Draw composes the frame onto screen: background, sun, planets, and the
// debug overlay on top when enabled.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state == Stopped {
		return
	}

	g.screen.Image = screen
	g.render.Execute(&ecs.UpdateFrame{Storage: g.storage})

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(ScreenWidth, ScreenHeight)
	}
	return ScreenWidth, ScreenHeight
}

package game

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/orrery/ecs"
	"github.com/plus3/orrery/sim"
)

// Overlay renders a Dear ImGui debug window on top of the scene: frame
// timing, scheduler stats, and the live orbital state of every planet.
// Toggle visibility with F1.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	visible bool
}

// EnableDebugOverlay attaches the overlay to the game. The imgui backend
// owns the window, so this must run before ebiten.RunGame and replaces the
// usual window setup.
func (g *Game) EnableDebugOverlay(title string) {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	g.overlay = &Overlay{
		backend: backend,
		visible: true,
	}
}

// Update begins the imgui frame, builds the overlay window, and ends the
// frame. Runs once per tick from Game.Update.
func (o *Overlay) Update(g *Game) {
	o.backend.BeginFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}

	if o.visible {
		o.renderWindow(g)
	}

	o.backend.EndFrame()
}

func (o *Overlay) renderWindow(g *Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 380), imgui.CondOnce)

	if !imgui.BeginV("Orrery Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	imgui.Text(fmt.Sprintf("Entities: %d", g.storage.Count()))

	imgui.Separator()
	imgui.Text("Systems")
	stats := g.scheduler.GetStats()
	for _, sys := range stats.Systems {
		imgui.Text(fmt.Sprintf("%s: avg %.3f ms (%d runs)",
			sys.Name,
			float64(sys.AvgDuration.Microseconds())/1000.0,
			sys.ExecutionCount))
	}

	imgui.Separator()
	imgui.Text("Planets")
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PlanetTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Radius")
		imgui.TableSetupColumn("Angle")
		imgui.TableSetupColumn("Position")
		imgui.TableHeadersRow()

		ecs.Each3(g.storage, func(_ ecs.EntityId, body *sim.Body, orbit *sim.Orbit, pos *sim.Position) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(body.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f", orbit.Radius))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", orbit.Angle))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.0f, %.0f)", pos.X, pos.Y))
		})

		imgui.EndTable()
	}

	imgui.End()
}

// Draw blits the imgui overlay on top of the composed scene.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the logical screen size to the imgui backend.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

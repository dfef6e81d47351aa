package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orrery/assets"
	"github.com/plus3/orrery/game"
)

func main() {
	assetsDir := flag.String("assets", "./images", "directory containing the demo's BMP textures")
	windowed := flag.Bool("windowed", false, "run in a decorated window instead of borderless")
	debug := flag.Bool("debug", false, "enable the debug overlay (toggle with F1)")
	flag.Parse()

	lib, err := assets.Load(*assetsDir)
	if err != nil {
		log.Fatalf("orrery: %v", err)
	}

	g := game.New(lib)

	if *debug {
		// The imgui backend creates the window itself
		g.EnableDebugOverlay("Orrery")
	} else {
		ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
		ebiten.SetWindowTitle("Orrery")
		ebiten.SetWindowDecorated(*windowed)
	}
	ebiten.SetTPS(game.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("orrery: %v", err)
	}
}

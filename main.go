// TinyBoard - a click-to-move chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/tinyboard/internal/ui"
)

var (
	fresh    = flag.Bool("fresh", false, "start a new game instead of resuming the saved one")
	mute     = flag.Bool("mute", false, "start with sound disabled")
	cellSize = flag.Int("cell", ui.DefaultCellSize, "size of one board square in pixels")
)

func main() {
	flag.Parse()

	game := ui.NewGame(ui.Options{
		CellSize: *cellSize,
		Fresh:    *fresh,
		Mute:     *mute,
	})
	w, h := game.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("TinyBoard")

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("Warning: Failed to close storage: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Maze-Scope/internal/view"
)

func main() {
	ebiten.SetWindowTitle("Maze Scope")
	ebiten.SetWindowSize(1280, 800)
	if err := ebiten.RunGame(view.New()); err != nil {
		log.Fatal(err)
	}
}

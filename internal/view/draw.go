package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Maze-Scope/internal/maze"
)

var (
	colWindow   = color.RGBA{R: 14, G: 16, B: 20, A: 255}
	colFloor    = color.RGBA{R: 235, G: 235, B: 238, A: 255}
	colWall     = color.RGBA{R: 25, G: 28, B: 36, A: 255}
	colExplored = color.RGBA{R: 170, G: 210, B: 240, A: 255}
	colHead     = color.RGBA{R: 250, G: 170, B: 60, A: 255}
	colPath     = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	colStart    = color.RGBA{R: 60, G: 100, B: 220, A: 255}
	colEnd      = color.RGBA{R: 220, G: 80, B: 60, A: 255}
	colBorder   = color.RGBA{R: 70, G: 80, B: 100, A: 255}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colWindow)

	// Render the maze to worldBuf at (0,0) origin, then blit with the
	// camera transform.
	a.worldBuf.Clear()
	a.drawWorld(a.worldBuf)

	var cam ebiten.GeoM
	cam.Translate(-a.camX, -a.camY)
	cam.Scale(a.camZoom, a.camZoom)
	cam.Translate(float64(a.viewW)/2, float64(a.viewH)/2)

	var blit ebiten.DrawImageOptions
	blit.GeoM = cam
	blit.GeoM.Translate(borderWidth, borderWidth)
	screen.DrawImage(a.worldBuf, &blit)

	// Viewport frame (screen coords, not transformed).
	vector.StrokeRect(screen, borderWidth-1, borderWidth-1,
		float32(a.viewW)+2, float32(a.viewH)+2, 2.0, colBorder, false)

	if a.showHUD {
		a.drawHUD(screen)
	}
	if a.camZoom != 1.0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom: %.2fx", a.camZoom), borderWidth+6, borderWidth+6)
	}
}

func (a *App) drawWorld(buf *ebiten.Image) {
	g := a.maze.Grid
	cw := float32(cellPx)
	worldW := float32(a.gridW) * cw
	worldH := float32(a.gridH) * cw

	vector.FillRect(buf, 0, 0, worldW, worldH, colFloor, false)

	// Exploration overlay plus the most recent expansion highlighted.
	trace := a.solver.Trace()
	for _, c := range trace {
		vector.FillRect(buf, float32(c.Col)*cw, float32(c.Row)*cw, cw, cw, colExplored, false)
	}
	if len(trace) > 0 && !a.solver.Done() {
		head := trace[len(trace)-1]
		vector.FillRect(buf, float32(head.Col)*cw, float32(head.Row)*cw, cw, cw, colHead, false)
	}

	// Solution polyline through cell centres.
	if len(a.path) > 1 {
		prevX, prevY := cellCenter(a.path[0])
		for _, c := range a.path[1:] {
			x, y := cellCenter(c)
			vector.StrokeLine(buf, prevX, prevY, x, y, 3.0, colPath, false)
			prevX, prevY = x, y
		}
	}

	// Walls: every cell strokes its closed right and bottom edges; the
	// top and left borders close the outline.
	vector.StrokeLine(buf, 0, 0, worldW, 0, 2.0, colWall, false)
	vector.StrokeLine(buf, 0, 0, 0, worldH, 2.0, colWall, false)
	for r := 0; r < a.gridH; r++ {
		for c := 0; c < a.gridW; c++ {
			cell := maze.Cell{Row: r, Col: c}
			x := float32(c) * cw
			y := float32(r) * cw
			if !g.IsOpen(cell, maze.SideRight) {
				vector.StrokeLine(buf, x+cw, y, x+cw, y+cw, 2.0, colWall, false)
			}
			if !g.IsOpen(cell, maze.SideDown) {
				vector.StrokeLine(buf, x, y+cw, x+cw, y+cw, 2.0, colWall, false)
			}
		}
	}

	// Endpoint discs on top of everything else.
	x, y := cellCenter(a.maze.Start)
	vector.FillCircle(buf, x, y, cw*0.28, colStart, false)
	x, y = cellCenter(a.maze.End)
	vector.FillCircle(buf, x, y, cw*0.28, colEnd, false)
}

func cellCenter(c maze.Cell) (float32, float32) {
	return (float32(c.Col) + 0.5) * cellPx, (float32(c.Row) + 0.5) * cellPx
}

func (a *App) drawHUD(screen *ebiten.Image) {
	lines := a.hudLines()

	const lineH = 12 // debug font line height
	const charW = 6
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(borderWidth)
	by := float32(a.height) - boxH - 8

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 8, G: 10, B: 14, A: 215}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, colBorder, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}

// hudLines builds the HUD text for the current state.
func (a *App) hudLines() []string {
	solve := "idle"
	switch {
	case a.solver == nil:
	case a.solver.Done() && a.solver.Found():
		solve = fmt.Sprintf("found  visited=%d path=%d", a.solver.Steps(), len(a.path))
	case a.solver.Done():
		solve = fmt.Sprintf("exhausted  visited=%d", a.solver.Steps())
	default:
		solve = fmt.Sprintf("running  visited=%d frontier=%d", a.solver.Steps(), a.solver.FrontierLen())
	}

	speed := "PAUSED"
	if a.animSpeed > 0 {
		speed = fmt.Sprintf("%gx", a.animSpeed)
	}

	marks := ""
	for i, alg := range maze.Algorithms() {
		on := " "
		if alg == a.algorithm {
			on = "*"
		}
		marks += fmt.Sprintf("[%d]%s %s  ", i+1, on, alg)
	}

	lines := []string{
		fmt.Sprintf("maze: %dx%d %s seed=%d", a.gridW, a.gridH, a.difficulty, a.seed),
		marks,
		"solve: " + solve,
		fmt.Sprintf("speed: %s  P=pause  ,/. speed  R=resolve", speed),
		"N=new maze  Tab=difficulty  E=save png  C=copy ascii",
		"WASD/arrows=pan  wheel/=/-=zoom  H=hud",
	}
	if a.status != "" {
		lines = append(lines, a.status)
	}
	return lines
}

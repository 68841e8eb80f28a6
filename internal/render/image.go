// Package render rasterizes mazes and solve results to images. It is
// the only package that draws outside the interactive window; the GUI
// and the report tool both use it for PNG snapshots.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Maze-Scope/internal/maze"
)

// Style controls snapshot geometry.
type Style struct {
	CellPx   int // interior pixel size per cell
	WallPx   int // wall line thickness
	MarginPx int // blank border around the grid
}

// DefaultStyle suits mazes up to roughly 80 cells per side.
var DefaultStyle = Style{CellPx: 24, WallPx: 2, MarginPx: 16}

const captionPx = 20

var (
	colBackground = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colWall       = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	colExplored   = color.RGBA{R: 176, G: 216, B: 240, A: 255}
	colPath       = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	colStart      = color.RGBA{R: 60, G: 100, B: 220, A: 255}
	colEnd        = color.RGBA{R: 220, G: 80, B: 60, A: 255}
)

// normalized fills non-positive fields from DefaultStyle.
func (st Style) normalized() Style {
	if st.CellPx <= 0 {
		st.CellPx = DefaultStyle.CellPx
	}
	if st.WallPx <= 0 {
		st.WallPx = DefaultStyle.WallPx
	}
	if st.MarginPx <= 0 {
		st.MarginPx = DefaultStyle.MarginPx
	}
	return st
}

// Snapshot draws the maze with an optional exploration overlay, path
// polyline and caption, and returns the finished image. trace, path
// and label may all be empty for a bare maze picture.
func Snapshot(m *maze.Maze, trace, path []maze.Cell, label string, st Style) image.Image {
	return draw(m, trace, path, label, st).Image()
}

// SavePNG renders a snapshot straight to a file.
func SavePNG(name string, m *maze.Maze, trace, path []maze.Cell, label string, st Style) error {
	return draw(m, trace, path, label, st).SavePNG(name)
}

func draw(m *maze.Maze, trace, path []maze.Cell, label string, st Style) *gg.Context {
	st = st.normalized()
	g := m.Grid
	cw := float64(st.CellPx)
	ox := float64(st.MarginPx)
	oy := float64(st.MarginPx)

	w := st.MarginPx*2 + g.Width()*st.CellPx
	h := st.MarginPx*2 + g.Height()*st.CellPx
	if label != "" {
		h += captionPx
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(colBackground)
	dc.Clear()

	// Explored cells first so walls and the path draw over them.
	dc.SetColor(colExplored)
	for _, c := range trace {
		dc.DrawRectangle(ox+float64(c.Col)*cw, oy+float64(c.Row)*cw, cw, cw)
		dc.Fill()
	}

	// Path polyline through cell centers.
	if len(path) > 1 {
		dc.SetColor(colPath)
		dc.SetLineWidth(float64(st.WallPx + 1))
		x, y := cellCenter(path[0], ox, oy, cw)
		dc.MoveTo(x, y)
		for _, c := range path[1:] {
			x, y = cellCenter(c, ox, oy, cw)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	// Walls: every cell owns its right and bottom edge; the top and
	// left borders close the outline.
	dc.SetColor(colWall)
	dc.SetLineWidth(float64(st.WallPx))
	gw := float64(g.Width()) * cw
	gh := float64(g.Height()) * cw
	dc.DrawLine(ox, oy, ox+gw, oy)
	dc.DrawLine(ox, oy, ox, oy+gh)
	dc.Stroke()
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			x := ox + float64(c)*cw
			y := oy + float64(r)*cw
			if !g.IsOpen(cell, maze.SideRight) {
				dc.DrawLine(x+cw, y, x+cw, y+cw)
				dc.Stroke()
			}
			if !g.IsOpen(cell, maze.SideDown) {
				dc.DrawLine(x, y+cw, x+cw, y+cw)
				dc.Stroke()
			}
		}
	}

	// Endpoint discs on top of everything else.
	r := cw * 0.28
	x, y := cellCenter(m.Start, ox, oy, cw)
	dc.SetColor(colStart)
	dc.DrawCircle(x, y, r)
	dc.Fill()
	x, y = cellCenter(m.End, ox, oy, cw)
	dc.SetColor(colEnd)
	dc.DrawCircle(x, y, r)
	dc.Fill()

	if label != "" {
		dc.SetColor(colWall)
		dc.SetFontFace(basicfont.Face7x13)
		dc.DrawString(label, ox, float64(h)-6)
	}
	return dc
}

func cellCenter(c maze.Cell, ox, oy, cw float64) (float64, float64) {
	return ox + (float64(c.Col)+0.5)*cw, oy + (float64(c.Row)+0.5)*cw
}

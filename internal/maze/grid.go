package maze

import (
	"fmt"
	"strings"
)

// Side is a bitfield of open passage directions out of a cell.
type Side uint8

const (
	SideUp    Side = 1 << iota // toward row-1
	SideDown                   // toward row+1
	SideLeft                   // toward col-1
	SideRight                  // toward col+1
)

// sideOrder is the canonical neighbor order: right, down, left, up.
// Generation and solving both walk neighbors in this order so a fixed
// seed yields the same maze and the same exploration everywhere.
var sideOrder = [4]Side{SideRight, SideDown, SideLeft, SideUp}

// Opposite returns the matching side seen from the adjacent cell.
func (s Side) Opposite() Side {
	switch s {
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return 0
	}
}

// Delta returns the row and column offset of the neighbor across s.
func (s Side) Delta() (dr, dc int) {
	switch s {
	case SideUp:
		return -1, 0
	case SideDown:
		return 1, 0
	case SideLeft:
		return 0, -1
	case SideRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Cell identifies one grid position by row and column.
type Cell struct {
	Row int
	Col int
}

// Step returns the neighboring cell across s.
func (c Cell) Step(s Side) Cell {
	dr, dc := s.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// SideBetween returns the side leading from a to b when they are
// orthogonal neighbors, and false otherwise.
func SideBetween(a, b Cell) (Side, bool) {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return SideUp, true
	case b.Row == a.Row+1 && b.Col == a.Col:
		return SideDown, true
	case b.Row == a.Row && b.Col == a.Col-1:
		return SideLeft, true
	case b.Row == a.Row && b.Col == a.Col+1:
		return SideRight, true
	}
	return 0, false
}

// Grid is the cell arena. Open-side bits are stored row-major:
// index = row*width + col. A fresh grid has every wall intact.
type Grid struct {
	width  int
	height int
	open   []Side
}

// NewGrid creates a fully walled grid of the given size.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		open:   make([]Side, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

func (g *Grid) index(c Cell) int { return c.Row*g.width + c.Col }

func (g *Grid) cellAt(i int) Cell { return Cell{Row: i / g.width, Col: i % g.width} }

// OpenSides returns the open passage directions out of c.
func (g *Grid) OpenSides(c Cell) Side {
	if !g.InBounds(c) {
		return 0
	}
	return g.open[g.index(c)]
}

// IsOpen reports whether the passage across s from c is open.
func (g *Grid) IsOpen(c Cell, s Side) bool {
	return g.OpenSides(c)&s != 0
}

// carve opens the wall between c and its neighbor across s. Both cells
// record the passage so IsOpen agrees from either end.
func (g *Grid) carve(c Cell, s Side) {
	n := c.Step(s)
	if !g.InBounds(c) || !g.InBounds(n) {
		return
	}
	g.open[g.index(c)] |= s
	g.open[g.index(n)] |= s.Opposite()
}

// PassageCount returns the number of carved passages. Counting only the
// right and down bits sees each passage from exactly one end.
func (g *Grid) PassageCount() int {
	n := 0
	for _, o := range g.open {
		if o&SideRight != 0 {
			n++
		}
		if o&SideDown != 0 {
			n++
		}
	}
	return n
}

// String renders the grid as ASCII box art, three characters of
// interior per cell.
func (g *Grid) String() string {
	return g.sketch(nil)
}

// sketch renders the grid, letting mark supply a single interior
// character per cell (' ' when mark is nil).
func (g *Grid) sketch(mark func(Cell) byte) string {
	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for r := 0; r < g.height; r++ {
		body := "|"
		base := "+"
		for c := 0; c < g.width; c++ {
			cell := Cell{Row: r, Col: c}
			interior := byte(' ')
			if mark != nil {
				interior = mark(cell)
			}
			body += " " + string(interior) + " "
			if g.IsOpen(cell, SideRight) {
				body += " "
			} else {
				body += "|"
			}
			if g.IsOpen(cell, SideDown) {
				base += "   +"
			} else {
				base += "---+"
			}
		}
		sb.WriteString(body + "\n")
		sb.WriteString(base + "\n")
	}
	return sb.String()
}

// Maze is a carved grid with its designated start and end cells.
type Maze struct {
	Grid  *Grid
	Start Cell
	End   Cell
}

// String renders the maze as ASCII box art with S and E marking the
// start and end cells.
func (m *Maze) String() string {
	return m.Grid.sketch(func(c Cell) byte {
		switch c {
		case m.Start:
			return 'S'
		case m.End:
			return 'E'
		}
		return ' '
	})
}

package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Maze-Scope/internal/maze"
)

// TestCellScreenPos checks the mapping against the box-art layout the
// maze's String rendering produces: cell (r,c) owns the interior
// character at column c*4+2 on body line r*2+1.
func TestCellScreenPos(t *testing.T) {
	m, err := maze.Generate(3, 3, maze.DifficultyEasy, maze.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(m.String(), "\n")

	for _, c := range []maze.Cell{m.Start, m.End} {
		x, y := cellScreenPos(c)
		if y >= len(lines) || x >= len(lines[y]) {
			t.Fatalf("cell %v maps to (%d,%d), outside the %d-line rendering", c, x, y, len(lines))
		}
		got := lines[y][x]
		want := byte(' ')
		switch c {
		case m.Start:
			want = 'S'
		case m.End:
			want = 'E'
		}
		if got != want {
			t.Errorf("cell %v: rendering has %q at (%d,%d), want %q", c, got, x, y, want)
		}
	}
}

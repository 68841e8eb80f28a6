package maze

import "testing"

func TestMaze_IsPerfect_HandCarvedTree(t *testing.T) {
	m := &Maze{
		Grid:  carveStaircase(),
		Start: Cell{Row: 0, Col: 0},
		End:   Cell{Row: 1, Col: 1},
	}
	if !m.IsPerfect() {
		t.Error("three-passage 2x2 tree should pass the audit")
	}
}

func TestMaze_IsPerfect_RejectsDisconnected(t *testing.T) {
	m := &Maze{Grid: NewGrid(3, 3)}
	if m.IsPerfect() {
		t.Error("fully walled grid should fail the audit")
	}
}

func TestMaze_IsPerfect_RejectsCycle(t *testing.T) {
	g := carveStaircase()
	// Fourth passage closes the 2x2 loop.
	g.carve(Cell{Row: 0, Col: 1}, SideDown)
	m := &Maze{Grid: g}
	if m.IsPerfect() {
		t.Error("looped grid should fail the audit")
	}
}

func TestMaze_IsPerfect_RejectsPartialConnectivity(t *testing.T) {
	// A 3x1 strip carved on the left only: (0,0)-(0,1) open, (0,2) cut off.
	g := NewGrid(3, 1)
	g.carve(Cell{Row: 0, Col: 0}, SideRight)
	m := &Maze{Grid: g}
	if m.IsPerfect() {
		t.Error("grid with an unreachable cell should fail the audit")
	}
}

func TestMaze_IsPerfect_NilGrid(t *testing.T) {
	m := &Maze{}
	if m.IsPerfect() {
		t.Error("maze without a grid should fail the audit")
	}
}

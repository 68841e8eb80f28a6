package maze

import (
	"errors"
	"reflect"
	"testing"
)

// checkPerfect verifies the spanning-tree invariant: w*h-1 passages,
// full connectivity, no cycles.
func checkPerfect(t *testing.T, m *Maze) {
	t.Helper()
	g := m.Grid
	want := g.Width()*g.Height() - 1
	if got := g.PassageCount(); got != want {
		t.Errorf("%dx%d maze has %d passages, want %d",
			g.Width(), g.Height(), got, want)
	}
	if !m.IsPerfect() {
		t.Errorf("%dx%d maze failed the spanning-tree audit", g.Width(), g.Height())
	}
}

// checkEndpoints verifies start and end are distinct in-bounds cells.
func checkEndpoints(t *testing.T, m *Maze) {
	t.Helper()
	if !m.Grid.InBounds(m.Start) {
		t.Errorf("start %v out of bounds", m.Start)
	}
	if !m.Grid.InBounds(m.End) {
		t.Errorf("end %v out of bounds", m.End)
	}
	if m.Start == m.End {
		t.Errorf("start and end coincide at %v", m.Start)
	}
}

func TestGenerate_RejectsBadDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{1, 1},
		{0, 5},
		{5, 0},
		{-3, 10},
		{2, 1},
		{201, 5},
		{5, 201},
	}
	for _, c := range cases {
		m, err := Generate(c.w, c.h, DifficultyEasy, WithSeed(1))
		if err == nil {
			t.Errorf("Generate(%d, %d) succeeded, want DimensionError", c.w, c.h)
			continue
		}
		var de *DimensionError
		if !errors.As(err, &de) {
			t.Errorf("Generate(%d, %d) error = %v, want DimensionError", c.w, c.h, err)
			continue
		}
		if de.Width != c.w || de.Height != c.h {
			t.Errorf("DimensionError reports %dx%d, want %dx%d", de.Width, de.Height, c.w, c.h)
		}
		if m != nil {
			t.Errorf("Generate(%d, %d) returned a maze alongside the error", c.w, c.h)
		}
	}
}

func TestGenerate_AcceptsBoundaryDimensions(t *testing.T) {
	for _, c := range []struct{ w, h int }{{2, 2}, {2, 200}, {200, 2}} {
		m, err := Generate(c.w, c.h, DifficultyNormal, WithSeed(7))
		if err != nil {
			t.Fatalf("Generate(%d, %d) failed: %v", c.w, c.h, err)
		}
		checkPerfect(t, m)
	}
}

func TestInvariant_PerfectAcrossSizesAndDifficulties(t *testing.T) {
	sizes := []struct{ w, h int }{{2, 2}, {5, 5}, {7, 3}, {16, 12}, {33, 21}}
	for _, size := range sizes {
		for d := DifficultyEasy; d < difficultyCount; d++ {
			for seed := int64(1); seed <= 3; seed++ {
				m, err := Generate(size.w, size.h, d, WithSeed(seed))
				if err != nil {
					t.Fatalf("Generate(%d, %d, %s, seed=%d): %v", size.w, size.h, d, seed, err)
				}
				checkPerfect(t, m)
				checkEndpoints(t, m)
			}
		}
	}
}

func TestGenerate_DefaultEndpointsAreCorners(t *testing.T) {
	m, err := Generate(9, 6, DifficultyEasy, WithSeed(4))
	if err != nil {
		t.Fatal(err)
	}
	if m.Start != (Cell{Row: 0, Col: 0}) {
		t.Errorf("start = %v, want (0,0)", m.Start)
	}
	if m.End != (Cell{Row: 5, Col: 8}) {
		t.Errorf("end = %v, want (5,8)", m.End)
	}
}

func TestGenerate_SameSeedSameMaze(t *testing.T) {
	for d := DifficultyEasy; d < difficultyCount; d++ {
		m1, err := Generate(16, 12, d, WithSeed(42))
		if err != nil {
			t.Fatal(err)
		}
		m2, err := Generate(16, 12, d, WithSeed(42))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(m1, m2) {
			t.Errorf("difficulty %s: same seed produced different mazes", d)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	m1, err := Generate(16, 12, DifficultyNormal, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := Generate(16, 12, DifficultyNormal, WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(m1.Grid, m2.Grid) {
		t.Error("seeds 1 and 2 carved identical 16x12 grids")
	}
}

func TestGenerate_WithLongestPath(t *testing.T) {
	m, err := Generate(12, 12, DifficultyEasy, WithSeed(3), WithLongestPath())
	if err != nil {
		t.Fatal(err)
	}
	checkPerfect(t, m)
	checkEndpoints(t, m)

	// The diameter pair is at least as far apart as any corner pair.
	corner, err := Generate(12, 12, DifficultyEasy, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	_, refined, err := Solve(m, BFS)
	if err != nil {
		t.Fatal(err)
	}
	_, corners, err := Solve(corner, BFS)
	if err != nil {
		t.Fatal(err)
	}
	if len(refined) < len(corners) {
		t.Errorf("diameter path length %d shorter than corner path length %d",
			len(refined), len(corners))
	}
}

func TestGenerate_HardImpliesLongestPath(t *testing.T) {
	// Same seed with and without the explicit option: hard's profile
	// already refines endpoints, so the two runs must agree.
	m1, err := Generate(10, 10, DifficultyHard, WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := Generate(10, 10, DifficultyHard, WithSeed(5), WithLongestPath())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Error("hard difficulty should imply longest-path endpoints")
	}
}

func TestDifficulty_ParseAndString(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		d, err := ParseDifficulty(name)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", name, err)
		}
		if d.String() != name {
			t.Errorf("ParseDifficulty(%q).String() = %q", name, d.String())
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty accepted an unknown level")
	}
}

func TestDifficulty_NextCycles(t *testing.T) {
	d := DifficultyEasy
	seen := map[Difficulty]bool{}
	for i := 0; i < int(difficultyCount); i++ {
		seen[d] = true
		d = d.Next()
	}
	if d != DifficultyEasy {
		t.Errorf("cycling %d times ended at %s, want easy", difficultyCount, d)
	}
	if len(seen) != int(difficultyCount) {
		t.Errorf("cycle visited %d levels, want %d", len(seen), difficultyCount)
	}
}

func TestDifficulty_PresetSizesWithinBounds(t *testing.T) {
	for d := DifficultyEasy; d < difficultyCount; d++ {
		w, h := d.PresetSize()
		if w < MinDimension || w > MaxDimension || h < MinDimension || h > MaxDimension {
			t.Errorf("%s preset %dx%d outside generation bounds", d, w, h)
		}
	}
}

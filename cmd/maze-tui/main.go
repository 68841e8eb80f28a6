// Command maze-tui animates a maze solve in the terminal: the maze is
// drawn as box art, explored cells fill in one expansion per tick, and
// the solution path lights up when the end is reached.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Maze-Scope/internal/maze"
)

var (
	styleDefault  = tcell.StyleDefault
	styleExplored = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type app struct {
	screen tcell.Screen

	width      int // explicit -width/-height, 0 = difficulty preset
	height     int
	difficulty maze.Difficulty
	algorithm  maze.Algorithm
	seed       int64
	seedRng    *rand.Rand

	maze   *maze.Maze
	solver *maze.Solver
	path   []maze.Cell
	paused bool
}

func newApp(width, height int, d maze.Difficulty, a maze.Algorithm, seed int64) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &app{
		screen:     screen,
		width:      width,
		height:     height,
		difficulty: d,
		algorithm:  a,
		seedRng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- seeds for display mazes
	}
	if err := t.regenerate(seed); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func (t *app) regenerate(seed int64) error {
	w, h := t.width, t.height
	if w <= 0 || h <= 0 {
		w, h = t.difficulty.PresetSize()
	}
	m, err := maze.Generate(w, h, t.difficulty, maze.WithSeed(seed))
	if err != nil {
		return err
	}
	t.maze = m
	t.seed = seed
	return t.restartSolve()
}

func (t *app) restartSolve() error {
	s, err := maze.NewSolver(t.maze, t.algorithm)
	if err != nil {
		return err
	}
	t.solver = s
	t.path = nil
	return nil
}

// handleInput returns false when the app should exit.
func (t *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.paused = !t.paused
		case 'n':
			_ = t.regenerate(t.seedRng.Int63())
		case 'r':
			_ = t.restartSolve()
		case 'a':
			algos := maze.Algorithms()
			for i, alg := range algos {
				if alg == t.algorithm {
					t.algorithm = algos[(i+1)%len(algos)]
					break
				}
			}
			_ = t.restartSolve()
		case 'd':
			t.difficulty = t.difficulty.Next()
			_ = t.regenerate(t.seedRng.Int63())
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *app) run() {
	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
			t.draw()

		case <-ticker.C:
			if !t.paused && !t.solver.Done() {
				t.solver.Step()
				if t.solver.Done() && t.solver.Found() {
					t.path, _ = t.solver.Path()
				}
			}
			t.draw()
		}
	}
}

// cellScreenPos maps a maze cell to the screen position of its interior
// character in the box-art layout: 4 columns and 2 rows per cell plus
// the outer border.
func cellScreenPos(c maze.Cell) (int, int) {
	return c.Col*4 + 2, c.Row*2 + 1
}

func (t *app) draw() {
	t.screen.Clear()
	sw, sh := t.screen.Size()

	put := func(x, y int, r rune, style tcell.Style) {
		if x >= 0 && x < sw && y >= 0 && y < sh {
			t.screen.SetContent(x, y, r, nil, style)
		}
	}

	// Walls and blank interiors from the ASCII rendering.
	for y, line := range strings.Split(t.maze.String(), "\n") {
		for x, r := range line {
			put(x, y, r, styleDefault)
		}
	}

	// Exploration overlay, newest expansion highlighted while running.
	trace := t.solver.Trace()
	for _, c := range trace {
		x, y := cellScreenPos(c)
		put(x, y, '·', styleExplored)
	}
	if len(trace) > 0 && !t.solver.Done() {
		x, y := cellScreenPos(trace[len(trace)-1])
		put(x, y, '@', styleHead)
	}
	for _, c := range t.path {
		x, y := cellScreenPos(c)
		put(x, y, '*', stylePath)
	}

	// Endpoint markers stay on top of any overlay.
	x, y := cellScreenPos(t.maze.Start)
	put(x, y, 'S', styleMarker)
	x, y = cellScreenPos(t.maze.End)
	put(x, y, 'E', styleMarker)

	t.drawStatus(put, sh)
	t.screen.Show()
}

func (t *app) drawStatus(put func(int, int, rune, tcell.Style), sh int) {
	state := "running"
	switch {
	case t.paused:
		state = "paused"
	case t.solver.Done() && t.solver.Found():
		state = fmt.Sprintf("found path=%d", len(t.path))
	case t.solver.Done():
		state = "exhausted"
	}
	status := fmt.Sprintf("%s %s seed=%d visited=%d %s | space=pause n=new a=alg d=diff r=resolve q=quit",
		t.algorithm, t.difficulty, t.seed, t.solver.Steps(), state)
	for i, r := range status {
		put(i, sh-1, r, styleStatus)
	}
}

func (t *app) cleanup() {
	t.screen.Fini()
}

func main() {
	var width int
	var height int
	var difficulty string
	var algorithm string
	var seed int64

	flag.IntVar(&width, "width", 0, "maze width in cells (0 = difficulty preset)")
	flag.IntVar(&height, "height", 0, "maze height in cells (0 = difficulty preset)")
	flag.StringVar(&difficulty, "difficulty", "easy", "carve difficulty: easy, normal or hard")
	flag.StringVar(&algorithm, "algorithm", "bfs", "solver: astar, bfs, dfs or dijkstra")
	flag.Int64Var(&seed, "seed", 0, "maze seed (0 = random)")
	flag.Parse()

	d, err := maze.ParseDifficulty(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	a, err := maze.ParseAlgorithm(algorithm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t, err := newApp(width, height, d, a, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.cleanup()

	t.run()
}

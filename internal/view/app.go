// Package view is the interactive front end: an ebiten app that
// generates mazes, animates the solvers step by step and lets the user
// pan, zoom, export and re-roll. All maze semantics live in
// internal/maze; this package only drives and draws them.
package view

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Maze-Scope/internal/maze"
	"github.com/Garsondee/Maze-Scope/internal/render"
)

// borderWidth is the pixel gap between the window edge and the maze
// viewport.
const borderWidth = 24

// cellPx is the world-space pixel size of one maze cell.
const cellPx = 24

// animSpeeds are the selectable animation rates in expansions per
// frame. 0 pauses the solve; fractions expand less than once per frame.
var animSpeeds = []float64{0, 0.25, 1, 4, 16, 64}

// App is the ebiten game: one maze, one running (or finished) solver,
// and the camera/HUD state around them.
type App struct {
	width  int // window size
	height int
	viewW  int // maze viewport (inside border)
	viewH  int

	maze       *maze.Maze
	gridW      int
	gridH      int
	seed       int64
	difficulty maze.Difficulty
	algorithm  maze.Algorithm

	solver    *maze.Solver
	path      []maze.Cell // set once the solver finds the end
	animSpeed float64     // expansions per frame, 0 = paused
	stepAccum float64

	// Camera pan + zoom.
	camX    float64 // world-space X of the camera centre
	camY    float64 // world-space Y of the camera centre
	camZoom float64

	// Offscreen buffer for the maze world — camera transform applied
	// on blit.
	worldBuf *ebiten.Image

	showHUD  bool
	status   string // last export/copy outcome for the HUD
	prevKeys map[ebiten.Key]bool
	seedRng  *rand.Rand
}

// New builds the app with a fresh normal-difficulty maze at its preset
// size.
func New() *App {
	a := &App{
		width:      1280,
		height:     800,
		difficulty: maze.DifficultyNormal,
		algorithm:  maze.BFS,
		animSpeed:  4,
		camZoom:    1.0,
		showHUD:    true,
		prevKeys:   make(map[ebiten.Key]bool),
		seedRng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- seeds for display mazes
	}
	a.viewW = a.width - borderWidth*2
	a.viewH = a.height - borderWidth*2
	a.regenerate(a.seedRng.Int63())
	return a
}

// regenerate replaces the maze with a new one for the given seed and
// restarts the solve. The world buffer is rebuilt when the grid size
// changes.
func (a *App) regenerate(seed int64) {
	w, h := a.difficulty.PresetSize()
	m, err := maze.Generate(w, h, a.difficulty, maze.WithSeed(seed))
	if err != nil {
		// Preset sizes are always in bounds; this is unreachable short
		// of a broken preset table.
		log.Printf("view: generate %dx%d failed: %v", w, h, err)
		return
	}
	a.maze = m
	a.gridW = w
	a.gridH = h
	a.seed = seed

	worldW, worldH := a.worldSize()
	if a.worldBuf == nil || a.worldBuf.Bounds().Dx() != worldW || a.worldBuf.Bounds().Dy() != worldH {
		a.worldBuf = ebiten.NewImage(worldW, worldH)
	}
	a.camX = float64(worldW) / 2
	a.camY = float64(worldH) / 2
	a.restartSolve()
}

// restartSolve discards the current run and seeds a new solver over the
// same maze.
func (a *App) restartSolve() {
	s, err := maze.NewSolver(a.maze, a.algorithm)
	if err != nil {
		log.Printf("view: solver init failed: %v", err)
		return
	}
	a.solver = s
	a.path = nil
	a.stepAccum = 0
}

// worldSize returns the maze's pixel footprint in world space.
func (a *App) worldSize() (int, int) {
	return a.gridW * cellPx, a.gridH * cellPx
}

func (a *App) Update() error {
	a.handleInput()

	// Advance the animated solve. Fractional speeds accumulate until a
	// whole expansion is due.
	if a.solver != nil && !a.solver.Done() && a.animSpeed > 0 {
		a.stepAccum += a.animSpeed
		for a.stepAccum >= 1.0 && !a.solver.Done() {
			a.stepAccum -= 1.0
			a.solver.Step()
		}
		if a.solver.Done() && a.solver.Found() {
			p, err := a.solver.Path()
			if err != nil {
				log.Printf("view: path rebuild failed: %v", err)
			}
			a.path = p
		}
	}
	return nil
}

// handleInput processes hotkeys (edge-triggered) and the camera.
func (a *App) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// Algorithm select: 1-4 restart the solve with the chosen variant.
	algoKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, k := range algoKeys {
		if pressed(k) {
			a.algorithm = maze.Algorithms()[i]
			a.restartSolve()
		}
	}

	// N: new maze, fresh seed. R: re-run the solve on the same maze.
	if pressed(ebiten.KeyN) {
		a.regenerate(a.seedRng.Int63())
	}
	if pressed(ebiten.KeyR) {
		a.restartSolve()
	}

	// Tab: cycle difficulty and regenerate at its preset size.
	if pressed(ebiten.KeyTab) {
		a.difficulty = a.difficulty.Next()
		a.regenerate(a.seedRng.Int63())
	}

	// P pauses/resumes, ,/. walk the speed table.
	if pressed(ebiten.KeyP) {
		if a.animSpeed > 0 {
			a.animSpeed = 0
		} else {
			a.animSpeed = 4
		}
	}
	if pressed(ebiten.KeyComma) {
		a.animSpeed = speedDown(a.animSpeed)
	}
	if pressed(ebiten.KeyPeriod) {
		a.animSpeed = speedUp(a.animSpeed)
	}

	// E: PNG snapshot of the current state. C: ASCII art to clipboard.
	if pressed(ebiten.KeyE) {
		a.exportPNG()
	}
	if pressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.maze.String()); err != nil {
			log.Printf("view: clipboard copy failed: %v", err)
			a.status = "copy failed"
		} else {
			a.status = "maze copied to clipboard"
		}
	}

	if pressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}

	// Camera pan: WASD or arrow keys.
	panSpeed := 6.0 / a.camZoom // pan slower when zoomed in
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.camX += panSpeed
	}

	// Camera zoom: mouse wheel or =/- keys.
	_, wy := ebiten.Wheel()
	if wy != 0 {
		a.camZoom *= math.Pow(1.12, wy)
	}
	if pressed(ebiten.KeyEqual) {
		a.camZoom *= 1.25
	}
	if pressed(ebiten.KeyMinus) {
		a.camZoom /= 1.25
	}
	a.camZoom = clampZoom(a.camZoom)

	worldW, worldH := a.worldSize()
	a.camX = clampCam(a.camX, float64(worldW), float64(a.viewW)/a.camZoom)
	a.camY = clampCam(a.camY, float64(worldH), float64(a.viewH)/a.camZoom)

	a.prevKeys = currentKeys
}

// exportPNG saves a snapshot of the maze with the current exploration
// overlay and path.
func (a *App) exportPNG() {
	name := fmt.Sprintf("maze_%s_seed%d_%d.png", a.algorithm, a.seed, time.Now().Unix())
	label := fmt.Sprintf("%s  visited=%d  path=%d", a.algorithm, a.solver.Steps(), len(a.path))
	if err := render.SavePNG(name, a.maze, a.solver.Trace(), a.path, label, render.DefaultStyle); err != nil {
		log.Printf("view: png export failed: %v", err)
		a.status = "export failed"
		return
	}
	a.status = "saved " + name
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

const (
	zoomMin = 0.25
	zoomMax = 8.0
)

// clampZoom bounds the camera zoom factor.
func clampZoom(z float64) float64 {
	if z < zoomMin {
		return zoomMin
	}
	if z > zoomMax {
		return zoomMax
	}
	return z
}

// clampCam keeps a camera centre coordinate inside the world. Worlds
// smaller than the viewport stay centred instead.
func clampCam(c, world, view float64) float64 {
	half := view / 2
	if world <= view {
		return world / 2
	}
	if c < half {
		return half
	}
	if c > world-half {
		return world - half
	}
	return c
}

// speedDown returns the next slower entry in the speed table.
func speedDown(s float64) float64 {
	for i, v := range animSpeeds {
		if v >= s && i > 0 {
			return animSpeeds[i-1]
		}
	}
	return s
}

// speedUp returns the next faster entry in the speed table.
func speedUp(s float64) float64 {
	for i := len(animSpeeds) - 1; i >= 0; i-- {
		if animSpeeds[i] <= s && i < len(animSpeeds)-1 {
			return animSpeeds[i+1]
		}
	}
	return s
}

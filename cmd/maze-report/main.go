package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Garsondee/Maze-Scope/internal/maze"
	"github.com/Garsondee/Maze-Scope/internal/render"
)

type algoResult struct {
	alg     maze.Algorithm
	visited int
	pathLen int
	elapsed time.Duration
}

type runStats struct {
	runIndex int
	seed     int64
	width    int
	height   int
	passages int
	perfect  bool
	results  []algoResult
}

func main() {
	var runs int
	var width int
	var height int
	var difficulty string
	var seedBase int64
	var seedStep int64
	var ascii bool
	var pngDir string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of generate+solve runs")
	flag.IntVar(&width, "width", 0, "maze width in cells (0 = difficulty preset)")
	flag.IntVar(&height, "height", 0, "maze height in cells (0 = difficulty preset)")
	flag.StringVar(&difficulty, "difficulty", "normal", "carve difficulty: easy, normal or hard")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&ascii, "ascii", false, "print each maze as ASCII art")
	flag.StringVar(&pngDir, "png-dir", "", "write per-algorithm PNG snapshots into this directory")
	flag.BoolVar(&verbose, "v", false, "print the per-step solve journal")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	d, err := maze.ParseDifficulty(difficulty)
	if err != nil {
		fmt.Printf("error: %v (supported: easy, normal, hard)\n", err)
		return
	}
	pw, ph := d.PresetSize()
	if width <= 0 {
		width = pw
	}
	if height <= 0 {
		height = ph
	}
	if pngDir != "" {
		if err := os.MkdirAll(pngDir, 0o755); err != nil {
			fmt.Printf("error: create %s: %v\n", pngDir, err)
			return
		}
	}

	fmt.Printf("=== Maze Solver Report ===\n")
	fmt.Printf("size=%dx%d difficulty=%s runs=%d seed_base=%d seed_step=%d\n\n",
		width, height, d, runs, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runOnce(i+1, seed, width, height, d, ascii, pngDir, verbose)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runOnce(runIndex int, seed int64, width, height int, d maze.Difficulty, ascii bool, pngDir string, verbose bool) (runStats, error) {
	m, err := maze.Generate(width, height, d, maze.WithSeed(seed))
	if err != nil {
		return runStats{}, err
	}
	if ascii {
		fmt.Print(m.String())
	}

	stats := runStats{
		runIndex: runIndex,
		seed:     seed,
		width:    width,
		height:   height,
		passages: m.Grid.PassageCount(),
		perfect:  m.IsPerfect(),
	}

	for _, alg := range maze.Algorithms() {
		s, err := maze.NewSolver(m, alg)
		if err != nil {
			return runStats{}, err
		}
		var journal *maze.Journal
		if verbose {
			journal = s.EnableJournal()
		}
		begin := time.Now()
		s.Run()
		elapsed := time.Since(begin)
		path, err := s.Path()
		if err != nil {
			return runStats{}, fmt.Errorf("%s on seed %d: %w", alg, seed, err)
		}
		stats.results = append(stats.results, algoResult{
			alg:     alg,
			visited: s.Steps(),
			pathLen: len(path),
			elapsed: elapsed,
		})

		if verbose {
			fmt.Printf("--- journal %s (run %d) ---\n%s", alg, runIndex, journal.Format())
		}
		if pngDir != "" {
			name := filepath.Join(pngDir, fmt.Sprintf("run%02d_%s.png", runIndex, alg))
			label := fmt.Sprintf("%s seed=%d visited=%d path=%d", alg, seed, s.Steps(), len(path))
			if err := render.SavePNG(name, m, s.Trace(), path, label, render.DefaultStyle); err != nil {
				return runStats{}, fmt.Errorf("save %s: %w", name, err)
			}
		}
	}
	return stats, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("maze: size=%dx%d passages=%d perfect=%v\n", rs.width, rs.height, rs.passages, rs.perfect)
	for _, r := range rs.results {
		fmt.Printf("  %-8s visited=%-5d path=%-4d time=%s\n", r.alg, r.visited, r.pathLen, r.elapsed)
	}
	short := shortestPath(rs.results)
	fmt.Printf("run_summary: shortest=%d optimal_agree=%v dfs_overhead=%d\n\n",
		short, optimalAgree(rs.results), dfsOverhead(rs.results))
}

func printAggregate(all []runStats) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))

	agreeRuns := 0
	totalOverhead := 0
	perAlgVisited := map[maze.Algorithm]int{}
	perAlgPath := map[maze.Algorithm]int{}
	for _, rs := range all {
		if optimalAgree(rs.results) {
			agreeRuns++
		}
		totalOverhead += dfsOverhead(rs.results)
		for _, r := range rs.results {
			perAlgVisited[r.alg] += r.visited
			perAlgPath[r.alg] += r.pathLen
		}
	}

	for _, alg := range maze.Algorithms() {
		fmt.Printf("avg_%s: visited=%.1f path=%.1f\n",
			alg, avg(perAlgVisited[alg], len(all)), avg(perAlgPath[alg], len(all)))
	}
	fmt.Printf("optimal_agree_runs=%d/%d avg_dfs_overhead=%.1f\n",
		agreeRuns, len(all), avg(totalOverhead, len(all)))
}

// shortestPath returns the minimum path length among the results.
func shortestPath(results []algoResult) int {
	short := 0
	for _, r := range results {
		if short == 0 || r.pathLen < short {
			short = r.pathLen
		}
	}
	return short
}

// optimalAgree reports whether every shortest-path variant (all but
// depth-first) produced the same path length.
func optimalAgree(results []algoResult) bool {
	want := 0
	for _, r := range results {
		if r.alg == maze.DFS {
			continue
		}
		if want == 0 {
			want = r.pathLen
			continue
		}
		if r.pathLen != want {
			return false
		}
	}
	return true
}

// dfsOverhead returns how many cells longer the depth-first path is
// than the shortest one, or 0 when depth-first was not run.
func dfsOverhead(results []algoResult) int {
	short := shortestPath(results)
	for _, r := range results {
		if r.alg == maze.DFS {
			return r.pathLen - short
		}
	}
	return 0
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

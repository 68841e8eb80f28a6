package maze

import (
	"math/rand"
	"time"
)

// Generation bounds. Below 2 per side a grid has no maze structure;
// above 200 rendering and animation stop being tractable.
const (
	MinDimension = 2
	MaxDimension = 200
)

// Option adjusts a single generation request.
type Option func(*genConfig)

type genConfig struct {
	seed        int64
	longestPath bool
}

// WithSeed fixes the generator's random seed. Equal dimensions,
// difficulty and seed produce identical mazes on every call.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) { cfg.seed = seed }
}

// WithLongestPath places start and end on a graph-diameter pair instead
// of opposite corners. Hard difficulty implies it.
func WithLongestPath() Option {
	return func(cfg *genConfig) { cfg.longestPath = true }
}

// Generate carves a perfect maze of the given size.
//
// The grid starts fully walled; a growing-tree walk then opens one wall
// at a time, always into an unvisited cell, so the passage graph is a
// spanning tree by construction. The difficulty's carve profile decides
// whether the walk extends the newest corridor or branches from a
// random active cell. Start and end default to opposite corners.
func Generate(width, height int, d Difficulty, opts ...Option) (*Maze, error) {
	if width < MinDimension || width > MaxDimension ||
		height < MinDimension || height > MaxDimension {
		return nil, &DimensionError{Width: width, Height: height}
	}

	cfg := genConfig{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&cfg)
	}
	prof := d.profile()

	rng := rand.New(rand.NewSource(cfg.seed)) // #nosec G404 -- reproducible mazes need a seeded generator
	g := NewGrid(width, height)
	carveTree(g, rng, prof)

	m := &Maze{
		Grid:  g,
		Start: Cell{Row: 0, Col: 0},
		End:   Cell{Row: height - 1, Col: width - 1},
	}
	if cfg.longestPath || prof.LongestPath {
		m.Start, m.End = diameterEndpoints(g)
	}
	return m, nil
}

// carveTree runs the growing-tree walk over a fully walled grid.
func carveTree(g *Grid, rng *rand.Rand, prof carveProfile) {
	total := g.width * g.height
	visited := make([]bool, total)
	entered := make([]Side, total) // direction each cell was carved into

	start := Cell{Row: rng.Intn(g.height), Col: rng.Intn(g.width)}
	active := []Cell{start}
	visited[g.index(start)] = true

	var sides [4]Side
	for len(active) > 0 {
		// Newest-first growth digs corridors; random picks fork them.
		pick := len(active) - 1
		if len(active) > 1 && rng.Float64() < prof.Branching {
			pick = rng.Intn(len(active))
		}
		cur := active[pick]

		n := 0
		for _, s := range sideOrder {
			if nb := cur.Step(s); g.InBounds(nb) && !visited[g.index(nb)] {
				sides[n] = s
				n++
			}
		}
		if n == 0 {
			// Retired cells leave in place so the newest stays last.
			active = append(active[:pick], active[pick+1:]...)
			continue
		}

		s := sides[rng.Intn(n)]
		if in := entered[g.index(cur)]; in != 0 && rng.Float64() < prof.Straightness {
			for i := 0; i < n; i++ {
				if sides[i] == in {
					s = in
					break
				}
			}
		}

		g.carve(cur, s)
		nb := cur.Step(s)
		visited[g.index(nb)] = true
		entered[g.index(nb)] = s
		active = append(active, nb)
	}
}

// diameterEndpoints finds two cells at maximal graph distance with a
// double breadth-first sweep: the farthest cell from any cell is one
// end of a diameter of a tree, and the farthest cell from that end is
// the other.
func diameterEndpoints(g *Grid) (start, end Cell) {
	a := farthestFrom(g, Cell{Row: 0, Col: 0})
	b := farthestFrom(g, a)
	return a, b
}

// farthestFrom returns the cell with maximal breadth-first distance
// from c, preferring the first one discovered on ties.
func farthestFrom(g *Grid, c Cell) Cell {
	dist := make([]int, g.width*g.height)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(c)] = 0
	queue := []Cell{c}
	far, farDist := c, 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[g.index(cur)]
		if d > farDist {
			far, farDist = cur, d
		}
		for _, s := range sideOrder {
			if !g.IsOpen(cur, s) {
				continue
			}
			nb := cur.Step(s)
			if dist[g.index(nb)] < 0 {
				dist[g.index(nb)] = d + 1
				queue = append(queue, nb)
			}
		}
	}
	return far
}

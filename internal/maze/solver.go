package maze

import (
	"fmt"
	"math"
	"strconv"
)

// Algorithm selects the pathfinding variant.
type Algorithm uint8

const (
	AStar    Algorithm = iota // distance + Manhattan estimate, optimal
	BFS                       // FIFO, shortest path on the uniform grid
	DFS                       // LIFO, deep first, no length guarantee
	Dijkstra                  // distance only, general relaxation
	algorithmCount            // sentinel
)

// Algorithms returns the supported variants in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, BFS, DFS, Dijkstra}
}

// ParseAlgorithm maps the string selectors "astar", "bfs", "dfs" and
// "dijkstra".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "astar":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	}
	return 0, &UnknownAlgorithmError{Name: s}
}

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	default:
		return "unknown"
	}
}

// newFrontier returns the container enforcing a's expansion order.
func (a Algorithm) newFrontier() frontier {
	switch a {
	case BFS:
		return &fifoFrontier{}
	case DFS:
		return &lifoFrontier{}
	default:
		return &heapFrontier{}
	}
}

// weighted reports whether a orders its frontier by path cost and
// relaxes already-discovered cells.
func (a Algorithm) weighted() bool {
	return a == AStar || a == Dijkstra
}

const unvisitedDist = int32(math.MaxInt32)

// Solver walks a maze one expansion at a time, keeping the frontier,
// visited set and parent links as explicit state so a caller can drive
// the run stepwise for animation, or let Run finish it in one call.
//
// Every variant shares the same loop: pop a cell in the algorithm's
// order, mark it expanded, record it in the trace, stop on the end
// cell, otherwise admit open-passage neighbors. Only the frontier
// ordering and the admission rule differ.
type Solver struct {
	maze *Maze
	alg  Algorithm

	frontier frontier
	seen     []bool  // discovered cells, breadth/depth variants
	expanded []bool  // popped cells, never expanded twice
	dist     []int32 // best known path cost, weighted variants
	parent   []int32 // row-major predecessor index, -1 when unset

	trace   []Cell
	last    Cell
	done    bool
	found   bool
	journal *Journal
}

// NewSolver prepares a stepwise run of a over m. The frontier starts
// holding only the start cell.
func NewSolver(m *Maze, a Algorithm) (*Solver, error) {
	if a >= algorithmCount {
		return nil, &UnknownAlgorithmError{Name: strconv.Itoa(int(a))}
	}
	g := m.Grid
	total := g.width * g.height
	s := &Solver{
		maze:     m,
		alg:      a,
		frontier: a.newFrontier(),
		expanded: make([]bool, total),
		parent:   make([]int32, total),
	}
	for i := range s.parent {
		s.parent[i] = -1
	}
	startIdx := int32(g.index(m.Start))
	if a.weighted() {
		s.dist = make([]int32, total)
		for i := range s.dist {
			s.dist[i] = unvisitedDist
		}
		s.dist[startIdx] = 0
		s.frontier.push(startIdx, s.priority(m.Start, 0))
	} else {
		s.seen = make([]bool, total)
		s.seen[startIdx] = true
		s.frontier.push(startIdx, 0)
	}
	return s, nil
}

// Step expands one cell and returns it along with whether the run is
// over. Once the run has ended it keeps returning the last expanded
// cell and true.
func (s *Solver) Step() (Cell, bool) {
	if s.done {
		return s.last, true
	}
	g := s.maze.Grid

	var cur int32
	for {
		c, ok := s.frontier.pop()
		if !ok {
			s.done = true
			s.logDone("frontier exhausted")
			return s.last, true
		}
		if s.expanded[c] {
			continue // stale entry superseded by a cheaper push
		}
		cur = c
		break
	}

	s.expanded[cur] = true
	cell := g.cellAt(int(cur))
	s.last = cell
	s.trace = append(s.trace, cell)
	s.logExpand(cell)

	if cell == s.maze.End {
		s.done = true
		s.found = true
		s.logDone("found")
		return cell, true
	}

	switch {
	case s.alg.weighted():
		nd := s.dist[cur] + 1
		for _, side := range sideOrder {
			if !g.IsOpen(cell, side) {
				continue
			}
			nb := g.index(cell.Step(side))
			if s.expanded[nb] || nd >= s.dist[nb] {
				continue
			}
			// A cheaper route: adopt the new parent and requeue. The
			// superseded entry stays queued and is skipped at pop.
			old := s.dist[nb]
			s.dist[nb] = nd
			s.parent[nb] = cur
			s.frontier.push(int32(nb), s.priority(g.cellAt(nb), nd))
			s.logRelax(g.cellAt(nb), old, nd)
		}
	case s.alg == DFS:
		// Push in reverse so the first side pops first from the stack.
		for i := len(sideOrder) - 1; i >= 0; i-- {
			if g.IsOpen(cell, sideOrder[i]) {
				s.admit(g.index(cell.Step(sideOrder[i])), cur)
			}
		}
	default: // BFS
		for _, side := range sideOrder {
			if g.IsOpen(cell, side) {
				s.admit(g.index(cell.Step(side)), cur)
			}
		}
	}
	return cell, false
}

// admit queues a neighbor the first time it is discovered.
func (s *Solver) admit(nb int, from int32) {
	if s.seen[nb] {
		return
	}
	s.seen[nb] = true
	s.parent[nb] = from
	s.frontier.push(int32(nb), 0)
}

// priority computes the frontier key for a cell reached at path cost d.
func (s *Solver) priority(c Cell, d int32) int32 {
	if s.alg == AStar {
		return d + int32(manhattan(c, s.maze.End))
	}
	return d
}

// manhattan is the grid-walk distance ignoring walls. It never
// overestimates the true remaining cost on a uniform grid, which keeps
// the weighted search optimal.
func manhattan(a, b Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Run drives Step until the run terminates.
func (s *Solver) Run() {
	for !s.done {
		s.Step()
	}
}

// Done reports whether the run has terminated.
func (s *Solver) Done() bool { return s.done }

// Found reports whether the end cell was reached.
func (s *Solver) Found() bool { return s.found }

// Steps returns the number of cells expanded so far.
func (s *Solver) Steps() int { return len(s.trace) }

// FrontierLen returns the number of queued entries, stale ones
// included.
func (s *Solver) FrontierLen() int { return s.frontier.len() }

// Algorithm returns the variant this solver runs.
func (s *Solver) Algorithm() Algorithm { return s.alg }

// Trace returns the exploration record: every expanded cell in
// expansion order. The slice is owned by the solver; callers must not
// modify it.
func (s *Solver) Trace() []Cell { return s.trace }

// Path rebuilds the start-to-end route from the parent links. It is
// available once a run has found the end; an unfinished or exhausted
// run returns ErrUnreachable.
func (s *Solver) Path() ([]Cell, error) {
	if !s.found {
		return nil, ErrUnreachable
	}
	g := s.maze.Grid
	var path []Cell
	for i := int32(g.index(s.maze.End)); i >= 0; i = s.parent[i] {
		path = append(path, g.cellAt(int(i)))
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// EnableJournal attaches a step journal to the solver and returns it.
// Must be called before the first Step; enabling twice returns the same
// journal.
func (s *Solver) EnableJournal() *Journal {
	if s.journal == nil {
		s.journal = NewJournal(s.alg)
	}
	return s.journal
}

func (s *Solver) logExpand(c Cell) {
	if s.journal == nil {
		return
	}
	s.journal.add(len(s.trace), "expand", c, s.frontier.len(), "")
}

func (s *Solver) logRelax(c Cell, old, nd int32) {
	if s.journal == nil {
		return
	}
	detail := fmt.Sprintf("cost %d", nd)
	if old != unvisitedDist {
		detail = fmt.Sprintf("cost %d -> %d", old, nd)
	}
	s.journal.add(len(s.trace), "relax", c, s.frontier.len(), detail)
}

func (s *Solver) logDone(outcome string) {
	if s.journal == nil {
		return
	}
	s.journal.add(len(s.trace), "done", s.last, s.frontier.len(), outcome)
}

// Solve runs a to completion over m, returning the exploration record
// and the start-to-end path.
func Solve(m *Maze, a Algorithm) (trace, path []Cell, err error) {
	s, err := NewSolver(m, a)
	if err != nil {
		return nil, nil, err
	}
	s.Run()
	path, err = s.Path()
	if err != nil {
		return nil, nil, err
	}
	return s.Trace(), path, nil
}

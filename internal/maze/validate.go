package maze

import "github.com/spakin/disjoint"

// IsPerfect reports whether the carved passages form a spanning tree:
// every cell reachable from every other, and no cycles. One union-find
// sweep over the passages checks both at once.
func (m *Maze) IsPerfect() bool {
	g := m.Grid
	if g == nil || g.width*g.height == 0 {
		return false
	}
	elems := make([]*disjoint.Element, g.width*g.height)
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for i, o := range g.open {
		cell := g.cellAt(i)
		for _, s := range [2]Side{SideRight, SideDown} {
			if o&s == 0 {
				continue
			}
			nb := g.index(cell.Step(s))
			if elems[i].Find() == elems[nb].Find() {
				return false // this passage closes a cycle
			}
			disjoint.Union(elems[i], elems[nb])
		}
	}
	root := elems[0].Find()
	for _, e := range elems[1:] {
		if e.Find() != root {
			return false // disconnected region
		}
	}
	return true
}

package systems

import (
	"container/heap"
	"math"

	"delve-server/internal/domain"
	"delve-server/internal/grid"
)

// Eight movement directions, cardinals first.
var directions = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

const diagonalCost = 1.414

type pathNode struct {
	pos    domain.Position
	g      float64
	f      float64
	parent *pathNode
	index  int
	seq    int
}

type pathHeap []*pathNode

func (h pathHeap) Len() int { return len(h) }

func (h pathHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	// Stable order among equal scores keeps paths reproducible.
	return h[i].seq < h[j].seq
}

func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x interface{}) {
	n := *h
	node := x.(*pathNode)
	node.index = len(n)
	*h = append(n, node)
}

func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

func octileDistance(a, b domain.Position) float64 {
	dx := float64(abs(a.X - b.X))
	dy := float64(abs(a.Y - b.Y))
	return dx + dy + (diagonalCost-2)*math.Min(dx, dy)
}

// NextStep runs A* from start to goal over walkable tiles, avoiding
// the blocked set, and returns the first step of the found path. The
// goal tile is exempt from the blocked check so an agent can path
// onto an occupied tile and resolve the collision as an attack. The
// second result is false when no path exists.
func NextStep(g *grid.Grid, start, goal domain.Position, blocked map[domain.Position]struct{}) (domain.Position, bool) {
	if start == goal {
		return start, false
	}

	open := &pathHeap{}
	heap.Init(open)
	seq := 0
	startNode := &pathNode{pos: start, f: octileDistance(start, goal)}
	heap.Push(open, startNode)

	best := map[domain.Position]float64{start: 0}
	closed := make(map[domain.Position]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.pos == goal {
			return firstStep(cur), true
		}
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		for _, d := range directions {
			next := cur.pos.Shift(d[0], d[1])
			if !g.IsWalkable(next) {
				continue
			}
			if _, isBlocked := blocked[next]; isBlocked && next != goal {
				continue
			}
			stepCost := 1.0
			if d[0] != 0 && d[1] != 0 {
				stepCost = diagonalCost
			}
			tentative := cur.g + stepCost
			if prev, seen := best[next]; seen && tentative >= prev {
				continue
			}
			best[next] = tentative
			seq++
			heap.Push(open, &pathNode{
				pos:    next,
				g:      tentative,
				f:      tentative + octileDistance(next, goal),
				parent: cur,
				seq:    seq,
			})
		}
	}
	return domain.Position{}, false
}

// firstStep walks the parent chain back to the node right after start.
func firstStep(goal *pathNode) domain.Position {
	cur := goal
	for cur.parent != nil && cur.parent.parent != nil {
		cur = cur.parent
	}
	return cur.pos
}

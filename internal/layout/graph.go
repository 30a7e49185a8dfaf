package layout

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/zyedidia/generic/mapset"
)

// DistanceMetric selects how room-center distances are measured.
type DistanceMetric string

const (
	Euclidean DistanceMetric = "euclidean"
	Manhattan DistanceMetric = "manhattan"
)

// Edge is a weighted connection between two rooms, by index into Graph.Nodes.
type Edge struct {
	From, To int
	Weight   float64
}

// Node is one room in the graph. Edges holds every edge touching the node.
type Node struct {
	Room  gamemap.Room
	Edges []*Edge
}

// Graph is the complete graph over room centers. Edges keeps insertion order,
// which is how equal weights are ordered.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
}

// BuildRoomGraph creates one node per room and one edge per unordered room pair.
func BuildRoomGraph(rooms []gamemap.Room, metric DistanceMetric) *Graph {
	g := &Graph{Nodes: make([]*Node, len(rooms))}
	for i, r := range rooms {
		g.Nodes[i] = &Node{Room: r}
	}

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			e := &Edge{From: i, To: j, Weight: distance(rooms[i], rooms[j], metric)}
			g.Edges = append(g.Edges, e)
			g.Nodes[i].Edges = append(g.Nodes[i].Edges, e)
			g.Nodes[j].Edges = append(g.Nodes[j].Edges, e)
		}
	}
	return g
}

func distance(a, b gamemap.Room, metric DistanceMetric) float64 {
	ca, cb := a.Center(), b.Center()
	var d float64
	if metric == Manhattan {
		d = float64(ca.Manhattan(cb))
	} else {
		d = ca.Euclidean(cb)
	}
	// Non-overlapping rooms can still share a center row/column but never a center.
	if d <= 0 {
		d = 1
	}
	return d
}

// GenerateMST returns the edges of a minimum spanning tree using Prim's algorithm,
// grown from node 0. The result has len(Nodes)-1 edges for a non-empty graph.
func GenerateMST(g *Graph) []*Edge {
	if len(g.Nodes) < 2 {
		return nil
	}

	inTree := mapset.New[int]()
	inTree.Put(0)
	tree := make([]*Edge, 0, len(g.Nodes)-1)

	for inTree.Size() < len(g.Nodes) {
		var best *Edge
		for _, e := range g.Edges {
			if inTree.Has(e.From) == inTree.Has(e.To) {
				continue // both inside or both outside the tree
			}
			if best == nil || e.Weight < best.Weight {
				best = e
			}
		}
		if best == nil {
			break // disconnected graph; cannot happen for a complete graph
		}
		tree = append(tree, best)
		inTree.Put(best.From)
		inTree.Put(best.To)
	}

	return tree
}

package geom

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// ESMT is a computed Euclidean Steiner minimal tree. It exclusively owns its
// slices.
type ESMT struct {
	// Length is the total tree length reported by the native routine.
	Length float64

	// SteinerPoints are the junction points added by the algorithm, in the
	// order the routine returned them.
	SteinerPoints []Point

	// Edges connect the concatenated node set; see the package documentation
	// for the index ordering.
	Edges []Edge
}

var errNotSpanning = errors.New("geom: not a spanning tree")

// NodeCount returns the size of the node set for a tree computed over nterms
// terminals.
func (t ESMT) NodeCount(nterms int) int {
	return nterms + len(t.SteinerPoints)
}

// Nodes returns a freshly allocated slice holding terms followed by the
// Steiner points, matching the index space used by Edges.
func (t ESMT) Nodes(terms []Point) []Point {
	nodes := make([]Point, 0, len(terms)+len(t.SteinerPoints))
	nodes = append(nodes, terms...)
	return append(nodes, t.SteinerPoints...)
}

// EdgeLengthSum recomputes the tree length from the edge geometry. For a
// correct tree it agrees with Length up to floating point error.
func (t ESMT) EdgeLengthSum(terms []Point) (float64, error) {
	nodes := t.Nodes(terms)
	var sum float64
	for i, e := range t.Edges {
		if e.A < 0 || e.A >= len(nodes) || e.B < 0 || e.B >= len(nodes) {
			return 0, fmt.Errorf("geom: edge %d (%s) out of range [0,%d)", i, e, len(nodes))
		}
		sum += nodes[e.A].Distance(nodes[e.B])
	}
	return sum, nil
}

// CheckSpanningTree verifies that Edges form a spanning tree over the
// NodeCount(nterms) nodes: exactly n-1 edges, no self loops or repeated
// edges, and every node reachable from node 0. Trees with fewer than two
// nodes must have no edges.
func (t ESMT) CheckSpanningTree(nterms int) error {
	n := t.NodeCount(nterms)
	if n < 2 {
		if len(t.Edges) != 0 {
			return fmt.Errorf("%w: %d edges over %d nodes", errNotSpanning, len(t.Edges), n)
		}
		return nil
	}
	if len(t.Edges) != n-1 {
		return fmt.Errorf("%w: %d edges over %d nodes, want %d", errNotSpanning, len(t.Edges), n, n-1)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return fmt.Errorf("%w: node %d: %v", errNotSpanning, i, err)
		}
	}
	for i, e := range t.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("%w: edge %d (%s) out of range [0,%d)", errNotSpanning, i, e, n)
		}
		if _, err := g.AddEdge(strconv.Itoa(e.A), strconv.Itoa(e.B), 0); err != nil {
			return fmt.Errorf("%w: edge %d (%s): %v", errNotSpanning, i, e, err)
		}
	}

	res, err := bfs.BFS(g, "0")
	if err != nil {
		return fmt.Errorf("%w: %v", errNotSpanning, err)
	}
	// n-1 edges reaching all n nodes leave no room for a cycle.
	if len(res.Order) != n {
		return fmt.Errorf("%w: %d of %d nodes reachable", errNotSpanning, len(res.Order), n)
	}
	return nil
}

// Clone returns a deep copy of the tree.
func (t ESMT) Clone() ESMT {
	out := ESMT{Length: t.Length}
	if t.SteinerPoints != nil {
		out.SteinerPoints = append(make([]Point, 0, len(t.SteinerPoints)), t.SteinerPoints...)
	}
	if t.Edges != nil {
		out.Edges = append(make([]Edge, 0, len(t.Edges)), t.Edges...)
	}
	return out
}

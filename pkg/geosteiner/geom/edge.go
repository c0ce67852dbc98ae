package geom

import "fmt"

// Edge is an unordered pair of node indices.
//
// NewEdge does not validate the indices; range and self-loop checks belong to
// the code that knows the node count of the tree.
type Edge struct {
	A, B int
}

// NewEdge creates an Edge between nodes a and b.
func NewEdge(a, b int) Edge {
	return Edge{A: a, B: b}
}

// Other returns the endpoint opposite to i, or -1 if i is not an endpoint.
func (e Edge) Other(i int) int {
	switch i {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// Equal reports whether two edges join the same pair of nodes, regardless of
// orientation.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Package geom defines the plain value types exchanged with the GeoSteiner
// bindings: 2D points, edges between node indices, and the owned Euclidean
// Steiner minimal tree returned by a computation.
//
// # Node Ordering
//
// Edge indices refer to the concatenated node set of a computation:
// terminals first, in the order they were passed in, followed by the Steiner
// points in the order reported by the native routine.
//
//	terms := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}
//	tree, err := session.Compute(ctx, terms)
//	if err != nil {
//	    return err
//	}
//	nodes := tree.Nodes(terms) // len(terms) + len(tree.SteinerPoints)
//
// # Ownership
//
// Every slice held by an ESMT is allocated by the Go side. No value in this
// package references memory owned by the native library.
package geom

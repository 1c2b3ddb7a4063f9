package slgraph

import "fmt"

// Copy rebuilds dst from scratch as a densely packed copy of src
// (spec.md §4.6). dst must be an empty (Nodes()==0, Edges()==0), writable
// graph of the same Version as src - Copy's purpose is file-size
// reduction (discarding wasted gaps left by capacity-doubling events in
// src's heap), not format conversion.
//
// Copy visits nodes in ascending id order; for each node i it enumerates
// i's adjacency in the same front-to-back (LIFO) order
// Neighbour/OutNeighbour would, and appends each edge to dst in that
// order. Because AddEdge/AddDirectedEdge both prepend, every list in dst
// holds its edges in the reverse of the order Copy appended them: a v2
// node's out-list is the reverse of its out-list in src, while v2
// in-lists and v1 adjacency lists follow Copy's visiting order and in
// general match neither src's order nor its reverse. v1 graphs add an edge {i,j} only once, when the opposite
// endpoint j >= i (spec.md §9's fix for the source's implicit
// double-counting), so self-loops (i == j) and each undirected edge are
// copied exactly once.
func Copy(dst, src *Graph) error {
	if dst.readOnly {
		return ErrReadOnly
	}

	if dst.version != src.version {
		return fmt.Errorf("%w: copy requires matching graph versions", ErrFormat)
	}

	if dst.Nodes() != 0 || dst.Edges() != 0 {
		return fmt.Errorf("%w: copy destination must be empty", ErrFormat)
	}

	n := src.Nodes()
	if err := dst.NodelistExpand(n); err != nil {
		return err
	}

	for i := uint64(0); i < n; i++ {
		if _, err := dst.AddNode(); err != nil {
			return err
		}
	}

	if src.version == VersionDirected {
		return copyDirected(dst, src, n)
	}

	return copyUndirected(dst, src, n)
}

func copyDirected(dst, src *Graph, n uint64) error {
	for i := uint64(0); i < n; i++ {
		degree := src.OutDegree(i)
		for step := uint64(0); step < degree; step++ {
			j := src.OutNeighbour(i, step)
			if j == InvalidNode {
				return fmt.Errorf("%w: inconsistent out-list for node %d", ErrFormat, i)
			}

			if _, err := dst.AddDirectedEdge(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyUndirected(dst, src *Graph, n uint64) error {
	for i := uint64(0); i < n; i++ {
		degree := src.Degree(i)
		for step := uint64(0); step < degree; step++ {
			j := src.Neighbour(i, step)
			if j == InvalidNode {
				return fmt.Errorf("%w: inconsistent adjacency for node %d", ErrFormat, i)
			}

			if j < i {
				continue
			}

			if _, err := dst.AddEdge(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

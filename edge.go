package slgraph

import "fmt"

func (g *Graph) edgeRecord(off uint64) []byte {
	return g.data[off : off+edgeRecordSize]
}

func (g *Graph) checkNode(id uint64) error {
	if id >= g.nodeCount() {
		return fmt.Errorf("%w: node %d", ErrOutOfRange, id)
	}

	return nil
}

// AddEdge adds an undirected edge between n0 and n1 to a v1 graph
// (spec.md §4.5). On a v2 graph this is defined as two AddDirectedEdge
// calls, n0->n1 and n1->n0 (spec.md §4.3) - callers needing the v1
// edge-id convention must use a v1 graph.
func (g *Graph) AddEdge(n0, n1 uint64) (uint64, error) {
	if g.readOnly {
		return InvalidEdge, ErrReadOnly
	}

	if g.version == VersionDirected {
		if _, err := g.AddDirectedEdge(n0, n1); err != nil {
			return InvalidEdge, err
		}

		return g.AddDirectedEdge(n1, n0)
	}

	if err := g.checkNode(n0); err != nil {
		return InvalidEdge, err
	}
	if err := g.checkNode(n1); err != nil {
		return InvalidEdge, err
	}

	off, allocErr := g.allocate(edgeRecordSize)
	if allocErr != nil {
		return InvalidEdge, allocErr
	}

	head0 := g.v1ListHead(n0)
	head1 := g.v1ListHead(n1)

	rec := g.edgeRecord(off)
	write48(rec, edgeV1AOff, n0)
	write48(rec, edgeV1BOff, n1)
	write64(rec, edgeV1NextAOff, head0)
	write64(rec, edgeV1NextBOff, head1)

	g.v1SetListHead(n0, off)
	g.v1SetListHead(n1, off)

	// spec.md §8 item 3 leaves the self-loop multiplicity convention to
	// the implementer as long as it is applied consistently: a self-loop
	// occupies a single list position (one physical edge record, entered
	// once), so it contributes 1 to degree, not 2.
	g.v1SetDegree(n0, g.v1Degree(n0)+1)
	if n1 != n0 {
		g.v1SetDegree(n1, g.v1Degree(n1)+1)
	}

	g.setEdgeCount(g.edgeCount() + 1)
	return off, nil
}

// AddDirectedEdge adds a directed edge src->dst to a v2 graph (spec.md
// §4.5). Fails with ErrWrongVersion on a v1 graph.
func (g *Graph) AddDirectedEdge(src, dst uint64) (uint64, error) {
	if g.readOnly {
		return InvalidEdge, ErrReadOnly
	}

	if g.version != VersionDirected {
		return InvalidEdge, ErrWrongVersion
	}

	if err := g.checkNode(src); err != nil {
		return InvalidEdge, err
	}
	if err := g.checkNode(dst); err != nil {
		return InvalidEdge, err
	}

	off, allocErr := g.allocate(edgeRecordSize)
	if allocErr != nil {
		return InvalidEdge, allocErr
	}

	outHead := g.v2OutHead(src)
	inHead := g.v2InHead(dst)

	rec := g.edgeRecord(off)
	write48(rec, edgeV2SrcOff, src)
	write48(rec, edgeV2DstOff, dst)
	write64(rec, edgeV2NextOutOff, outHead)
	write64(rec, edgeV2NextInOff, inHead)

	g.v2SetOutHead(src, off)
	g.v2SetInHead(dst, off)

	g.setEdgeCount(g.edgeCount() + 1)
	return off, nil
}

// Degree returns the number of edges incident to node n in a v1 graph.
func (g *Graph) Degree(n uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionUndirected {
		return 0
	}

	return g.v1Degree(n)
}

// v1Walk walks node n's adjacency list i steps, returning the edge
// offset at that position and the opposite endpoint, or
// (InvalidEdge, InvalidNode) if the list is shorter than i+1.
func (g *Graph) v1Walk(n uint64, i uint64) (edgeOff uint64, other uint64) {
	cur := g.v1ListHead(n)

	for step := uint64(0); cur != none64; step++ {
		rec := g.edgeRecord(cur)
		a := read48(rec, edgeV1AOff)
		b := read48(rec, edgeV1BOff)

		var next uint64
		var opposite uint64
		if a == n {
			next = read64(rec, edgeV1NextAOff)
			opposite = b
		} else {
			next = read64(rec, edgeV1NextBOff)
			opposite = a
		}

		if step == i {
			return cur, opposite
		}

		cur = next
	}

	return InvalidEdge, InvalidNode
}

// Neighbour returns the i-th neighbour of n in a v1 graph, in LIFO
// (most-recently-added-first) order, or InvalidNode if i >= Degree(n).
func (g *Graph) Neighbour(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionUndirected {
		return InvalidNode
	}

	_, other := g.v1Walk(n, i)
	return other
}

// Incident returns the id of the i-th edge incident to n in a v1 graph,
// in LIFO order, or InvalidEdge if i >= Degree(n).
func (g *Graph) Incident(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionUndirected {
		return InvalidEdge
	}

	off, _ := g.v1Walk(n, i)
	return off
}

// OutDegree returns the number of edges whose source is n in a v2 graph.
func (g *Graph) OutDegree(n uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return 0
	}

	return g.countList(g.v2OutHead(n), true)
}

// InDegree returns the number of edges whose destination is n in a v2
// graph.
func (g *Graph) InDegree(n uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return 0
	}

	return g.countList(g.v2InHead(n), false)
}

func (g *Graph) countList(head uint64, outList bool) uint64 {
	var count uint64

	for cur := head; cur != none64; count++ {
		rec := g.edgeRecord(cur)
		if outList {
			cur = read64(rec, edgeV2NextOutOff)
		} else {
			cur = read64(rec, edgeV2NextInOff)
		}
	}

	return count
}

// OutNeighbour returns the destination of the i-th edge in n's out-list
// (LIFO order), or InvalidNode if i >= OutDegree(n).
func (g *Graph) OutNeighbour(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return InvalidNode
	}

	cur := g.v2OutHead(n)
	for step := uint64(0); cur != none64; step++ {
		rec := g.edgeRecord(cur)
		if step == i {
			return read48(rec, edgeV2DstOff)
		}
		cur = read64(rec, edgeV2NextOutOff)
	}

	return InvalidNode
}

// InNeighbour returns the source of the i-th edge in n's in-list (LIFO
// order), or InvalidNode if i >= InDegree(n).
func (g *Graph) InNeighbour(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return InvalidNode
	}

	cur := g.v2InHead(n)
	for step := uint64(0); cur != none64; step++ {
		rec := g.edgeRecord(cur)
		if step == i {
			return read48(rec, edgeV2SrcOff)
		}
		cur = read64(rec, edgeV2NextInOff)
	}

	return InvalidNode
}

// OutIncident returns the id of the i-th edge in n's out-list, or
// InvalidEdge if i >= OutDegree(n).
func (g *Graph) OutIncident(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return InvalidEdge
	}

	cur := g.v2OutHead(n)
	for step := uint64(0); cur != none64; step++ {
		if step == i {
			return cur
		}
		cur = read64(g.edgeRecord(cur), edgeV2NextOutOff)
	}

	return InvalidEdge
}

// InIncident returns the id of the i-th edge in n's in-list, or
// InvalidEdge if i >= InDegree(n).
func (g *Graph) InIncident(n uint64, i uint64) uint64 {
	if n >= g.nodeCount() || g.version != VersionDirected {
		return InvalidEdge
	}

	cur := g.v2InHead(n)
	for step := uint64(0); cur != none64; step++ {
		if step == i {
			return cur
		}
		cur = read64(g.edgeRecord(cur), edgeV2NextInOff)
	}

	return InvalidEdge
}

// EdgeEnds decodes the two endpoints of edge e: (A, B) for v1, (src, dst)
// for v2.
func (g *Graph) EdgeEnds(e uint64) (n0, n1 uint64) {
	if e == InvalidEdge || e+edgeRecordSize > uint64(len(g.data)) {
		return InvalidNode, InvalidNode
	}

	rec := g.edgeRecord(e)
	if g.version == VersionDirected {
		return read48(rec, edgeV2SrcOff), read48(rec, edgeV2DstOff)
	}

	return read48(rec, edgeV1AOff), read48(rec, edgeV1BOff)
}

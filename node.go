package slgraph

// nodeEntryOffset returns the byte offset of node id's table slot.
// Constant-time: base + node-table-start + id * stride (spec.md §4.4).
func (g *Graph) nodeEntryOffset(id uint64) uint64 {
	return g.nodeTableOffset() + id*uint64(nodeEntryStride(g.version))
}

// NodelistExpand reserves space for up to n total nodes. If the current
// capacity is already >= n this is a no-op. Otherwise a new, contiguous
// region of n slots is allocated at the current free watermark, the
// existing nodes are block-copied into it, and the header's node-table
// offset/capacity are updated. O(nodes) - spec.md §4.4.
func (g *Graph) NodelistExpand(n uint64) error {
	if g.readOnly {
		return ErrReadOnly
	}

	if g.nodeCapacity() >= n {
		return nil
	}

	stride := uint64(nodeEntryStride(g.version))
	nodes := g.nodeCount()
	oldOffset := g.nodeTableOffset()

	newOffset, allocErr := g.allocate(int(n * stride))
	if allocErr != nil {
		return allocErr
	}

	// allocate may have remapped g.data (growTo -> extend); oldOffset and
	// newOffset are plain byte offsets and remain valid, but we must
	// re-read into the (possibly new) g.data slice.
	copy(g.data[newOffset:newOffset+nodes*stride], g.data[oldOffset:oldOffset+nodes*stride])

	g.setNodeTableOffset(newOffset)
	g.setNodeCapacity(n)
	return nil
}

// AddNode appends a new node to the graph, doubling the node table
// capacity first if it is full, and returns the new node's id (the
// pre-increment node count). Returns InvalidNode if the underlying
// allocation fails.
func (g *Graph) AddNode() (uint64, error) {
	if g.readOnly {
		return InvalidNode, ErrReadOnly
	}

	nodes := g.nodeCount()
	if nodes == g.nodeCapacity() {
		newCap := g.nodeCapacity() * 2
		if newCap == 0 {
			newCap = initialNodeCapacity
		}

		if err := g.NodelistExpand(newCap); err != nil {
			return InvalidNode, err
		}
	}

	id := nodes
	off := g.nodeEntryOffset(id)
	g.zeroNodeEntry(off)
	g.setNodeCount(id + 1)

	return id, nil
}

// zeroNodeEntry initializes a freshly appended node slot: list head(s)
// set to the none-sentinel, degree(s) zeroed.
func (g *Graph) zeroNodeEntry(off uint64) {
	entry := g.data[off : off+uint64(nodeEntryStride(g.version))]

	if g.version == VersionDirected {
		write64(entry, nodeV2OutHeadOff, none64)
		write64(entry, nodeV2InHeadOff, none64)
		write48(entry, nodeV2ReservedOff, 0)
		return
	}

	write64(entry, nodeV1HeadOff, none64)
	write48(entry, nodeV1DegreeOff, 0)
}

func (g *Graph) nodeEntry(id uint64) []byte {
	off := g.nodeEntryOffset(id)
	stride := uint64(nodeEntryStride(g.version))
	return g.data[off : off+stride]
}

// v1 accessors

func (g *Graph) v1ListHead(id uint64) uint64 { return read64(g.nodeEntry(id), nodeV1HeadOff) }
func (g *Graph) v1SetListHead(id uint64, off uint64) {
	write64(g.nodeEntry(id), nodeV1HeadOff, off)
}

func (g *Graph) v1Degree(id uint64) uint64 { return read48(g.nodeEntry(id), nodeV1DegreeOff) }
func (g *Graph) v1SetDegree(id uint64, d uint64) {
	write48(g.nodeEntry(id), nodeV1DegreeOff, d)
}

// v2 accessors

func (g *Graph) v2OutHead(id uint64) uint64 { return read64(g.nodeEntry(id), nodeV2OutHeadOff) }
func (g *Graph) v2SetOutHead(id uint64, off uint64) {
	write64(g.nodeEntry(id), nodeV2OutHeadOff, off)
}

func (g *Graph) v2InHead(id uint64) uint64 { return read64(g.nodeEntry(id), nodeV2InHeadOff) }
func (g *Graph) v2SetInHead(id uint64, off uint64) {
	write64(g.nodeEntry(id), nodeV2InHeadOff, off)
}

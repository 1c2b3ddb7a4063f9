package slgraph

import (
	"fmt"
	"os"
)

// New creates a fresh, empty directed (v2) graph backed by an anonymous
// temporary file (spec.md §3 "Lifecycle"). The file is removed from the
// directory entry immediately after creation - the mapping keeps it
// alive for the life of the Graph, the same pattern the teacher's
// Mari.Open/initializeFile establishes for a brand-new backing file,
// adapted here to an unnamed file since slgraph.New has no caller-given
// path (contrast with Open, spec.md §4.2).
func New() (*Graph, error) {
	f, err := os.CreateTemp("", "slgraph-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp file: %v", ErrIO, err)
	}

	if rmErr := os.Remove(f.Name()); rmErr != nil {
		f.Close()
		return nil, fmt.Errorf("%w: unlink temp file: %v", ErrIO, rmErr)
	}

	g := &Graph{file: f}
	if err := g.initializeFresh(VersionDirected); err != nil {
		f.Close()
		return nil, err
	}

	return g, nil
}

// Open opens the file at path as a Graph. If the file is empty or did not
// exist and the graph is writable, it is initialized as New does (using
// opts.Version); otherwise the existing header is read and validated.
func Open(opts Options) (*Graph, error) {
	flag := os.O_RDONLY
	if !opts.ReadOnly {
		flag = os.O_RDWR | os.O_CREATE
	}

	f, err := os.OpenFile(opts.Path, flag, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, opts.Path, err)
	}

	g := &Graph{file: f, readOnly: opts.ReadOnly, path: opts.Path}

	fi, statErr := f.Stat()
	if statErr != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIO, opts.Path, statErr)
	}

	if fi.Size() == 0 {
		if opts.ReadOnly {
			f.Close()
			return nil, fmt.Errorf("%w: empty file opened read-only", ErrFormat)
		}

		version := opts.Version
		if version == 0 {
			version = VersionDirected
		}

		if err := g.initializeFresh(version); err != nil {
			f.Close()
			return nil, err
		}

		return g, nil
	}

	prot := RDONLY
	if !opts.ReadOnly {
		prot = RDWR
	}

	data, mapErr := Map(f, prot, 0)
	if mapErr != nil {
		f.Close()
		return nil, mapErr
	}

	g.data = data
	if err := g.validateMagic(); err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}

	g.version = Version(g.data[headerVersionOffset])
	return g, nil
}

// initializeFresh maps a brand-new, empty header + node table into g and
// writes the initial header for the given version.
func (g *Graph) initializeFresh(version Version) error {
	size := initialFileSize
	minSize := headerSize + initialNodeCapacity*nodeEntryStride(version)
	for size < minSize {
		size *= 2
	}

	if err := g.file.Truncate(int64(size)); err != nil {
		return fmt.Errorf("%w: truncate: %v", ErrIO, err)
	}

	data, mapErr := Map(g.file, RDWR, 0)
	if mapErr != nil {
		return mapErr
	}

	g.data = data
	g.initHeader(version)
	return nil
}

// Close flushes the mapping, unmaps it, and closes the file descriptor.
// Calling Close a second time is a no-op.
func (g *Graph) Close() error {
	if g.file == nil {
		return nil
	}

	if !g.readOnly && len(g.data) > 0 {
		if err := g.data.Flush(); err != nil {
			return err
		}
	}

	if err := g.data.Unmap(); err != nil {
		return err
	}

	g.data = nil

	err := g.file.Close()
	g.file = nil
	if err != nil {
		return fmt.Errorf("%w: close: %v", ErrIO, err)
	}

	return nil
}

// FileSize reports the current size, in bytes, of the backing file.
func (g *Graph) FileSize() (int64, error) {
	fi, err := g.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: stat: %v", ErrIO, err)
	}

	return fi.Size(), nil
}

// Nodes returns the number of nodes currently in the graph.
func (g *Graph) Nodes() uint64 { return g.nodeCount() }

// Edges returns the number of edges currently in the graph.
func (g *Graph) Edges() uint64 { return g.edgeCount() }

// Version reports whether the graph is undirected (v1) or directed (v2).
func (g *Graph) Version() Version { return g.version }

// extend grows the backing file to newSize and remaps it, invalidating
// every previously computed pointer into g.data - callers must
// recompute offsets from g.data after calling this (spec.md §4.2,
// §9 "Remap invalidation").
func (g *Graph) extend(newSize int) error {
	if g.readOnly {
		return ErrReadOnly
	}

	if len(g.data) > 0 {
		if err := g.data.Flush(); err != nil {
			return err
		}

		if err := g.data.Unmap(); err != nil {
			return err
		}
	}

	if err := g.file.Truncate(int64(newSize)); err != nil {
		return fmt.Errorf("%w: truncate: %v", ErrAllocationFailure, err)
	}

	data, mapErr := Map(g.file, RDWR, 0)
	if mapErr != nil {
		return fmt.Errorf("%w: remap: %v", ErrAllocationFailure, mapErr)
	}

	g.data = data
	return nil
}

// growTo ensures the mapping is at least minSize bytes, doubling the
// mapped size until maxDoublingSize and growing additively thereafter
// (mirrors the teacher's resizeMmap cutover in IOUtils.go).
func (g *Graph) growTo(minSize int) error {
	if minSize <= len(g.data) {
		return nil
	}

	size := len(g.data)
	if size == 0 {
		size = initialFileSize
	}

	for size < minSize {
		if size >= maxDoublingSize {
			size += maxDoublingSize
		} else {
			size *= 2
		}
	}

	return g.extend(size)
}

// allocate reserves bytes at the current free watermark, growing the
// file first if necessary, and advances the watermark. It returns the
// byte offset of the reserved region.
func (g *Graph) allocate(bytes int) (uint64, error) {
	if g.readOnly {
		return 0, ErrReadOnly
	}

	free := g.freeWatermark()
	end := free + uint64(bytes)

	if end > uint64(len(g.data)) {
		if err := g.growTo(int(end)); err != nil {
			return 0, err
		}
	}

	g.setFreeWatermark(end)
	return free, nil
}

package slgraph

import "errors"

// Sentinel errors for slgraph operations. Callers should branch on these
// with errors.Is; the concrete error returned from a failing call is
// usually wrapped with call-site context via %w.
var (
	// ErrIO indicates that creating, opening, mapping, or closing the
	// backing file failed at the operating-system level.
	ErrIO = errors.New("slgraph: i/o error")

	// ErrFormat indicates a malformed file: bad magic, or a header whose
	// declared free watermark, node count, or capacity is inconsistent
	// with the mapped file size. Copy also returns it when source and
	// destination differ in version, when the destination is not empty,
	// or when a source adjacency list is shorter than its degree.
	ErrFormat = errors.New("slgraph: malformed file")

	// ErrReadOnly indicates a mutating call was made on a graph opened
	// read-only.
	ErrReadOnly = errors.New("slgraph: graph is read-only")

	// ErrOutOfRange indicates a node or edge id beyond the graph's
	// current counts was passed to a mutator. Queries do not return this
	// error; they report the invalid sentinel instead (spec.md §7).
	ErrOutOfRange = errors.New("slgraph: id out of range")

	// ErrAllocationFailure indicates the heap could not be extended to
	// satisfy an allocation (file truncate or remap failed mid-mutation).
	ErrAllocationFailure = errors.New("slgraph: allocation failed")

	// ErrWrongVersion indicates a directed-only or undirected-only
	// operation was invoked on a graph of the other version.
	ErrWrongVersion = errors.New("slgraph: operation not supported by this graph version")
)

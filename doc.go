// Package slgraph implements a file-backed graph storage engine.
//
// A graph is persisted in a single memory-mapped file using a compact,
// little-endian binary layout: a fixed header, a contiguous node table,
// and a heap of edge records threaded into per-node adjacency lists via
// intrusive next-offset links. Version 1 files store undirected graphs
// (one adjacency list per node); version 2 files store directed graphs
// (separate out- and in-adjacency lists per node).
//
// Queries (Degree, Neighbour, Incident, EdgeEnds and their directed
// counterparts) chase offsets directly through the mapping. Mutations
// (AddNode, AddEdge, AddDirectedEdge) bump-allocate from a free-space
// watermark at the end of the mapping, extending the backing file when
// necessary, and prepend the new record to the relevant list(s).
//
// A Graph is not safe for concurrent use. See errors.go for the errors
// its operations return.
package slgraph

package slgraph

import "os"

// MMap is the byte-slice view of the memory mapped backing file.
type MMap []byte

// Version distinguishes the on-disk node entry and edge record layouts.
type Version uint8

const (
	// VersionUndirected (v1): one adjacency list per node.
	VersionUndirected Version = 1
	// VersionDirected (v2): separate out- and in-adjacency lists per node.
	VersionDirected Version = 2
)

// Options configures Open.
type Options struct {
	// Path is the backing file. If it does not exist (or is empty) it is
	// created and initialized as an empty graph of Version.
	Path string
	// ReadOnly maps the file read-only; mutating calls fail with
	// ErrReadOnly.
	ReadOnly bool
	// Version selects the on-disk layout for a freshly initialized file.
	// Ignored when opening an existing, non-empty file - the version is
	// read from its header.
	Version Version
}

const (
	magic uint32 = 0x53_4c_47_31 // "SLG1"

	// Header field offsets and widths (spec.md §6).
	headerMagicOffset      = 0
	headerVersionOffset    = 4
	headerNodeCountOffset  = 5
	headerEdgeCountOffset  = 11
	headerCapacityOffset   = 17
	headerFreeOffset       = 23
	headerNodeTableOffset  = 31
	headerSize             = 39

	// Node entry strides. The v1 list-head offset is widened from the
	// 6-byte field the original C source used to 8 bytes, uniform with
	// v2's out/in head offsets - see SPEC_FULL.md §4.1 and DESIGN.md.
	nodeEntryV1Stride = 14 // 8B head offset + 6B degree
	nodeEntryV2Stride = 22 // 8B out head + 8B in head + 6B reserved

	nodeV1HeadOff   = 0
	nodeV1DegreeOff = 8

	nodeV2OutHeadOff  = 0
	nodeV2InHeadOff   = 8
	nodeV2ReservedOff = 16

	// Edge records are 28 bytes in both versions: two 48-bit node-id
	// fields followed by two 8-byte next-link offset fields. Per
	// SPEC_FULL.md §4.1, every offset-valued field (list heads,
	// next-links, free watermark, node-table start) is 8 bytes; only
	// counters and node/edge ids stay 48-bit.
	edgeRecordSize = 28

	edgeV1AOff     = 0
	edgeV1BOff     = 6
	edgeV1NextAOff = 12
	edgeV1NextBOff = 20

	edgeV2SrcOff     = 0
	edgeV2DstOff     = 6
	edgeV2NextOutOff = 12
	edgeV2NextInOff  = 20

	// none64 is the all-ones sentinel used for every offset-valued field
	// (list heads, next-links, free watermark, node-table start - all 8
	// bytes per SPEC_FULL.md §4.1) and for the counter/node-id sentinels
	// derived from it below (spec.md §3 "None-sentinel"). Node/edge id
	// fields stay 48-bit, but no 48-bit field is ever used to store an
	// end-of-list marker, so there is only one sentinel width to test
	// against in a traversal loop.
	none64 uint64 = (1 << 64) - 1

	// InvalidNode / InvalidEdge are the sentinels returned by queries
	// when there is no such node/edge (spec.md §6/§7).
	InvalidNode uint64 = none64
	InvalidEdge uint64 = none64

	// initialNodeCapacity is the number of node slots reserved in a
	// freshly initialized file.
	initialNodeCapacity = 4

	// initialFileSize is the size of a freshly initialized file's single
	// mmap region; grown by doubling thereafter (file.go).
	initialFileSize = 4096

	// maxDoublingSize caps growth-by-doubling; beyond it the file grows
	// by a fixed increment instead (mirrors the teacher's MaxResize
	// cutover in IOUtils.go).
	maxDoublingSize = 1 << 30 // 1 GiB
)

// Graph is an open handle to a memory-mapped slgraph file. It is not safe
// for concurrent use - see spec.md §5.
type Graph struct {
	file     *os.File
	readOnly bool
	data     MMap
	version  Version

	// path is empty for the anonymous temporary files New creates.
	path string
}

// maxUint48 is the largest value representable in a 48-bit field.
const maxUint48 = (1 << 48) - 1

package slgraph

import "encoding/binary"

// read48 reads a 48-bit little-endian integer at the given byte offset,
// zero-extending it into a uint64.
func read48(b []byte, off int) uint64 {
	_ = b[off+5]
	return uint64(b[off]) |
		uint64(b[off+1])<<8 |
		uint64(b[off+2])<<16 |
		uint64(b[off+3])<<24 |
		uint64(b[off+4])<<32 |
		uint64(b[off+5])<<40
}

// write48 writes the low 48 bits of v as a little-endian integer at the
// given byte offset. Values exceeding 2^48-1 are truncated silently -
// callers must not exercise this path (spec.md §4.1).
func write48(b []byte, off int, v uint64) {
	_ = b[off+5]
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
	b[off+4] = byte(v >> 32)
	b[off+5] = byte(v >> 40)
}

// read64 reads a 64-bit little-endian integer at the given byte offset.
func read64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// write64 writes v as a little-endian 64-bit integer at the given byte
// offset.
func write64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

//go:build unix

package slgraph

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Protection/flag constants for Map, mirroring the mmap-go-shaped surface
// the teacher calls through (IOUtils.go's Map(file, RDWR, 0) and
// tests/MMap_test.go's Map(file, RDONLY, 0)); filled in here against
// golang.org/x/sys/unix the way
// other_examples/76837ad0_MHS-20-ElkDB__storage-pager.go.go and
// other_examples/1d851c96_calvinalkan-agent-task__pkg-slotcache-open.go.go
// drive the same syscalls directly.
const (
	RDONLY = 0
	RDWR   = 1 << iota
	COPY
	EXEC
)

// Map memory-maps the full extent of f starting at offset 0 with the
// requested protection (RDONLY, RDWR, COPY, EXEC), returning the mapped
// region as an MMap. The flags argument is not used.
func Map(f *os.File, prot int, flags int) (MMap, error) {
	fi, statErr := f.Stat()
	if statErr != nil {
		return nil, fmt.Errorf("%w: stat: %v", ErrIO, statErr)
	}

	return mapSize(f, int(fi.Size()), prot, flags)
}

// mapSize memory-maps exactly size bytes of f starting at offset 0.
func mapSize(f *os.File, size int, prot int, flags int) (MMap, error) {
	if size == 0 {
		return MMap{}, nil
	}

	unixProt := unix.PROT_READ
	if prot&RDWR != 0 || prot&COPY != 0 {
		unixProt |= unix.PROT_WRITE
	}
	if prot&EXEC != 0 {
		unixProt |= unix.PROT_EXEC
	}

	unixFlags := unix.MAP_SHARED
	if prot&COPY != 0 {
		unixFlags = unix.MAP_PRIVATE
	}

	data, mmapErr := unix.Mmap(int(f.Fd()), 0, size, unixProt, unixFlags)
	if mmapErr != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrIO, mmapErr)
	}

	return MMap(data), nil
}

// Unmap releases the mapping.
func (m MMap) Unmap() error {
	if len(m) == 0 {
		return nil
	}

	if err := unix.Munmap(m); err != nil {
		return fmt.Errorf("%w: munmap: %v", ErrIO, err)
	}

	return nil
}

// Flush synchronously flushes the mapping's dirty pages to the backing
// file.
func (m MMap) Flush() error {
	if len(m) == 0 {
		return nil
	}

	if err := unix.Msync(m, unix.MS_SYNC); err != nil {
		return fmt.Errorf("%w: msync: %v", ErrIO, err)
	}

	return nil
}

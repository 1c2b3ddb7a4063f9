package slgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip48(t *testing.T) {
	buf := make([]byte, 16)

	write48(buf, 3, maxUint48)
	require.Equal(t, uint64(maxUint48), read48(buf, 3))

	write48(buf, 3, 0)
	require.Equal(t, uint64(0), read48(buf, 3))

	write48(buf, 3, 0x0102030405)
	require.Equal(t, uint64(0x0102030405), read48(buf, 3))
}

func TestCodecRoundTrip64(t *testing.T) {
	buf := make([]byte, 16)

	write64(buf, 2, none64)
	require.Equal(t, none64, read64(buf, 2))

	write64(buf, 2, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), read64(buf, 2))
}

func TestCodec48IsLittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	write48(buf, 0, 0x010203040506)

	require.Equal(t, byte(0x06), buf[0])
	require.Equal(t, byte(0x05), buf[1])
	require.Equal(t, byte(0x04), buf[2])
	require.Equal(t, byte(0x03), buf[3])
	require.Equal(t, byte(0x02), buf[4])
	require.Equal(t, byte(0x01), buf[5])
}

func TestNodeEntryStride(t *testing.T) {
	require.Equal(t, nodeEntryV1Stride, nodeEntryStride(VersionUndirected))
	require.Equal(t, nodeEntryV2Stride, nodeEntryStride(VersionDirected))
}

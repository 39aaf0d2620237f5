package hash

import (
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Uint64Pair checksums the 16-byte little-endian encoding of (a, b).
// Pairs differing in either word checksum differently.
func Uint64Pair(a, b uint64) uint32 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	return CRC32C(buf[:])
}

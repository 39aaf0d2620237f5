// Package hash provides fast, hardware-accelerated checksum utilities.
//
// The checksums use CRC32-Castagnoli (CRC32C), which is hardware
// accelerated on x86 (SSE4.2) and ARM (CRC extension) and detects all
// error bursts up to 32 bits. Inputs differing in a single machine word
// therefore always checksum differently.
//
// The crc32cTable is pre-computed at package init time, avoiding repeated
// table generation.
package hash

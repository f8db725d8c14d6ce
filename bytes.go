package wormhole

import "encoding/binary"

// Tags are little-endian 16-bit lanes and each bucket is read whole as a
// little-endian 64-bit word. The two views must agree: slot j of bucket b
// occupies bits [16j, 16j+16) of the bucket word.

func readU16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func readU64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func writeU16LE(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

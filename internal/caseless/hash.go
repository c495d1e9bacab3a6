package caseless

import (
	"hash/crc32"
	"hash/fnv"
)

// Hash returns the FNV-1a hash of b as if it had been lowered first,
// without allocating a lowered copy. The namespace and keyword maps in this
// module do not use it: they key plain Go maps on lowered strings.
//
// Two inputs that differ only in ASCII letter case produce identical
// hashes, matching Equal's notion of equality.
func Hash(b []byte) uint64 {
	h := fnv.New64a()
	var buf [64]byte
	for len(b) > 0 {
		n := copy(buf[:], b)
		for i := 0; i < n; i++ {
			buf[i] = lowerByte(buf[i])
		}
		h.Write(buf[:n])
		b = b[n:]
	}
	return h.Sum64()
}

// HashString is Hash for strings.
func HashString(s string) uint64 {
	return Hash([]byte(s))
}

// identifierCRCTable is the Castagnoli CRC32 table, the polynomial the
// source compiler's SSE4.2 path mixes with _mm_crc32_u32/u16/u8. Using
// hash/crc32 here gets us the identical polynomial and update function
// without hand-rolling the table; the only thing that needs reproducing by
// hand is the 4-bytes-at-a-time, case-folding traversal order.
var identifierCRCTable = crc32.MakeTable(crc32.Castagnoli)

// IdentifierHash computes the identifier-specific caseless hash described
// in spec §4.A: process b four bytes at a time, OR-ing 0x20202020 into each
// 32-bit group before mixing it into the running CRC32C value, then fold in
// any 2-byte and 1-byte remainder the same way. This is valid only because
// identifier bytes are restricted to ASCII letters, digits, underscore, and
// colon — the 0x20 bit flips 'A'-'Z' to 'a'-'z', is already set in digits
// and ':', and turns '_' (0x5F) into 0x7F, a byte no identifier contains,
// so inputs that differ only in letter case still hash alike.
//
// This must agree with Hash for any caseless-equal input, and does: both
// reduce to "mix the lowered bytes," just via different mixing functions.
func IdentifierHash(b []byte) uint32 {
	val := uint32(0x84222325)
	n := len(b)
	groups := n / 4
	for i := 0; i < groups; i++ {
		word := uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
		word |= 0x20202020
		val = crc32.Update(val, identifierCRCTable, wordBytes(word))
	}
	rem := b[groups*4:]
	switch len(rem) {
	case 3:
		half := uint16(rem[0]) | uint16(rem[1])<<8
		half |= 0x2020
		val = crc32.Update(val, identifierCRCTable, []byte{byte(half), byte(half >> 8)})
		b3 := rem[2] | 0x20
		val = crc32.Update(val, identifierCRCTable, []byte{b3})
	case 2:
		half := uint16(rem[0]) | uint16(rem[1])<<8
		half |= 0x2020
		val = crc32.Update(val, identifierCRCTable, []byte{byte(half), byte(half >> 8)})
	case 1:
		b0 := rem[0] | 0x20
		val = crc32.Update(val, identifierCRCTable, []byte{b0})
	}
	return val
}

func wordBytes(w uint32) []byte {
	return []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}

// IdentifierHashString is IdentifierHash for strings.
func IdentifierHashString(s string) uint32 {
	return IdentifierHash([]byte(s))
}

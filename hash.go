package wormhole

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// splitHash derives the home bucket and the fingerprint from a pre-hashed
// key: the low 32 bits select the home bucket, the high 32 bits supply the
// fingerprint. A zero fingerprint is biased to 1 so that stored tags are
// never zero.
func splitHash(x uint64, mask uint64) (home uint64, fp uint16) {
	home = x & (1<<32 - 1) & mask
	fp = uint16(x>>32) & fingerprintMask
	if fp == 0 {
		fp = 1
	}
	return home, fp
}

// Mix64 is a multiply-shift finalizer (the murmur3 fmix64 constants) for
// callers whose keys are not already well mixed. The filter itself treats
// inputs as pre-hashed and applies no mixing of its own.
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Sum64 digests a byte key for the convenience surface of filters
// constructed with New.
func Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Sum64Seeded digests a byte key under a per-filter seed, for filters
// constructed with NewSeeded. Seeding denies an adversary advance knowledge
// of home bucket and fingerprint collisions.
func Sum64Seeded(key []byte, seed uint32) uint64 {
	return murmur3.Sum64WithSeed(key, seed)
}

package wormhole

/*

# Wormhole filter primitives for Forestrie (hopscotch tag table, in-place)

This package provides a fixed-capacity approximate set-membership filter over
64-bit pre-hashed keys. It answers "was k added?" with "definitely not" or
"maybe" in a table far smaller than the key set itself.

It mirrors the `go-merklelog/bloom` and `go-merklelog/urkle` style:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## What this filter is (and is not)

Like a Bloom or cuckoo filter, this is a *probabilistic prefilter*:

- If the filter says "definitely not present", the key was never added (or
  was removed).
- If the filter says "maybe present", the key may or may not have been added
  (false positives are possible, at roughly 2^-12 per probe position).

It is NOT a cryptographic commitment and provides no proofs of exclusion.
It is only a lookup optimization.

Compared to the bloom package, this structure additionally supports Remove,
at the cost of a bounded chance of insertion failure as the table approaches
its capacity.

## Tags, buckets, and the probe window

Each stored key occupies exactly one 16-bit slot, the *tag*:

	  15                4 3      0
	+--------------------+--------+
	|  fingerprint (12)  | dist(4)|
	+--------------------+--------+

- fingerprint: a non-zero 12-bit abbreviation of the key's hash. A zero
  fingerprint is biased to 1 so that tag == 0 always means "empty slot".
- dist: how many buckets below the slot's current bucket the key's *home
  bucket* lies. A tag stored in bucket b with distance d belongs to home
  bucket (b - d) mod B.

Four tags pack into one 64-bit *bucket* word, little-endian, slot 0 in the
low lanes:

	bits  63..48   47..32   31..16   15..0
	      slot 3   slot 2   slot 1   slot 0

The table is B buckets, B a power of two, stored as one flat 8*B byte
region. A key may only ever reside in the 16 buckets starting at its home
bucket (the *probe window*), because 4 bits of distance can encode at most
15. Lookup therefore probes a fixed window: for each p in 0..15 it loads the
word at bucket home+p and tests all four lanes at once for the needle
(fingerprint<<4 | p) using a SWAR comparison. This makes lookups constant
time and cache-compact regardless of table size.

## Insertion and displacement

Insert scans forward from the home bucket for the first empty slot. If that
slot is within the probe window the tag is written directly. If it is not,
the insert path borrows from hopscotch hashing: it walks backward from the
empty slot looking for a resident tag whose encoded distance can be extended
(d' + shift < 16), and moves it outward into the empty slot. This hops the
empty slot closer to the home bucket, repeating until it lands inside the
window or no movable tag exists.

A failed insert is reported by a false return and leaves the table exactly
as it was; the chain of moves is rolled back. Keys whose fingerprint and
home bucket collide heavily can exhaust displacement before the load factor
would suggest - expect insert failures somewhat before the table is
nominally full, and treat the first failure as "rebuild larger".

## Keys are pre-hashed

Insert/Query/Remove take a uint64 the caller has already hashed; the low 32
bits select the home bucket and the high 32 bits supply the fingerprint.
Feeding sequential or otherwise structured integers directly will cluster
homes and exhaust displacement early; run such keys through Mix64, or use
the byte-key surface (InsertBytes and friends) which digests for you.

## Concurrency

Mutation is single-goroutine. Queries are pure reads, so concurrent queries
against a table with no mutation in flight are safe. Anything else needs
external serialization.

## Sources

The structure follows the DRAM wormhole filter design: cuckoo-style
fingerprint storage, hopscotch-bounded probe windows, and word-parallel tag
comparison.

- https://www.cs.cmu.edu/~dga/papers/cuckoo-conext2014.pdf
- https://en.wikipedia.org/wiki/Hopscotch_hashing
- https://graphics.stanford.edu/~seander/bithacks.html#ZeroInWord

*/

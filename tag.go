package wormhole

// tag is one slot: a 12-bit fingerprint over a 4-bit distance. The zero tag
// means the slot is empty, which is unambiguous because fingerprints are
// never zero.
type tag uint16

func packTag(fp uint16, dist uint64) tag {
	return tag(fp)<<BitsPerDistance | tag(dist)
}

func (t tag) Empty() bool { return t == 0 }

func (t tag) Fingerprint() uint16 { return uint16(t) >> BitsPerDistance }

func (t tag) Distance() uint64 { return uint64(t & distanceMask) }

// withDistance re-encodes t at distance d, keeping the fingerprint. The
// caller guarantees d < MaxProbe.
func (t tag) withDistance(d uint64) tag {
	return t&^distanceMask | tag(d)
}

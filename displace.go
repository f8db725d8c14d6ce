package wormhole

// Displacement: when Insert's forward scan finds its first empty slot at a
// distance the 4-bit field cannot encode, some resident tag between the
// home bucket and the empty slot must move outward instead. Moving a tag
// from bucket b' to the empty bucket c grows its encoded distance by
// s = c - b'; the move is legal exactly when the new distance still fits
// the probe window (d' + s < MaxProbe), which also preserves membership:
// the moved key's home bucket is unchanged and lookups probe every
// distance in the window.
//
// Trying the largest backshift first hops the empty slot as far toward the
// home bucket as a single move allows.

// move records one displacement hop for rollback: the slot written and the
// tag it held before.
type move struct {
	bucket uint64
	slot   int
	prev   tag
}

// displace walks the empty slot at (c, j) backward until c - home fits the
// probe window, returning the freed slot. On ok=false no slot could be
// freed and every hop has been rolled back, leaving the table as it was.
//
// Bucket indices here are unwrapped, exactly as Insert's forward scan
// produces them: c >= home always, and candidate buckets c-s stay strictly
// above home because c - home >= MaxProbe > s.
func (f *Filter) displace(home, c uint64, j int) (uint64, int, bool) {
	f.moves = f.moves[:0]

	for c-home >= MaxProbe {
		found := false
		for s := uint64(MaxProbe - 1); s >= 1 && !found; s-- {
			cadi := c - s
			for cj := 0; cj < TagsPerBucket; cj++ {
				t := f.readTag(cadi, cj)
				if t.Empty() || t.Distance()+s >= MaxProbe {
					continue
				}
				f.moves = append(f.moves, move{bucket: c, slot: j, prev: f.readTag(c, j)})
				f.writeTag(c, j, t.withDistance(t.Distance()+s))
				c, j = cadi, cj
				found = true
				break
			}
		}
		if !found {
			f.rollback()
			return 0, 0, false
		}
	}
	return c, j, true
}

// rollback undoes the recorded hops in reverse order. The first recorded
// slot is the originally-empty one, so a full rollback restores it to
// empty and every candidate slot to its original tag.
func (f *Filter) rollback() {
	for i := len(f.moves) - 1; i >= 0; i-- {
		m := f.moves[i]
		f.writeTag(m.bucket, m.slot, m.prev)
	}
	f.moves = f.moves[:0]
}

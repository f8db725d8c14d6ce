package wormhole

import (
	"fmt"
	"io"
)

// debug utilities

// Dump writes the tag table to w, one bucket per line as four hex tags,
// slot 0 first. Empty slots print as 0000.
func (f *Filter) Dump(w io.Writer) error {
	for b := uint64(0); b < f.nbuckets; b++ {
		for j := 0; j < TagsPerBucket; j++ {
			sep := " "
			if j == TagsPerBucket-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%04x%s", uint16(f.readTag(b, j)), sep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Filter) String() string {
	return fmt.Sprintf(
		"wormhole: %d/%d tags in %d buckets (%d bytes)",
		f.count, f.nbuckets*TagsPerBucket, f.nbuckets, len(f.region))
}

// Package sharedtensor implements the per-tensor location table
// (CopyTable), the version bitmap, the read/read-write/write-only access
// protocol, and the pairwise transfer resolution between devices.
// Grounded on the worker-pool and bookkeeping idioms of aistore's
// xact/xs package (see batch.go), generalized from "copy objects between
// bucket backends" to "copy bytes between device copies of one tensor."
package sharedtensor

import "math/bits"

// MaxCopies is the fixed ceiling on simultaneous device copies per
// tensor: the version bitmap is a single uint64, one bit per copy-table
// slot.
const MaxCopies = 64

// VersionBitmap is a 64-bit set of copy-table indices; bit i set means
// the copy at index i is current. Zero means "uninitialized" — the
// tensor has no valid bytes anywhere.
type VersionBitmap uint64

func (b VersionBitmap) Empty() bool { return b == 0 }

func (b VersionBitmap) Contains(i int) bool { return b&(1<<uint(i)) != 0 }

// Insert sets bit i, leaving every other bit unchanged.
func (b *VersionBitmap) Insert(i int) { *b |= 1 << uint(i) }

// SetSingle collapses the bitmap to exactly {i}, used when a caller is
// about to mutate the copy at i (read-write, write-only).
func (b *VersionBitmap) SetSingle(i int) { *b = 1 << uint(i) }

// Clear empties the bitmap.
func (b *VersionBitmap) Clear() { *b = 0 }

// Latest returns the lowest set bit — the deterministic "latest source"
// used by Sync. Panics if the bitmap is empty; callers must check Empty
// first.
func (b VersionBitmap) Latest() int {
	if b == 0 {
		panic("sharedtensor: Latest() called on an empty VersionBitmap")
	}
	return bits.TrailingZeros64(uint64(b))
}

// ReindexAfterRemoval adjusts the bitmap after copy-table entry i is
// removed: bits below i are kept, bit i is dropped, bits above i shift
// down by one, preserving the "bit j <-> entry j" invariant.
func (b *VersionBitmap) ReindexAfterRemoval(i int) {
	lower := uint64(*b) & (uint64(1)<<uint(i) - 1)
	upper := (uint64(*b) >> 1) &^ (uint64(1)<<uint(i) - 1)
	*b = VersionBitmap(lower | upper)
}

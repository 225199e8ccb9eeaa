package attrib

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

var (
	// ErrEmptyRow is returned for a row without any slot, not even the bias.
	ErrEmptyRow = errors.New("empty contribution row")

	// ErrLengthMismatch is returned when the id and value slices differ in length.
	ErrLengthMismatch = errors.New("id and contribution lengths differ")

	// ErrNotPermutation is returned when the ids are not a permutation of 0..N-1.
	ErrNotPermutation = errors.New("ids are not a permutation")
)

// seenPool is a sync.Pool of bitmaps used to detect repeated ids
var seenPool = sync.Pool{
	New: func() interface{} {
		return roaring.New()
	},
}

// Validate checks the preconditions of Compose: both slices hold the same,
// non-zero number of slots and every id is a distinct index into contribs.
//
// Compose never calls Validate itself; callers handling untrusted rows should.
// The returned error wraps one of ErrEmptyRow, ErrLengthMismatch or
// ErrNotPermutation.
func Validate(contribNameIds []int, contribs []float32) error {
	if len(contribs) == 0 {
		return ErrEmptyRow
	}
	if len(contribNameIds) != len(contribs) {
		return fmt.Errorf("%w: %d ids, %d contributions", ErrLengthMismatch, len(contribNameIds), len(contribs))
	}

	seen := seenPool.Get().(*roaring.Bitmap)
	seen.Clear()
	defer seenPool.Put(seen)

	for i, id := range contribNameIds {
		if id < 0 || id >= len(contribs) {
			return fmt.Errorf("%w: id %d at slot %d is out of range [0, %d)", ErrNotPermutation, id, i, len(contribs))
		}
		if !seen.CheckedAdd(uint32(id)) {
			return fmt.Errorf("%w: id %d repeated at slot %d", ErrNotPermutation, id, i)
		}
	}
	return nil
}

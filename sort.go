package attrib

import (
	"cmp"
	"math"
	"slices"
)

// SortIndices sorts ids[from:to] in place so that values[ids[i]] is monotonic
// according to cfg. The values slice is only read.
//
// The sort is stable: ids whose keys compare equal keep their relative input
// order, so identical inputs always produce identical output. NaN keys rank
// below every number. An empty or inverted range is a no-op.
//
// The zero SortConfig sorts by signed value, highest first.
func SortIndices(ids []int, values []float32, from, to int, cfg SortConfig) {
	if to-from < 2 {
		return
	}

	key := signedKey
	if cfg.Mode == Absolute {
		key = absoluteKey
	}

	if cfg.Order == Ascending {
		slices.SortStableFunc(ids[from:to], func(a, b int) int {
			return cmp.Compare(key(values[a]), key(values[b]))
		})
		return
	}
	slices.SortStableFunc(ids[from:to], func(a, b int) int {
		return cmp.Compare(key(values[b]), key(values[a]))
	})
}

func signedKey(v float32) float32 {
	return v
}

func absoluteKey(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

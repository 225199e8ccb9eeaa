package attrib

import "slices"

// Request selects which contributions of a row are returned.
type Request struct {
	// TopN is the number of highest-ranked features to return.
	// Zero returns none, a negative value returns all of them.
	TopN int

	// TopBottomN is the number of lowest-ranked features to return.
	// Zero returns none, a negative value returns all of them.
	TopBottomN int

	// Mode selects signed or absolute-value comparison.
	Mode CompareMode
}

// ComposeContributions ranks the feature ids of a single row and returns the
// requested subset, terminated by the bias id.
//
// contribNameIds must be a permutation of 0..N-1 and contribs must hold N
// values, the last one being the bias term. Neither is checked here; use
// Validate when the input is untrusted. The caller's slices are not modified.
//
// The result holds the topN highest features in descending order, then the
// topBottomN lowest features in ascending order, then the bias id. If either
// count is negative or together they cover the whole row, every id is returned
// in descending order and the bias is ranked by its value instead of pinned
// last.
func ComposeContributions(contribNameIds []int, contribs []float32, topN, topBottomN int, abs bool) []int {
	return Compose(contribNameIds, contribs, Request{
		TopN:       topN,
		TopBottomN: topBottomN,
		Mode:       ModeFor(abs),
	})
}

// Compose is ComposeContributions driven by a Request.
func Compose(contribNameIds []int, contribs []float32, req Request) []int {
	ids := slices.Clone(contribNameIds)
	length := len(contribs)

	switch {
	case req.TopBottomN == 0:
		return composeSorted(ids, contribs, req.TopN, SortConfig{Order: Descending, Mode: req.Mode})
	case req.TopN == 0:
		return composeSorted(ids, contribs, req.TopBottomN, SortConfig{Order: Ascending, Mode: req.Mode})
	case req.TopN < 0 || req.TopBottomN < 0 || req.TopN >= length-req.TopBottomN:
		return composeSorted(ids, contribs, length, SortConfig{Order: Descending, Mode: req.Mode})
	}

	// Both counts are positive and leave at least one feature unselected, so
	// the two groups cannot overlap.
	SortIndices(ids, contribs, 0, length-1, SortConfig{Order: Descending, Mode: req.Mode})

	// The tail holds the lowest features followed by the bias.
	bottom := slices.Clone(ids[length-1-req.TopBottomN:])
	reverse(bottom, contribs, req.TopBottomN)

	return slices.Concat(ids[:req.TopN], bottom)
}

// composeSorted sorts ids by cfg and returns the first n of them followed by
// the bias id. When n saturates to the row length the bias takes part in the
// sort and the whole sorted row is returned.
func composeSorted(ids []int, contribs []float32, n int, cfg SortConfig) []int {
	length := len(contribs)
	n = CheckAndAdjustInput(n, length)

	if n == length {
		SortIndices(ids, contribs, 0, length, cfg)
		return ids
	}

	SortIndices(ids, contribs, 0, length-1, cfg)
	sorted := make([]int, n+1)
	copy(sorted, ids[:n])
	sorted[n] = ids[length-1]
	return sorted
}

// reverse reverses the first n ids in place, leaving pairs with equal
// contribution values where they are.
func reverse(ids []int, contribs []float32, n int) {
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if contribs[ids[i]] != contribs[ids[j]] {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}
}

/*
Package attrib ranks and truncates per-prediction feature contributions.

Tree ensembles and other additive models can explain a single prediction as a
vector of contributions (SHAP values): one signed number per feature plus a
bias term, summing to the raw prediction. attrib turns such a vector into a
short, display-ready list: the features that pushed the prediction up the
most, the ones that pulled it down the most, or both, always followed by the
bias.

# Quick Start

	package main

	import (
	    "fmt"

	    "github.com/wizenheimer/attrib"
	)

	func main() {
	    // Five features followed by the bias in the last slot
	    contribs := []float32{0.5, -0.9, 0.1, -0.2, 0.8, 0.0}
	    ids := []int{0, 1, 2, 3, 4, 5}

	    // Strongest positive and strongest negative feature, then the bias
	    top := attrib.ComposeContributions(ids, contribs, 1, 1, false)
	    fmt.Println(top) // [4 1 5]
	}

# Row Layout

A row is two parallel slices of length N. contribs holds the values and its
last slot is the bias. contribNameIds is a permutation of 0..N-1; slot i refers
to the value contribs[contribNameIds[i]]. The composer does not check this;
call Validate first when rows come from outside the process.

# Selecting Contributions

A Request carries two counts and a comparison mode:

  - TopN: highest features, in descending order
  - TopBottomN: lowest features, in ascending order (most negative first)
  - Mode: Signed compares values, Absolute compares magnitudes

Counts are never rejected. A count larger than the row, or a negative one,
means "everything": the whole row is returned sorted in descending order and
the bias is ranked by its own value. Every other request returns
min(TopN, N-1) + min(TopBottomN, N-1) + 1 ids with the bias pinned last.

	req := attrib.Request{TopN: 3, TopBottomN: 2, Mode: attrib.Absolute}
	keyed := attrib.ComposeKeyed(ids, contribs, req)
	for _, c := range keyed {
	    fmt.Printf("feature %d: %+.4f\n", c.ID, c.Value)
	}

# Sorting

SortIndices is the ranking primitive used by the composer. It sorts a range of
an id slice by the values the ids point to, with a SortConfig choosing
Ascending or Descending order and Signed or Absolute keys. The sort is stable,
so ties resolve the same way on every run.

# Half Precision

Rows stored as IEEE 754 binary16 bit patterns can be composed directly:

	keyed := attrib.ComposeHalf(ids, bits, req)

# Thread Safety

All functions are safe for concurrent use. The caller's id slice is cloned
before sorting and the value slice is only read, so the same row may be
composed by several goroutines at once.
*/
package attrib

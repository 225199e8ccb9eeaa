package attrib

// Contribution pairs a feature id with its contribution to a prediction.
type Contribution struct {
	ID    int     `json:"id"`
	Value float32 `json:"value"`
}

// Resolve looks up the contribution value of every id.
func Resolve(ids []int, contribs []float32) []Contribution {
	resolved := make([]Contribution, len(ids))
	for i, id := range ids {
		resolved[i] = Contribution{ID: id, Value: contribs[id]}
	}
	return resolved
}

// ComposeKeyed composes a row like Compose and returns the selected ids
// together with their values.
func ComposeKeyed(contribNameIds []int, contribs []float32, req Request) []Contribution {
	return Resolve(Compose(contribNameIds, contribs, req), contribs)
}

package attrib

import "fmt"

// SortOrder defines the direction in which contributions are ranked.
type SortOrder string

const (
	// Ascending ranks the lowest (most negative) contribution first.
	// Used to select the bottom features of a row.
	Ascending SortOrder = "ascending"

	// Descending ranks the highest contribution first.
	// Used to select the top features of a row.
	Descending SortOrder = "descending"
)

// CompareMode defines which key of a contribution is compared when ranking.
type CompareMode string

const (
	// Signed compares the contribution value as is.
	Signed CompareMode = "signed"

	// Absolute compares the magnitude of the contribution, so a strong
	// negative effect ranks as high as a strong positive one.
	Absolute CompareMode = "absolute"
)

// SortConfig is the full ranking configuration: a direction crossed with a
// comparison key.
type SortConfig struct {
	Order SortOrder
	Mode  CompareMode
}

// ParseSortOrder returns the SortOrder with the given name.
func ParseSortOrder(name string) (SortOrder, error) {
	switch SortOrder(name) {
	case Ascending, Descending:
		return SortOrder(name), nil
	default:
		return "", fmt.Errorf("unknown sort order: %s", name)
	}
}

// ParseCompareMode returns the CompareMode with the given name.
func ParseCompareMode(name string) (CompareMode, error) {
	switch CompareMode(name) {
	case Signed, Absolute:
		return CompareMode(name), nil
	default:
		return "", fmt.Errorf("unknown compare mode: %s", name)
	}
}

// ModeFor maps a boolean "compare absolute values" flag to a CompareMode.
func ModeFor(abs bool) CompareMode {
	if abs {
		return Absolute
	}
	return Signed
}

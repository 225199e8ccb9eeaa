package attrib

// CheckAndAdjustInput clamps a requested feature count to [0, length].
//
// If n is negative or exceeds length, it returns length, meaning "all of
// them". Zero is a valid request and is returned unchanged.
//
// Usage:
//
//	n := CheckAndAdjustInput(requested, len(contribs))
func CheckAndAdjustInput(n, length int) int {
	if n < 0 || n > length {
		return length
	}
	return n
}

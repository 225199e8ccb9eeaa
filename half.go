package attrib

import "github.com/x448/float16"

// Half precision rows
//
// Some scorers emit contributions as IEEE 754 half precision values
// (1 sign, 5 exponent, 10 mantissa bits) carried as uint16 bit patterns.
// Every binary16 value is exactly representable as float32, so widening is
// lossless and ranking a widened row gives the same order as ranking the
// half precision values themselves.

// WidenHalf converts binary16 bit patterns to float32.
func WidenHalf(bits []uint16) []float32 {
	values := make([]float32, len(bits))
	for i, b := range bits {
		values[i] = float16.Frombits(b).Float32()
	}
	return values
}

// NarrowHalf converts float32 values to binary16 bit patterns, rounding to
// nearest even.
func NarrowHalf(values []float32) []uint16 {
	bits := make([]uint16, len(values))
	for i, v := range values {
		bits[i] = float16.Fromfloat32(v).Bits()
	}
	return bits
}

// ComposeHalf composes a row whose contributions are binary16 bit patterns.
func ComposeHalf(contribNameIds []int, bits []uint16, req Request) []Contribution {
	return ComposeKeyed(contribNameIds, WidenHalf(bits), req)
}

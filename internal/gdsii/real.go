package gdsii

import "math"

// GDSII stores reals in its own excess-64 base-16 format rather than
// IEEE 754: 1 sign bit, 7 exponent bits (power of 16, biased by 64), and
// a 56-bit mantissa, with value = sign * mantissa/2^56 * 16^(exp-64).

// encodeReal64 converts a float64 to the 8-byte GDSII representation.
func encodeReal64(v float64) uint64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	var sign uint64
	if v < 0 {
		sign = 1 << 63
		v = -v
	}
	exp := 64
	for v >= 1 {
		v /= 16
		exp++
	}
	for v < 1.0/16 {
		v *= 16
		exp--
	}
	mantissa := uint64(math.Round(v * (1 << 56)))
	if mantissa >= 1<<56 {
		// Rounding carried into the hidden digit.
		mantissa >>= 4
		exp++
	}
	if exp < 0 {
		return sign // underflow to zero
	}
	if exp > 127 {
		exp = 127
		mantissa = 1<<56 - 1
	}
	return sign | uint64(exp)<<56 | mantissa
}

// decodeReal64 converts the 8-byte GDSII representation to a float64.
func decodeReal64(bits uint64) float64 {
	mantissa := float64(bits&(1<<56-1)) / (1 << 56)
	exp := int(bits>>56) & 0x7F
	v := mantissa * math.Pow(16, float64(exp-64))
	if bits&(1<<63) != 0 {
		v = -v
	}
	return v
}

// Package sizing provides overflow-safe size arithmetic for block accounting.
package sizing

// AddUint64 adds two uint64 values, returning (result, false) on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// RoundUp rounds n up to the next multiple of unit, returning (result, false)
// on overflow. unit must be non-zero.
func RoundUp(n, unit uint64) (uint64, bool) {
	rem := n % unit
	if rem == 0 {
		return n, true
	}
	return AddUint64(n, unit-rem)
}

// PadLen returns the number of zero bytes needed to align n to unit.
func PadLen(n, unit int) int {
	if rem := n % unit; rem != 0 {
		return unit - rem
	}
	return 0
}

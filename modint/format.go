package modint

import (
	"strconv"
)

// Equal reports whether x and y are the same residue.
func (x ModInt[M]) Equal(y ModInt[M]) bool {
	return x.value == y.value
}

// IsZero reports whether x is the residue 0.
func (x ModInt[M]) IsZero() bool {
	return x.value == 0
}

// String returns the residue of x in decimal.
func (x ModInt[M]) String() string {
	return strconv.FormatUint(uint64(x.value), 10)
}

// GoString returns the residue together with the modulus,
// as in ModInt{value: 10, mod: 17}.
// It is meant for debugging and is not a stable format.
func (x ModInt[M]) GoString() string {
	return "ModInt{value: " + x.String() + ", mod: " + strconv.FormatUint(modulus[M](), 10) + "}"
}

package modint

import (
	"golang.org/x/exp/constraints"
)

// Exp returns x^e mod M.
// x^0 is one for every x, including zero.
func (x ModInt[M]) Exp(e uint64) ModInt[M] {
	r := One[M]()
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(x)
		}
		x = x.Mul(x)
		e >>= 1
	}
	return r
}

// Pow returns x^e mod M.
// Negative exponents raise the inverse of x to -e,
// so they fail like [ModInt.Inv] when x is not invertible.
func (x ModInt[M]) Pow(e int64) (ModInt[M], error) {
	if e >= 0 {
		return x.Exp(uint64(e)), nil
	}

	xInv, err := x.Inv()
	if err != nil {
		return ModInt[M]{}, err
	}
	// -e does not fit in int64 for math.MinInt64.
	return xInv.Exp(-uint64(e)), nil
}

// MustPow is like [ModInt.Pow] but panics when e < 0 and x is not invertible.
func (x ModInt[M]) MustPow(e int64) ModInt[M] {
	y, err := x.Pow(e)
	if err != nil {
		panic(err)
	}
	return y
}

// PowScalar returns x^e mod M for an exponent of any integer type.
// Non-negative exponents never fail, including uint64 values above math.MaxInt64.
func PowScalar[M Modulus, T constraints.Integer](x ModInt[M], e T) (ModInt[M], error) {
	if e >= 0 {
		return x.Exp(uint64(e)), nil
	}
	return x.Pow(int64(e))
}

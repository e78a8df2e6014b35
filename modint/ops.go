package modint

import (
	"golang.org/x/exp/constraints"
)

// Add returns x + y mod M.
func (x ModInt[M]) Add(y ModInt[M]) ModInt[M] {
	return ModInt[M]{value: uint32((uint64(x.value) + uint64(y.value)) % modulus[M]())}
}

// Sub returns x - y mod M.
func (x ModInt[M]) Sub(y ModInt[M]) ModInt[M] {
	q := modulus[M]()
	return ModInt[M]{value: uint32((uint64(x.value) + q - uint64(y.value)) % q)}
}

// Mul returns x * y mod M.
func (x ModInt[M]) Mul(y ModInt[M]) ModInt[M] {
	return ModInt[M]{value: uint32((uint64(x.value) * uint64(y.value)) % modulus[M]())}
}

// Div returns x / y mod M, that is x * y^-1.
// It fails when y is not invertible; see [ModInt.Inv].
func (x ModInt[M]) Div(y ModInt[M]) (ModInt[M], error) {
	yInv, err := y.Inv()
	if err != nil {
		return ModInt[M]{}, err
	}
	return x.Mul(yInv), nil
}

// MustDiv is like [ModInt.Div] but panics when y is not invertible.
func (x ModInt[M]) MustDiv(y ModInt[M]) ModInt[M] {
	z, err := x.Div(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Neg returns -x mod M.
func (x ModInt[M]) Neg() ModInt[M] {
	return Zero[M]().Sub(x)
}

// AddAssign computes x += y.
func (x *ModInt[M]) AddAssign(y ModInt[M]) {
	*x = x.Add(y)
}

// SubAssign computes x -= y.
func (x *ModInt[M]) SubAssign(y ModInt[M]) {
	*x = x.Sub(y)
}

// MulAssign computes x *= y.
func (x *ModInt[M]) MulAssign(y ModInt[M]) {
	*x = x.Mul(y)
}

// DivAssign computes x /= y.
// On error, x is left unchanged.
func (x *ModInt[M]) DivAssign(y ModInt[M]) error {
	z, err := x.Div(y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// AddScalar returns x + s mod M.
func AddScalar[M Modulus, T constraints.Integer](x ModInt[M], s T) ModInt[M] {
	return x.Add(New[M](s))
}

// SubScalar returns x - s mod M.
func SubScalar[M Modulus, T constraints.Integer](x ModInt[M], s T) ModInt[M] {
	return x.Sub(New[M](s))
}

// MulScalar returns x * s mod M.
// s is reduced before multiplying, so any 64-bit scalar is safe.
func MulScalar[M Modulus, T constraints.Integer](x ModInt[M], s T) ModInt[M] {
	return x.Mul(New[M](s))
}

// DivScalar returns x / s mod M.
// It fails when s mod M is not invertible.
func DivScalar[M Modulus, T constraints.Integer](x ModInt[M], s T) (ModInt[M], error) {
	return x.Div(New[M](s))
}

package modint

import (
	"errors"
	"fmt"

	"github.com/misty1999/simple-mod-int/num"
)

var (
	// ErrNoInverse is returned when inverting zero.
	ErrNoInverse = errors.New("zero has no multiplicative inverse")
	// ErrNotCoprime is returned when inverting a value that shares a factor with the modulus.
	ErrNotCoprime = errors.New("value is not coprime with modulus")
)

// Inv returns the multiplicative inverse of x,
// the unique y in [0, M) such that x * y = 1 mod M.
//
// Returns an error wrapping [ErrNoInverse] if x is zero,
// or [ErrNotCoprime] if gcd(x, M) != 1.
func (x ModInt[M]) Inv() (ModInt[M], error) {
	q := modulus[M]()
	if x.value == 0 {
		return ModInt[M]{}, fmt.Errorf("modint: invert 0 mod %d: %w", q, ErrNoInverse)
	}

	g, u, _ := num.ExtGCD(int64(x.value), int64(q))
	if g != 1 {
		return ModInt[M]{}, fmt.Errorf("modint: invert %d mod %d: gcd is %d: %w", x.value, q, g, ErrNotCoprime)
	}
	return New[M](u), nil
}

// MustInv is like [ModInt.Inv] but panics when x is not invertible.
func (x ModInt[M]) MustInv() ModInt[M] {
	y, err := x.Inv()
	if err != nil {
		panic(err)
	}
	return y
}

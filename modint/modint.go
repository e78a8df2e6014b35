// Package modint implements integers modulo a fixed modulus known at compile time.
//
// The modulus is a type: declare a zero-sized type with a Modulus method
// and use it as the type parameter of [ModInt].
//
//	type Mod17 struct{}
//
//	func (Mod17) Modulus() uint32 { return 17 }
//
//	a := modint.New[Mod17](-100) // 2
//
// Values with different modulus types are different Go types,
// so they can never be mixed by accident.
package modint

import (
	"golang.org/x/exp/constraints"
)

// Modulus is a compile-time modulus.
// Modulus must return the same positive value on every call.
type Modulus interface {
	Modulus() uint32
}

// ModInt is an integer modulo M.
// The value is always in [0, M).
// The zero value is the residue 0.
type ModInt[M Modulus] struct {
	value uint32
}

// modulus returns the modulus of M.
//
// Panics if the modulus is zero.
func modulus[M Modulus]() uint64 {
	var m M
	q := m.Modulus()
	if q == 0 {
		panic("modulus must be positive")
	}
	return uint64(q)
}

// New returns v mod M, normalized to [0, M).
// v can be of any integer type, including negative values.
func New[M Modulus, T constraints.Integer](v T) ModInt[M] {
	q := modulus[M]()
	if v < 0 {
		qi := int64(q)
		return ModInt[M]{value: uint32((int64(v)%qi + qi) % qi)}
	}
	return ModInt[M]{value: uint32(uint64(v) % q)}
}

// Zero returns the residue 0.
func Zero[M Modulus]() ModInt[M] {
	return ModInt[M]{}
}

// One returns the multiplicative identity.
// This is 0 when M is 1.
func One[M Modulus]() ModInt[M] {
	return New[M](1)
}

// Value returns the residue of x in [0, M).
func (x ModInt[M]) Value() uint32 {
	return x.value
}

// Modulus returns M.
func (x ModInt[M]) Modulus() uint32 {
	return uint32(modulus[M]())
}

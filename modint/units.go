package modint

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/misty1999/simple-mod-int/num"
)

// Units returns the set of invertible residues modulo M.
// Bit i is set if and only if New[M](i).Inv() succeeds.
//
// The set takes M/8 bytes, so this is meant for small moduli.
func Units[M Modulus]() *bitset.BitSet {
	q := uint(modulus[M]())

	u := bitset.New(q)
	u.FlipRange(0, q)
	for _, p := range num.PrimeFactors(uint64(q)) {
		for i := uint(0); i < q; i += uint(p) {
			u.Clear(i)
		}
	}
	// Zero is never invertible, even modulo 1.
	u.Clear(0)

	return u
}

// Totient returns Euler's totient of M,
// the number of invertible residues for M > 1.
func Totient[M Modulus]() uint64 {
	return num.Totient(modulus[M]())
}

// IsField reports whether M is prime,
// so that every non-zero residue is invertible.
func IsField[M Modulus]() bool {
	return num.IsPrime(uint32(modulus[M]()))
}

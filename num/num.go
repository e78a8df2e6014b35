// Package num implements word-size number theory used by modint.
package num

import (
	"math/bits"
)

// ExtGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// a and b must be non-negative. The coefficients may be negative.
func ExtGCD(a, b int64) (g, x, y int64) {
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return a, x0, y0
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// MulMod returns x*y mod m without overflow.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// ModExp returns x^y mod m.
func ModExp(x, y, m uint64) uint64 {
	r := 1 % m
	x %= m
	for y > 0 {
		if y&1 == 1 {
			r = MulMod(r, x, m)
		}
		x = MulMod(x, x, m)
		y >>= 1
	}
	return r
}

// PrimeFactors returns the distinct prime factors of n in increasing order.
// PrimeFactors(0) and PrimeFactors(1) are empty.
func PrimeFactors(n uint64) []uint64 {
	var ps []uint64
	if n == 0 {
		return ps
	}
	for p := uint64(2); p <= n/p; p++ {
		if n%p != 0 {
			continue
		}
		ps = append(ps, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return ps
}

// Totient returns Euler's totient of n.
func Totient(n uint64) uint64 {
	t := n
	for _, p := range PrimeFactors(n) {
		t = t / p * (p - 1)
	}
	return t
}

// millerRabinBases is a deterministic witness set for every n < 4759123141.
var millerRabinBases = [...]uint64{2, 7, 61}

// IsPrime reports whether n is prime.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for _, p := range millerRabinBases {
		if uint64(n) == p {
			return true
		}
		if uint64(n)%p == 0 {
			return false
		}
	}

	m := uint64(n)
	d, s := m-1, 0
	for d&1 == 0 {
		d >>= 1
		s++
	}

Witness:
	for _, a := range millerRabinBases {
		x := ModExp(a, d, m)
		if x == 1 || x == m-1 {
			continue
		}
		for i := 1; i < s; i++ {
			x = MulMod(x, x, m)
			if x == m-1 {
				continue Witness
			}
		}
		return false
	}
	return true
}

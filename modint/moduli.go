package modint

// Mod998244353 is the NTT-friendly prime 119 * 2^23 + 1.
type Mod998244353 struct{}

// Modulus implements [Modulus].
func (Mod998244353) Modulus() uint32 { return 998244353 }

// Mod1000000007 is the prime 10^9 + 7.
type Mod1000000007 struct{}

// Modulus implements [Modulus].
func (Mod1000000007) Modulus() uint32 { return 1000000007 }

// Mod1000000009 is the prime 10^9 + 9.
type Mod1000000009 struct{}

// Modulus implements [Modulus].
func (Mod1000000009) Modulus() uint32 { return 1000000009 }

// BabyBear is the prime 2^31 - 2^27 + 1.
type BabyBear struct{}

// Modulus implements [Modulus].
func (BabyBear) Modulus() uint32 { return 2013265921 }

package modint

// Source samples uniform integers.
// [github.com/misty1999/simple-mod-int/csprng.UniformSampler] implements Source.
type Source interface {
	// SampleN returns a uniform integer in [0, n).
	SampleN(n uint64) uint64
}

// Random returns a uniformly random residue modulo M.
func Random[M Modulus](src Source) ModInt[M] {
	return ModInt[M]{value: uint32(src.SampleN(modulus[M]()))}
}

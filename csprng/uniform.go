// Package csprng implements cryptographically secure samplers of uniform integers.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng.
//
// UniformSampler is not safe for concurrent use.
type UniformSampler struct {
	seed []byte
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler with a random seed.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
// Samplers with the same seed produce the same stream.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	s := &UniformSampler{seed: append([]byte(nil), seed...)}
	s.Reset()
	return s
}

// Reset rewinds the UniformSampler to the start of its stream.
//
// Panics when blake2b initialization fails.
func (s *UniformSampler) Reset() {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err := prng.Write(s.seed); err != nil {
		panic(err)
	}

	s.prng = prng
	s.ptr = bufSize
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if s.ptr == bufSize {
			s.refill()
		}
		k := copy(p[n:], s.buf[s.ptr:])
		s.ptr += k
		n += k
	}
	return n, nil
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr+8 > bufSize {
		s.refill()
	}
	res := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8
	return res
}

// SampleN uniformly samples a random integer in [0, N).
//
// Panics when N is zero.
func (s *UniformSampler) SampleN(N uint64) uint64 {
	if N == 0 {
		panic("bound must be positive")
	}
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

func (s *UniformSampler) refill() {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	s.ptr = 0
}

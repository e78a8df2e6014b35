package modint_test

import (
	"testing"

	"github.com/misty1999/simple-mod-int/modint"
	"github.com/stretchr/testify/assert"
)

type mod360360 struct{}

func (mod360360) Modulus() uint32 { return 360360 }

func TestUnits(t *testing.T) {
	t.Run("Mod18", func(t *testing.T) {
		u := modint.Units[mod18]()
		assert.Equal(t, uint(6), u.Count())
		assert.Equal(t, uint64(6), modint.Totient[mod18]())

		for i := uint(0); i < 18; i++ {
			_, err := modint.New[mod18](i).Inv()
			assert.Equal(t, err == nil, u.Test(i), "residue %d", i)
		}
	})

	t.Run("Mod17", func(t *testing.T) {
		u := modint.Units[mod17]()
		assert.Equal(t, uint(16), u.Count())
		assert.False(t, u.Test(0))
		assert.Equal(t, uint64(16), modint.Totient[mod17]())
	})

	t.Run("Mod360360", func(t *testing.T) {
		u := modint.Units[mod360360]()
		assert.Equal(t, uint64(u.Count()), modint.Totient[mod360360]())

		for i, ok := u.NextSet(0); ok; i, ok = u.NextSet(i + 1) {
			x := modint.New[mod360360](i)
			assert.Equal(t, modint.One[mod360360](), x.Mul(x.MustInv()))
		}
	})

	t.Run("Mod1", func(t *testing.T) {
		assert.Equal(t, uint(0), modint.Units[mod1]().Count())
		assert.Equal(t, uint64(1), modint.Totient[mod1]())
	})
}

func TestIsField(t *testing.T) {
	assert.True(t, modint.IsField[mod17]())
	assert.True(t, modint.IsField[mod227]())
	assert.True(t, modint.IsField[modPrime32]())
	assert.True(t, modint.IsField[modint.Mod998244353]())
	assert.True(t, modint.IsField[modint.Mod1000000007]())
	assert.True(t, modint.IsField[modint.Mod1000000009]())

	assert.False(t, modint.IsField[mod1]())
	assert.False(t, modint.IsField[mod18]())
	assert.False(t, modint.IsField[modFermat]())
	assert.False(t, modint.IsField[mod360360]())
}

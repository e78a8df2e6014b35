package modint_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/misty1999/simple-mod-int/modint"
	"github.com/stretchr/testify/assert"
)

func toBabyBear(x modint.ModInt[modint.BabyBear]) babybear.Element {
	return babybear.NewElement(uint64(x.Value()))
}

func fromBabyBear(e babybear.Element) uint32 {
	return uint32(e.BigInt(big.NewInt(0)).Uint64())
}

func TestBabyBear(t *testing.T) {
	assert.Equal(t, uint32(2013265921), modint.BabyBear{}.Modulus())
	assert.Equal(t, babybear.Modulus().Uint64(), uint64(modint.BabyBear{}.Modulus()))
	assert.True(t, modint.IsField[modint.BabyBear]())

	properties := newProperties()

	properties.Property("field operations agree", prop.ForAll(
		func(a, b int64) bool {
			x, y := modint.New[modint.BabyBear](a), modint.New[modint.BabyBear](b)
			ex, ey := toBabyBear(x), toBabyBear(y)

			var sum, diff, prod babybear.Element
			sum.Add(&ex, &ey)
			diff.Sub(&ex, &ey)
			prod.Mul(&ex, &ey)

			return x.Add(y).Value() == fromBabyBear(sum) &&
				x.Sub(y).Value() == fromBabyBear(diff) &&
				x.Mul(y).Value() == fromBabyBear(prod)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("inverse agrees", prop.ForAll(
		func(a int64) bool {
			x := modint.New[modint.BabyBear](a)
			if x.IsZero() {
				return true
			}
			ex := toBabyBear(x)

			var inv babybear.Element
			inv.Inverse(&ex)

			return x.MustInv().Value() == fromBabyBear(inv)
		},
		gen.Int64(),
	))

	properties.Property("exponentiation agrees", prop.ForAll(
		func(a int64, e uint64) bool {
			x := modint.New[modint.BabyBear](a)

			var pow babybear.Element
			pow.Exp(toBabyBear(x), big.NewInt(0).SetUint64(e))

			return x.Exp(e).Value() == fromBabyBear(pow)
		},
		gen.Int64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

package gfp

import (
	"math/big"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractMatchesBigInt(t *testing.T) {
	rnd := rand.New(rand.NewSource(20))
	for i := 0; i < 200; i++ {
		a, b := randElement(rnd), randElement(rnd)
		var r Element
		Subtract(&r, &a, &b)

		want := new(big.Int).Sub(toBig(&a), toBig(&b))
		assertCongruent(t, want, &r)
	}
}

func TestConditionalNegateMatchesBigInt(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		a := randElement(rnd)

		var identity, negated Element
		ConditionalNegate(&identity, &a, 0)
		ConditionalNegate(&negated, &a, 1)

		var ra, ri Element
		FullReduce(&ra, &a)
		FullReduce(&ri, &identity)
		assert.Equal(t, ra, ri)

		want := new(big.Int).Neg(toBig(&a))
		assertCongruent(t, want, &negated)
	}
}

func TestConditionalNegateLowBitOnly(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	a := randElement(rnd)
	var r1, r2 Element
	ConditionalNegate(&r1, &a, 1)
	ConditionalNegate(&r2, &a, 0xFFFFFFFF) // only bit 0 should matter

	var red1, red2 Element
	FullReduce(&red1, &r1)
	FullReduce(&red2, &r2)
	assert.Equal(t, red1, red2)
}

func TestHalveMatchesBigInt(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	inv2 := new(big.Int).ModInverse(big.NewInt(2), bigP())
	for i := 0; i < 200; i++ {
		a := randElement(rnd)
		var r Element
		Halve(&r, &a)

		want := new(big.Int).Mul(toBig(&a), inv2)
		assertCongruent(t, want, &r)
	}
}

// TestHalveDoubleIsIdentity checks halve(add(a,a)) == a, one of the
// concrete algebraic identities the arithmetic layer must satisfy.
func TestHalveDoubleIsIdentity(t *testing.T) {
	f := func(a [Len]uint32) bool {
		ae := Element(a)
		var doubled, halved Element
		Add(&doubled, &ae, &ae)
		Halve(&halved, &doubled)

		var ra, rh Element
		FullReduce(&ra, &ae)
		FullReduce(&rh, &halved)
		return ra == rh
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestHalveOneIsHalfPlusOne(t *testing.T) {
	var one, r Element
	one.One()
	Halve(&r, &one)

	want := new(big.Int).Rsh(new(big.Int).Add(bigP(), big.NewInt(1)), 1)
	assertCongruent(t, want, &r)
}

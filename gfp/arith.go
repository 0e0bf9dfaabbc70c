package gfp

// Add sets r = a + b mod p, with r in [0, 2p-1]. A conventional long-integer
// addition followed by a conditional subtraction of p would need two passes
// over the limbs; instead the reduction is folded into a single pass by
// starting at the most-significant limb: the sum of a[7] and b[7] is split
// into a 31-bit low part (the eventual r[7], before the final carry) and a
// 2-bit-or-less overflow that represents "how many multiples of 2^255 the
// sum carries". That overflow, multiplied by c, seeds the carry-propagation
// sum the rest of the limbs are added into.
func Add(r, a, b *Element) {
	sum := uint64(a[Len-1]) + uint64(b[Len-1])
	msw := Word(sum) & msb0Mask
	sum = uint64(constC) * uint64(Word(sum>>31))
	// sum is in [0, 3*c]

	for i := 0; i < Len-1; i++ {
		sum += uint64(a[i]) + uint64(b[i])
		r[i] = Word(sum)
		sum >>= 32
		// sum is in [0, 2]
	}
	r[Len-1] = msw + Word(sum)
}

// Mul32 sets r = a*b mod p, where b is a single limb, with r in [0, 2p-1].
// The product a*b[0] is computed into 9 limbs; the reduction folds the top
// limb back in via the pseudo-Mersenne identity 2^255 ≡ c (mod p): the MSB
// of the 9th limb's predecessor is split off, multiplied by c, and the
// 9th limb itself is scaled by 2c before being added back into the low end.
func Mul32(r, a *Element, b Word) {
	var t [Len + 1]Word
	var prod uint64

	for j := 0; j < Len; j++ {
		prod += uint64(a[j]) * uint64(b)
		t[j] = Word(prod)
		prod >>= 32
	}
	t[Len] = Word(prod)

	msw := t[Len-1] & msb0Mask
	prod = uint64(constC) * uint64(t[Len-1]>>31)
	// prod is either 0 or c

	prod += uint64(t[Len])*(uint64(constC)<<1) + uint64(t[0])
	r[0] = Word(prod)
	prod >>= 32

	for i := 1; i < Len-1; i++ {
		prod += uint64(t[i])
		r[i] = Word(prod)
		prod >>= 32
	}
	r[Len-1] = Word(prod) + msw
}

// Mul sets r = a*b mod p, with r in [0, 2p-1]. The operand-scanning
// multiply produces a 16-limb product t (the first outer iteration writes
// rather than accumulates, avoiding a zero-initialization pass over t).
// Reduction then proceeds in two steps: the first folds the high 8 limbs
// of t back into the low 8 (scaled by 2c, per the pseudo-Mersenne
// identity), leaving a value that fits in at most 63 bits; the second step
// is the same top-limb split used by Add.
func Mul(r, a, b *Element) {
	var t [2 * Len]Word
	var prod uint64

	for j := 0; j < Len; j++ {
		prod += uint64(a[j]) * uint64(b[0])
		t[j] = Word(prod)
		prod >>= 32
	}
	t[Len] = Word(prod)

	for i := 1; i < Len; i++ {
		prod = 0
		for j := 0; j < Len; j++ {
			prod += uint64(a[j])*uint64(b[i]) + uint64(t[i+j])
			t[i+j] = Word(prod)
			prod >>= 32
		}
		t[i+Len] = Word(prod)
	}

	reduceWide(r, &t)
}

// Square sets r = a*a mod p, with r in [0, 2p-1]. Like Mul, but the nested
// loop computes only the off-diagonal partial products a[j]*a[i] for j>i,
// each exactly once; a separate doubling pass then folds in both the
// doubled off-diagonal terms and the (undoubled) diagonal squares a[i]^2.
// Reduction is identical to Mul's.
func Square(r, a *Element) {
	var t [2 * Len]Word
	var prod, sum uint64

	t[0] = 0
	for j := 1; j < Len; j++ {
		prod += uint64(a[j]) * uint64(a[0])
		t[j] = Word(prod)
		prod >>= 32
	}
	t[Len] = Word(prod)

	for i := 1; i < Len; i++ {
		prod = 0
		for j := i + 1; j < Len; j++ {
			prod += uint64(a[j])*uint64(a[i]) + uint64(t[i+j])
			t[i+j] = Word(prod)
			prod >>= 32
		}
		t[i+Len] = Word(prod)
	}

	for i := 0; i < Len; i++ {
		prod = uint64(a[i]) * uint64(a[i])
		sum += uint64(Word(prod))
		sum += uint64(t[2*i]) + uint64(t[2*i])
		t[2*i] = Word(sum)
		sum >>= 32
		sum += uint64(Word(prod >> 32))
		sum += uint64(t[2*i+1]) + uint64(t[2*i+1])
		t[2*i+1] = Word(sum)
		sum >>= 32
	}

	reduceWide(r, &t)
}

// reduceWide performs the shared two-step pseudo-Mersenne reduction used by
// Mul and Square on a 2*Len-limb product t, writing the Len-limb result
// (in [0, 2p-1]) into r.
func reduceWide(r *Element, t *[2 * Len]Word) {
	var prod uint64
	for i := 0; i < Len-1; i++ {
		prod += uint64(t[i+Len])*(uint64(constC)<<1) + uint64(t[i])
		t[i] = Word(prod)
		prod >>= 32
	}
	prod += uint64(t[2*Len-1])*(uint64(constC)<<1) + uint64(t[Len-1])
	// prod is in [0, 2^63-1]

	msw := Word(prod) & msb0Mask
	prod = uint64(constC) * (prod >> 31)
	for i := 0; i < Len-1; i++ {
		prod += uint64(t[i])
		r[i] = Word(prod)
		prod >>= 32
	}
	r[Len-1] = msw + Word(prod)
}

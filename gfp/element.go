// Package gfp implements arithmetic in the prime field GF(p), p = 2^255-19
// (the field underlying X25519 and Ed25519), represented as eight 32-bit
// limbs, limb 0 least significant.
//
// Every arithmetic primitive below accepts incompletely reduced operands
// (any value in [0, 2^256-1]) and guarantees a result in [0, 2p-1]. Callers
// that need the canonical least non-negative residue call FullReduce. This
// "lazy reduction" lets callers chain several primitives before paying for
// a full reduction, at the cost of the extra headroom bit every operation
// must carry.
//
// Apart from Inverse, every function here is branch-free over its Word
// inputs: the instruction sequence executed depends only on the fixed limb
// count, never on operand values. Inverse is explicitly variable-time; see
// its doc comment.
package gfp

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/ok-john/m25519/mpi"
)

// Word is the 32-bit limb type shared with package mpi.
type Word = mpi.Word

// Len is the fixed limb count of a field element: p = 2^255-19 needs 255
// bits, which rounds up to 8 words of 32 bits.
const Len = 8

// Element is a field element in GF(p), an 8-limb array in [0, 2p-1] (or,
// after FullReduce, in [0, p-1]). The zero value is the additive identity.
type Element [Len]Word

const (
	constK = 255
	constC = 19

	allOnesMask Word = 0xFFFFFFFF
	msb0Mask    Word = 0x7FFFFFFF
	msb1Mask    Word = 0x80000000
	min4Mask    Word = 0xFFFFFFFC // -4 in two's complement
	negCWord    Word = ^Word(constC) + 1 // -c in two's complement, 0xFFFFFFED
)

// SetP sets r to the prime p = 2^255 - 19, i.e. p[7]=0x7FFFFFFF,
// p[6..1]=0xFFFFFFFF, p[0]=0xFFFFFFED.
func SetP(r *Element) {
	r[Len-1] = msb0Mask
	for i := Len - 2; i > 0; i-- {
		r[i] = allOnesMask
	}
	r[0] = negCWord
}

// ComparePrime orders the (possibly incompletely reduced) value of a
// against p, returning +1 if a > p, 0 if a == p, and -1 if a < p. Execution
// is branch-free in a's limbs: the less-than/greater-than accumulators are
// built by scanning from the most-significant limb down, exactly mirroring
// mpi.Compare's bit-packed technique specialized to the known value of p.
func ComparePrime(a *Element) int {
	lt := b2w(a[Len-1] < msb0Mask)
	gt := b2w(a[Len-1] > msb0Mask)

	for i := Len - 2; i > 0; i-- {
		lt = (lt << 1) | b2w(a[i] < allOnesMask)
		gt <<= 1
	}
	lt = (lt << 1) | b2w(a[0] < negCWord)
	gt = (gt << 1) | b2w(a[0] > negCWord)

	r := 0
	if gt > lt {
		r = 1
	} else if lt > gt {
		r = -1
	}
	return r
}

func b2w(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = Element{}
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = Element{}
	v[0] = 1
	return v
}

// Bytes encodes v as 32 little-endian bytes, four per limb, limb 0 first.
func (v *Element) Bytes() []byte {
	b := make([]byte, 4*Len)
	for i, w := range v {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// ConstantTimeEqual reports whether v and a hold the same limbs, in time
// independent of where (or whether) they differ. Both operands must
// already be in canonical form (see FullReduce); this compares limb
// patterns, not residues mod p, so two incompletely-reduced values that
// are congruent mod p but not limb-identical compare unequal.
func (v *Element) ConstantTimeEqual(a *Element) bool {
	return subtle.ConstantTimeCompare(v.Bytes(), a.Bytes()) == 1
}

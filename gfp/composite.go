package gfp

import "github.com/ok-john/m25519/mpi"

// FullReduce sets r to the canonical least non-negative residue of a, i.e.
// r is in [0, p-1] and r ≡ a (mod p). Every elementary operation in this
// package produces output in [0, 2p-1], for which a single subtraction of
// p would suffice, but FullReduce accepts any value an external caller
// might hand in, so two subtract-and-conditionally-readd passes are run:
// the second one covers inputs of 2p or more (up to 2^256-1 = 2p+37).
func FullReduce(r, a *Element) {
	var p Element
	SetP(&p)
	borrow := mpi.Sub(r[:], a[:], p[:])
	mpi.CondAdd(r[:], r[:], p[:], borrow)
	borrow = mpi.Sub(r[:], r[:], p[:])
	mpi.CondAdd(r[:], r[:], p[:], borrow)
}

// Compare orders the (possibly incompletely reduced) values of a and b,
// returning +1 if a > b, 0 if a == b, and -1 if a < b. Both operands are
// fully reduced into scratch space before the comparison, so the result
// reflects the residues mod p, not the raw limb patterns.
func Compare(a, b *Element) int {
	var ar, br Element
	FullReduce(&ar, a)
	FullReduce(&br, b)
	return mpi.Compare(ar[:], br[:])
}

// InversionError reports that Inverse was asked to invert 0, which has no
// multiplicative inverse modulo p.
type InversionError struct{}

func (InversionError) Error() string {
	return "gfp: 0 has no multiplicative inverse mod p"
}

// Inverse computes r = a^-1 mod p using a length-tracking binary extended
// Euclidean algorithm, and returns an error (an InversionError) if a is
// congruent to 0 mod p.
//
// State: ux and vx carry the running remainders, x1 and x2 the running
// GF(p) coefficients. Initially ux=a, vx=p, x1=1, x2=0. A limb count
// uvlen, initially Len, tracks the maximum significant length still in use
// by ux and vx; once both operands' top word at that length go to 0,
// uvlen is decremented. This is a pure optimization: fixing uvlen at Len
// throughout still produces the correct (if slower) result.
//
// Inverse's running time depends on a: the number of loop iterations and
// which branch each one takes are both functions of a's value, not just
// its size. Callers who invert a secret value and need to resist timing
// attacks must multiplicatively blind it themselves: multiply a by a
// field element unknown to the attacker before inverting, then multiply
// the unblinded inverse back out. Inverse performs no blinding on its own.
func Inverse(a *Element) (Element, error) {
	var ux, vx, x1, x2 Element
	mpi.Copy(ux[:], a[:])
	SetP(&vx)
	x1.One()

	for mpi.Compare(ux[:], vx[:]) >= 0 {
		mpi.Sub(ux[:], ux[:], vx[:])
	}
	if mpi.CompareWord(ux[:], 0) == 0 {
		return Element{}, InversionError{}
	}

	uvlen := Len
	for mpi.CompareWord(ux[:uvlen], 1) != 0 && mpi.CompareWord(vx[:uvlen], 1) != 0 {
		for ux[0]&1 == 0 {
			mpi.ShiftRight1(ux[:uvlen], ux[:uvlen])
			Halve(&x1, &x1)
		}
		for vx[0]&1 == 0 {
			mpi.ShiftRight1(vx[:uvlen], vx[:uvlen])
			Halve(&x2, &x2)
		}
		// ux and vx are now both odd
		if mpi.Compare(ux[:uvlen], vx[:uvlen]) >= 0 {
			mpi.Sub(ux[:uvlen], ux[:uvlen], vx[:uvlen])
			Subtract(&x1, &x1, &x2)
		} else {
			mpi.Sub(vx[:uvlen], vx[:uvlen], ux[:uvlen])
			Subtract(&x2, &x2, &x1)
		}
		if ux[uvlen-1] == 0 && vx[uvlen-1] == 0 {
			uvlen--
		}
	}

	if mpi.CompareWord(ux[:], 1) == 0 {
		return x1, nil
	}
	return x2, nil
}

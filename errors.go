// Package m25519 is the public façade over the GF(p) field-arithmetic
// engine (package gfp) and its MPI substrate (package mpi): the Point
// boundary type consumed by curve-level code, the legacy OR-combinable
// error codes, and the hex/test-vector I/O helpers used by the test
// harness.
package m25519

import "fmt"

// Error is a bitmask of error codes, mirroring the M25519_ERR_* constants
// of the reference implementation this package was ported from. Distinct
// error conditions occupy distinct bits so callers can OR several together.
// This package's own arithmetic only ever produces NoError or ErrInversion;
// the remaining codes are reserved for the curve and point-encoding layers
// built on top of it.
type Error int

// Error codes, unchanged bit values from the reference implementation.
const (
	NoError            Error = 0
	ErrHexString       Error = 1
	ErrInversion       Error = 2
	ErrMontgomeryPoint Error = 4
	ErrEdwardsPoint    Error = 8
	ErrScalar          Error = 16
	ErrTestVectorFile  Error = 32
)

func (e Error) Error() string {
	switch e {
	case NoError:
		return "m25519: no error"
	case ErrHexString:
		return "m25519: malformed hex string"
	case ErrInversion:
		return "m25519: inversion of zero"
	case ErrMontgomeryPoint:
		return "m25519: malformed Montgomery point"
	case ErrEdwardsPoint:
		return "m25519: malformed twisted Edwards point"
	case ErrScalar:
		return "m25519: invalid scalar"
	case ErrTestVectorFile:
		return "m25519: test-vector file error"
	default:
		return fmt.Sprintf("m25519: error code %d", int(e))
	}
}

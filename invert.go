package m25519

import (
	"errors"

	"github.com/ok-john/m25519/gfp"
)

// Invert computes a^-1 mod p, adapting gfp.Inverse's InversionError to the
// legacy ErrInversion bitmask so callers that match on Error (rather than
// on gfp.InversionError) keep working across this boundary.
func Invert(a *gfp.Element) (gfp.Element, error) {
	r, err := gfp.Inverse(a)
	if err != nil {
		var invErr gfp.InversionError
		if errors.As(err, &invErr) {
			return gfp.Element{}, ErrInversion
		}
		return gfp.Element{}, err
	}
	return r, nil
}

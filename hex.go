package m25519

import (
	"strings"

	"github.com/ok-john/m25519/gfp"
	"github.com/ok-john/m25519/mpi"
)

const hexDigits = "0123456789ABCDEF"

// wordHexDigits is the number of hex digits in one 32-bit Word.
const wordHexDigits = 8

// FromHex parses a "0x"-prefixed, big-endian hex string into r, filling
// the least-significant limbs first (the string is consumed right to
// left, one Word's worth of 8 hex digits at a time) and zero-padding any limbs
// beyond what the string supplied. It returns ErrHexString if hexStr is
// too short, missing the "0x" prefix, or contains a non-hex digit.
func FromHex(r []mpi.Word, hexStr string) error {
	if len(hexStr) < 3 {
		return ErrHexString
	}
	if hexStr[0] != '0' || (hexStr[1] != 'x' && hexStr[1] != 'X') {
		return ErrHexString
	}
	body := hexStr[2:]

	i := 0
	for len(body) > 0 && i < len(r) {
		chunk := wordHexDigits
		if chunk > len(body) {
			chunk = len(body)
		}
		piece := body[len(body)-chunk:]
		body = body[:len(body)-chunk]

		w, err := parseHexWord(piece)
		if err != nil {
			return err
		}
		r[i] = w
		i++
	}
	for ; i < len(r); i++ {
		r[i] = 0
	}
	return nil
}

func parseHexWord(s string) (mpi.Word, error) {
	var w mpi.Word
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v mpi.Word
		switch {
		case c >= '0' && c <= '9':
			v = mpi.Word(c - '0')
		case c >= 'a' && c <= 'f':
			v = mpi.Word(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = mpi.Word(c-'A') + 10
		default:
			return 0, ErrHexString
		}
		w = (w << 4) | v
	}
	return w, nil
}

// ToHex renders a as a "0x"-prefixed, big-endian hex string: the
// most-significant limb (the last element of a) comes first, each
// rendered as exactly wordHexDigits uppercase hex digits.
func ToHex(a []mpi.Word) string {
	var b strings.Builder
	b.Grow(2 + len(a)*wordHexDigits)
	b.WriteString("0x")

	for i := len(a) - 1; i >= 0; i-- {
		var digits [wordHexDigits]byte
		w := a[i]
		for j := wordHexDigits - 1; j >= 0; j-- {
			digits[j] = hexDigits[w&0xf]
			w >>= 4
		}
		b.Write(digits[:])
	}
	return b.String()
}

// ElementFromHex parses a "0x"-prefixed hex string into a gfp.Element.
func ElementFromHex(hexStr string) (gfp.Element, error) {
	var e gfp.Element
	if err := FromHex(e[:], hexStr); err != nil {
		return gfp.Element{}, err
	}
	return e, nil
}

// ElementToHex renders a gfp.Element as a "0x"-prefixed hex string.
func ElementToHex(a *gfp.Element) string {
	return ToHex(a[:])
}

package m25519

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hex64 builds a 64-hex-digit, "0x"-prefixed string whose value is the
// given suffix, zero-padded on the left.
func hex64(suffix string) string {
	return "0x" + strings.Repeat("0", 64-len(suffix)) + suffix
}

func TestHexRoundTrip(t *testing.T) {
	in := hex64("1")
	e, err := ElementFromHex(in)
	require.NoError(t, err)
	assert.Equal(t, in, ElementToHex(&e))
}

func TestElementFromHexKnownValue(t *testing.T) {
	e, err := ElementFromHex(hex64("5"))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), e[0])
	for _, w := range e[1:] {
		assert.Zero(t, w)
	}
}

func TestFromHexShortPads(t *testing.T) {
	var r [8]uint32
	err := FromHex(r[:], "0xFF")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF), r[0])
	for _, w := range r[1:] {
		assert.Zero(t, w)
	}
}

func TestFromHexRejectsMalformed(t *testing.T) {
	var r [8]uint32

	cases := []string{
		"",
		"0",
		"0xG1",
		"1x00",
	}
	for _, c := range cases {
		err := FromHex(r[:], c)
		assert.Equal(t, ErrHexString, err, "input %q", c)
	}
}

func TestToHexUppercase(t *testing.T) {
	e, err := ElementFromHex(hex64("abcdef01"))
	require.NoError(t, err)
	out := ElementToHex(&e)
	assert.Equal(t, hex64("ABCDEF01"), out)
}

package m25519

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ok-john/m25519/gfp"
)

func TestInvertZeroReturnsErrInversion(t *testing.T) {
	var zero gfp.Element
	_, err := Invert(&zero)
	assert.Equal(t, ErrInversion, err)
}

func TestInvertRoundTrip(t *testing.T) {
	var two gfp.Element
	two[0] = 2

	inv, err := Invert(&two)
	require.NoError(t, err)

	var product gfp.Element
	gfp.Mul(&product, &two, &inv)

	var reduced, one gfp.Element
	gfp.FullReduce(&reduced, &product)
	one.One()
	assert.Equal(t, one, reduced)
}

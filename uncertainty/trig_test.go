package uncertainty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSin(t *testing.T) {
	assertQuantity(t, Sin(New(0, 0.1)), 0, 0.1)
	assertQuantity(t, Sin(New(math.Pi, 0.1)), 0, 0.1)
	assertQuantity(t, Sin(New(math.Pi/2, 0.1)), 1, 0)
}

func TestCos(t *testing.T) {
	assertQuantity(t, Cos(New(0, 0.1)), 1, 0)
	assertQuantity(t, Cos(New(math.Pi/2, 0.1)), 0, 0.1)
	assertQuantity(t, Cos(New(-math.Pi/2, 0.1)), 0, 0.1)
}

func TestTan(t *testing.T) {
	t.Run("at zero", func(t *testing.T) {
		res, err := Tan(New(0, 0.1))
		require.NoError(t, err)
		assertQuantity(t, res, 0, 0.1)
	})

	t.Run("at pi over four", func(t *testing.T) {
		res, err := Tan(New(math.Pi/4, 0.1))
		require.NoError(t, err)
		assertQuantity(t, res, 1, 0.2)
	})

	t.Run("near the pole is large but finite", func(t *testing.T) {
		res, err := Tan(New(math.Pi/2, 0.1))
		require.NoError(t, err)
		assert.False(t, math.IsInf(res.Uncertainty(), 0))
		assert.Greater(t, res.Uncertainty(), 1e30)
	})
}

func TestTrig(t *testing.T) {
	x := New(0.3, 0.01)

	for _, name := range []string{"sin", "cos", "tan", "SIN"} {
		_, err := Trig(name, x)
		assert.NoError(t, err, name)
	}

	res, err := Trig("cos", x)
	require.NoError(t, err)
	assert.Equal(t, Cos(x), res)

	_, err = Trig("sec", x)
	assert.Error(t, err)
}

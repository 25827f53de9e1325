package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed(t *testing.T) {
	t.Run("known digest prefix", func(t *testing.T) {
		assert.Equal(t, uint64(2419458423877675328), DeriveSeed("predicao_venda", 12, 2025))
		assert.Equal(t, uint64(16034524408597629014), DeriveSeed("classificacao_cliente", "11144477735"))
	})

	t.Run("stable across calls", func(t *testing.T) {
		a := DeriveSeed("predicao_demanda", "SKU-1", "2025-01", "2025-03")
		b := DeriveSeed("predicao_demanda", "SKU-1", "2025-01", "2025-03")
		assert.Equal(t, a, b)
	})

	t.Run("order and tag matter", func(t *testing.T) {
		assert.NotEqual(t, DeriveSeed("t", 1, 2), DeriveSeed("t", 2, 1))
		assert.NotEqual(t, DeriveSeed("a", 1), DeriveSeed("b", 1))
	})

	t.Run("ints and their decimal strings agree", func(t *testing.T) {
		assert.Equal(t, DeriveSeed("t", 7, 1999), DeriveSeed("t", "7", "1999"))
	})
}

func TestConfidenceBounds(t *testing.T) {
	seeds := []uint64{0, 1, 9999, 10000, 123456789, math.MaxUint64, math.MaxUint64 - 1}
	for i := uint64(0); i < 10000; i += 37 {
		seeds = append(seeds, i)
	}
	for _, s := range seeds {
		c := Confidence(s)
		assert.GreaterOrEqual(t, c, ConfidenceLow)
		assert.LessOrEqual(t, c, ConfidenceHigh)
	}
	assert.Equal(t, 0.6, Confidence(0))
	assert.Equal(t, 0.98, Confidence(9999))
}

func TestConfidenceBetween(t *testing.T) {
	assert.Equal(t, 0.5, ConfidenceBetween(5000, 0, 1))
	assert.Equal(t, 0.25, ConfidenceBetween(2500, 0, 1))
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.333, Round3(1.0/3.0))
	assert.Equal(t, -0.333, Round3(-1.0/3.0))
	assert.Equal(t, 0.667, Round3(2.0/3.0))
	assert.Equal(t, 0.062, Round3(0.0625))
	assert.Equal(t, 1.0, Round3(1))
}

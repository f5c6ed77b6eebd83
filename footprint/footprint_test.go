package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeExample(t *testing.T) {
	b := Compute(10, 100, 3, 2)

	assert.InDelta(t, 2.1, b.Transport, 1e-9)
	assert.InDelta(t, 50.0, b.Energy, 1e-9)
	assert.InDelta(t, 7.5, b.Food, 1e-9)
	assert.InDelta(t, 20.0, b.Waste, 1e-9)
	assert.InDelta(t, 79.6, b.Total, 1e-9)
}

func TestComputeTotalIsSumOfCategories(t *testing.T) {
	cases := []struct {
		transport, energy float64
		food, waste       int
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{12.5, 33.3, 4, 0},
		{1000, 250.75, 5, 5},
		{0.01, 0.02, 0, 3},
	}
	for _, c := range cases {
		b := Compute(c.transport, c.energy, c.food, c.waste)
		want := c.transport*TransportFactor + c.energy*EnergyFactor +
			float64(c.food)*FoodFactor + float64(c.waste)*WasteFactor
		assert.InDelta(t, want, b.Total, 1e-9)
	}
}

func TestComputeZeroInputs(t *testing.T) {
	b := Compute(0, 0, 0, 0)
	assert.Zero(t, b.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.1, Round2(10*TransportFactor))
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 79.6, Round2(79.602))
	assert.Equal(t, 3.15, Round2(3.1459))
	assert.Equal(t, 0.0, Round2(0))
}

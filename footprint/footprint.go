// Package footprint computes CO2-equivalent emissions from the four
// activity inputs collected by the calculator page.
package footprint

import "math"

// Emission factors applied to the raw inputs. The source units are opaque
// scale factors tuned for the questionnaire (transport in distance units,
// energy in consumption units, food and waste in categorical scores), not
// physically dimensioned constants.
const (
	TransportFactor = 0.21
	EnergyFactor    = 0.5
	FoodFactor      = 2.5
	WasteFactor     = 10
)

// Breakdown holds the per-category emissions and their sum, all unrounded.
// Round only for display; the persisted total keeps full precision.
type Breakdown struct {
	Transport float64
	Energy    float64
	Food      float64
	Waste     float64
	Total     float64
}

// Compute derives the emission breakdown from the raw activity inputs.
func Compute(transport, energy float64, food, waste int) Breakdown {
	b := Breakdown{
		Transport: transport * TransportFactor,
		Energy:    energy * EnergyFactor,
		Food:      float64(food) * FoodFactor,
		Waste:     float64(waste) * WasteFactor,
	}
	b.Total = b.Transport + b.Energy + b.Food + b.Waste
	return b
}

// Round2 rounds a value to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

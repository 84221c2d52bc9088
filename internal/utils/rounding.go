package utils

import "math"

// Round1 rounds to one decimal place. Derived display values (means, rates,
// scores) are rounded this way for display stability; intermediate
// computation keeps full precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

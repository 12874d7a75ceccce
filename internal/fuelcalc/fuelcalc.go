// Package fuelcalc compares the cost of gasoline, ethanol and natural gas.
//
// Prices are never compared directly: each one is divided by the fuel's yield
// relative to gasoline, so the comparison is made on the cost of covering the
// same distance. Every operation validates its inputs first and is a pure
// function of them.
package fuelcalc

// RecommendFuel compares the per-unit cost of the fuels and renders the
// recommendation in the given mode.
func RecommendFuel(p Prices, mode OutputMode) (string, error) {
	c, err := Compare(p)
	if err != nil {
		return "", err
	}
	return RenderComparison(c, mode), nil
}

// CompareVolumeSavings renders how much each fuel costs to cover the distance
// of liters of gasoline.
func CompareVolumeSavings(p Prices, liters float64) (string, error) {
	v, err := CompareVolume(p, liters)
	if err != nil {
		return "", err
	}
	return RenderVolume(v), nil
}

// CompareTripCost renders the cost of trip with each fuel.
func CompareTripCost(trip Trip, p Prices) (string, error) {
	t, err := CompareTrip(trip, p)
	if err != nil {
		return "", err
	}
	return RenderTrip(t), nil
}

// FuelSavingTips returns the fixed fuel economy advice.
func FuelSavingTips() string {
	return tipsText
}

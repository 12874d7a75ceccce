package fuelcalc

import "slices"

// Trip describes a journey and the vehicle's gasoline consumption in km/L.
type Trip struct {
	Distance    float64
	Consumption float64
}

// TripLine is the cost of the trip with one fuel.
type TripLine struct {
	Fuel        Fuel
	Price       float64
	Consumption float64
	Quantity    float64
	Cost        float64
	CostPerKm   float64
	Savings     float64
	SavingsPct  float64

	normalized Cost
}

// TripComparison holds one line per present fuel, in priority order, and the
// same lines ranked by ascending cost. The ranking follows the per-unit
// normalized costs, so it matches Compare for the same prices.
type TripComparison struct {
	Trip    Trip
	Lines   []TripLine
	Ranking []TripLine
}

// CompareTrip validates the inputs and costs the trip with every present fuel.
func CompareTrip(t Trip, p Prices) (TripComparison, error) {
	if err := t.Validate(); err != nil {
		return TripComparison{}, err
	}
	if err := p.Validate(); err != nil {
		return TripComparison{}, err
	}

	gasolineCost := t.Distance / t.Consumption * p.Gasoline
	costs := normalizedCosts(p)
	lines := make([]TripLine, 0, len(costs))
	for _, n := range costs {
		price, _ := p.Price(n.Fuel)
		consumption := t.Consumption * n.Fuel.Yield()
		quantity := t.Distance / consumption
		cost := quantity * price
		line := TripLine{
			Fuel:        n.Fuel,
			Price:       price,
			Consumption: consumption,
			Quantity:    quantity,
			Cost:        cost,
			CostPerKm:   cost / t.Distance,
			Savings:     gasolineCost - cost,
			SavingsPct:  SavingsPercent(gasolineCost, cost),
			normalized:  n,
		}
		if n.Compare(costs[0]) == 0 {
			line.Savings, line.SavingsPct = 0, 0
		}
		lines = append(lines, line)
	}

	ranking := slices.Clone(lines)
	slices.SortStableFunc(ranking, func(a, b TripLine) int {
		return a.normalized.Compare(b.normalized)
	})

	return TripComparison{Trip: t, Lines: lines, Ranking: ranking}, nil
}

// Best is the cheapest fuel for the trip.
func (t TripComparison) Best() TripLine {
	return t.Ranking[0]
}

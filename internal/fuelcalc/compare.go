package fuelcalc

import "github.com/shopspring/decimal"

// Prices holds the nominal price of each fuel. Gas is optional; a nil Gas
// removes natural gas from every comparison.
type Prices struct {
	Gasoline float64
	Ethanol  float64
	Gas      *float64
}

// Price returns the nominal price of f and whether it was provided.
func (p Prices) Price(f Fuel) (float64, bool) {
	switch f {
	case Ethanol:
		return p.Ethanol, true
	case Gas:
		if p.Gas == nil {
			return 0, false
		}
		return *p.Gas, true
	default:
		return p.Gasoline, true
	}
}

// Present lists the fuels that have a price, in priority order.
func (p Prices) Present() []Fuel {
	if p.Gas == nil {
		return []Fuel{Gasoline, Ethanol}
	}
	return Fuels
}

// Float returns a pointer to v, for optional prices.
func Float(v float64) *float64 {
	return &v
}

// Normalize converts a nominal price into the cost of covering the distance of
// one liter of gasoline.
func Normalize(price, yield float64) float64 {
	return price / yield
}

// EquivalentVolume is the volume of a fuel with the given yield needed to cover
// the distance of baseVolume liters of gasoline.
func EquivalentVolume(baseVolume, yield float64) float64 {
	return baseVolume / yield
}

// Cost pairs a fuel with its yield-adjusted cost.
type Cost struct {
	Fuel  Fuel
	Value float64
	exact decimal.Decimal
}

// CostOf returns the yield-adjusted cost of price for f. Costs compare
// in decimal, so proportional prices such as 5.81 and 8.30 tie exactly.
func CostOf(f Fuel, price float64) Cost {
	return Cost{
		Fuel:  f,
		Value: Normalize(price, f.Yield()),
		exact: decimal.NewFromFloat(price).Div(decimal.NewFromFloat(f.Yield())),
	}
}

// Compare returns -1, 0 or +1 as c is cheaper than, equal to or dearer than o.
func (c Cost) Compare(o Cost) int {
	return c.exact.Cmp(o.exact)
}

// PickBest returns the cheapest cost. costs must be in priority order and
// non-empty; a later fuel only wins when it is strictly cheaper, so ties keep
// the earlier one.
func PickBest(costs []Cost) Cost {
	best := costs[0]
	for _, c := range costs[1:] {
		if c.Compare(best) < 0 {
			best = c
		}
	}
	return best
}

// normalizedCosts returns the cost of every present fuel, in priority order.
func normalizedCosts(p Prices) []Cost {
	present := p.Present()
	costs := make([]Cost, 0, len(present))
	for _, f := range present {
		price, _ := p.Price(f)
		costs = append(costs, CostOf(f, price))
	}
	return costs
}

// SavingsPercent is the relative saving of alt over base; negative means a loss.
func SavingsPercent(base, alt float64) float64 {
	return (base - alt) / base * 100
}

// Comparison is the per-unit, yield-adjusted comparison of the given prices.
type Comparison struct {
	Prices     Prices
	Normalized []Cost
	Best       Cost
}

// Compare validates p and ranks the fuels by normalized cost.
func Compare(p Prices) (Comparison, error) {
	if err := p.Validate(); err != nil {
		return Comparison{}, err
	}

	normalized := normalizedCosts(p)
	return Comparison{
		Prices:     p,
		Normalized: normalized,
		Best:       PickBest(normalized),
	}, nil
}

// Cost returns the normalized cost of f and whether f was compared.
func (c Comparison) Cost(f Fuel) (Cost, bool) {
	for _, n := range c.Normalized {
		if n.Fuel == f {
			return n, true
		}
	}
	return Cost{}, false
}

// NormalizedCost returns the normalized cost of f and whether f was compared.
func (c Comparison) NormalizedCost(f Fuel) (float64, bool) {
	n, ok := c.Cost(f)
	return n.Value, ok
}

// Savings returns the percentage f saves over gasoline's normalized cost. A
// fuel tied with gasoline saves exactly zero.
func (c Comparison) Savings(f Fuel) (float64, bool) {
	cost, ok := c.Cost(f)
	if !ok {
		return 0, false
	}
	base := c.Normalized[0]
	if cost.Compare(base) == 0 {
		return 0, true
	}
	return SavingsPercent(base.Value, cost.Value), true
}

// Viable lists gasoline followed by every alternative strictly cheaper than it.
func (c Comparison) Viable() []Fuel {
	viable := []Fuel{Gasoline}
	for _, n := range c.Normalized[1:] {
		if n.Compare(c.Normalized[0]) < 0 {
			viable = append(viable, n.Fuel)
		}
	}
	return viable
}

// PriceRatio is the nominal price of f as a percentage of the gasoline price.
// Reports use it to explain a result; it never decides one.
func (c Comparison) PriceRatio(f Fuel) float64 {
	price, _ := c.Prices.Price(f)
	return price / c.Prices.Gasoline * 100
}

package fuelcalc

// VolumeLine is the cost of covering the reference distance with one fuel.
type VolumeLine struct {
	Fuel     Fuel
	Price    float64
	Quantity float64
	Cost     float64
	// Savings is the gasoline cost minus Cost; negative is a loss.
	Savings float64
}

// VolumeComparison compares the cost of the distance covered by Liters of gasoline.
type VolumeComparison struct {
	Liters float64
	Lines  []VolumeLine
	Best   VolumeLine
}

// CompareVolume validates the inputs and prices the yield-equivalent volume of
// every present fuel. The winner is the per-unit winner for the same prices;
// a fuel tied with gasoline reports zero savings.
func CompareVolume(p Prices, liters float64) (VolumeComparison, error) {
	if err := p.Validate(); err != nil {
		return VolumeComparison{}, err
	}
	if err := LitersBounds.Check("liters", liters); err != nil {
		return VolumeComparison{}, err
	}

	gasolineCost := p.Gasoline * liters
	costs := normalizedCosts(p)
	lines := make([]VolumeLine, 0, len(costs))
	for _, n := range costs {
		price, _ := p.Price(n.Fuel)
		quantity := EquivalentVolume(liters*GasolineYield, n.Fuel.Yield())
		cost := price * quantity
		line := VolumeLine{
			Fuel:     n.Fuel,
			Price:    price,
			Quantity: quantity,
			Cost:     cost,
			Savings:  gasolineCost - cost,
		}
		if n.Compare(costs[0]) == 0 {
			line.Savings = 0
		}
		lines = append(lines, line)
	}

	best := PickBest(costs)
	return VolumeComparison{
		Liters: liters,
		Lines:  lines,
		Best:   lines[indexOf(costs, best.Fuel)],
	}, nil
}

// Line returns the line for f and whether f was compared.
func (v VolumeComparison) Line(f Fuel) (VolumeLine, bool) {
	for _, l := range v.Lines {
		if l.Fuel == f {
			return l, true
		}
	}
	return VolumeLine{}, false
}

// GasolineCost is the cost of the reference volume of gasoline.
func (v VolumeComparison) GasolineCost() float64 {
	return v.Lines[0].Cost
}

func indexOf(costs []Cost, f Fuel) int {
	for i, c := range costs {
		if c.Fuel == f {
			return i
		}
	}
	return 0
}

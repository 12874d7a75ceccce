package fuelcalc

// Bounds is an inclusive numeric range.
type Bounds struct {
	Min float64
	Max float64
}

var (
	PriceBounds       = Bounds{Min: 2.5, Max: 10.0}
	LitersBounds      = Bounds{Min: 1, Max: 1000}
	DistanceBounds    = Bounds{Min: 1, Max: 10000}
	ConsumptionBounds = Bounds{Min: 3, Max: 30}
)

// Contains reports whether v lies inside b. NaN is never contained.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Check returns a ValidationError naming field when v is outside b.
func (b Bounds) Check(field string, v float64) error {
	if !b.Contains(v) {
		return &ValidationError{Field: field, Value: v, Bounds: b}
	}
	return nil
}

// Validate checks every present price against PriceBounds.
func (p Prices) Validate() error {
	if err := PriceBounds.Check("gasoline_price", p.Gasoline); err != nil {
		return err
	}
	if err := PriceBounds.Check("ethanol_price", p.Ethanol); err != nil {
		return err
	}
	if p.Gas != nil {
		if err := PriceBounds.Check("gas_price", *p.Gas); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the trip distance and the gasoline consumption rate.
func (t Trip) Validate() error {
	if err := DistanceBounds.Check("distance", t.Distance); err != nil {
		return err
	}
	return ConsumptionBounds.Check("gasoline_consumption", t.Consumption)
}

package fuelcalc

import "strings"

// Fuel identifies one of the fuels the calculator compares.
type Fuel int

const (
	Gasoline Fuel = iota
	Ethanol
	Gas
)

// Yield of each fuel relative to one unit of gasoline.
const (
	GasolineYield = 1.0
	EthanolYield  = 0.7
	GasYield      = 0.6
)

// Fuels lists every fuel in tie-break priority order.
var Fuels = []Fuel{Gasoline, Ethanol, Gas}

// Yield returns the distance one unit of f delivers compared to one liter of gasoline.
func (f Fuel) Yield() float64 {
	switch f {
	case Ethanol:
		return EthanolYield
	case Gas:
		return GasYield
	default:
		return GasolineYield
	}
}

func (f Fuel) String() string {
	switch f {
	case Ethanol:
		return "ethanol"
	case Gas:
		return "gas"
	default:
		return "gasoline"
	}
}

// Label is the human readable name used in reports.
func (f Fuel) Label() string {
	switch f {
	case Ethanol:
		return "Ethanol"
	case Gas:
		return "CNG"
	default:
		return "Gasoline"
	}
}

// inlineLabel is Label as written mid-sentence; the CNG acronym stays upper case.
func (f Fuel) inlineLabel() string {
	if f == Gas {
		return f.Label()
	}
	return strings.ToLower(f.Label())
}

// Unit is the volume unit prices are quoted in.
func (f Fuel) Unit() string {
	if f == Gas {
		return "m³"
	}
	return "L"
}

func (f Fuel) icon() string {
	switch f {
	case Ethanol:
		return "⛽"
	case Gas:
		return "🔵"
	default:
		return "🚗"
	}
}

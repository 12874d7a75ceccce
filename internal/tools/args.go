package tools

import (
	"encoding/json"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
)

// number decodes and bound-checks a numeric parameter. It returns nil for an
// absent optional parameter.
func (a Args) number(p Param) (*float64, error) {
	raw, ok := a[p.Name]
	if !ok || raw == nil {
		if p.Required {
			return nil, fuelcalc.Missing(p.Name)
		}
		return nil, nil
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fuelcalc.Invalid(p.Name, "must be a number")
		}
		v = f
	default:
		return nil, fuelcalc.Invalid(p.Name, "must be a number")
	}

	if err := p.Bounds.Check(p.Name, v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a Args) prices() (fuelcalc.Prices, error) {
	g, err := a.number(gasolinePrice)
	if err != nil {
		return fuelcalc.Prices{}, err
	}
	e, err := a.number(ethanolPrice)
	if err != nil {
		return fuelcalc.Prices{}, err
	}
	gas, err := a.number(gasPrice)
	if err != nil {
		return fuelcalc.Prices{}, err
	}
	return fuelcalc.Prices{Gasoline: *g, Ethanol: *e, Gas: gas}, nil
}

func (a Args) outputMode() (fuelcalc.OutputMode, error) {
	raw, ok := a[outputMode.Name]
	if !ok || raw == nil {
		return fuelcalc.ModeFull, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fuelcalc.Invalid(outputMode.Name, "must be a string")
	}
	return fuelcalc.ParseOutputMode(s)
}

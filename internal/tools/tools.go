// Package tools exposes the fuel calculator operations as named tools that take
// loosely typed argument maps, the shape every transport decodes requests into.
package tools

import (
	"errors"
	"fmt"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/pkg/api"
)

const (
	RecommendFuel        = api.ToolRecommendFuel
	CompareVolumeSavings = api.ToolCompareVolumeSavings
	CompareTripCost      = api.ToolCompareTripCost
	FuelSavingTips       = api.ToolFuelSavingTips
)

// Version is reported by the health descriptor and the MCP server.
const Version = "2.0.0"

// ErrUnknownTool is returned by Call for names not in the registry.
var ErrUnknownTool = errors.New("unknown tool")

// Args are the decoded arguments of a tool call.
type Args map[string]any

// Param declares one tool argument.
type Param struct {
	Name        string
	Description string
	Required    bool
	Bounds      *fuelcalc.Bounds
	Enum        []string
	Default     string
}

// Number reports whether the parameter takes a numeric value.
func (p Param) Number() bool {
	return p.Bounds != nil
}

// Tool is a named operation with its parameter declarations.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	run         func(Args) (api.ToolResult, error)
}

var (
	gasolinePrice = Param{
		Name:        "gasoline_price",
		Description: "Gasoline price per liter (R$)",
		Required:    true,
		Bounds:      &fuelcalc.PriceBounds,
	}
	ethanolPrice = Param{
		Name:        "ethanol_price",
		Description: "Ethanol price per liter (R$)",
		Required:    true,
		Bounds:      &fuelcalc.PriceBounds,
	}
	gasPrice = Param{
		Name:        "gas_price",
		Description: "Natural gas (CNG) price per m³ (R$), optional",
		Bounds:      &fuelcalc.PriceBounds,
	}
	outputMode = Param{
		Name:        "output_mode",
		Description: `"full" for a detailed analysis, "summary" for a quick answer`,
		Enum:        fuelcalc.OutputModeNames(),
		Default:     string(fuelcalc.OutputModes[0]),
	}
	liters = Param{
		Name:        "liters",
		Description: "Liters of gasoline used as the reference distance",
		Required:    true,
		Bounds:      &fuelcalc.LitersBounds,
	}
	distance = Param{
		Name:        "distance",
		Description: "Trip distance in km",
		Required:    true,
		Bounds:      &fuelcalc.DistanceBounds,
	}
	consumption = Param{
		Name:        "gasoline_consumption",
		Description: "Vehicle consumption in km/L with gasoline",
		Required:    true,
		Bounds:      &fuelcalc.ConsumptionBounds,
	}
)

var registry = []Tool{
	{
		Name:        RecommendFuel,
		Description: "Determine which fuel is more economical, comparing gasoline, ethanol and CNG by yield-adjusted cost.",
		Params:      []Param{gasolinePrice, ethanolPrice, gasPrice, outputMode},
		run:         runRecommendFuel,
	},
	{
		Name:        CompareVolumeSavings,
		Description: "Calculate how much each fuel costs to cover the distance of a given volume of gasoline.",
		Params:      []Param{gasolinePrice, ethanolPrice, liters, gasPrice},
		run:         runCompareVolumeSavings,
	},
	{
		Name:        CompareTripCost,
		Description: "Compare fuel costs for a trip distance given the vehicle's gasoline consumption.",
		Params:      []Param{distance, consumption, gasolinePrice, ethanolPrice, gasPrice},
		run:         runCompareTripCost,
	},
	{
		Name:        FuelSavingTips,
		Description: "Get seven practical tips to save fuel.",
		run:         runFuelSavingTips,
	},
}

// List returns every tool in registration order.
func List() []Tool {
	return registry
}

// Names returns the names of every tool.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, t := range registry {
		names = append(names, t.Name)
	}
	return names
}

// Lookup finds a tool by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Call validates args and runs the named tool. Validation failures match
// fuelcalc.ErrValidation and nothing is computed.
func Call(name string, args Args) (api.ToolResult, error) {
	t, ok := Lookup(name)
	if !ok {
		return api.ToolResult{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = Args{}
	}
	return t.run(args)
}

// Health describes the service and the tools it offers.
func Health() api.HealthStatus {
	return api.HealthStatus{
		Status:  api.HealthOK,
		Version: Version,
		Tools:   Names(),
	}
}

// Info converts the registry into its wire description.
func Info() []api.ToolInfo {
	infos := make([]api.ToolInfo, 0, len(registry))
	for _, t := range registry {
		info := api.ToolInfo{Name: t.Name, Description: t.Description, Params: []api.ParamInfo{}}
		for _, p := range t.Params {
			pi := api.ParamInfo{
				Name:        p.Name,
				Description: p.Description,
				Required:    p.Required,
				Enum:        p.Enum,
				Default:     p.Default,
				Type:        "string",
			}
			if p.Number() {
				pi.Type = "number"
				pi.Min = fuelcalc.Float(p.Bounds.Min)
				pi.Max = fuelcalc.Float(p.Bounds.Max)
			}
			info.Params = append(info.Params, pi)
		}
		infos = append(infos, info)
	}
	return infos
}

func runRecommendFuel(args Args) (api.ToolResult, error) {
	prices, err := args.prices()
	if err != nil {
		return api.ToolResult{}, err
	}
	mode, err := args.outputMode()
	if err != nil {
		return api.ToolResult{}, err
	}

	c, err := fuelcalc.Compare(prices)
	if err != nil {
		return api.ToolResult{}, err
	}
	return api.ToolResult{
		Tool:           RecommendFuel,
		Text:           fuelcalc.RenderComparison(c, mode),
		Recommendation: c.Best.Fuel.String(),
	}, nil
}

func runCompareVolumeSavings(args Args) (api.ToolResult, error) {
	prices, err := args.prices()
	if err != nil {
		return api.ToolResult{}, err
	}
	l, err := args.number(liters)
	if err != nil {
		return api.ToolResult{}, err
	}

	v, err := fuelcalc.CompareVolume(prices, *l)
	if err != nil {
		return api.ToolResult{}, err
	}
	return api.ToolResult{
		Tool:           CompareVolumeSavings,
		Text:           fuelcalc.RenderVolume(v),
		Recommendation: v.Best.Fuel.String(),
	}, nil
}

func runCompareTripCost(args Args) (api.ToolResult, error) {
	d, err := args.number(distance)
	if err != nil {
		return api.ToolResult{}, err
	}
	c, err := args.number(consumption)
	if err != nil {
		return api.ToolResult{}, err
	}
	prices, err := args.prices()
	if err != nil {
		return api.ToolResult{}, err
	}

	trip, err := fuelcalc.CompareTrip(fuelcalc.Trip{Distance: *d, Consumption: *c}, prices)
	if err != nil {
		return api.ToolResult{}, err
	}
	return api.ToolResult{
		Tool:           CompareTripCost,
		Text:           fuelcalc.RenderTrip(trip),
		Recommendation: trip.Best().Fuel.String(),
	}, nil
}

func runFuelSavingTips(Args) (api.ToolResult, error) {
	return api.ToolResult{Tool: FuelSavingTips, Text: fuelcalc.FuelSavingTips()}, nil
}

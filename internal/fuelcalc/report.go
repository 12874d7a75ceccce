package fuelcalc

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// OutputMode selects the level of detail of a recommendation report.
type OutputMode string

const (
	ModeFull    OutputMode = "full"
	ModeSummary OutputMode = "summary"
)

// OutputModes lists the accepted modes, default first.
var OutputModes = []OutputMode{ModeFull, ModeSummary}

// ParseOutputMode maps s to an OutputMode. The empty string selects ModeFull.
func ParseOutputMode(s string) (OutputMode, error) {
	if s == "" {
		return OutputModes[0], nil
	}
	if slices.Contains(OutputModes, OutputMode(s)) {
		return OutputMode(s), nil
	}
	return "", Invalid("output_mode", "must be one of "+strings.Join(OutputModeNames(), ", "))
}

// OutputModeNames returns OutputModes as strings.
func OutputModeNames() []string {
	names := make([]string, len(OutputModes))
	for i, m := range OutputModes {
		names[i] = string(m)
	}
	return names
}

// RenderComparison renders c in the requested mode.
func RenderComparison(c Comparison, mode OutputMode) string {
	if mode == ModeSummary {
		return renderSummary(c)
	}
	return renderFull(c)
}

func renderSummary(c Comparison) string {
	savings := 0.0
	if c.Best.Fuel != Gasoline {
		savings, _ = c.Savings(c.Best.Fuel)
	}
	savingsText := "0.0%"
	if savings > 0 {
		savingsText = fmt.Sprintf("%.1f%%", savings)
	}

	viable := c.Viable()
	options := make([]string, 0, len(viable))
	for _, f := range viable {
		options = append(options, f.icon()+" "+f.Label())
	}

	lines := []string{
		fmt.Sprintf(text.SummaryFillUp, strings.ToUpper(c.Best.Fuel.Label())),
		fmt.Sprintf(text.SummarySavings, savingsText),
		fmt.Sprintf(text.SummaryViable, strings.Join(options, ", ")),
	}
	return strings.Join(lines, "\n")
}

func renderFull(c Comparison) string {
	best := c.Best.Fuel
	var b strings.Builder

	fmt.Fprintf(&b, text.FillUp, best.icon(), best.Label())
	b.WriteString("\n\n")
	b.WriteString(text.RealCostHeading)
	for _, n := range c.Normalized {
		price, _ := c.Prices.Price(n.Fuel)
		format := text.RealCostLineAlt
		if n.Fuel == Gasoline {
			format = text.RealCostLine
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, format, n.Fuel.Label(), price, n.Value)
	}
	b.WriteString("\n\n")

	if best == Gasoline {
		b.WriteString(text.NoAlternative)
		for _, n := range c.Normalized[1:] {
			ratio := c.PriceRatio(n.Fuel)
			breakEven := n.Fuel.Yield() * 100
			b.WriteString("\n")
			fmt.Fprintf(&b, text.BreakEven, n.Fuel.Label(), ratio, breakEven, zeroed(ratio-breakEven, 1))
		}
		b.WriteString("\n\n")
		b.WriteString(text.GasolineBest)
		return b.String()
	}

	savings, _ := c.Savings(best)
	base, _ := c.NormalizedCost(Gasoline)
	fmt.Fprintf(&b, text.CheaperThan, best.Label(), savings)
	b.WriteString("\n")
	fmt.Fprintf(&b, text.YieldNote, best.Label(), best.Yield()*100)
	if best == Ethanol {
		b.WriteString("\n")
		fmt.Fprintf(&b, text.PriceRatio, c.PriceRatio(Ethanol), EthanolYield*100)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, text.EstimatedSavings, base-c.Best.Value)
	return b.String()
}

// RenderVolume renders the cost breakdown of a volume comparison.
func RenderVolume(v VolumeComparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, text.VolumeHeading, formatNumber(v.Liters))
	b.WriteString("\n\n")
	b.WriteString(text.SameDistance)
	for _, l := range v.Lines {
		quantity := formatNumber(v.Liters)
		if l.Fuel != Gasoline {
			quantity = fmt.Sprintf("%.1f", l.Quantity)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, text.VolumeLine, l.Fuel.Label(), quantity, l.Fuel.Unit(), l.Price, l.Cost)
	}
	b.WriteString("\n\n")

	if v.Best.Fuel != Gasoline {
		fmt.Fprintf(&b, text.BestOption, strings.ToUpper(v.Best.Fuel.Label()))
		b.WriteString("\n")
		fmt.Fprintf(&b, text.SavingsAmount, v.Best.Savings)
		b.WriteString("\n")
		fmt.Fprintf(&b, text.SavingsPercent, v.Best.Savings/v.GasolineCost()*100)
		return b.String()
	}

	b.WriteString(text.NoSavings)
	for _, l := range v.Lines[1:] {
		// Exact ties can leave a loss far below one cent; those are not losses.
		if loss := -l.Savings; roundCents(loss) > 0 {
			b.WriteString("\n")
			fmt.Fprintf(&b, text.LossLine, l.Fuel.inlineLabel(), loss)
		}
	}
	b.WriteString("\n")
	b.WriteString(text.KeepGasoline)
	return b.String()
}

// RenderTrip renders the per-fuel trip costs and the ranked recommendation.
func RenderTrip(t TripComparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, text.TripHeading, formatNumber(t.Trip.Distance))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, text.TripConsumption, t.Trip.Consumption)
	b.WriteString("\n")

	for _, l := range t.Lines {
		b.WriteString("\n")
		fmt.Fprintf(&b, text.TripFuel, strings.ToUpper(l.Fuel.Label()))
		b.WriteString("\n")
		fmt.Fprintf(&b, text.TripQuantity, l.Quantity, l.Fuel.Unit(), l.Price, l.Cost)
		b.WriteString("\n")
		if l.Fuel != Gasoline {
			fmt.Fprintf(&b, text.TripSavings, l.Savings, l.SavingsPct)
			b.WriteString("\n")
			fmt.Fprintf(&b, text.TripRate, l.Consumption, l.Fuel.Unit())
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, text.TripCostPerKm, l.CostPerKm)
		b.WriteString("\n")
	}

	ranking := make([]string, 0, len(t.Ranking))
	for _, l := range t.Ranking {
		ranking = append(ranking, strings.ToUpper(l.Fuel.Label()))
	}
	best := t.Best()

	b.WriteString("\n")
	fmt.Fprintf(&b, text.TripRanking, strings.Join(ranking, " > "))
	b.WriteString("\n")
	fmt.Fprintf(&b, text.TripRecommend, strings.ToUpper(best.Fuel.Label()), best.Cost)
	return b.String()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// zeroed returns 0 for any v that prints as zero with the given decimals, so
// float error around a tie never renders as "-0.0".
func zeroed(v float64, decimals int) float64 {
	if math.Abs(v) < 0.5*math.Pow10(-decimals) {
		return 0
	}
	return v
}

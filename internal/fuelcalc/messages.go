package fuelcalc

// messages contains every fixed text fragment used by the reports.
type messages struct {
	// Summary
	SummaryFillUp  string
	SummarySavings string
	SummaryViable  string

	// Full comparison
	FillUp           string
	RealCostHeading  string
	RealCostLine     string
	RealCostLineAlt  string
	CheaperThan      string
	YieldNote        string
	PriceRatio       string
	EstimatedSavings string
	NoAlternative    string
	BreakEven        string
	GasolineBest     string

	// Volume
	VolumeHeading  string
	SameDistance   string
	VolumeLine     string
	BestOption     string
	SavingsAmount  string
	SavingsPercent string
	NoSavings      string
	LossLine       string
	KeepGasoline   string

	// Trip
	TripHeading     string
	TripConsumption string
	TripFuel        string
	TripQuantity    string
	TripSavings     string
	TripRate        string
	TripCostPerKm   string
	TripRanking     string
	TripRecommend   string
}

var text = messages{
	SummaryFillUp:  "✅ Fill up with %s",
	SummarySavings: "Savings: %s",
	SummaryViable:  "Viable options: %s",

	FillUp:           "%s Fill up with %s!",
	RealCostHeading:  "💰 Real cost analysis (yield-adjusted):",
	RealCostLine:     "   %s: R$ %.2f → Real cost: R$ %.2f/L",
	RealCostLineAlt:  "   %s: R$ %.2f → Real cost: R$ %.2f/L equiv.",
	CheaperThan:      "✅ %s is %.1f%% cheaper than gasoline",
	YieldNote:        "💡 %s yield: %.0f%% of gasoline",
	PriceRatio:       "📊 Price ratio: %.1f%% (ideal: below %.0f%%)",
	EstimatedSavings: "💵 Estimated savings: R$ %.2f per equivalent liter",
	NoAlternative:    "❌ No alternative fuel pays off",
	BreakEven:        "📊 %s is at %.1f%% of the gasoline price (break-even: %.0f%%, %.1f points above)",
	GasolineBest:     "✅ Gasoline is the best option right now",

	VolumeHeading:  "💰 Savings analysis for %sL of gasoline:",
	SameDistance:   "📊 Costs for the same distance:",
	VolumeLine:     "   • %s: %s%s × R$ %.2f = R$ %.2f",
	BestOption:     "✅ Best option: %s",
	SavingsAmount:  "💵 Savings: R$ %.2f",
	SavingsPercent: "📈 Percentage: %.1f%% cheaper",
	NoSavings:      "⚠️ No savings with alternative fuels",
	LossLine:       "💸 Loss with %s: R$ %.2f",
	KeepGasoline:   "✅ Stick with gasoline!",

	TripHeading:     "🗺️ Trip cost comparison - %s km",
	TripConsumption: "⛽ Estimated vehicle consumption: %.1f km/L (gasoline)",
	TripFuel:        "💰 %s:",
	TripQuantity:    "   • %.1f%s × R$ %.2f = R$ %.2f",
	TripSavings:     "   • Savings: R$ %.2f (%.1f%%)",
	TripRate:        "   • Consumption: %.1f km/%s",
	TripCostPerKm:   "   • Cost/km: R$ %.3f",
	TripRanking:     "🏁 Ranking: %s",
	TripRecommend:   "✅ Recommendation: %s (R$ %.2f)",
}

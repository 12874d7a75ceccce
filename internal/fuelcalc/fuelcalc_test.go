package fuelcalc

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldTable(t *testing.T) {
	assert.Equal(t, 1.0, Gasoline.Yield())
	assert.Equal(t, 0.7, Ethanol.Yield())
	assert.Equal(t, 0.6, Gas.Yield())
	for _, f := range Fuels[1:] {
		assert.Greater(t, f.Yield(), 0.0)
		assert.Less(t, f.Yield(), 1.0)
	}
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 5.714285, Normalize(4.00, EthanolYield), 1e-6)
	assert.Equal(t, 6.0, Normalize(6.0, GasolineYield))
	assert.InDelta(t, 57.142857, EquivalentVolume(40, EthanolYield), 1e-6)
	assert.InDelta(t, 66.666666, EquivalentVolume(40, GasYield), 1e-6)
}

func TestPriceBounds(t *testing.T) {
	tests := []struct {
		price float64
		ok    bool
	}{
		{2.5, true},
		{10.0, true},
		{6.0, true},
		{2.49, false},
		{10.01, false},
		{0, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		_, err := Compare(Prices{Gasoline: tt.price, Ethanol: 5})
		if tt.ok {
			assert.NoError(t, err, "price %v", tt.price)
			continue
		}
		require.Error(t, err, "price %v", tt.price)
		assert.True(t, errors.Is(err, ErrValidation))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "gasoline_price", verr.Field)
	}
}

func TestValidationMessage(t *testing.T) {
	_, err := Compare(Prices{Gasoline: 6, Ethanol: 4, Gas: Float(10.01)})
	require.Error(t, err)
	assert.Equal(t, "gas_price must be between 2.5 and 10 (got 10.01)", err.Error())

	_, err = CompareVolume(Prices{Gasoline: 6, Ethanol: 4}, 0.5)
	require.Error(t, err)
	assert.Equal(t, "liters must be between 1 and 1000 (got 0.5)", err.Error())

	_, err = CompareTrip(Trip{Distance: 300, Consumption: 31}, Prices{Gasoline: 6, Ethanol: 4})
	require.Error(t, err)
	assert.Equal(t, "gasoline_consumption must be between 3 and 30 (got 31)", err.Error())

	_, err = CompareTrip(Trip{Distance: 10001, Consumption: 10}, Prices{Gasoline: 6, Ethanol: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance")

	assert.Equal(t, "liters is required", Missing("liters").Error())
}

func TestParseOutputMode(t *testing.T) {
	mode, err := ParseOutputMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeFull, mode)

	mode, err = ParseOutputMode("summary")
	require.NoError(t, err)
	assert.Equal(t, ModeSummary, mode)

	_, err = ParseOutputMode("brief")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCompareScenarioA(t *testing.T) {
	c, err := Compare(Prices{Gasoline: 6.00, Ethanol: 4.00})
	require.NoError(t, err)

	gasoline, _ := c.NormalizedCost(Gasoline)
	ethanol, _ := c.NormalizedCost(Ethanol)
	assert.Equal(t, 6.00, gasoline)
	assert.InDelta(t, 5.714, ethanol, 1e-3)
	assert.Equal(t, Ethanol, c.Best.Fuel)

	savings, ok := c.Savings(Ethanol)
	require.True(t, ok)
	assert.InDelta(t, 4.76, savings, 0.01)

	_, ok = c.NormalizedCost(Gas)
	assert.False(t, ok)
}

func TestCompareScenarioB(t *testing.T) {
	c, err := Compare(Prices{Gasoline: 6.00, Ethanol: 4.50})
	require.NoError(t, err)

	ethanol, _ := c.NormalizedCost(Ethanol)
	assert.InDelta(t, 6.43, ethanol, 0.01)
	assert.Equal(t, Gasoline, c.Best.Fuel)
	assert.Equal(t, []Fuel{Gasoline}, c.Viable())
}

func TestCompareTies(t *testing.T) {
	// 3.50/0.7 and 3.00/0.6 are both exactly 5.00.
	c, err := Compare(Prices{Gasoline: 5.00, Ethanol: 3.50, Gas: Float(3.00)})
	require.NoError(t, err)
	assert.Equal(t, Gasoline, c.Best.Fuel)

	c, err = Compare(Prices{Gasoline: 6.00, Ethanol: 3.50, Gas: Float(3.00)})
	require.NoError(t, err)
	assert.Equal(t, Ethanol, c.Best.Fuel)
}

func TestCompareProportionalPricesTie(t *testing.T) {
	// In binary floating point 4.02/0.6 is slightly below 6.70.
	c, err := Compare(Prices{Gasoline: 6.70, Ethanol: 5.00, Gas: Float(4.02)})
	require.NoError(t, err)
	assert.Equal(t, Gasoline, c.Best.Fuel)
	assert.Equal(t, []Fuel{Gasoline}, c.Viable())
	savings, ok := c.Savings(Gas)
	require.True(t, ok)
	assert.Zero(t, savings)

	out, err := RecommendFuel(Prices{Gasoline: 6.70, Ethanol: 5.00, Gas: Float(4.02)}, ModeSummary)
	require.NoError(t, err)
	assert.Equal(t, "✅ Fill up with GASOLINE\nSavings: 0.0%\nViable options: 🚗 Gasoline", out)
}

func TestCompareGasWins(t *testing.T) {
	c, err := Compare(Prices{Gasoline: 6.00, Ethanol: 4.50, Gas: Float(3.00)})
	require.NoError(t, err)
	assert.Equal(t, Gas, c.Best.Fuel)
	assert.Equal(t, []Fuel{Gasoline, Gas}, c.Viable())
}

func TestRecommendationIsMinimum(t *testing.T) {
	for g := 2.5; g <= 10.0; g += 0.5 {
		for e := 2.5; e <= 10.0; e += 0.5 {
			for _, gas := range []*float64{nil, Float(2.5), Float(4.0), Float(7.5)} {
				p := Prices{Gasoline: g, Ethanol: e, Gas: gas}
				c, err := Compare(p)
				require.NoError(t, err)

				for _, n := range c.Normalized {
					price, _ := p.Price(n.Fuel)
					assert.Equal(t, price/n.Fuel.Yield(), n.Value)
					assert.LessOrEqual(t, c.Best.Compare(n), 0)
					// Strictly cheaper fuels only win when they come later.
					if n.Compare(c.Best) == 0 {
						assert.LessOrEqual(t, c.Best.Fuel, n.Fuel)
					}
				}
				if gas == nil {
					assert.NotEqual(t, Gas, c.Best.Fuel)
					assert.NotContains(t, c.Viable(), Gas)
				}
			}
		}
	}
}

func TestEthanolPriceMonotonicity(t *testing.T) {
	gas := Float(4.2)
	leftEthanol := false
	for e := 2.5; e <= 10.0; e += 0.1 {
		c, err := Compare(Prices{Gasoline: 6.0, Ethanol: e, Gas: gas})
		require.NoError(t, err)
		if c.Best.Fuel != Ethanol {
			leftEthanol = true
			continue
		}
		assert.False(t, leftEthanol, "ethanol recommended again at %.2f", e)
	}
	assert.True(t, leftEthanol)
}

func TestRecommendFuelSummary(t *testing.T) {
	out, err := RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.00}, ModeSummary)
	require.NoError(t, err)
	assert.Equal(t, "✅ Fill up with ETHANOL\nSavings: 4.8%\nViable options: 🚗 Gasoline, ⛽ Ethanol", out)

	out, err = RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.50}, ModeSummary)
	require.NoError(t, err)
	assert.Equal(t, "✅ Fill up with GASOLINE\nSavings: 0.0%\nViable options: 🚗 Gasoline", out)

	out, err = RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.50, Gas: Float(3.00)}, ModeSummary)
	require.NoError(t, err)
	assert.Equal(t, "✅ Fill up with CNG\nSavings: 16.7%\nViable options: 🚗 Gasoline, 🔵 CNG", out)
}

func TestRecommendFuelFull(t *testing.T) {
	out, err := RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.00}, ModeFull)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "⛽ Fill up with Ethanol!"))
	assert.Contains(t, out, "   Gasoline: R$ 6.00 → Real cost: R$ 6.00/L\n")
	assert.Contains(t, out, "   Ethanol: R$ 4.00 → Real cost: R$ 5.71/L equiv.")
	assert.Contains(t, out, "✅ Ethanol is 4.8% cheaper than gasoline")
	assert.Contains(t, out, "💡 Ethanol yield: 70% of gasoline")
	assert.Contains(t, out, "📊 Price ratio: 66.7% (ideal: below 70%)")
	assert.Contains(t, out, "💵 Estimated savings: R$ 0.29 per equivalent liter")
	assert.NotContains(t, out, "CNG")

	out, err = RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.50, Gas: Float(3.00)}, ModeFull)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "🔵 Fill up with CNG!"))
	assert.Contains(t, out, "   CNG: R$ 3.00 → Real cost: R$ 5.00/L equiv.")
	assert.Contains(t, out, "✅ CNG is 16.7% cheaper than gasoline")
	assert.Contains(t, out, "💡 CNG yield: 60% of gasoline")
	assert.Contains(t, out, "💵 Estimated savings: R$ 1.00 per equivalent liter")
}

func TestRecommendFuelGasolineWinsExplainsNominalRatio(t *testing.T) {
	out, err := RecommendFuel(Prices{Gasoline: 6.00, Ethanol: 4.50, Gas: Float(4.20)}, ModeFull)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "🚗 Fill up with Gasoline!"))
	assert.Contains(t, out, "❌ No alternative fuel pays off")
	assert.Contains(t, out, "📊 Ethanol is at 75.0% of the gasoline price (break-even: 70%, 5.0 points above)")
	assert.Contains(t, out, "📊 CNG is at 70.0% of the gasoline price (break-even: 60%, 10.0 points above)")
	assert.True(t, strings.HasSuffix(out, "✅ Gasoline is the best option right now"))
}

func TestBreakEvenTieHasNoNegativeZero(t *testing.T) {
	// 5.81/8.30 evaluates to 69.99999999999999%.
	out, err := RecommendFuel(Prices{Gasoline: 8.30, Ethanol: 5.81}, ModeFull)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "🚗 Fill up with Gasoline!"))
	assert.Contains(t, out, "📊 Ethanol is at 70.0% of the gasoline price (break-even: 70%, 0.0 points above)")
	assert.NotContains(t, out, "-0.0")
}

func TestCompareVolumeScenarioC(t *testing.T) {
	v, err := CompareVolume(Prices{Gasoline: 5.00, Ethanol: 3.50}, 40)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v.GasolineCost())

	ethanol, ok := v.Line(Ethanol)
	require.True(t, ok)
	assert.InDelta(t, 57.14, ethanol.Quantity, 0.01)
	assert.InDelta(t, 200.0, ethanol.Cost, 1e-9)
	assert.Equal(t, Gasoline, v.Best.Fuel)
	assert.Equal(t, 0.0, v.Best.Savings)

	out := RenderVolume(v)
	assert.Equal(t, strings.Join([]string{
		"💰 Savings analysis for 40L of gasoline:",
		"",
		"📊 Costs for the same distance:",
		"   • Gasoline: 40L × R$ 5.00 = R$ 200.00",
		"   • Ethanol: 57.1L × R$ 3.50 = R$ 200.00",
		"",
		"⚠️ No savings with alternative fuels",
		"✅ Stick with gasoline!",
	}, "\n"), out)
}

func TestCompareVolumeAlternativeWins(t *testing.T) {
	out, err := CompareVolumeSavings(Prices{Gasoline: 6.00, Ethanol: 4.00}, 50)
	require.NoError(t, err)
	assert.Contains(t, out, "   • Ethanol: 71.4L × R$ 4.00 = R$ 285.71")
	assert.Contains(t, out, "✅ Best option: ETHANOL")
	assert.Contains(t, out, "💵 Savings: R$ 14.29")
	assert.Contains(t, out, "📈 Percentage: 4.8% cheaper")
}

func TestCompareVolumeReportsLosses(t *testing.T) {
	out, err := CompareVolumeSavings(Prices{Gasoline: 6.00, Ethanol: 4.50, Gas: Float(4.00)}, 10)
	require.NoError(t, err)
	assert.Contains(t, out, "   • CNG: 16.7m³ × R$ 4.00 = R$ 66.67")
	assert.Contains(t, out, "💸 Loss with ethanol: R$ 4.29")
	assert.Contains(t, out, "💸 Loss with CNG: R$ 6.67")
	assert.True(t, strings.HasSuffix(out, "✅ Stick with gasoline!"))
}

func TestCompareTripScenarioD(t *testing.T) {
	trip, err := CompareTrip(Trip{Distance: 300, Consumption: 10}, Prices{Gasoline: 5.50, Ethanol: 3.80})
	require.NoError(t, err)

	require.Len(t, trip.Lines, 2)
	gasoline, ethanol := trip.Lines[0], trip.Lines[1]
	assert.Equal(t, 30.0, gasoline.Quantity)
	assert.Equal(t, 165.0, gasoline.Cost)
	assert.InDelta(t, 7.0, ethanol.Consumption, 1e-9)
	assert.InDelta(t, 42.86, ethanol.Quantity, 0.01)
	assert.InDelta(t, 162.86, ethanol.Cost, 0.01)
	assert.InDelta(t, 1.3, ethanol.SavingsPct, 0.05)
	assert.Equal(t, Ethanol, trip.Best().Fuel)

	out := RenderTrip(trip)
	assert.True(t, strings.HasPrefix(out, "🗺️ Trip cost comparison - 300 km\n\n⛽ Estimated vehicle consumption: 10.0 km/L (gasoline)\n"))
	assert.Contains(t, out, "💰 GASOLINE:\n   • 30.0L × R$ 5.50 = R$ 165.00\n   • Cost/km: R$ 0.550\n")
	assert.Contains(t, out, "💰 ETHANOL:\n   • 42.9L × R$ 3.80 = R$ 162.86\n   • Savings: R$ 2.14 (1.3%)\n   • Consumption: 7.0 km/L\n   • Cost/km: R$ 0.543\n")
	assert.Contains(t, out, "🏁 Ranking: ETHANOL > GASOLINE")
	assert.True(t, strings.HasSuffix(out, "✅ Recommendation: ETHANOL (R$ 162.86)"))
}

func TestCompareTripTiesKeepPriority(t *testing.T) {
	trip, err := CompareTrip(Trip{Distance: 100, Consumption: 10}, Prices{Gasoline: 5.00, Ethanol: 3.50, Gas: Float(3.00)})
	require.NoError(t, err)

	var ranking []Fuel
	for _, l := range trip.Ranking {
		ranking = append(ranking, l.Fuel)
	}
	assert.Equal(t, []Fuel{Gasoline, Ethanol, Gas}, ranking)
	assert.Contains(t, RenderTrip(trip), "🏁 Ranking: GASOLINE > ETHANOL > CNG")
}

func TestVolumeTieKeepsGasoline(t *testing.T) {
	// 3.08 × (50/0.7) computes below 220.00.
	v, err := CompareVolume(Prices{Gasoline: 4.40, Ethanol: 3.08}, 50)
	require.NoError(t, err)
	assert.Equal(t, Gasoline, v.Best.Fuel)
	ethanol, ok := v.Line(Ethanol)
	require.True(t, ok)
	assert.Zero(t, ethanol.Savings)

	out := RenderVolume(v)
	assert.NotContains(t, out, "Best option")
	assert.NotContains(t, out, "Loss with")
	assert.True(t, strings.HasSuffix(out, "✅ Stick with gasoline!"))
}

func TestTripTieKeepsGasoline(t *testing.T) {
	trip, err := CompareTrip(Trip{Distance: 300, Consumption: 10}, Prices{Gasoline: 3.70, Ethanol: 2.59})
	require.NoError(t, err)
	assert.Equal(t, Gasoline, trip.Best().Fuel)

	out := RenderTrip(trip)
	assert.Contains(t, out, "   • Savings: R$ 0.00 (0.0%)\n")
	assert.Contains(t, out, "🏁 Ranking: GASOLINE > ETHANOL")
}

func TestVolumeAndTripFollowPerUnitWinner(t *testing.T) {
	check := func(p Prices) {
		c, err := Compare(p)
		require.NoError(t, err)

		v, err := CompareVolume(p, 50)
		require.NoError(t, err)
		assert.Equal(t, c.Best.Fuel, v.Best.Fuel, "volume %+v", p)

		trip, err := CompareTrip(Trip{Distance: 300, Consumption: 10}, p)
		require.NoError(t, err)
		for i := 1; i < len(trip.Ranking); i++ {
			assert.LessOrEqual(t, trip.Ranking[i-1].normalized.Compare(trip.Ranking[i].normalized), 0)
		}
		assert.Equal(t, c.Best.Fuel, trip.Best().Fuel, "trip %+v", p)
	}

	// Every gasoline price in cents, with ethanol and gas at and one cent
	// around their break-even prices.
	for gc := 250; gc <= 1000; gc++ {
		g := float64(gc) / 100
		for _, ec := range []int{gc * 7 / 10, gc*7/10 + 1} {
			if ec < 250 {
				continue
			}
			for _, gasc := range []int{0, gc * 6 / 10, gc*6/10 + 1} {
				p := Prices{Gasoline: g, Ethanol: float64(ec) / 100}
				if gasc != 0 {
					if gasc < 250 {
						continue
					}
					p.Gas = Float(float64(gasc) / 100)
				}
				check(p)
			}
		}
	}
}

func TestOperationsAreIdempotent(t *testing.T) {
	p := Prices{Gasoline: 5.79, Ethanol: 3.99, Gas: Float(4.49)}

	first, err := RecommendFuel(p, ModeFull)
	require.NoError(t, err)
	second, err := RecommendFuel(p, ModeFull)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	first, err = CompareTripCost(Trip{Distance: 420, Consumption: 12.5}, p)
	require.NoError(t, err)
	second, err = CompareTripCost(Trip{Distance: 420, Consumption: 12.5}, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFuelSavingTips(t *testing.T) {
	out := FuelSavingTips()
	assert.True(t, strings.HasPrefix(out, "🚗 7 Tips to Save Fuel:"))
	for i := 1; i <= 7; i++ {
		assert.Contains(t, out, "\n"+string(rune('0'+i))+". ")
	}
	assert.NotContains(t, out, "\n8. ")
	assert.Equal(t, out, FuelSavingTips())
}

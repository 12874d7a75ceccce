package fuelcalc

import (
	"fmt"
	"strings"
)

type tip struct {
	Title  string
	Detail string
}

var tips = []tip{
	{"Keep your tires properly inflated", "The right pressure reduces rolling resistance and saves up to 10% of fuel."},
	{"Avoid hard acceleration", "Accelerate smoothly and hold a steady speed. Saves up to 20%!"},
	{"Turn off the air conditioning when you can", "The A/C can raise consumption by up to 20%. Use it only when needed."},
	{"Don't idle with the engine running", "If you will be stopped for more than 1 minute, switch the engine off."},
	{"Keep up with maintenance", "Oil changes, clean filters and healthy spark plugs improve efficiency."},
	{"Remove unnecessary weight from the trunk", "Every extra 50kg raises consumption by up to 2%."},
	{"Plan your routes", "Avoid rush hours and choose the most direct routes."},
}

var tipsText = renderTips()

func renderTips() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 %d Tips to Save Fuel:\n", len(tips))
	for i, t := range tips {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n", i+1, t.Title, t.Detail)
	}
	b.WriteString("\n💡 Following these tips you can cut consumption by up to 30%!")
	fmt.Fprintf(&b, "\n⭐ Rule of thumb: ethanol pays off when its price is at most %.0f%% of the gasoline price.", EthanolYield*100)
	return b.String()
}

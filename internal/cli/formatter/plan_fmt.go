package formatter

import (
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// FormatMetrics renders the plan parameters alongside the derived forecast.
func FormatMetrics(p *domain.PlanningData, m domain.CalculatedMetrics) string {
	var b strings.Builder

	b.WriteString(Header("Plan Inputs"))
	b.WriteString("\n")
	rows := [][2]string{
		{"Overall BV", FormatCr(p.OverallBV)},
		{"ATS", FormatCr(p.ATS)},
		{"CPL", FormatINR(p.CPL)},
		{"Tax", FormatPercent(p.TaxPercent)},
		{"Lead → Walk-in", FormatPercent(p.LTWPercent)},
		{"Walk-in → Booking", FormatPercent(p.WTBPercent)},
		{"Digital share", FormatPercent(p.DigitalPercent)},
	}
	if p.CalculationMode == domain.ModeBudget {
		rows = append(rows, [2]string{"Budget input", FormatINR(p.BudgetInput)})
	}
	writeKV(&b, rows)

	b.WriteString("\n")
	b.WriteString(Header("Derived Forecast"))
	b.WriteString("\n")
	writeKV(&b, [][2]string{
		{"Digital BV", FormatCr(m.DigitalBV)},
		{"Total units", FormatCount(m.TotalUnits)},
		{"Digital units", FormatCount(m.DigitalUnits)},
		{"Target walk-ins", FormatCount(m.TargetWalkins)},
		{"Target leads", FormatCount(m.TargetLeads)},
		{"Base budget", FormatINR(m.BaseBudget)},
		{"Tax amount", FormatINR(m.TaxAmount)},
		{"All-in budget", FormatINR(m.AllInBudget)},
		{"Cost per walk-in", FormatINR(m.CPW)},
		{"Cost per booking", FormatINR(m.CPB)},
		{"Target COM", FormatPercent(m.TargetCOM)},
	})

	return b.String()
}

func writeKV(b *strings.Builder, rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", width-len(r[0]))
		fmt.Fprintf(b, "%s%s  %s\n", Dim(r[0]), pad, Bold(r[1]))
	}
}

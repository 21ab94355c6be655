package formatter

import (
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/contract"
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// FormatPeriodReport renders the full period report: funnel delivery,
// efficiency, budget position and the life-to-date revenue block.
func FormatPeriodReport(r *contract.PeriodReport) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  ·  weeks %d-%d  ·  %s view",
		r.ProjectName, r.StartWeek+1, r.EndWeek+1, r.View)))
	b.WriteString("\n\n")

	b.WriteString(Bold("Funnel delivery"))
	b.WriteString("\n")
	funnelRows := make([][]string, 0, len(r.Funnel))
	for _, line := range r.Funnel {
		funnelRows = append(funnelRows, []string{
			line.Metric,
			FormatCount(line.Target),
			FormatCount(line.Achieved),
			DeliveryColor(line.Status).Render(FormatPercent(line.DeliveryPct)),
			DeliveryIndicator(line.Status),
		})
	}
	b.WriteString(RenderTable([]string{"METRIC", "TARGET", "ACHIEVED", "DELIVERY", "STATUS"}, funnelRows))

	b.WriteString("\n")
	b.WriteString(Bold("Efficiency"))
	b.WriteString("\n")
	effRows := make([][]string, 0, len(r.Efficiency))
	for _, line := range r.Efficiency {
		effRows = append(effRows, []string{
			line.Metric,
			FormatINR(line.Target),
			FormatINR(line.Achieved),
		})
	}
	b.WriteString(RenderTable([]string{"METRIC", "TARGET", "ACHIEVED"}, effRows))

	b.WriteString("\n")
	b.WriteString(Bold("Budget position"))
	b.WriteString("\n")
	writeKV(&b, [][2]string{
		{"Received", FormatINR(r.Budget.Received)},
		{"Performance spend", FormatINR(r.Budget.PerformanceSpend)},
		{"Other spend", FormatINR(r.Budget.OtherSpend)},
		{"Total spend", FormatINR(r.Budget.TotalSpend)},
		{"Pending", FormatINR(r.Budget.Pending)},
		{"Pending %", FormatPercent(r.Budget.PendingPct)},
		{"Planned spend", FormatINR(r.Budget.PlannedSpend)},
		{"Buffer", FormatINR(r.Budget.Buffer)},
		{"Spent %", FormatPercent(r.Budget.SpentPct)},
	})

	b.WriteString("\n")
	b.WriteString(Bold("Life-to-date revenue"))
	b.WriteString("\n")
	b.WriteString(formatVerticals(r.Lifetime.Verticals))
	b.WriteString("\n")
	writeKV(&b, [][2]string{
		{"Total achieved units", FormatCount(r.Lifetime.TotalAchievedUnits)},
		{"Total achieved BV", FormatCr(r.Lifetime.TotalAchievedBV)},
		{"Digital deficit", deficitCr(r.Lifetime.DigitalDeficitBV)},
		{"Digital achievement", FormatPercent(r.Lifetime.DigitalAchievementPct)},
	})

	return b.String()
}

// FormatPortfolioReport renders the cross-project rollup.
func FormatPortfolioReport(r *contract.PortfolioReport) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("portfolio  ·  %d projects  ·  %s view", r.ProjectCount, r.View)))
	b.WriteString("\n\n")
	b.WriteString(formatVerticals(r.Verticals))
	b.WriteString("\n")
	writeKV(&b, [][2]string{
		{"Total plan BV", FormatCr(r.TotalPlanBV)},
		{"Total achieved BV", FormatCr(r.TotalAchievedBV)},
		{"Digital deficit", deficitCr(r.DigitalDeficitBV)},
		{"Digital achievement", FormatPercent(r.DigitalAchievementPct)},
		{"Digital actual contribution", FormatPercent(r.DigitalContributionActualPct)},
	})
	return b.String()
}

func formatVerticals(verticals []contract.VerticalRevenue) string {
	rows := make([][]string, 0, len(verticals))
	for _, v := range verticals {
		status := domain.ClassifyDelivery(v.AchievementPct)
		rows = append(rows, []string{
			Bold(string(v.Vertical)),
			FormatCr(v.TargetBV),
			FormatCr(v.AchievedBV),
			deficitCr(v.DeficitBV),
			DeliveryColor(status).Render(FormatPercent(v.AchievementPct)),
		})
	}
	return RenderTable([]string{"VERTICAL", "TARGET BV", "ACHIEVED BV", "DEFICIT", "ACHIEVEMENT"}, rows)
}

// deficitCr colors a shortfall red and a surplus green.
func deficitCr(v float64) string {
	if v > 0 {
		return StyleRed.Render(FormatCr(v))
	}
	return StyleGreen.Render(FormatCr(v))
}

package formatter

import (
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// FormatWeeks renders the 13-week forecast table with actuals alongside the
// targets where a week has a recorded entry.
func FormatWeeks(weeks []domain.WeeklyData, actuals map[int]domain.WeeklyActuals) string {
	headers := []string{"WEEK", "DATES", "SPEND %", "LEADS", "CUM", "AP", "AD", "SPEND (NET)", "ACT LEADS", "ACT SPEND"}
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		actLeads, actSpend := "", ""
		if a, ok := actuals[w.ID]; ok {
			actLeads = FormatCount(a.Leads)
			actSpend = FormatINR(a.Spends)
		}
		rows = append(rows, []string{
			Bold(w.WeekLabel),
			Dim(w.DateRange),
			FormatPercent(w.SpendDistribution),
			FormatCount(w.Leads),
			Dim(FormatCount(w.CumulativeLeads)),
			FormatCount(w.AP),
			FormatCount(w.AD),
			FormatINR(w.SpendsBase),
			actLeads,
			actSpend,
		})
	}
	return RenderTable(headers, rows)
}

// FormatMediaPlan renders the channel mix table.
func FormatMediaPlan(channels []domain.MediaChannel) string {
	headers := []string{"ID", "CHANNEL", "ALLOC %", "EST CPL", "QUAL %", "QUAL→AP %", "AP→AD %"}
	rows := make([][]string, 0, len(channels))
	for _, c := range channels {
		name := c.Name
		if c.IsCustom {
			name += " " + Dim("(custom)")
		}
		rows = append(rows, []string{
			Dim(c.ID),
			Bold(name),
			FormatPercent(c.AllocationPercent),
			FormatINR(c.EstimatedCPL),
			FormatPercent(c.CAPIPercent),
			FormatPercent(c.CAPIToAPPercent),
			FormatPercent(c.APToADPercent),
		})
	}
	return RenderTable(headers, rows)
}

// FormatChannelPerformance renders the per-channel recorded funnel.
func FormatChannelPerformance(channels []domain.MediaChannel, perf []domain.ChannelPerformance) string {
	byChannel := make(map[string]domain.ChannelPerformance, len(perf))
	for _, p := range perf {
		byChannel[p.ChannelID] = p
	}
	headers := []string{"CHANNEL", "SPEND", "LEADS", "CONTACTED", "AP", "AD", "BOOKINGS", "LOST", "CPL"}
	rows := make([][]string, 0, len(channels))
	for _, c := range channels {
		p := byChannel[c.ID]
		cpl := ""
		if p.Leads > 0 {
			cpl = FormatINR(p.Spends / p.Leads)
		}
		rows = append(rows, []string{
			Bold(c.Name),
			FormatINR(p.Spends),
			FormatCount(p.Leads),
			FormatCount(p.Contacted),
			FormatCount(p.AP),
			FormatCount(p.AD),
			FormatCount(p.Bookings),
			FormatCount(p.Lost),
			cpl,
		})
	}
	return RenderTable(headers, rows)
}

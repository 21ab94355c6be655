package formatter

import (
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// FormatProjectList renders the portfolio list view.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "LOCATION", "SPOC", "STATUS", "BV TARGET", "LOCKED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		locked := ""
		if p.IsLocked {
			locked = StyleYellow.Render("locked")
		}
		rows = append(rows, []string{
			Dim(shortID(p.ID)),
			Bold(p.Name),
			p.Location,
			p.Poc,
			string(p.Status),
			FormatCr(p.Plan.OverallBV),
			locked,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectDetail renders the inspect view: identity, plan parameters and
// derived metrics.
func FormatProjectDetail(p *domain.Project, m domain.CalculatedMetrics) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Location"), p.Location))
	b.WriteString(fmt.Sprintf("%s      %s\n", Dim("SPOC"), p.Poc))
	b.WriteString(fmt.Sprintf("%s    %s\n", Dim("Status"), string(p.Status)))
	b.WriteString(fmt.Sprintf("%s     %s\n", Dim("Start"), p.StartDate.Format("2006-01-02")))
	if p.IsLocked {
		b.WriteString(StyleYellow.Render("Plan locked") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatMetrics(&p.Plan, m))
	return b.String()
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

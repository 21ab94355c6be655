package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func funnelcastHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// runProjectForm collects new-project details interactively. SPOC is offered
// as a select when contacts exist, free text otherwise.
func runProjectForm(ctx context.Context, app *App, name, location, poc, start *string) error {
	pocField := huh.NewInput().
		Title("SPOC").
		Placeholder("who owns this campaign").
		Value(poc)

	var spocSelect *huh.Select[string]
	if pocs, err := app.Pocs.List(ctx); err == nil && len(pocs) > 0 {
		opts := make([]huh.Option[string], 0, len(pocs)+1)
		opts = append(opts, huh.NewOption("(none)", ""))
		for _, pc := range pocs {
			opts = append(opts, huh.NewOption(pc.Name, pc.Name))
		}
		spocSelect = huh.NewSelect[string]().Title("SPOC").Options(opts...).Value(poc)
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Project Name").
			Placeholder("Skyline Towers Phase 2").
			Value(name).
			Validate(validateRequired),
		huh.NewInput().
			Title("Location").
			Placeholder("Pune").
			Value(location),
	}
	if spocSelect != nil {
		fields = append(fields, spocSelect)
	} else {
		fields = append(fields, pocField)
	}
	fields = append(fields, huh.NewInput().
		Title("Start Date (YYYY-MM-DD, blank for today)").
		Placeholder(time.Now().Format("2006-01-02")).
		Value(start).
		Validate(validateDate))

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(funnelcastHuhTheme()).
		WithShowHelp(false)

	return form.Run()
}

package cli

import (
	"fmt"
	"os"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands, plus
// the actor identity resolved from flags and environment.
type App struct {
	Projects   service.ProjectService
	Plans      service.PlanService
	Actuals    service.ActualsService
	MediaPlans service.MediaPlanService
	Reports    service.ReportService
	Pocs       service.PocService

	roleFlag string
	userFlag string
}

// actor resolves the acting identity. Flags take precedence over the
// FUNNELCAST_ROLE and FUNNELCAST_USER environment variables; the default is
// a GM so a single-user install needs no configuration.
func (a *App) actor() (domain.User, error) {
	role := a.roleFlag
	if role == "" {
		role = os.Getenv("FUNNELCAST_ROLE")
	}
	if role == "" {
		role = string(domain.RoleGM)
	}
	if !domain.ValidRoles[role] {
		return domain.User{}, fmt.Errorf("unknown role %q (want gm, sm or manager)", role)
	}

	name := a.userFlag
	if name == "" {
		name = os.Getenv("FUNNELCAST_USER")
	}
	return domain.User{Name: name, Role: domain.Role(role)}, nil
}

// NewRootCmd creates the top-level "funnelcast" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "funnelcast",
		Short: "Marketing funnel planner for real-estate sales campaigns",
	}

	root.PersistentFlags().StringVar(&app.roleFlag, "as", "", "Acting role: gm, sm or manager (default $FUNNELCAST_ROLE or gm)")
	root.PersistentFlags().StringVar(&app.userFlag, "user", "", "Acting user name, matched against project SPOC (default $FUNNELCAST_USER)")

	root.AddCommand(
		newProjectCmd(app),
		newPlanCmd(app),
		newWeekCmd(app),
		newActualsCmd(app),
		newChannelCmd(app),
		newReportCmd(app),
		newPocCmd(app),
	)

	return root
}

// parseView validates a --view flag value.
func parseView(s string) (domain.ViewMode, error) {
	switch domain.ViewMode(s) {
	case domain.ViewNet:
		return domain.ViewNet, nil
	case domain.ViewGross:
		return domain.ViewGross, nil
	}
	return "", fmt.Errorf("unknown view %q (want net or gross)", s)
}

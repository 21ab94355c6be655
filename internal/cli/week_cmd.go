package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "View and shape the 13-week forecast",
	}

	cmd.AddCommand(
		newWeekShowCmd(app),
		newWeekSetCmd(app),
	)

	return cmd
}

// parseWeekNumber accepts the 1-based week number shown in tables.
func parseWeekNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > domain.WeekCount {
		return 0, fmt.Errorf("invalid week %q (want 1-%d)", s, domain.WeekCount)
	}
	return n - 1, nil
}

func newWeekShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show the 13-week forecast with recorded actuals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, _, err := app.Reports.Forecast(ctx, actor, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeeks(p.Weeks, p.Actuals))
			return nil
		},
	}
}

func newWeekSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <project> <week> <field> <value>",
		Short: "Set one week's distribution seed",
		Long: "Set one week's distribution seed. Fields: " +
			strings.Join([]string{
				string(domain.SeedSpendDistribution),
				string(domain.SeedLeadDistribution),
				string(domain.SeedAdConversion),
			}, ", ") + ".",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			weekID, err := parseWeekNumber(args[1])
			if err != nil {
				return err
			}
			if !domain.ValidWeekSeedFields[args[2]] {
				return fmt.Errorf("unknown week field %q", args[2])
			}
			value, err := parseAmount(args[3])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Plans.SetWeekSeed(ctx, actor, id, weekID, domain.WeekSeedField(args[2]), value)
			if err != nil {
				return err
			}

			fmt.Printf("Updated week %d on %s\n", weekID+1, p.Name)
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/spf13/cobra"
)

func newActualsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actuals",
		Short: "Record achieved performance",
	}

	cmd.AddCommand(
		newActualsRecordCmd(app),
		newActualsReviseRevenueCmd(app),
		newActualsShowCmd(app),
	)

	return cmd
}

func newActualsRecordCmd(app *App) *cobra.Command {
	var week, date string

	cmd := &cobra.Command{
		Use:   "record <project> <field> <value>",
		Short: "Record one actual for a week",
		Long: "Record one actual for a week, addressed by --week or --date. " +
			"Fields: " + mapKeys(domain.ValidActualFields) + ".",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if !domain.ValidActualFields[args[1]] {
				return fmt.Errorf("unknown actuals field %q (want one of %s)", args[1], mapKeys(domain.ValidActualFields))
			}
			value, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			weekID, err := resolveWeek(ctx, app, actor, id, week, date)
			if err != nil {
				return err
			}

			p, err := app.Actuals.Record(ctx, actor, id, weekID, domain.ActualField(args[1]), value)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s for week %d on %s\n", args[1], weekID+1, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week number (1-13)")
	cmd.Flags().StringVar(&date, "date", "", "Calendar date (YYYY-MM-DD), mapped onto the campaign week")

	return cmd
}

// resolveWeek turns --week or --date into a week index. With neither flag the
// current date is used.
func resolveWeek(ctx context.Context, app *App, actor domain.User, projectID, week, date string) (int, error) {
	if week != "" {
		return parseWeekNumber(week)
	}

	at := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return 0, fmt.Errorf("invalid date %q: %w", date, err)
		}
		at = parsed
	}

	p, err := app.Projects.Get(ctx, actor, projectID)
	if err != nil {
		return 0, err
	}

	idx := domain.WeekIndexForDate(p.StartDate, at)
	if idx < 0 {
		return 0, fmt.Errorf("date %s is before the campaign start (%s)",
			at.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return idx, nil
}

func newActualsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show recorded actuals against the weekly targets",
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

func newActualsReviseRevenueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revise-revenue <project> <vertical> <bv-cr>",
		Short: "Back-solve a vertical's bookings from achieved revenue",
		Long: "Back-solve a vertical's bookings from achieved revenue in Cr. " +
			"Booking counts and the plan's contribution split are rewritten to match.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			vertical := domain.Vertical(args[1])
			if domain.BookingField(vertical) == "" {
				return fmt.Errorf("unknown vertical %q", args[1])
			}
			revenueCr, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Actuals.ReviseRevenue(ctx, actor, id, vertical, revenueCr)
			if err != nil {
				return err
			}

			fmt.Printf("Revised %s revenue to ₹%.2f Cr on %s\n", vertical, revenueCr, p.Name)
			return nil
		},
	}
}

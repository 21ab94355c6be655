package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Delivery, efficiency and revenue reports",
	}

	cmd.AddCommand(
		newReportPeriodCmd(app),
		newReportPortfolioCmd(app),
	)

	return cmd
}

func newReportPeriodCmd(app *App) *cobra.Command {
	var from, to, view string

	cmd := &cobra.Command{
		Use:   "period <project>",
		Short: "Plan-vs-actuals report over a date window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			vm, err := parseView(view)
			if err != nil {
				return err
			}

			now := time.Now()
			fromDate := now.AddDate(0, 0, -28)
			toDate := now
			if from != "" {
				if fromDate, err = time.Parse("2006-01-02", from); err != nil {
					return fmt.Errorf("invalid --from %q: %w", from, err)
				}
			}
			if to != "" {
				if toDate, err = time.Parse("2006-01-02", to); err != nil {
					return fmt.Errorf("invalid --to %q: %w", to, err)
				}
			}
			if toDate.Before(fromDate) {
				return fmt.Errorf("--to is before --from")
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			report, err := app.Reports.Period(ctx, actor, id, fromDate, toDate, vm)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPeriodReport(&report))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD, default 4 weeks ago)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&view, "view", "net", "Financial view: net or gross")

	return cmd
}

func newReportPortfolioCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Life-to-date revenue rollup across all visible projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}

			vm, err := parseView(view)
			if err != nil {
				return err
			}

			report, err := app.Reports.Portfolio(context.Background(), actor, vm)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPortfolioReport(&report))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "net", "Financial view: net or gross")

	return cmd
}

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

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Edit planning parameters",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanSetCmd(app),
		newPlanModeCmd(app),
		newPlanReceivedCmd(app),
		newPlanOtherSpendsCmd(app),
	)

	return cmd
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show plan inputs and the derived forecast",
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

			p, m, err := app.Reports.Forecast(ctx, actor, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMetrics(&p.Plan, m))
			return nil
		},
	}
}

func newPlanSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <project> <field> <value>",
		Short: "Set one planning parameter",
		Long:  "Set one planning parameter. Fields: " + mapKeys(domain.ValidPlanFields) + ".",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if !domain.ValidPlanFields[args[1]] {
				return fmt.Errorf("unknown plan field %q (want one of %s)", args[1], mapKeys(domain.ValidPlanFields))
			}
			value, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Plans.SetPlanField(ctx, actor, id, domain.PlanField(args[1]), value)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s on %s\n", args[1], p.Name)
			return nil
		},
	}
}

func newPlanModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mode <project> <revenue|budget>",
		Short: "Switch between revenue-driven and budget-driven planning",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			mode := domain.CalculationMode(args[1])
			switch mode {
			case domain.ModeRevenue, domain.ModeBudget:
			default:
				return fmt.Errorf("unknown mode %q (want revenue or budget)", args[1])
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Plans.SetCalculationMode(ctx, actor, id, mode)
			if err != nil {
				return err
			}

			fmt.Printf("%s plans in %s mode\n", p.Name, p.Plan.CalculationMode)
			return nil
		},
	}
}

func newPlanReceivedCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "received <project> <amount>",
		Short: "Record cumulative budget received from the brand",
		Args:  cobra.ExactArgs(2),
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
			value, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Plans.SetReceivedBudget(ctx, actor, id, value, vm)
			if err != nil {
				return err
			}

			fmt.Printf("Received budget updated on %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "gross", "View the amount is denominated in: net or gross")

	return cmd
}

func newPlanOtherSpendsCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "other-spends <project> <amount>",
		Short: "Record non-performance spend (creatives, events, collateral)",
		Args:  cobra.ExactArgs(2),
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
			value, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Plans.SetOtherSpends(ctx, actor, id, value, vm)
			if err != nil {
				return err
			}

			fmt.Printf("Other spends updated on %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "gross", "View the amount is denominated in: net or gross")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/ledger"
	"github.com/spf13/cobra"
)

func newChannelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Manage the media plan and per-channel performance",
	}

	cmd.AddCommand(
		newChannelListCmd(app),
		newChannelAddCmd(app),
		newChannelSetCmd(app),
		newChannelRemoveCmd(app),
		newChannelRecordCmd(app),
		newChannelPerfCmd(app),
	)

	return cmd
}

func newChannelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project>",
		Short: "Show the media plan",
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

			p, err := app.Projects.Get(ctx, actor, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMediaPlan(p.MediaPlan))
			return nil
		},
	}
}

func newChannelAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <project> <name>",
		Short: "Add a custom media channel",
		Args:  cobra.ExactArgs(2),
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

			p, err := app.MediaPlans.AddChannel(ctx, actor, id, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Added channel %q to %s\n", args[1], p.Name)
			return nil
		},
	}
}

func newChannelSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <project> <channel> <field> <value>",
		Short: "Set one media channel assumption",
		Long: "Set one media channel assumption. Fields: " +
			mapKeys(ledger.ValidMediaChannelFields) + ".",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if !ledger.ValidMediaChannelFields[args[2]] {
				return fmt.Errorf("unknown channel field %q", args[2])
			}
			value, err := parseAmount(args[3])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}
			channelID, err := lookupChannel(ctx, app, actor, id, args[1])
			if err != nil {
				return err
			}

			p, err := app.MediaPlans.UpdateChannel(ctx, actor, id, channelID, ledger.MediaChannelField(args[2]), value)
			if err != nil {
				return err
			}

			fmt.Printf("Updated channel on %s\n", p.Name)
			return nil
		},
	}
}

func newChannelRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project> <channel>",
		Short: "Remove a channel and its performance entries",
		Args:  cobra.ExactArgs(2),
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
			channelID, err := lookupChannel(ctx, app, actor, id, args[1])
			if err != nil {
				return err
			}

			p, err := app.MediaPlans.RemoveChannel(ctx, actor, id, channelID)
			if err != nil {
				return err
			}

			fmt.Printf("Removed channel from %s\n", p.Name)
			return nil
		},
	}
}

func newChannelRecordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "record <project> <channel> <field> <value>",
		Short: "Record achieved performance for one channel",
		Long: "Record achieved performance for one channel. Fields: " +
			mapKeys(domain.ValidChannelFields) + ".",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if !domain.ValidChannelFields[args[2]] {
				return fmt.Errorf("unknown performance field %q", args[2])
			}
			value, err := parseAmount(args[3])
			if err != nil {
				return err
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}
			channelID, err := lookupChannel(ctx, app, actor, id, args[1])
			if err != nil {
				return err
			}

			p, err := app.Actuals.RecordChannel(ctx, actor, id, channelID, domain.ChannelField(args[2]), value)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s on %s\n", args[2], p.Name)
			return nil
		},
	}
}

func newChannelPerfCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "perf <project>",
		Short: "Show recorded per-channel performance",
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

			p, err := app.Projects.Get(ctx, actor, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatChannelPerformance(p.MediaPlan, p.ChannelPerformance))
			return nil
		},
	}
}

func lookupChannel(ctx context.Context, app *App, actor domain.User, projectID, input string) (string, error) {
	p, err := app.Projects.Get(ctx, actor, projectID)
	if err != nil {
		return "", err
	}
	return resolveChannelID(p, input)
}

func mapKeys(m map[string]bool) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return strings.Join(names, ", ")
}

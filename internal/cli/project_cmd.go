package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage campaign projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectSetPocCmd(app),
		newProjectSetStatusCmd(app),
		newProjectLockCmd(app, true),
		newProjectLockCmd(app, false),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, location, poc, start string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}

			if interactive {
				if err := runProjectForm(context.Background(), app, &name, &location, &poc, &start); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("project name is required")
			}
			if start == "" {
				start = time.Now().Format("2006-01-02")
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p, err := app.Projects.Create(context.Background(), actor, name, location, poc, startDate)
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&location, "location", "", "Project location")
	cmd.Flags().StringVar(&poc, "poc", "", "Single point of contact")
	cmd.Flags().StringVar(&start, "start", "", "Campaign start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill project details through a form")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}

			projects, err := app.Projects.List(context.Background(), actor)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show a project's plan and derived forecast",
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

			fmt.Printf("%s\n", formatter.FormatProjectDetail(p, m))
			return nil
		},
	}
}

func newProjectSetPocCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-poc <project> <name>",
		Short: "Assign the project's single point of contact",
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

			p, err := app.Projects.SetPoc(ctx, actor, id, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("SPOC for %s is now %s\n", p.Name, p.Poc)
			return nil
		},
	}
}

func newProjectSetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <project> <planning|active|closed>",
		Short: "Change the project lifecycle status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}
			ctx := context.Background()

			status := domain.ProjectStatus(args[1])
			switch status {
			case domain.ProjectPlanning, domain.ProjectActive, domain.ProjectClosed:
			default:
				return fmt.Errorf("unknown status %q", args[1])
			}

			id, err := resolveProjectID(ctx, app, actor, args[0])
			if err != nil {
				return err
			}

			p, err := app.Projects.SetStatus(ctx, actor, id, status)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", p.Name, p.Status)
			return nil
		},
	}
}

func newProjectLockCmd(app *App, lock bool) *cobra.Command {
	use, short := "lock <project>", "Lock the plan against edits"
	if !lock {
		use, short = "unlock <project>", "Unlock the plan for editing"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
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

			p, err := app.Projects.SetLocked(ctx, actor, id, lock)
			if err != nil {
				return err
			}

			if p.IsLocked == lock {
				verb := "locked"
				if !lock {
					verb = "unlocked"
				}
				fmt.Printf("%s %s\n", p.Name, verb)
			} else {
				fmt.Printf("Not permitted; %s unchanged\n", p.Name)
			}
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project and all its data",
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

			if err := app.Projects.Delete(ctx, actor, id); err != nil {
				return err
			}

			fmt.Println("Removed.")
			return nil
		},
	}
}

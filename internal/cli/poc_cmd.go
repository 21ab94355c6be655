package cli

import (
	"context"
	"fmt"

	"github.com/arjunshenoy/funnelcast/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poc",
		Short: "Manage the contact roster",
	}

	cmd.AddCommand(
		newPocAddCmd(app),
		newPocListCmd(app),
		newPocRemoveCmd(app),
	)

	return cmd
}

func newPocAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}

			pc, err := app.Pocs.Add(context.Background(), actor, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Added %s [%s]\n", pc.Name, pc.ID[:8])
			return nil
		},
	}
}

func newPocListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pocs, err := app.Pocs.List(context.Background())
			if err != nil {
				return err
			}

			if len(pocs) == 0 {
				fmt.Println("No contacts yet.")
				return nil
			}

			rows := make([][]string, 0, len(pocs))
			for _, pc := range pocs {
				rows = append(rows, []string{formatter.Dim(pc.ID[:8]), formatter.Bold(pc.Name)})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "NAME"}, rows))
			return nil
		},
	}
}

func newPocRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := app.actor()
			if err != nil {
				return err
			}

			if err := app.Pocs.Remove(context.Background(), actor, args[0]); err != nil {
				return err
			}

			fmt.Println("Removed.")
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/factlog/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "factlog",
		Short: "factlog - numeric records with a composite-check command log",
		Long:  "factlog keeps a small collection of numeric records and an immutable log of check commands run against them.",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAddCommand(container))
	root.AddCommand(newRemoveCommand(container))
	root.AddCommand(newListCommand(container))
	root.AddCommand(newRunCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newExportCommand(container))
	return root, nil
}

func newAddCommand(container *app.Container) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "add [value]",
		Short: "Create a numeric record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := container.Records.Create(label, args[0])
			if err != nil {
				return err
			}
			RenderRecord(cmd.OutOrStdout(), record)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Optional free-text label")
	return cmd
}

func newRemoveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a record (and the command runs that reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Records.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
			return nil
		},
	}
}

func newListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [query...]",
		Short: "List records, optionally filtered by a substring query",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := container.Records.Search(strings.Join(args, " "))
			RenderRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func newRunCommand(container *app.Container) *cobra.Command {
	var recordID string

	cmd := &cobra.Command{
		Use:   "run [command]",
		Short: "Execute a command (check, check:all) and log the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := container.Engine.Run(args[0], recordID)
			if err != nil {
				return err
			}
			RenderRun(cmd.OutOrStdout(), run)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordID, "record", "", "Target record id (required by check)")
	return cmd
}

func newHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent command runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs := container.Engine.History()
			if limit > 0 && len(runs) > limit {
				runs = runs[:limit]
			}
			RenderHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show")
	return cmd
}

func newExportCommand(container *app.Container) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the record collection as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := container.Records.ExportJSON()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			}
			return os.WriteFile(out, []byte(payload+"\n"), 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")
	return cmd
}

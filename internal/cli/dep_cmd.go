package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttline/internal/cli/formatter"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dep",
		Aliases: []string{"dependency"},
		Short:   "Manage dependencies between tasks",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

// resolveEdge turns the PRED SUCC arguments and --kind flag into an edge.
// With danglingPred set, a predecessor that names no task is taken verbatim
// so edges left pointing at a missing task can still be addressed.
func resolveEdge(ctx context.Context, app *App, args []string, kind string, danglingPred bool) (domain.Dependency, error) {
	k, err := domain.ParseRelationKind(strings.ToUpper(kind))
	if err != nil {
		return domain.Dependency{}, err
	}
	pred, err := resolveTaskID(ctx, app, args[0])
	if danglingPred && errors.Is(err, domain.ErrTaskNotFound) {
		pred, err = args[0], nil
	}
	if err != nil {
		return domain.Dependency{}, err
	}
	succ, err := resolveTaskID(ctx, app, args[1])
	if err != nil {
		return domain.Dependency{}, err
	}
	return domain.Dependency{PredecessorID: pred, SuccessorID: succ, Kind: k}, nil
}

func newDepAddCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add PREDECESSOR SUCCESSOR",
		Short: "Constrain SUCCESSOR relative to PREDECESSOR and apply it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			d, err := resolveEdge(ctx, app, args, kind, false)
			if err != nil {
				return err
			}
			link, err := app.Board.Link(ctx, d)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Linked %s → %s (%s, %s)\n",
				d.PredecessorID, d.SuccessorID, formatter.KindBadge(d.Kind), d.Kind.Label())
			fmt.Fprintln(out, formatter.FormatResult(link.Result))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(domain.FinishToStart), "Relation kind: FS, SS, FF or SF")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:     "rm PREDECESSOR SUCCESSOR",
		Aliases: []string{"remove"},
		Short:   "Remove a dependency; dates are left as they are",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveEdge(ctx, app, args, kind, true)
			if err != nil {
				return err
			}
			if err := app.Board.Unlink(ctx, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", d)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(domain.FinishToStart), "Relation kind: FS, SS, FF or SF")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dependencies and whether each holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			deps, err := app.Board.Dependencies(ctx)
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				fmt.Fprintln(out, "No dependencies found.")
				return nil
			}
			conflicts, err := app.Board.Conflicts(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatDependencyTable(deps, conflicts))
			return nil
		},
	}
}

func newConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List dependencies the current dates violate",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			conflicts, err := app.Board.Conflicts(context.Background())
			if err != nil {
				return err
			}
			if len(conflicts) == 0 {
				fmt.Fprintln(out, "No conflicts.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatDependencyTable(conflicts, conflicts))
			return nil
		},
	}
}

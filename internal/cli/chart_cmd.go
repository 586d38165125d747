package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/cli/formatter"
	"github.com/alexanderramin/ganttline/internal/render"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/spf13/cobra"
)

func newRoutesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "routes [ID]",
		Short: "Show the routed arrow geometry of each dependency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			geoms, err := app.Board.Routes(ctx)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				id, err := resolveTaskID(ctx, app, args[0])
				if err != nil {
					return err
				}
				geoms = route.Touching(geoms, id)
			}
			if len(geoms) == 0 {
				fmt.Fprintln(out, "No routes.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatRoutes(geoms))
			return nil
		},
	}
}

func newPeriodCmd(app *App) *cobra.Command {
	var next, prev bool

	cmd := &cobra.Command{
		Use:   "period [YYYY-MM]",
		Short: "Show or change the month new tasks and charts start from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			period, err := app.Board.Period(ctx)
			if err != nil {
				return err
			}

			target := period
			switch {
			case len(args) == 1:
				if target, err = parseMonth(args[0]); err != nil {
					return err
				}
			case next:
				target = calendar.AddMonths(period, 1)
			case prev:
				target = calendar.AddMonths(period, -1)
			}

			if !target.Equal(period) {
				if err := app.Board.SetPeriod(ctx, target); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatMonth(target))
			return nil
		},
	}

	cmd.Flags().BoolVar(&next, "next", false, "Move to the following month")
	cmd.Flags().BoolVar(&prev, "prev", false, "Move to the previous month")
	cmd.MarkFlagsMutuallyExclusive("next", "prev")

	return cmd
}

func newRenderCmd(app *App) *cobra.Command {
	var outPath, month string
	var text bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the board as SVG, or as a text chart with --text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			tasks, err := app.Board.List(ctx)
			if err != nil {
				return err
			}
			deps, err := app.Board.Dependencies(ctx)
			if err != nil {
				return err
			}

			period, err := app.Board.Period(ctx)
			if err != nil {
				return err
			}
			if month != "" {
				if period, err = parseMonth(month); err != nil {
					return err
				}
			}

			var doc string
			if text {
				doc = render.Timeline(tasks, period)
			} else {
				layout := app.Config.Layout()
				layout.ViewStart = calendar.StartOfMonth(period)
				doc = render.SVG(tasks, deps, layout)
			}

			if outPath == "" {
				fmt.Fprintln(out, doc)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(out, "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&month, "month", "", "Month to start the chart at (YYYY-MM)")
	cmd.Flags().BoolVar(&text, "text", false, "Render a text chart instead of SVG")

	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/cli/formatter"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/render"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/service"
	"github.com/spf13/cobra"
)

// runTaskForm is swapped out in tests; huh needs a real terminal.
var runTaskForm = func(v *taskFormValues) error {
	return newTaskForm(v).Run()
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskEditCmd(app),
		newTaskMoveCmd(app),
		newTaskResizeCmd(app),
		newTaskReorderCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var member, start string
	var days int

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Add a task at the start of the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			title := strings.Join(args, " ")

			if title == "" && app.interactive() {
				v := taskFormValues{Member: member, Start: start}
				if days > 0 {
					v.Days = strconv.Itoa(days)
				}
				if err := runTaskForm(&v); err != nil {
					return err
				}
				title, member, start = v.Title, v.Member, v.Start
				if v.Days != "" {
					days, _ = strconv.Atoi(v.Days)
				}
			}

			var from time.Time
			if start != "" {
				var err error
				if from, err = parseDateFlag("start", start); err != nil {
					return err
				}
			}

			t, err := app.Board.AddScheduledTask(ctx, title, member, from, days)
			if errors.Is(err, domain.ErrEmptyTitle) {
				fmt.Fprintln(out, "Nothing added: the title is blank.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Added task %s [%s] %s\n", t.Title, t.ID, formatter.DateRange(t.Interval()))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Assignee")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 1, "Length in days")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var timeline, tree bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in row order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			tasks, err := app.Board.List(ctx)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}

			if tree {
				fmt.Fprint(out, formatter.FormatDependencyTree(tasks))
				return nil
			}
			fmt.Fprint(out, formatter.FormatTaskTable(tasks))

			if timeline {
				period, err := app.Board.Period(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, render.Timeline(tasks, period))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&timeline, "timeline", false, "Also draw the current month as a text chart")
	cmd.Flags().BoolVar(&tree, "tree", false, "Show each task with its predecessors nested")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Board.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(t))
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, member, status, impact, start, end string
	var progress int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task's fields or dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			flags := cmd.Flags()

			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var patch service.TaskPatch
			patched := false
			if flags.Changed("title") {
				patch.Title = &title
				patched = true
			}
			if flags.Changed("member") {
				patch.Member = &member
				patched = true
			}
			if flags.Changed("status") {
				if !domain.ValidStatuses[status] {
					return fmt.Errorf("invalid status %q (expected New, Not Started, In Progress or Done)", status)
				}
				s := domain.TaskStatus(status)
				patch.Status = &s
				patched = true
			}
			if flags.Changed("impact") {
				if !domain.ValidImpacts[impact] {
					return fmt.Errorf("invalid impact %q (expected Low, Medium or High)", impact)
				}
				i := domain.Impact(impact)
				patch.Impact = &i
				patched = true
			}
			if flags.Changed("progress") {
				if progress < 0 || progress > 100 {
					return fmt.Errorf("progress must be between 0 and 100, got %d", progress)
				}
				patch.Progress = &progress
				patched = true
			}

			datesChanged := flags.Changed("start") || flags.Changed("end")
			if !patched && !datesChanged {
				return fmt.Errorf("nothing to edit: pass at least one of --title, --member, --status, --impact, --progress, --start, --end")
			}

			if patched {
				t, err := app.Board.UpdateTask(ctx, id, patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Updated task %s [%s]\n", t.Title, t.ID)
			}

			if datesChanged {
				cur, err := app.Board.Get(ctx, id)
				if err != nil {
					return err
				}
				from, to := cur.Start, cur.End
				if flags.Changed("start") {
					if from, err = parseDateFlag("start", start); err != nil {
						return err
					}
				}
				if flags.Changed("end") {
					if to, err = parseDateFlag("end", end); err != nil {
						return err
					}
				}
				res, err := app.Board.EditInterval(ctx, id, from, to)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatResult(res))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&member, "member", "", "Assignee")
	cmd.Flags().StringVar(&status, "status", "", "New, Not Started, In Progress or Done")
	cmd.Flags().StringVar(&impact, "impact", "", "Low, Medium or High")
	cmd.Flags().IntVar(&progress, "progress", 0, "Completion percentage (0-100)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	var days int
	var to string

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Shift a task's dates, keeping its length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var res schedule.Result
			switch {
			case to != "":
				day, err := parseDateFlag("to", to)
				if err != nil {
					return err
				}
				cur, err := app.Board.Get(ctx, id)
				if err != nil {
					return err
				}
				res, err = app.Board.EditInterval(ctx, id, day, calendar.AddDays(day, cur.Duration()-1))
				if err != nil {
					return err
				}
			case cmd.Flags().Changed("days"):
				if res, err = app.Board.Move(ctx, id, days); err != nil {
					return err
				}
			default:
				return fmt.Errorf("pass --days N or --to YYYY-MM-DD")
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(res))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to shift by (negative moves earlier)")
	cmd.Flags().StringVar(&to, "to", "", "New start date (YYYY-MM-DD)")

	return cmd
}

func newTaskResizeCmd(app *App) *cobra.Command {
	var days, length int

	cmd := &cobra.Command{
		Use:   "resize ID",
		Short: "Lengthen or shorten a task from its end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var res schedule.Result
			switch {
			case cmd.Flags().Changed("length"):
				if length < 1 {
					return fmt.Errorf("--length must be at least 1")
				}
				cur, err := app.Board.Get(ctx, id)
				if err != nil {
					return err
				}
				res, err = app.Board.EditInterval(ctx, id, cur.Start, calendar.AddDays(cur.Start, length-1))
				if err != nil {
					return err
				}
			case cmd.Flags().Changed("days"):
				if res, err = app.Board.Resize(ctx, id, days); err != nil {
					return err
				}
			default:
				return fmt.Errorf("pass --days N or --length N")
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(res))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to add to the end (negative shortens)")
	cmd.Flags().IntVar(&length, "length", 0, "New length in days")

	return cmd
}

func newTaskReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder FROM TO",
		Short: "Move the task in row FROM to row TO (rows count from 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q", args[1])
			}
			if err := app.Board.Reorder(context.Background(), from-1, to-1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved row %d to %d\n", from, to)
			return nil
		},
	}
}

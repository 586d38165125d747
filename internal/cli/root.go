package cli

import (
	"fmt"

	"github.com/alexanderramin/ganttline/internal/config"
	"github.com/alexanderramin/ganttline/internal/service"
	"github.com/spf13/cobra"
)

// App holds the board service and resolved settings used by CLI commands.
type App struct {
	Board  service.BoardService
	Config config.Config

	// Connect opens the board once flags are parsed. It is only called when
	// Board is nil, so tests can hand in a ready service.
	Connect func(cfg config.Config) (service.BoardService, error)

	// IsInteractive reports whether stdin is a terminal. Commands fall back
	// to forms only when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ganttline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ganttline",
		Short:         "Gantt chart scheduler with dependency constraints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ApplyFlags(&app.Config, cmd.Flags()); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}
			if app.Board != nil {
				return nil
			}
			if app.Connect == nil {
				return fmt.Errorf("no board configured")
			}
			board, err := app.Connect(app.Config)
			if err != nil {
				return err
			}
			app.Board = board
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTaskCmd(app),
		newDepCmd(app),
		newConflictsCmd(app),
		newRoutesCmd(app),
		newPeriodCmd(app),
		newRenderCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newBoardCmd(app),
	)

	return root
}

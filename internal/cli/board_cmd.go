package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Edit the chart interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board needs an interactive terminal; use the task and dep commands instead")
			}

			ctx := context.Background()
			ctrl, err := app.Board.Open(ctx)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newBoardModel(app, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
			final, err := program.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(boardModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var flags lobbyFlags

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive lobby editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app.Engine); err != nil {
				return err
			}

			p := tea.NewProgram(newEditorModel(app), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd.Flags(), true)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aklein/lobbyscribe/internal/share"
)

func newShareCmd(app *App) *cobra.Command {
	var flags lobbyFlags

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print an opaque share code for the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app.Engine); err != nil {
				return err
			}

			code, err := share.Encode(app.Engine)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aklein/lobbyscribe/internal/cli/formatter"
	"github.com/aklein/lobbyscribe/internal/recommend"
)

func newAdviseCmd(app *App) *cobra.Command {
	var flags lobbyFlags

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Evaluate the configuration and print recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app.Engine); err != nil {
				return err
			}

			balance, fun := app.Engine.Quality()
			advice := recommend.Active(app.Engine, app.Logger)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.QualityBadge(balance, fun))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatAdvice(advice))
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	return cmd
}

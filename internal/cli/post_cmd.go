package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aklein/lobbyscribe/internal/compose"
)

func newPostCmd(app *App) *cobra.Command {
	var flags lobbyFlags

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Print the composed lobby settings post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app.Engine); err != nil {
				return err
			}

			post := compose.Post(app.Engine)
			if !app.Config.Display.Attribution {
				post = stripAttribution(post)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(post, "\n"))
			return nil
		},
	}

	flags.register(cmd.Flags(), true)
	return cmd
}

func stripAttribution(post string) string {
	lines := strings.Split(post, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line == compose.Attribution {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

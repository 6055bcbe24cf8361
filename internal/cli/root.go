package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aklein/lobbyscribe/internal/config"
	"github.com/aklein/lobbyscribe/internal/engine"
)

// App holds everything the CLI commands need: the session engine, the app
// configuration, and the ambient logger.
type App struct {
	Engine *engine.Engine
	Config *config.Config
	Logger *slog.Logger
}

// NewRootCmd creates the top-level "lobbyscribe" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lobbyscribe",
		Short: "Compose a lobby settings post and get balance advice",
		Long: "lobbyscribe configures a social-deduction game lobby, renders a compact\n" +
			"settings post highlighting only the interesting deviations, and offers\n" +
			"advisory recommendations on the configuration.",
	}

	root.AddCommand(
		newEditCmd(app),
		newNewCmd(app),
		newPostCmd(app),
		newAdviseCmd(app),
		newShareCmd(app),
	)

	return root
}

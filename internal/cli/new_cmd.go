package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/cli/formatter"
	"github.com/aklein/lobbyscribe/internal/compose"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
	"github.com/aklein/lobbyscribe/internal/recommend"
	"github.com/aklein/lobbyscribe/internal/share"
)

// newNewCmd guides the host through the headline settings with a form, then
// prints the post, the advice, and a share code in one go. Fine-grained
// tuning happens in `edit`.
func newNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Guided setup for a fresh lobby",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runLobbyWizard(app); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, compose.Post(app.Engine))

			balance, fun := app.Engine.Quality()
			fmt.Fprintln(out, formatter.QualityBadge(balance, fun))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatAdvice(recommend.Active(app.Engine, app.Logger)))

			code, err := share.Encode(app.Engine)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nShare code: %s\n", code)
			return nil
		},
	}
}

func runLobbyWizard(app *App) error {
	e := app.Engine

	joinCode := e.Text(catalog.JoinCode)
	region := e.Choice(catalog.Region)
	players := strconv.Itoa(int(e.Num(catalog.MaxPlayers)))
	intruders := strconv.Itoa(int(e.Num(catalog.IntruderCount)))
	speed := e.Value(catalog.MoveSpeed).Encode()
	tasks := strconv.Itoa(int(e.Num(catalog.TaskCount)))
	sheriff := e.Flag(catalog.Sheriff)

	regionDef, _ := e.Definition(catalog.Region)
	regionSpec := regionDef.Spec.(domain.SelectSpec)
	regionOpts := make([]huh.Option[string], 0, len(regionSpec.Options))
	for _, opt := range regionSpec.Options {
		regionOpts = append(regionOpts, huh.NewOption(opt.Label, string(opt.ID)))
	}

	playersRange := rangeSpecFor(e, catalog.MaxPlayers)
	intrudersRange := rangeSpecFor(e, catalog.IntruderCount)
	speedRange := rangeSpecFor(e, catalog.MoveSpeed)
	tasksRange := rangeSpecFor(e, catalog.TaskCount)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Join Code").
				Placeholder("QWXYZ").
				Value(&joinCode).
				Validate(validateJoinCode),
			huh.NewSelect[string]().
				Title("Region").
				Options(regionOpts...).
				Value(&region),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(rangeTitle("Max Players", playersRange)).
				Value(&players).
				Validate(validateIntIn(int(playersRange.Min), int(playersRange.Max))),
			huh.NewInput().
				Title(rangeTitle("Intruders", intrudersRange)).
				Value(&intruders).
				Validate(validateIntIn(int(intrudersRange.Min), int(intrudersRange.Max))),
			huh.NewInput().
				Title(rangeTitle("Move Speed", speedRange)).
				Value(&speed).
				Validate(validateFloatIn(speedRange.Min, speedRange.Max)),
			huh.NewInput().
				Title(rangeTitle("Tasks", tasksRange)).
				Value(&tasks).
				Validate(validateIntIn(int(tasksRange.Min), int(tasksRange.Max))),
			huh.NewConfirm().
				Title("Enable the Sheriff role?").
				Value(&sheriff),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running setup form: %w", err)
	}

	for _, set := range []struct {
		id  string
		raw string
	}{
		{catalog.JoinCode, joinCode},
		{catalog.Region, region},
		{catalog.MaxPlayers, players},
		{catalog.IntruderCount, intruders},
		{catalog.MoveSpeed, speed},
		{catalog.TaskCount, tasks},
		{catalog.Sheriff, domain.Flag(sheriff).Encode()},
	} {
		if res := e.ApplyRaw(set.id, set.raw); !res.Applied {
			return fmt.Errorf("cannot set %q: %s", set.id, res.Reason)
		}
	}
	return nil
}

func rangeSpecFor(e *engine.Engine, id string) domain.RangeSpec {
	def, _ := e.Definition(id)
	return def.Spec.(domain.RangeSpec)
}

func rangeTitle(name string, spec domain.RangeSpec) string {
	return fmt.Sprintf("%s (%g-%g)", name, spec.Min, spec.Max)
}

func validateJoinCode(s string) error {
	if len(s) < catalog.MinJoinCodeLen {
		return fmt.Errorf("at least %d characters", catalog.MinJoinCodeLen)
	}
	return nil
}

func validateIntIn(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("between %d and %d", min, max)
		}
		return nil
	}
}

func validateFloatIn(min, max float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if f < min || f > max {
			return fmt.Errorf("between %g and %g", min, max)
		}
		return nil
	}
}

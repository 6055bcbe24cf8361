package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
	"github.com/aklein/lobbyscribe/internal/share"
)

// lobbyFlags are the inputs shared by post, advise, and share: an imported
// share code, repeatable id=value overrides, and the join code.
type lobbyFlags struct {
	code string
	sets []string
	join string
}

func (f *lobbyFlags) register(fs *pflag.FlagSet, withJoin bool) {
	fs.StringVar(&f.code, "code", "", "Share code to import before applying overrides")
	fs.StringArrayVar(&f.sets, "set", nil, "Override a setting (id=value, repeatable)")
	if withJoin {
		fs.StringVar(&f.join, "lobby", "", "Lobby join code for the post")
	}
}

// apply feeds the share code, --set overrides, and join code into the engine
// in that order, so explicit flags win over imported values.
func (f *lobbyFlags) apply(e *engine.Engine) error {
	if f.code != "" {
		if _, err := share.Apply(e, f.code); err != nil {
			return fmt.Errorf("importing share code: %w", err)
		}
	}

	for _, kv := range f.sets {
		id, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected id=value", kv)
		}
		id = strings.TrimSpace(id)
		if res := e.ApplyRaw(id, strings.TrimSpace(raw)); !res.Applied {
			return fmt.Errorf("cannot set %q: %s", id, res.Reason)
		}
	}

	if f.join != "" {
		if res := e.ApplyChange(catalog.JoinCode, domain.Text(f.join)); !res.Applied {
			return fmt.Errorf("cannot set join code: %s", res.Reason)
		}
	}
	return nil
}

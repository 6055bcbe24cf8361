// Package engine holds the lobby configuration state and the relevancy-driven
// visibility pipeline. All state lives in an explicit Engine value; the
// relevancy, quality, and visibility passes are pure functions over it.
//
// The engine is single-goroutine by design: every update runs a full
// synchronous recompute on the calling goroutine, and callers must not
// trigger updates from inside a relevancy function.
package engine

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aklein/lobbyscribe/internal/domain"
)

// Engine is the constructed session state: catalog plus mutable per-setting
// state, visibility threshold, and derived quality scores.
type Engine struct {
	// SessionID identifies this in-memory session in logs.
	SessionID string

	defs   []domain.SettingDef
	byID   map[string]domain.SettingDef
	states map[string]*domain.SettingState

	// subOwner maps a sub-option state key to its owning group id.
	subOwner map[string]string

	logger *slog.Logger

	nonDefault int
	threshold  float64
	balance    int
	fun        int
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLogger directs engine diagnostics (rejected updates, panicking rules)
// to the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an Engine over the given catalog with every setting at its
// default value and runs the initial recompute.
func New(defs []domain.SettingDef, opts ...Option) *Engine {
	e := &Engine{
		SessionID: uuid.NewString(),
		defs:      defs,
		byID:      make(map[string]domain.SettingDef, len(defs)),
		states:    make(map[string]*domain.SettingState),
		subOwner:  make(map[string]string),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, def := range e.defs {
		e.byID[def.ID] = def
		if group, ok := def.Spec.(domain.GroupSpec); ok {
			for _, sub := range group.Subs {
				key := domain.SubID(def.ID, sub.ID)
				e.subOwner[key] = def.ID
				e.states[key] = &domain.SettingState{Value: sub.Default}
			}
			continue
		}
		e.states[def.ID] = &domain.SettingState{Value: def.Spec.DefaultValue()}
	}

	e.Recompute()
	return e
}

// Definitions returns the ordered catalog the engine was built with.
func (e *Engine) Definitions() []domain.SettingDef { return e.defs }

// Definition returns the top-level definition for an id.
func (e *Engine) Definition(id string) (domain.SettingDef, bool) {
	def, ok := e.byID[id]
	return def, ok
}

// Setting returns a copy of the current state for a setting or sub-option id.
func (e *Engine) Setting(id string) (domain.SettingState, bool) {
	st, ok := e.states[id]
	if !ok {
		return domain.SettingState{}, false
	}
	return *st, true
}

// Settings returns a copy of the full state map.
func (e *Engine) Settings() map[string]domain.SettingState {
	out := make(map[string]domain.SettingState, len(e.states))
	for id, st := range e.states {
		out[id] = *st
	}
	return out
}

// Threshold returns the visibility cutoff from the last recompute.
func (e *Engine) Threshold() float64 { return e.threshold }

// NonDefaultCount returns how many settings deviated from their defaults at
// the last recompute, group sub-options counted individually.
func (e *Engine) NonDefaultCount() int { return e.nonDefault }

// Quality returns the derived balance and fun scores, each in [0,100].
func (e *Engine) Quality() (balance, fun int) { return e.balance, e.fun }

// specFor resolves the spec governing a state key, following sub-option keys
// to their owning group.
func (e *Engine) specFor(id string) (domain.Spec, bool) {
	if def, ok := e.byID[id]; ok {
		return def.Spec, true
	}
	if owner, ok := e.subOwner[id]; ok {
		return e.byID[owner].Spec, true
	}
	return nil, false
}

// defaultFor returns the default value for a state key.
func (e *Engine) defaultFor(id string) domain.Value {
	if def, ok := e.byID[id]; ok {
		return def.Spec.DefaultValue()
	}
	if owner, ok := e.subOwner[id]; ok {
		group := e.byID[owner].Spec.(domain.GroupSpec)
		for _, sub := range group.Subs {
			if domain.SubID(owner, sub.ID) == id {
				return sub.Default
			}
		}
	}
	return nil
}

// ── domain.Snapshot ──────────────────────────────────────────────────────────

// Value implements domain.Snapshot. Unknown ids return nil.
func (e *Engine) Value(id string) domain.Value {
	if st, ok := e.states[id]; ok {
		return st.Value
	}
	return nil
}

// Num returns the numeric value of a range setting, or its default when the
// id is unknown or not numeric.
func (e *Engine) Num(id string) float64 {
	if n, ok := e.Value(id).(domain.Number); ok {
		return float64(n)
	}
	if n, ok := e.defaultFor(id).(domain.Number); ok {
		return float64(n)
	}
	return 0
}

// Flag returns the boolean value of a bool setting or group sub-option.
func (e *Engine) Flag(id string) bool {
	if f, ok := e.Value(id).(domain.Flag); ok {
		return bool(f)
	}
	if f, ok := e.defaultFor(id).(domain.Flag); ok {
		return bool(f)
	}
	return false
}

// Choice returns the selected option id of a select or choice setting.
func (e *Engine) Choice(id string) string {
	if c, ok := e.Value(id).(domain.Choice); ok {
		return string(c)
	}
	if c, ok := e.defaultFor(id).(domain.Choice); ok {
		return string(c)
	}
	return ""
}

// Text returns the value of a text setting.
func (e *Engine) Text(id string) string {
	if t, ok := e.Value(id).(domain.Text); ok {
		return string(t)
	}
	return ""
}

var _ domain.Snapshot = (*Engine)(nil)

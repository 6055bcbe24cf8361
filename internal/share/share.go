// Package share encodes the current non-default settings into an opaque,
// URL-safe code other hosts can import. The join code is a per-lobby secret
// and is never included. Decoded values re-enter the engine through the same
// update path as direct edits, so relevancy and visibility recompute
// consistently.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

// defaultValues returns the state keys a definition owns and their defaults:
// one entry for plain settings, one per sub-option for groups.
func defaultValues(def domain.SettingDef) map[string]domain.Value {
	if group, ok := def.Spec.(domain.GroupSpec); ok {
		out := make(map[string]domain.Value, len(group.Subs))
		for _, sub := range group.Subs {
			out[domain.SubID(def.ID, sub.ID)] = sub.Default
		}
		return out
	}
	return map[string]domain.Value{def.ID: def.Spec.DefaultValue()}
}

const codeVersion = 1

var (
	ErrEmptyCode      = fmt.Errorf("empty share code")
	ErrMalformedCode  = fmt.Errorf("malformed share code")
	ErrVersionUnknown = fmt.Errorf("share code from a newer version")
)

type payload struct {
	Version  int               `json:"v"`
	Settings map[string]string `json:"s"`
}

// Encode serializes every non-default setting value, excluding the join
// code. An all-default configuration encodes to a valid (empty) code.
func Encode(e *engine.Engine) (string, error) {
	values := make(map[string]string)
	states := e.Settings()

	for _, def := range e.Definitions() {
		if def.ID == catalog.JoinCode {
			continue
		}
		for id, want := range defaultValues(def) {
			st, ok := states[id]
			if !ok || st.Value == nil || st.Value.Equal(want) {
				continue
			}
			values[id] = st.Value.Encode()
		}
	}

	raw, err := json.Marshal(payload{Version: codeVersion, Settings: values})
	if err != nil {
		return "", fmt.Errorf("encoding share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses an opaque share code back into a partial id-to-value map.
func Decode(code string) (map[string]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
	}
	if p.Version > codeVersion {
		return nil, ErrVersionUnknown
	}
	if p.Settings == nil {
		p.Settings = map[string]string{}
	}
	return p.Settings, nil
}

// Apply decodes a share code and routes every value through the engine's
// normal update path. Unknown ids and out-of-bounds values are skipped by
// the engine itself; Apply reports how many values took effect.
func Apply(e *engine.Engine, code string) (int, error) {
	values, err := Decode(code)
	if err != nil {
		return 0, err
	}

	// The join code never travels in a share code; drop it even from
	// hand-crafted payloads.
	delete(values, catalog.JoinCode)

	applied := 0
	for id, raw := range values {
		if res := e.ApplyRaw(id, raw); res.Applied {
			applied++
		}
	}
	return applied, nil
}

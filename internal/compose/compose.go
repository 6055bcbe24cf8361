// Package compose renders the shareable lobby settings post: the ordered,
// categorized, emoji-annotated text block a host pastes into chat. It is pure
// text generation over the engine state; styling for the terminal preview
// lives in the cli formatter.
package compose

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

// Placeholder is emitted instead of a post until a usable join code is set.
const Placeholder = "Enter a join code (at least 5 characters) to generate your lobby post."

// Attribution is the fixed footer line.
const Attribution = "— posted with lobbyscribe"

// Decoration thresholds: settings at or above boldAt render bolded, and at
// or above flagAt get the attention flag.
const (
	boldAt = 0.7
	flagAt = 1.0
)

// Banner icon priority: celebratory fun, then low balance, then a disabled
// signature role, then neutral.
const (
	bannerFunAt     = 90
	bannerBalanceAt = 50
)

// Post renders the full settings post for the current engine state.
func Post(e *engine.Engine) string {
	code := strings.TrimSpace(e.Text(catalog.JoinCode))
	if utf8.RuneCountInString(code) < catalog.MinJoinCodeLen {
		return Placeholder
	}

	var b strings.Builder
	b.WriteString(banner(e))
	b.WriteString("\n")

	for _, cat := range domain.CategoryOrder {
		section := categorySection(e, cat)
		if section == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", cat.Icon(), cat.Label()))
		b.WriteString(section)
	}

	b.WriteString("\n")
	b.WriteString(Attribution)
	b.WriteString("\n")
	return b.String()
}

func banner(e *engine.Engine) string {
	balance, fun := e.Quality()
	icon := "📋"
	switch {
	case fun >= bannerFunAt:
		icon = "🎉"
	case balance < bannerBalanceAt:
		icon = "⚠️"
	case !e.Flag(catalog.Sheriff):
		icon = "⚠️"
	}
	return fmt.Sprintf("%s Lobby Settings", icon)
}

// categorySection renders the lines for one category bin, or "" when nothing
// in the bin is visible.
func categorySection(e *engine.Engine, cat domain.Category) string {
	type entry struct {
		def   domain.SettingDef
		state domain.SettingState
	}

	var entries []entry
	var groups []domain.SettingDef
	for _, def := range e.Definitions() {
		if def.Category != cat {
			continue
		}
		if def.Spec.Kind() == domain.KindGroup {
			// Groups are never rendered as individual sub-option lines; a
			// combined line is injected after the main loop.
			groups = append(groups, def)
			continue
		}
		st, ok := e.Setting(def.ID)
		if !ok || !st.Visible {
			continue
		}
		entries = append(entries, entry{def, st})
	}

	// Highest relevancy first; stable sort preserves catalog order on ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].state.Relevancy > entries[j].state.Relevancy
	})

	var b strings.Builder
	for _, en := range entries {
		b.WriteString(settingLine(en.def, en.state))
		b.WriteString("\n")
	}
	for _, def := range groups {
		if line := groupLine(e, def); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func settingLine(def domain.SettingDef, st domain.SettingState) string {
	body := fmt.Sprintf("%s: %s", def.Name, FormatValue(def.Spec, st.Value))
	switch {
	case st.Relevancy >= flagAt:
		body = fmt.Sprintf("**%s** ‼️", body)
	case st.Relevancy >= boldAt:
		body = fmt.Sprintf("**%s**", body)
	}
	return fmt.Sprintf("%s %s", def.Icon, body)
}

// groupLine renders the synthetic combined line for a multi-select group,
// injected only when the group deviates from its all-default state.
func groupLine(e *engine.Engine, def domain.SettingDef) string {
	group, ok := def.Spec.(domain.GroupSpec)
	if !ok {
		return ""
	}

	atDefault := true
	var enabled []string
	for _, sub := range group.Subs {
		on := e.Flag(domain.SubID(def.ID, sub.ID))
		if domain.Flag(on) != sub.Default {
			atDefault = false
		}
		if on {
			enabled = append(enabled, sub.Label)
		}
	}
	if atDefault {
		return ""
	}

	var label string
	switch {
	case len(enabled) == 0:
		label = "None"
	case len(enabled) == len(group.Subs):
		label = "All"
	case len(enabled) == 1:
		label = enabled[0] + " Only"
	default:
		label = strings.Join(enabled, " + ")
	}
	return fmt.Sprintf("%s %s: %s", def.Icon, def.Name, label)
}

// FormatValue formats a typed value for the post, using the spec for labels
// and units.
func FormatValue(spec domain.Spec, v domain.Value) string {
	switch s := spec.(type) {
	case domain.TextSpec:
		if t, ok := v.(domain.Text); ok {
			return string(t)
		}
	case domain.BoolSpec:
		if f, ok := v.(domain.Flag); ok {
			if f {
				return "On"
			}
			return "Off"
		}
	case domain.SelectSpec:
		if c, ok := v.(domain.Choice); ok {
			return s.Label(c)
		}
	case domain.ChoiceSpec:
		if c, ok := v.(domain.Choice); ok {
			return s.Label(c)
		}
	case domain.RangeSpec:
		if n, ok := v.(domain.Number); ok {
			return strconv.FormatFloat(float64(n), 'f', -1, 64) + s.Unit
		}
	case domain.GroupSpec:
		// Groups render through groupLine.
	}
	if v == nil {
		return ""
	}
	return v.Encode()
}

package domain

import (
	"fmt"
	"math"
	"strings"
)

// Snapshot is read-only access to the full current value set. Relevancy
// functions and advice conditions receive one so cross-setting rules can read
// any other setting. Accessors fall back to the catalog default for ids with
// no state, so rules never observe a missing value.
type Snapshot interface {
	Value(id string) Value
	Num(id string) float64
	Flag(id string) bool
	Choice(id string) string
	Text(id string) string
}

// RelevancyFunc scores how noteworthy a setting's current value is, in [0,1].
// 0 means unremarkable (hide), 1 means critical (always show, flagged).
// Group-kind settings are scored once at the group level with a nil value.
type RelevancyFunc func(v Value, snap Snapshot) float64

// SettingDef is one immutable catalog entry.
type SettingDef struct {
	ID       string
	Name     string
	Icon     string
	Category Category

	// Hideable false means the setting is always shown regardless of score
	// or override (e.g. the join code).
	Hideable bool

	// AdvancedByDefault affects the editor's initial collapsed state only,
	// never the relevancy math.
	AdvancedByDefault bool

	Spec      Spec
	Relevancy RelevancyFunc
}

// Spec is the kind-specific part of a setting definition. It is a closed
// variant set; switching on the concrete type gives exhaustive handling of
// kind-specific validation and rendering.
type Spec interface {
	Kind() SettingKind
	// DefaultValue returns the typed default, or nil for group specs (each
	// sub-option carries its own default).
	DefaultValue() Value
	// Parse converts the canonical string form into a typed value, without
	// bounds checking.
	Parse(raw string) (Value, error)
	// Validate reports whether a typed value is inside the declared domain.
	Validate(v Value) error
}

type TextSpec struct {
	Default Text
	MinLen  int
	MaxLen  int
}

func (TextSpec) Kind() SettingKind { return KindText }

func (s TextSpec) DefaultValue() Value { return s.Default }

func (s TextSpec) Parse(raw string) (Value, error) { return Text(raw), nil }

func (s TextSpec) Validate(v Value) error {
	t, ok := v.(Text)
	if !ok {
		return fmt.Errorf("expected text, got %T", v)
	}
	if s.MaxLen > 0 && len(t) > s.MaxLen {
		return fmt.Errorf("longer than %d characters", s.MaxLen)
	}
	return nil
}

type BoolSpec struct {
	Default Flag
}

func (BoolSpec) Kind() SettingKind { return KindBool }

func (s BoolSpec) DefaultValue() Value { return s.Default }

func (s BoolSpec) Parse(raw string) (Value, error) { return parseFlag(raw) }

func (s BoolSpec) Validate(v Value) error {
	if _, ok := v.(Flag); !ok {
		return fmt.Errorf("expected boolean, got %T", v)
	}
	return nil
}

// Option is one allowed value of a select or exclusive-choice setting.
type Option struct {
	ID    Choice
	Label string
}

type SelectSpec struct {
	Default Choice
	Options []Option
}

func (SelectSpec) Kind() SettingKind { return KindSelect }

func (s SelectSpec) DefaultValue() Value { return s.Default }

func (s SelectSpec) Parse(raw string) (Value, error) {
	return Choice(strings.TrimSpace(raw)), nil
}

func (s SelectSpec) Validate(v Value) error {
	return validateOption(v, s.Options)
}

// Label returns the display label for an option id, falling back to the id.
func (s SelectSpec) Label(id Choice) string { return optionLabel(id, s.Options) }

// ChoiceSpec is an exclusive choice between a small set of modes. It differs
// from SelectSpec only in intent: one option is the conventional "normal"
// state that never merits surfacing.
type ChoiceSpec struct {
	Default Choice
	Options []Option
}

func (ChoiceSpec) Kind() SettingKind { return KindChoice }

func (s ChoiceSpec) DefaultValue() Value { return s.Default }

func (s ChoiceSpec) Parse(raw string) (Value, error) {
	return Choice(strings.TrimSpace(raw)), nil
}

func (s ChoiceSpec) Validate(v Value) error {
	return validateOption(v, s.Options)
}

func (s ChoiceSpec) Label(id Choice) string { return optionLabel(id, s.Options) }

type RangeSpec struct {
	Default Number
	Min     float64
	Max     float64
	Step    float64
	// Unit is a display suffix such as "x" or "s".
	Unit string
}

func (RangeSpec) Kind() SettingKind { return KindRange }

func (s RangeSpec) DefaultValue() Value { return s.Default }

func (s RangeSpec) Parse(raw string) (Value, error) { return parseNumber(raw) }

func (s RangeSpec) Validate(v Value) error {
	n, ok := v.(Number)
	if !ok {
		return fmt.Errorf("expected number, got %T", v)
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a finite number")
	}
	if f < s.Min-numberEpsilon || f > s.Max+numberEpsilon {
		return fmt.Errorf("out of range [%g, %g]", s.Min, s.Max)
	}
	return nil
}

// SubOption is one member of a multi-select group setting.
type SubOption struct {
	ID      string
	Label   string
	Default Flag
}

// GroupSpec is a multi-select group. The group itself has no value; each
// sub-option is tracked as an individual Flag keyed "<group>.<sub>".
type GroupSpec struct {
	Subs []SubOption
}

func (GroupSpec) Kind() SettingKind { return KindGroup }

func (GroupSpec) DefaultValue() Value { return nil }

func (s GroupSpec) Parse(raw string) (Value, error) { return parseFlag(raw) }

func (s GroupSpec) Validate(v Value) error {
	if _, ok := v.(Flag); !ok {
		return fmt.Errorf("expected boolean sub-option, got %T", v)
	}
	return nil
}

// SubID returns the state key for a group sub-option.
func SubID(groupID, subID string) string { return groupID + "." + subID }

func validateOption(v Value, opts []Option) error {
	c, ok := v.(Choice)
	if !ok {
		return fmt.Errorf("expected option id, got %T", v)
	}
	for _, o := range opts {
		if o.ID == c {
			return nil
		}
	}
	return fmt.Errorf("unknown option %q", c)
}

func optionLabel(id Choice, opts []Option) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Label
		}
	}
	return string(id)
}

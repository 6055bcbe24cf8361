package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the typed value of a setting. The concrete types are Text, Flag,
// Number, and Choice; group parents carry no value of their own (their
// sub-options each hold a Flag).
type Value interface {
	// Encode returns the canonical string form used by share codes and the
	// --set flag. Parse on the owning spec is its inverse.
	Encode() string
	// Equal reports whether two values are the same, comparing numbers with
	// a small epsilon so slider steps survive round-tripping.
	Equal(other Value) bool
}

type Text string

func (t Text) Encode() string { return string(t) }

func (t Text) Equal(other Value) bool {
	o, ok := other.(Text)
	return ok && o == t
}

type Flag bool

func (f Flag) Encode() string {
	if f {
		return "true"
	}
	return "false"
}

func (f Flag) Equal(other Value) bool {
	o, ok := other.(Flag)
	return ok && o == f
}

type Number float64

// numberEpsilon absorbs float noise from slider steps like 0.05.
const numberEpsilon = 1e-9

func (n Number) Encode() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	d := float64(o - n)
	return d < numberEpsilon && d > -numberEpsilon
}

type Choice string

func (c Choice) Encode() string { return string(c) }

func (c Choice) Equal(other Value) bool {
	o, ok := other.(Choice)
	return ok && o == c
}

// parseFlag accepts the encodings produced by Flag.Encode plus on/off, which
// the editor surfaces for booleans.
func parseFlag(raw string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "yes", "1":
		return Flag(true), nil
	case "false", "off", "no", "0":
		return Flag(false), nil
	}
	return Flag(false), fmt.Errorf("not a boolean: %q", raw)
}

func parseNumber(raw string) (Number, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return Number(f), nil
}

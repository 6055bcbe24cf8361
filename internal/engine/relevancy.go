package engine

import (
	"math"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
)

// Threshold dynamics: the bar for surfacing a setting rises as more of the
// configuration deviates from defaults, capped so heavily customized lobbies
// still show their strongest deviations.
const (
	thresholdBase  = 0.2
	thresholdSlope = 0.08
	thresholdCap   = 0.6
)

// errorScore is the neutral relevancy assigned when a relevancy function
// panics; one bad rule must never abort the recompute.
const errorScore = 0.5

// Dampening for the designated low-impact setting: once more than
// dampFreeDeviations other settings are non-default, its score decays
// linearly, floored at dampFloor.
const (
	dampFloor          = 0.05
	dampSlope          = 0.15
	dampFreeDeviations = 2
)

// hardHide is one entry of the fixed post-threshold override table. Entries
// only ever move a setting from shown to hidden, never the reverse: some
// settings need an absolute guarantee of suppression at one canonical value
// that a continuous score against a moving threshold cannot give.
type hardHide struct {
	id   string
	hide func(snap domain.Snapshot) bool
}

var hardHides = []hardHide{
	{catalog.MoveSpeed, func(s domain.Snapshot) bool {
		return math.Abs(s.Num(catalog.MoveSpeed)-1.0) < 1e-9
	}},
	{catalog.Spectators, func(s domain.Snapshot) bool {
		return s.Flag(catalog.Spectators)
	}},
	{catalog.ConfirmEjects, func(s domain.Snapshot) bool {
		return s.Flag(catalog.ConfirmEjects)
	}},
	{catalog.Privacy, func(s domain.Snapshot) bool {
		return domain.Choice(s.Choice(catalog.Privacy)) == catalog.PrivacyOpen
	}},
}

// dampenedSetting yields display space to more interesting deviations as the
// configuration gets busier.
const dampenedSetting = catalog.EmergencyMeetings

// Recompute runs the full relevancy, threshold, visibility, and quality
// passes over the current values. It is idempotent: calling it twice with no
// intervening change leaves every score and visibility untouched.
func (e *Engine) Recompute() {
	// Pass 1: relevancy scores. Scores are refreshed even for manually set
	// and non-hideable settings so sort order stays current; only Visible is
	// protected by the override latch.
	for _, def := range e.defs {
		score := e.safeScore(def)

		if group, ok := def.Spec.(domain.GroupSpec); ok {
			for _, sub := range group.Subs {
				e.states[domain.SubID(def.ID, sub.ID)].Relevancy = score
			}
			continue
		}
		e.states[def.ID].Relevancy = score
	}

	// Pass 2: non-default count and the derived threshold.
	e.nonDefault = e.countNonDefault()
	e.threshold = math.Min(thresholdCap, thresholdSlope*float64(e.nonDefault)+thresholdBase)

	// Pass 3: visibility from score vs threshold.
	for id := range e.states {
		e.applyVisibility(id)
	}

	// Pass 4: the fixed hard-hide table.
	for _, hh := range hardHides {
		st, ok := e.states[hh.id]
		if !ok || st.ManuallySet {
			continue
		}
		if e.hideableFor(hh.id) && hh.hide(e) {
			st.Visible = false
		}
	}

	// Pass 5: dampen the designated low-impact setting as the rest of the
	// configuration gets more interesting, then re-apply its visibility.
	e.dampen()

	e.computeQuality()
}

// safeScore invokes a relevancy function, converting a panic into the
// neutral score.
func (e *Engine) safeScore(def domain.SettingDef) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("relevancy function panicked", "setting", def.ID, "panic", r)
			score = errorScore
		}
	}()

	var v domain.Value
	if def.Spec.Kind() != domain.KindGroup {
		v = e.states[def.ID].Value
	}
	score = def.Relevancy(v, e)
	if math.IsNaN(score) {
		return errorScore
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// applyVisibility writes the threshold-derived visibility for one state key,
// honoring the manual latch and the non-hideable invariant.
func (e *Engine) applyVisibility(id string) {
	st := e.states[id]
	if !e.hideableFor(id) {
		st.Visible = true
		return
	}
	if st.ManuallySet {
		return
	}
	st.Visible = st.Relevancy > e.threshold
}

func (e *Engine) dampen() {
	st, ok := e.states[dampenedSetting]
	if !ok {
		return
	}

	others := e.nonDefault
	if !st.Value.Equal(e.defaultFor(dampenedSetting)) {
		others--
	}
	if others <= dampFreeDeviations {
		return
	}

	damped := st.Relevancy * (1 - dampSlope*float64(others-dampFreeDeviations))
	st.Relevancy = math.Max(dampFloor, damped)
	e.applyVisibility(dampenedSetting)
}

// countNonDefault counts settings whose value differs from the catalog
// default, group sub-options individually. Non-hideable settings (the join
// code) are excluded: filling in the code does not make the configuration
// more interesting.
func (e *Engine) countNonDefault() int {
	n := 0
	for id, st := range e.states {
		if !e.hideableFor(id) {
			continue
		}
		def := e.defaultFor(id)
		if def == nil || st.Value == nil {
			continue
		}
		if !st.Value.Equal(def) {
			n++
		}
	}
	return n
}

// hideableFor resolves the Hideable flag, following sub-option keys to their
// owning group definition.
func (e *Engine) hideableFor(id string) bool {
	if def, ok := e.byID[id]; ok {
		return def.Hideable
	}
	if owner, ok := e.subOwner[id]; ok {
		return e.byID[owner].Hideable
	}
	return true
}

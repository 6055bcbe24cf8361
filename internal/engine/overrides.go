package engine

// Manual visibility overrides. Once a user toggles a setting's visibility by
// hand the relevancy engine stops writing it; only the operations here (or a
// value reset, which routes through ResetSetting) hand control back.

// SetVisibility forces a setting shown or hidden and latches the manual
// override. For non-hideable settings the override is recorded but the
// setting stays visible.
func (e *Engine) SetVisibility(id string, visible bool) RecomputeResult {
	st, ok := e.states[id]
	if !ok {
		e.logger.Warn("visibility toggle for unknown setting", "setting", id)
		return e.result(false, "unknown setting")
	}

	st.ManuallySet = true
	if e.hideableFor(id) {
		st.Visible = visible
	} else {
		st.Visible = true
	}
	return e.result(true, "")
}

// ClearOverride releases one setting's manual override and recomputes so
// automatic visibility takes over again.
func (e *Engine) ClearOverride(id string) RecomputeResult {
	st, ok := e.states[id]
	if !ok {
		e.logger.Warn("override clear for unknown setting", "setting", id)
		return e.result(false, "unknown setting")
	}

	st.ManuallySet = false
	e.Recompute()
	return e.result(true, "")
}

// ClearAllOverrides releases every manual override without touching values;
// a full visibility reset.
func (e *Engine) ClearAllOverrides() RecomputeResult {
	for _, st := range e.states {
		st.ManuallySet = false
	}
	e.Recompute()
	return e.result(true, "")
}

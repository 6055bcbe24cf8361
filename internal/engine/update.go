package engine

import "github.com/aklein/lobbyscribe/internal/domain"

// RecomputeResult reports the outcome of an update and the recompute that
// followed it. The update boundary never returns an error: unknown ids and
// out-of-domain values are rejected with the prior value retained, recorded
// in Applied/Reason, and logged.
type RecomputeResult struct {
	Applied bool
	Reason  string

	NonDefault int
	Threshold  float64
	Balance    int
	Fun        int
}

func (e *Engine) result(applied bool, reason string) RecomputeResult {
	return RecomputeResult{
		Applied:    applied,
		Reason:     reason,
		NonDefault: e.nonDefault,
		Threshold:  e.threshold,
		Balance:    e.balance,
		Fun:        e.fun,
	}
}

// ApplyChange validates and applies a single value change, then runs the full
// recompute chain. Manual visibility overrides are never touched by a value
// change.
func (e *Engine) ApplyChange(id string, v domain.Value) RecomputeResult {
	spec, ok := e.specFor(id)
	if !ok {
		e.logger.Warn("update for unknown setting", "setting", id)
		return e.result(false, "unknown setting")
	}
	if err := spec.Validate(v); err != nil {
		e.logger.Warn("rejected value", "setting", id, "value", encodeOrEmpty(v), "reason", err)
		return e.result(false, err.Error())
	}

	e.states[id].Value = v
	e.Recompute()
	return e.result(true, "")
}

// ApplyRaw parses the canonical string form for the setting's kind and
// delegates to ApplyChange.
func (e *Engine) ApplyRaw(id, raw string) RecomputeResult {
	spec, ok := e.specFor(id)
	if !ok {
		e.logger.Warn("update for unknown setting", "setting", id)
		return e.result(false, "unknown setting")
	}
	v, err := spec.Parse(raw)
	if err != nil {
		e.logger.Warn("unparseable value", "setting", id, "raw", raw, "reason", err)
		return e.result(false, err.Error())
	}
	return e.ApplyChange(id, v)
}

// ResetSetting restores a setting's default value and clears its manual
// visibility override; the two are coupled by contract. A group id resets
// every sub-option.
func (e *Engine) ResetSetting(id string) RecomputeResult {
	def, ok := e.byID[id]
	if ok {
		if group, isGroup := def.Spec.(domain.GroupSpec); isGroup {
			for _, sub := range group.Subs {
				key := domain.SubID(id, sub.ID)
				e.states[key].Value = sub.Default
				e.states[key].ManuallySet = false
			}
			e.Recompute()
			return e.result(true, "")
		}
		e.states[id].Value = def.Spec.DefaultValue()
		e.states[id].ManuallySet = false
		e.Recompute()
		return e.result(true, "")
	}

	if _, isSub := e.subOwner[id]; isSub {
		e.states[id].Value = e.defaultFor(id)
		e.states[id].ManuallySet = false
		e.Recompute()
		return e.result(true, "")
	}

	e.logger.Warn("reset for unknown setting", "setting", id)
	return e.result(false, "unknown setting")
}

// ResetAll restores every default and clears every override, returning the
// session to its initial state. Values entered for the join code are wiped
// like everything else.
func (e *Engine) ResetAll() RecomputeResult {
	for id := range e.states {
		e.states[id].Value = e.defaultFor(id)
		e.states[id].ManuallySet = false
	}
	e.Recompute()
	e.logger.Info("session reset", "session", e.SessionID)
	return e.result(true, "")
}

func encodeOrEmpty(v domain.Value) string {
	if v == nil {
		return ""
	}
	return v.Encode()
}

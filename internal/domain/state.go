package domain

// SettingState is the mutable per-setting session state. One exists per
// top-level definition and one per group sub-option.
type SettingState struct {
	Value Value

	// Relevancy is the last computed score in [0,1].
	Relevancy float64

	// Visible is the last computed or overridden visibility.
	Visible bool

	// ManuallySet is latched once the user toggles visibility by hand; the
	// relevancy engine must not write Visible again until it is cleared.
	ManuallySet bool
}

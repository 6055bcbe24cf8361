package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(catalog.Definitions())
}

func TestRecompute_DefaultsAreQuiet(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, 0, e.NonDefaultCount())
	assert.InDelta(t, 0.2, e.Threshold(), 1e-9)

	for id, st := range e.Settings() {
		if id == catalog.JoinCode {
			assert.True(t, st.Visible, "join code is always shown")
			continue
		}
		assert.False(t, st.Visible, "%q should be hidden at defaults", id)
	}
}

func TestThreshold_MonotonicAndCapped(t *testing.T) {
	e := newEngine(t)

	changes := []struct {
		id string
		v  domain.Value
	}{
		{catalog.Region, domain.Choice("europe")},
		{catalog.MaxPlayers, domain.Number(15)},
		{catalog.MoveSpeed, domain.Number(1.25)},
		{catalog.CrewVision, domain.Number(0.5)},
		{catalog.IntruderVision, domain.Number(3)},
		{catalog.Sheriff, domain.Flag(false)},
		{catalog.Medic, domain.Flag(false)},
		{catalog.KillCooldown, domain.Number(10)},
		{catalog.RoundSeconds, domain.Number(120)},
		{catalog.TaskCount, domain.Number(10)},
		{catalog.AnonymousVotes, domain.Flag(true)},
		{catalog.ConfirmEjects, domain.Flag(false)},
	}

	prev := e.Threshold()
	for _, c := range changes {
		res := e.ApplyChange(c.id, c.v)
		require.True(t, res.Applied, "%s", c.id)

		assert.GreaterOrEqual(t, res.Threshold, prev)
		assert.LessOrEqual(t, res.Threshold, 0.6)
		prev = res.Threshold
	}

	// Twelve deviations would put the uncapped formula at 1.16.
	assert.InDelta(t, 0.6, e.Threshold(), 1e-9)
}

func TestRecompute_Idempotent(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(catalog.MoveSpeed, domain.Number(0.75))
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.SetVisibility(catalog.Region, true)

	before := e.Settings()
	e.Recompute()
	e.Recompute()
	after := e.Settings()

	require.Equal(t, len(before), len(after))
	for id, st := range before {
		assert.Equal(t, st.Relevancy, after[id].Relevancy, "%q relevancy", id)
		assert.Equal(t, st.Visible, after[id].Visible, "%q visibility", id)
		assert.Equal(t, st.ManuallySet, after[id].ManuallySet, "%q latch", id)
	}
}

func TestOverrideSupremacy(t *testing.T) {
	e := newEngine(t)

	// Force the region visible even though its score sits under the bar.
	e.SetVisibility(catalog.Region, true)

	// No amount of churn elsewhere may flip it back.
	e.ApplyChange(catalog.MoveSpeed, domain.Number(1.5))
	e.ApplyChange(catalog.TaskCount, domain.Number(10))
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.MaxPlayers, domain.Number(4))

	st, ok := e.Setting(catalog.Region)
	require.True(t, ok)
	assert.True(t, st.Visible)
	assert.True(t, st.ManuallySet)

	// Clearing the override hands control back to the scorer, which hides
	// the default region again.
	e.ClearOverride(catalog.Region)
	st, _ = e.Setting(catalog.Region)
	assert.False(t, st.ManuallySet)
	assert.False(t, st.Visible)
}

func TestNonHideableInvariant(t *testing.T) {
	e := newEngine(t)

	// Even a manual hide request cannot suppress the join code.
	res := e.SetVisibility(catalog.JoinCode, false)
	assert.True(t, res.Applied)

	st, ok := e.Setting(catalog.JoinCode)
	require.True(t, ok)
	assert.True(t, st.Visible)
	assert.True(t, st.ManuallySet, "the override is still recorded")

	e.Recompute()
	st, _ = e.Setting(catalog.JoinCode)
	assert.True(t, st.Visible)
}

func TestHardHide_NeutralSpeedStaysHidden(t *testing.T) {
	e := newEngine(t)

	// Drive the threshold up with other deviations, then bring speed back
	// to exactly neutral: the hard override must keep it hidden even though
	// other scores land above the bar.
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.MoveSpeed, domain.Number(1.0))

	st, ok := e.Setting(catalog.MoveSpeed)
	require.True(t, ok)
	assert.False(t, st.Visible)
}

func TestHardHide_ConventionalTogglesStayHidden(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.AnonymousVotes, domain.Flag(true))

	for _, id := range []string{catalog.Spectators, catalog.ConfirmEjects, catalog.Privacy} {
		st, ok := e.Setting(id)
		require.True(t, ok, id)
		assert.False(t, st.Visible, "%q is at its conventional state", id)
	}
}

func TestHardHide_OnlyEverHides(t *testing.T) {
	e := newEngine(t)

	// Off-default privacy scores well above the bar and must stay shown;
	// the table never forces anything visible.
	e.ApplyChange(catalog.Privacy, domain.Choice("invite-only"))
	st, _ := e.Setting(catalog.Privacy)
	assert.True(t, st.Visible)
}

func TestMoveSpeedAtMinimum_FullScoreAndVisible(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(catalog.MoveSpeed, domain.Number(0.5))

	st, ok := e.Setting(catalog.MoveSpeed)
	require.True(t, ok)
	assert.InDelta(t, 1.0, st.Relevancy, 1e-9)
	assert.True(t, st.Visible)
}

func TestDampening_MeetingsYieldSpace(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(catalog.EmergencyMeetings, domain.Number(5))

	st, _ := e.Setting(catalog.EmergencyMeetings)
	full := st.Relevancy
	assert.InDelta(t, 1.0, full, 1e-9)

	// Six other deviations: the meetings score decays by 0.15 per
	// deviation past the free two.
	e.ApplyChange(catalog.Region, domain.Choice("asia"))
	e.ApplyChange(catalog.MaxPlayers, domain.Number(15))
	e.ApplyChange(catalog.MoveSpeed, domain.Number(1.5))
	e.ApplyChange(catalog.CrewVision, domain.Number(2))
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.AnonymousVotes, domain.Flag(true))

	st, _ = e.Setting(catalog.EmergencyMeetings)
	assert.InDelta(t, 0.4, st.Relevancy, 1e-9)
	assert.False(t, st.Visible, "damped below the raised threshold")
}

func TestDampening_FloorsAtMinimum(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(catalog.EmergencyMeetings, domain.Number(2))

	// Pile on enough deviations to push the decay multiplier negative.
	e.ApplyChange(catalog.Region, domain.Choice("asia"))
	e.ApplyChange(catalog.MaxPlayers, domain.Number(15))
	e.ApplyChange(catalog.MoveSpeed, domain.Number(1.5))
	e.ApplyChange(catalog.CrewVision, domain.Number(2))
	e.ApplyChange(catalog.IntruderVision, domain.Number(3))
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.Medic, domain.Flag(false))
	e.ApplyChange(catalog.KillCooldown, domain.Number(10))
	e.ApplyChange(catalog.RoundSeconds, domain.Number(120))
	e.ApplyChange(catalog.AnonymousVotes, domain.Flag(true))

	st, _ := e.Setting(catalog.EmergencyMeetings)
	assert.InDelta(t, 0.05, st.Relevancy, 1e-9)
}

func TestPanickingRelevancyIsIsolated(t *testing.T) {
	defs := []domain.SettingDef{
		{
			ID:       "stable",
			Name:     "Stable",
			Category: domain.CategoryLobby,
			Hideable: true,
			Spec:     domain.BoolSpec{Default: false},
			Relevancy: func(v domain.Value, _ domain.Snapshot) float64 {
				if f, ok := v.(domain.Flag); ok && bool(f) {
					return 0.9
				}
				return 0.0
			},
		},
		{
			ID:       "broken",
			Name:     "Broken",
			Category: domain.CategoryLobby,
			Hideable: true,
			Spec:     domain.BoolSpec{Default: false},
			Relevancy: func(domain.Value, domain.Snapshot) float64 {
				panic("bad rule")
			},
		},
	}

	e := engine.New(defs)
	res := e.ApplyChange("stable", domain.Flag(true))
	require.True(t, res.Applied)

	stable, _ := e.Setting("stable")
	assert.InDelta(t, 0.9, stable.Relevancy, 1e-9)
	assert.True(t, stable.Visible)

	broken, _ := e.Setting("broken")
	assert.InDelta(t, 0.5, broken.Relevancy, 1e-9, "panicking rule gets the neutral score")
}

func TestGroupScoreAppliesToEverySubOption(t *testing.T) {
	e := newEngine(t)
	e.ApplyChange(domain.SubID(catalog.Platforms, catalog.PlatformConsole), domain.Flag(false))

	pc, ok := e.Setting(domain.SubID(catalog.Platforms, catalog.PlatformPC))
	require.True(t, ok)
	console, ok := e.Setting(domain.SubID(catalog.Platforms, catalog.PlatformConsole))
	require.True(t, ok)

	assert.InDelta(t, 0.85, pc.Relevancy, 1e-9)
	assert.Equal(t, pc.Relevancy, console.Relevancy, "group score is uniform")
	assert.True(t, console.Visible)
}

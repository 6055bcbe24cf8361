package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

func adviceIDs(advice []Advice) []string {
	ids := make([]string, 0, len(advice))
	for _, a := range advice {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestActive_DefaultLobby(t *testing.T) {
	e := engine.New(catalog.Definitions())

	advice := Active(e, nil)
	assert.Equal(t, []string{"tasks-on-target"}, adviceIDs(advice))
}

func TestActive_VeryLowSpeed(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.MoveSpeed, domain.Number(0.5))

	advice := Active(e, nil)
	require.NotEmpty(t, advice)
	assert.Equal(t, "speed-very-low", advice[0].ID)
	assert.Equal(t, 80, advice[0].Priority)
	assert.Contains(t, advice[0].Message, "0.5x")
}

func TestActive_OneRulePerGroup(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))

	// Both sheriff variants match at 10 players; only the higher-priority
	// big-lobby phrasing may survive.
	advice := Active(e, nil)
	ids := adviceIDs(advice)
	assert.Contains(t, ids, "sheriff-off-big-lobby")
	assert.NotContains(t, ids, "sheriff-off")
}

func TestActive_SmallLobbySheriffVariant(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.MaxPlayers, domain.Number(6))
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))

	ids := adviceIDs(Active(e, nil))
	assert.Contains(t, ids, "sheriff-off")
	assert.NotContains(t, ids, "sheriff-off-big-lobby")
}

func TestActive_CategoryCap(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.IntruderCount, domain.Number(3))
	e.ApplyChange(catalog.MaxPlayers, domain.Number(8))
	e.ApplyChange(catalog.CrewProgress, domain.Number(0.5))
	e.ApplyChange(catalog.CrewVision, domain.Number(0.25))
	e.ApplyChange(catalog.IntruderVision, domain.Number(0.75))

	// Three balance concerns match; the cap keeps the top two and the
	// lowest-priority one is cut.
	ids := adviceIDs(Active(e, nil))
	assert.Contains(t, ids, "stacked-intruders")
	assert.Contains(t, ids, "progress-asymmetry")
	assert.NotContains(t, ids, "vision-gap")
}

func TestActive_SecondCategorySlotNeedsPriority(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.Sheriff, domain.Flag(false))
	e.ApplyChange(catalog.Medic, domain.Flag(false))

	// Both are role concerns in different groups; medic-off sits below the
	// second-slot bar.
	ids := adviceIDs(Active(e, nil))
	assert.Contains(t, ids, "sheriff-off-big-lobby")
	assert.NotContains(t, ids, "medic-off")
}

func TestActive_SortedByPriorityDescending(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyChange(catalog.MoveSpeed, domain.Number(1.4))
	e.ApplyChange(catalog.EmergencyMeetings, domain.Number(0))
	e.ApplyChange(catalog.Privacy, domain.Choice("invite-only"))

	advice := Active(e, nil)
	require.GreaterOrEqual(t, len(advice), 2)
	for i := 1; i < len(advice); i++ {
		assert.GreaterOrEqual(t, advice[i-1].Priority, advice[i].Priority)
	}
}

func TestActiveFrom_PanickingRuleIsExcluded(t *testing.T) {
	e := engine.New(catalog.Definitions())

	rules := []Rule{
		{
			ID: "broken", Group: "broken", Category: domain.AdviceLobby, Priority: 99,
			Condition: func(domain.Snapshot) bool { panic("bad condition") },
			Message:   func(domain.Snapshot) string { return "" },
		},
		{
			ID: "fine", Group: "fine", Category: domain.AdviceLobby, Priority: 10,
			Condition: func(domain.Snapshot) bool { return true },
			Message:   func(domain.Snapshot) string { return "all good" },
		},
	}

	advice := activeFrom(rules, e, nil)
	assert.Equal(t, []string{"fine"}, adviceIDs(advice))
}

func TestActiveFrom_PanickingMessageIsExcluded(t *testing.T) {
	e := engine.New(catalog.Definitions())

	rules := []Rule{
		{
			ID: "broken-msg", Group: "a", Category: domain.AdviceLobby, Priority: 50,
			Condition: func(domain.Snapshot) bool { return true },
			Message:   func(domain.Snapshot) string { panic("bad message") },
		},
	}

	assert.Empty(t, activeFrom(rules, e, nil))
}

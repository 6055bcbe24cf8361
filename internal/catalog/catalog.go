// Package catalog holds the static, ordered lobby setting definitions and
// their relevancy functions. The catalog is the single source of truth for
// ids, bounds, defaults, and display metadata; every other package works off
// the definitions returned by Definitions.
package catalog

import (
	"math"

	"github.com/aklein/lobbyscribe/internal/domain"
)

// Setting ids. Group sub-options are keyed with domain.SubID.
const (
	JoinCode          = "join-code"
	Region            = "region"
	Privacy           = "privacy"
	MaxPlayers        = "max-players"
	Platforms         = "platforms"
	Spectators        = "spectators"
	MoveSpeed         = "move-speed"
	CrewVision        = "crew-vision"
	IntruderVision    = "intruder-vision"
	IntruderCount     = "intruder-count"
	Sheriff           = "sheriff"
	Medic             = "medic"
	KillCooldown      = "kill-cooldown"
	RoundSeconds      = "round-seconds"
	DiscussionSeconds = "discussion-seconds"
	VotingSeconds     = "voting-seconds"
	TaskCount         = "task-count"
	TaskInputs        = "task-inputs"
	CrewProgress      = "crew-progress"
	IntruderProgress  = "intruder-progress"
	EmergencyMeetings = "emergency-meetings"
	ConfirmEjects     = "confirm-ejects"
	AnonymousVotes    = "anonymous-votes"
)

// Platform sub-option ids within the Platforms group.
const (
	PlatformPC      = "pc"
	PlatformConsole = "console"
)

// MinJoinCodeLen is the shortest join code worth posting; below this the
// composer emits its placeholder instead of a settings post.
const MinJoinCodeLen = 5

// PrivacyOpen is the conventional "anyone can join" mode; at this value the
// privacy setting is force-hidden.
const PrivacyOpen = domain.Choice("open")

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// boolScore returns a relevancy function that maps a boolean to one of two
// scores depending on whether it sits at its conventional state.
func boolScore(conventional domain.Flag, atConventional, deviated float64) domain.RelevancyFunc {
	return func(v domain.Value, _ domain.Snapshot) float64 {
		f, ok := v.(domain.Flag)
		if !ok {
			return 0.5
		}
		if f == conventional {
			return atConventional
		}
		return deviated
	}
}

// deviation returns a relevancy function scoring distance from a center
// value, scaled so that |v-center| == full maps to 1.0.
func deviation(center, full float64) domain.RelevancyFunc {
	return func(v domain.Value, _ domain.Snapshot) float64 {
		n, ok := v.(domain.Number)
		if !ok {
			return 0.5
		}
		if full <= 0 {
			return 0.5
		}
		return clamp01(math.Abs(float64(n)-center) / full)
	}
}

// Definitions returns the full ordered setting catalog.
func Definitions() []domain.SettingDef {
	return []domain.SettingDef{
		{
			ID:       JoinCode,
			Name:     "Join Code",
			Icon:     "📢",
			Category: domain.CategoryLobby,
			Hideable: false,
			Spec:     domain.TextSpec{Default: "", MaxLen: 16},
			Relevancy: func(domain.Value, domain.Snapshot) float64 {
				// The code is the whole point of the post.
				return 0.8
			},
		},
		{
			ID:       Region,
			Name:     "Region",
			Icon:     "🌍",
			Category: domain.CategoryLobby,
			Hideable: true,
			Spec: domain.SelectSpec{
				Default: "na-east",
				Options: []domain.Option{
					{ID: "na-east", Label: "NA East"},
					{ID: "na-west", Label: "NA West"},
					{ID: "europe", Label: "Europe"},
					{ID: "asia", Label: "Asia"},
					{ID: "south-america", Label: "South America"},
					{ID: "oceania", Label: "Oceania"},
				},
			},
			Relevancy: func(v domain.Value, _ domain.Snapshot) float64 {
				if c, ok := v.(domain.Choice); ok && c == "na-east" {
					return 0.1
				}
				return 0.45
			},
		},
		{
			ID:       Privacy,
			Name:     "Privacy",
			Icon:     "🔒",
			Category: domain.CategoryLobby,
			Hideable: true,
			Spec: domain.ChoiceSpec{
				Default: PrivacyOpen,
				Options: []domain.Option{
					{ID: PrivacyOpen, Label: "Open"},
					{ID: "friends-only", Label: "Friends Only"},
					{ID: "invite-only", Label: "Invite Only"},
				},
			},
			Relevancy: func(v domain.Value, _ domain.Snapshot) float64 {
				switch v {
				case domain.Choice("friends-only"):
					return 0.5
				case domain.Choice("invite-only"):
					return 0.7
				default:
					return 0.15
				}
			},
		},
		{
			ID:        MaxPlayers,
			Name:      "Max Players",
			Icon:      "👥",
			Category:  domain.CategoryLobby,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 10, Min: 4, Max: 15, Step: 1},
			Relevancy: deviation(10, 6),
		},
		{
			ID:       Platforms,
			Name:     "Platforms",
			Icon:     "🖥️",
			Category: domain.CategoryLobby,
			Hideable: true,
			Spec: domain.GroupSpec{
				Subs: []domain.SubOption{
					{ID: PlatformPC, Label: "PC", Default: true},
					{ID: PlatformConsole, Label: "Console", Default: true},
				},
			},
			Relevancy: func(_ domain.Value, snap domain.Snapshot) float64 {
				if snap.Flag(domain.SubID(Platforms, PlatformPC)) &&
					snap.Flag(domain.SubID(Platforms, PlatformConsole)) {
					return 0.05
				}
				return 0.85
			},
		},
		{
			ID:        Spectators,
			Name:      "Spectators",
			Icon:      "👁️",
			Category:  domain.CategoryLobby,
			Hideable:  true,
			Spec:      domain.BoolSpec{Default: true},
			Relevancy: boolScore(true, 0.1, 0.55),
		},

		{
			ID:       MoveSpeed,
			Name:     "Move Speed",
			Icon:     "🏃",
			Category: domain.CategoryPlayer,
			Hideable: true,
			Spec:     domain.RangeSpec{Default: 1.0, Min: 0.5, Max: 1.5, Step: 0.05, Unit: "x"},
			// Doubles the distance from neutral so both bounds score 1.0.
			Relevancy: deviation(1.0, 0.5),
		},
		{
			ID:        CrewVision,
			Name:      "Crew Vision",
			Icon:      "🔦",
			Category:  domain.CategoryPlayer,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 1.0, Min: 0.25, Max: 2.0, Step: 0.25, Unit: "x"},
			Relevancy: deviation(1.0, 0.75),
		},
		{
			ID:                IntruderVision,
			Name:              "Intruder Vision",
			Icon:              "🌘",
			Category:          domain.CategoryPlayer,
			Hideable:          true,
			AdvancedByDefault: true,
			Spec:              domain.RangeSpec{Default: 1.5, Min: 0.25, Max: 3.0, Step: 0.25, Unit: "x"},
			Relevancy:         deviation(1.5, 1.0),
		},
		{
			ID:       IntruderCount,
			Name:     "Intruders",
			Icon:     "🔪",
			Category: domain.CategoryPlayer,
			Hideable: true,
			Spec:     domain.RangeSpec{Default: 2, Min: 1, Max: 3, Step: 1},
			Relevancy: func(v domain.Value, snap domain.Snapshot) float64 {
				n, ok := v.(domain.Number)
				if !ok {
					return 0.5
				}
				count := float64(n)
				// Three intruders in a small lobby is always headline news.
				if count >= 3 && snap.Num(MaxPlayers) <= 8 {
					return 1.0
				}
				score := math.Abs(count-2) * 0.45
				if count >= 3 {
					score += 0.2
				}
				return clamp01(score)
			},
		},
		{
			ID:        Sheriff,
			Name:      "Sheriff",
			Icon:      "⭐",
			Category:  domain.CategoryPlayer,
			Hideable:  true,
			Spec:      domain.BoolSpec{Default: true},
			Relevancy: boolScore(true, 0.2, 0.9),
		},
		{
			ID:        Medic,
			Name:      "Medic",
			Icon:      "💉",
			Category:  domain.CategoryPlayer,
			Hideable:  true,
			Spec:      domain.BoolSpec{Default: true},
			Relevancy: boolScore(true, 0.15, 0.6),
		},
		{
			ID:                KillCooldown,
			Name:              "Kill Cooldown",
			Icon:              "⏱️",
			Category:          domain.CategoryPlayer,
			Hideable:          true,
			AdvancedByDefault: true,
			Spec:              domain.RangeSpec{Default: 30, Min: 10, Max: 60, Step: 2.5, Unit: "s"},
			Relevancy:         deviation(30, 25),
		},

		{
			ID:        RoundSeconds,
			Name:      "Round Length",
			Icon:      "🕑",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 60, Min: 30, Max: 120, Step: 5, Unit: "s"},
			Relevancy: deviation(60, 50),
		},
		{
			ID:                DiscussionSeconds,
			Name:              "Discussion Time",
			Icon:              "💬",
			Category:          domain.CategoryGameplay,
			Hideable:          true,
			AdvancedByDefault: true,
			Spec:              domain.RangeSpec{Default: 45, Min: 0, Max: 120, Step: 5, Unit: "s"},
			Relevancy:         deviation(45, 60),
		},
		{
			ID:                VotingSeconds,
			Name:              "Voting Time",
			Icon:              "🗳️",
			Category:          domain.CategoryGameplay,
			Hideable:          true,
			AdvancedByDefault: true,
			Spec:              domain.RangeSpec{Default: 30, Min: 15, Max: 120, Step: 5, Unit: "s"},
			Relevancy:         deviation(30, 60),
		},
		{
			ID:       TaskCount,
			Name:     "Tasks",
			Icon:     "📋",
			Category: domain.CategoryGameplay,
			Hideable: true,
			Spec:     domain.RangeSpec{Default: 5, Min: 1, Max: 10, Step: 1},
			Relevancy: func(v domain.Value, snap domain.Snapshot) float64 {
				n, ok := v.(domain.Number)
				if !ok {
					return 0.5
				}
				ideal := domain.IdealTaskCount(
					snap.Num(RoundSeconds),
					snap.Num(MoveSpeed),
					int(snap.Num(TaskInputs)),
				)
				dev := math.Abs(float64(n) - float64(ideal))
				// One task off the ideal is noise; four or more is a story.
				return clamp01((dev - 1) / 3)
			},
		},
		{
			ID:                TaskInputs,
			Name:              "Task Steps",
			Icon:              "🔧",
			Category:          domain.CategoryGameplay,
			Hideable:          true,
			AdvancedByDefault: true,
			Spec:              domain.RangeSpec{Default: 2, Min: 1, Max: 5, Step: 1},
			Relevancy:         deviation(2, 3),
		},
		{
			ID:        CrewProgress,
			Name:      "Crew Progress",
			Icon:      "📈",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 1.0, Min: 0.5, Max: 2.0, Step: 0.1, Unit: "x"},
			Relevancy: deviation(1.0, 0.6),
		},
		{
			ID:        IntruderProgress,
			Name:      "Intruder Progress",
			Icon:      "📉",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 1.0, Min: 0.5, Max: 2.0, Step: 0.1, Unit: "x"},
			Relevancy: deviation(1.0, 0.6),
		},
		{
			ID:        EmergencyMeetings,
			Name:      "Emergency Meetings",
			Icon:      "🚨",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.RangeSpec{Default: 1, Min: 0, Max: 5, Step: 1},
			Relevancy: deviation(1, 4),
		},
		{
			ID:        ConfirmEjects,
			Name:      "Confirm Ejects",
			Icon:      "✅",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.BoolSpec{Default: true},
			Relevancy: boolScore(true, 0.1, 0.5),
		},
		{
			ID:        AnonymousVotes,
			Name:      "Anonymous Votes",
			Icon:      "🎭",
			Category:  domain.CategoryGameplay,
			Hideable:  true,
			Spec:      domain.BoolSpec{Default: false},
			Relevancy: boolScore(false, 0.1, 0.5),
		},
	}
}

// ByID returns the definition with the given id, or false when unknown.
func ByID(id string) (domain.SettingDef, bool) {
	for _, def := range Definitions() {
		if def.ID == id {
			return def, true
		}
	}
	return domain.SettingDef{}, false
}

package domain

// Category is the display grouping bin for a setting.
type Category string

const (
	CategoryLobby    Category = "lobby"
	CategoryPlayer   Category = "player"
	CategoryGameplay Category = "gameplay"
)

// CategoryOrder is the fixed rendering order of the category bins.
var CategoryOrder = []Category{CategoryLobby, CategoryPlayer, CategoryGameplay}

// Label returns the human-readable category heading.
func (c Category) Label() string {
	switch c {
	case CategoryLobby:
		return "Lobby"
	case CategoryPlayer:
		return "Players"
	case CategoryGameplay:
		return "Gameplay"
	default:
		return string(c)
	}
}

// Icon returns the emoji used for the category heading.
func (c Category) Icon() string {
	switch c {
	case CategoryLobby:
		return "🏠"
	case CategoryPlayer:
		return "🧍"
	case CategoryGameplay:
		return "🎯"
	default:
		return "▪️"
	}
}

// SettingKind discriminates the setting spec variants.
type SettingKind string

const (
	KindText   SettingKind = "text"
	KindBool   SettingKind = "bool"
	KindSelect SettingKind = "select"
	KindGroup  SettingKind = "group"
	KindRange  SettingKind = "range"
	KindChoice SettingKind = "choice"
)

// AdviceCategory is the coarse dedup key for advice rules; it caps how many
// distinct topics surface at once.
type AdviceCategory string

const (
	AdviceMovement AdviceCategory = "movement"
	AdviceRoles    AdviceCategory = "roles"
	AdviceBalance  AdviceCategory = "balance"
	AdvicePacing   AdviceCategory = "pacing"
	AdviceLobby    AdviceCategory = "lobby"
	AdviceVoting   AdviceCategory = "voting"
)

// Package recommend evaluates advisory rules over a settings snapshot and
// reduces the matches so at most one rule per concern — and at most two per
// broad topic — reaches the user.
package recommend

import (
	"fmt"
	"math"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
)

// Rule is one immutable advisory rule. Group is the fine-grained dedup key:
// rules sharing a group are mutually-exclusive variants of the same concern.
// Category caps how many distinct topics surface at once. Higher priority
// wins within both.
type Rule struct {
	ID        string
	Group     string
	Category  domain.AdviceCategory
	Priority  int
	Condition func(snap domain.Snapshot) bool
	Message   func(snap domain.Snapshot) string
}

func idealFor(snap domain.Snapshot) int {
	return domain.IdealTaskCount(
		snap.Num(catalog.RoundSeconds),
		snap.Num(catalog.MoveSpeed),
		int(snap.Num(catalog.TaskInputs)),
	)
}

func progressAsymmetry(snap domain.Snapshot) float64 {
	return math.Abs(snap.Num(catalog.CrewProgress) - snap.Num(catalog.IntruderProgress))
}

// Rules returns the full advisory rule set.
func Rules() []Rule {
	return []Rule{
		{
			ID: "speed-very-low", Group: "speed", Category: domain.AdviceMovement, Priority: 80,
			Condition: func(s domain.Snapshot) bool { return s.Num(catalog.MoveSpeed) <= 0.6 },
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("Move speed %.2gx is very low — rounds will drag and late tasks become unwinnable. Consider 0.75x or higher.", s.Num(catalog.MoveSpeed))
			},
		},
		{
			ID: "speed-very-high", Group: "speed", Category: domain.AdviceMovement, Priority: 70,
			Condition: func(s domain.Snapshot) bool { return s.Num(catalog.MoveSpeed) >= 1.4 },
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("Move speed %.2gx turns chases into coin flips. Expect chaotic kills.", s.Num(catalog.MoveSpeed))
			},
		},
		{
			ID: "tasks-too-low", Group: "tasks", Category: domain.AdvicePacing, Priority: 60,
			Condition: func(s domain.Snapshot) bool {
				return s.Num(catalog.TaskCount) <= float64(idealFor(s))-3
			},
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("Only %.0f tasks for this round length — crew will finish early and idle. Around %d fits better.", s.Num(catalog.TaskCount), idealFor(s))
			},
		},
		{
			ID: "tasks-too-high", Group: "tasks", Category: domain.AdvicePacing, Priority: 60,
			Condition: func(s domain.Snapshot) bool {
				return s.Num(catalog.TaskCount) >= float64(idealFor(s))+3
			},
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("%.0f tasks won't fit in the round — crew can't win on tasks. Around %d fits better.", s.Num(catalog.TaskCount), idealFor(s))
			},
		},
		{
			ID: "tasks-on-target", Group: "tasks", Category: domain.AdvicePacing, Priority: 10,
			Condition: func(s domain.Snapshot) bool {
				return math.Abs(s.Num(catalog.TaskCount)-float64(idealFor(s))) <= 1
			},
			Message: func(s domain.Snapshot) string {
				return "Task count fits the round length nicely."
			},
		},
		{
			ID: "sheriff-off-big-lobby", Group: "sheriff", Category: domain.AdviceRoles, Priority: 65,
			Condition: func(s domain.Snapshot) bool {
				return !s.Flag(catalog.Sheriff) && s.Num(catalog.MaxPlayers) >= 8
			},
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("No sheriff with %.0f players — big lobbies struggle to close out without one.", s.Num(catalog.MaxPlayers))
			},
		},
		{
			ID: "sheriff-off", Group: "sheriff", Category: domain.AdviceRoles, Priority: 40,
			Condition: func(s domain.Snapshot) bool { return !s.Flag(catalog.Sheriff) },
			Message: func(s domain.Snapshot) string {
				return "Sheriff is disabled — crew loses its only proactive role."
			},
		},
		{
			ID: "medic-off", Group: "medic", Category: domain.AdviceRoles, Priority: 30,
			Condition: func(s domain.Snapshot) bool { return !s.Flag(catalog.Medic) },
			Message: func(s domain.Snapshot) string {
				return "Medic is disabled — confirmed clears get much rarer."
			},
		},
		{
			ID: "stacked-intruders", Group: "intruders", Category: domain.AdviceBalance, Priority: 70,
			Condition: func(s domain.Snapshot) bool {
				return s.Num(catalog.IntruderCount) >= 3 && s.Num(catalog.MaxPlayers) <= 8
			},
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("3 intruders against %.0f players is heavily intruder-sided.", s.Num(catalog.MaxPlayers))
			},
		},
		{
			ID: "progress-asymmetry", Group: "progress", Category: domain.AdviceBalance, Priority: 55,
			Condition: func(s domain.Snapshot) bool { return progressAsymmetry(s) >= 0.5 },
			Message: func(s domain.Snapshot) string {
				return fmt.Sprintf("Crew and intruder progress differ by %.1fx — one side snowballs.", progressAsymmetry(s))
			},
		},
		{
			ID: "vision-gap", Group: "vision", Category: domain.AdviceBalance, Priority: 45,
			Condition: func(s domain.Snapshot) bool {
				crew := s.Num(catalog.CrewVision)
				return crew > 0 && s.Num(catalog.IntruderVision)/crew >= 3
			},
			Message: func(s domain.Snapshot) string {
				return "Intruders see three times further than crew — ambushes will feel unavoidable."
			},
		},
		{
			ID: "short-round-task-grind", Group: "round-load", Category: domain.AdvicePacing, Priority: 50,
			Condition: func(s domain.Snapshot) bool {
				return s.Num(catalog.RoundSeconds) <= 45 && s.Num(catalog.TaskCount) >= 8
			},
			Message: func(s domain.Snapshot) string {
				return "Short rounds with a heavy task list leave no time to play detective."
			},
		},
		{
			ID: "no-meetings", Group: "meetings", Category: domain.AdviceVoting, Priority: 35,
			Condition: func(s domain.Snapshot) bool { return s.Num(catalog.EmergencyMeetings) == 0 },
			Message: func(s domain.Snapshot) string {
				return "No emergency meetings — bodies are the only way to talk. Very quiet games."
			},
		},
		{
			ID: "blind-voting", Group: "votes", Category: domain.AdviceVoting, Priority: 25,
			Condition: func(s domain.Snapshot) bool {
				return s.Flag(catalog.AnonymousVotes) && !s.Flag(catalog.ConfirmEjects)
			},
			Message: func(s domain.Snapshot) string {
				return "Anonymous votes with no eject confirmation — nobody ever learns anything. Brutal."
			},
		},
		{
			ID: "crossplay-off", Group: "platforms", Category: domain.AdviceLobby, Priority: 30,
			Condition: func(s domain.Snapshot) bool {
				return !s.Flag(domain.SubID(catalog.Platforms, catalog.PlatformPC)) ||
					!s.Flag(domain.SubID(catalog.Platforms, catalog.PlatformConsole))
			},
			Message: func(s domain.Snapshot) string {
				return "Crossplay is restricted — mention it up front so nobody queues who can't join."
			},
		},
		{
			ID: "invite-only", Group: "privacy", Category: domain.AdviceLobby, Priority: 20,
			Condition: func(s domain.Snapshot) bool {
				return domain.Choice(s.Choice(catalog.Privacy)) == domain.Choice("invite-only")
			},
			Message: func(s domain.Snapshot) string {
				return "Invite-only lobby — remember to actually send the invites."
			},
		},
	}
}

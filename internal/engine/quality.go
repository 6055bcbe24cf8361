package engine

import (
	"math"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
)

// Quality baselines and adjustment weights. Balance starts perfect and only
// loses points; fun starts slightly above average and moves both ways.
const (
	balanceBaseline = 100
	funBaseline     = 82

	asymmetryWeight      = 30
	extremeSpeedPenalty  = 15
	stackedIntruders     = 20
	starvedIntruders     = 10
	taskDeviationPenalty = 5
	visionGapPenalty     = 10
	sheriffOffPenalty    = 8
	medicOffPenalty      = 4
	fastKillPenalty      = 10
	noMeetingsPenalty    = 10

	anonVotesFunBonus   = 8
	noConfirmFunBonus   = 6
	fastSpeedFunBonus   = 5
	thirdIntruderBonus  = 5
	chaosProgressBonus  = 4
	slowSpeedFunPenalty = 10
	taskGrindFunPenalty = 8
	noMeetingsFunMalus  = 6
)

// computeQuality derives the balance and fun scores from the full value set.
// The scores drive header theming and the advisory badge only; visibility and
// advice selection never read them.
func (e *Engine) computeQuality() {
	speed := e.Num(catalog.MoveSpeed)
	players := e.Num(catalog.MaxPlayers)
	intruders := e.Num(catalog.IntruderCount)
	tasks := e.Num(catalog.TaskCount)
	ideal := domain.IdealTaskCount(e.Num(catalog.RoundSeconds), speed, int(e.Num(catalog.TaskInputs)))
	taskDev := math.Abs(tasks - float64(ideal))
	asym := math.Abs(e.Num(catalog.CrewProgress) - e.Num(catalog.IntruderProgress))

	balance := float64(balanceBaseline)
	if asym >= 0.1 {
		balance -= asym * asymmetryWeight
	}
	if speed <= 0.6 || speed >= 1.4 {
		balance -= extremeSpeedPenalty
	}
	if intruders >= 3 && players <= 8 {
		balance -= stackedIntruders
	} else if intruders <= 1 && players >= 12 {
		balance -= starvedIntruders
	}
	if taskDev > 2 {
		balance -= taskDeviationPenalty * (taskDev - 2)
	}
	if crew := e.Num(catalog.CrewVision); crew > 0 && e.Num(catalog.IntruderVision)/crew >= 3 {
		balance -= visionGapPenalty
	}
	if !e.Flag(catalog.Sheriff) {
		balance -= sheriffOffPenalty
	}
	if !e.Flag(catalog.Medic) {
		balance -= medicOffPenalty
	}
	if e.Num(catalog.KillCooldown) <= 15 {
		balance -= fastKillPenalty
	}
	if e.Num(catalog.EmergencyMeetings) == 0 && e.Num(catalog.DiscussionSeconds) == 0 {
		balance -= noMeetingsPenalty
	}

	fun := float64(funBaseline)
	if e.Flag(catalog.AnonymousVotes) {
		fun += anonVotesFunBonus
	}
	if !e.Flag(catalog.ConfirmEjects) {
		fun += noConfirmFunBonus
	}
	if speed >= 1.3 {
		fun += fastSpeedFunBonus
	}
	if intruders >= 3 {
		fun += thirdIntruderBonus
	}
	if e.Num(catalog.CrewProgress) >= 1.5 && e.Num(catalog.IntruderProgress) >= 1.5 {
		fun += chaosProgressBonus
	}
	if speed <= 0.6 {
		fun -= slowSpeedFunPenalty
	}
	if taskDev > 3 {
		fun -= taskGrindFunPenalty
	}
	if e.Num(catalog.EmergencyMeetings) == 0 {
		fun -= noMeetingsFunMalus
	}

	e.balance = clampScore(balance)
	e.fun = clampScore(fun)
}

func clampScore(f float64) int {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(math.Round(f))
}

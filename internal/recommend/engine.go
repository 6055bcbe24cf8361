package recommend

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/aklein/lobbyscribe/internal/domain"
)

// Advice is one surviving recommendation, ready for display.
type Advice struct {
	ID       string
	Message  string
	Group    string
	Category domain.AdviceCategory
	Priority int
}

// Per-category cap: the top rule always survives; a second rule on the same
// topic is kept only when it clears this priority bar.
const (
	maxPerCategory        = 2
	secondSlotMinPriority = 50
)

// Active evaluates every rule against the snapshot and returns the
// deduplicated advice list, sorted by priority descending. A rule whose condition or
// message panics is excluded and logged, never fatal.
func Active(snap domain.Snapshot, logger *slog.Logger) []Advice {
	return activeFrom(Rules(), snap, logger)
}

func activeFrom(rules []Rule, snap domain.Snapshot, logger *slog.Logger) []Advice {
	var matched []Rule
	for _, rule := range rules {
		ok, err := safeCondition(rule, snap)
		if err != nil {
			logIfSet(logger, "advice condition panicked", rule.ID, err)
			continue
		}
		if ok {
			matched = append(matched, rule)
		}
	}

	// Highest priority first; stable so catalog order breaks ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	// Coarse pass: cap entries per category.
	perCategory := make(map[domain.AdviceCategory]int)
	var capped []Rule
	for _, rule := range matched {
		n := perCategory[rule.Category]
		if n >= maxPerCategory {
			continue
		}
		if n == 1 && rule.Priority < secondSlotMinPriority {
			continue
		}
		perCategory[rule.Category] = n + 1
		capped = append(capped, rule)
	}

	// Fine pass: one rule per group.
	seenGroup := make(map[string]bool)
	var out []Advice
	for _, rule := range capped {
		if seenGroup[rule.Group] {
			continue
		}
		seenGroup[rule.Group] = true

		msg, err := safeMessage(rule, snap)
		if err != nil {
			logIfSet(logger, "advice message panicked", rule.ID, err)
			continue
		}
		out = append(out, Advice{
			ID:       rule.ID,
			Message:  msg,
			Group:    rule.Group,
			Category: rule.Category,
			Priority: rule.Priority,
		})
	}
	return out
}

type rulePanic struct{ value any }

func (p rulePanic) Error() string { return fmt.Sprintf("rule panicked: %v", p.value) }

func safeCondition(rule Rule, snap domain.Snapshot) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, rulePanic{r}
		}
	}()
	return rule.Condition(snap), nil
}

func safeMessage(rule Rule, snap domain.Snapshot) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg, err = "", rulePanic{r}
		}
	}()
	return rule.Message(snap), nil
}

func logIfSet(logger *slog.Logger, msg, ruleID string, err error) {
	if logger != nil {
		logger.Warn(msg, "rule", ruleID, "error", err)
	}
}

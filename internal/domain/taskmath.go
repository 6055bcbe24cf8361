package domain

import "math"

// Task-timing model constants. Effective round time extends the configured
// round by a fixed narrative-event allowance; the easy/hard factors bracket
// how much of that time an average lobby actually spends on tasks.
const (
	effectiveTimeSlope  = 1.533
	effectiveTimeExtra  = 16.0
	easyCompletionRate  = 0.6
	hardCompletionRate  = 0.9
	walkTimeNumerator   = 12.5
	simpleTaskSeconds   = 3.0
	complexTaskSeconds  = 5.0
	complexInputCutoff  = 3
	minPlausibleSpeed   = 0.05
)

// IdealTaskCount estimates the "just right" task quantity for a round of the
// given length, movement speed, and per-task input count. Every consumer that
// needs "is this task count reasonable" goes through this function.
func IdealTaskCount(roundSeconds, speed float64, inputs int) int {
	if speed < minPlausibleSpeed {
		speed = minPlausibleSpeed
	}

	taskTime := simpleTaskSeconds
	if inputs >= complexInputCutoff {
		taskTime = complexTaskSeconds
	}

	effective := effectiveTimeSlope*roundSeconds + effectiveTimeExtra
	perTask := walkTimeNumerator/speed + taskTime

	easy := effective * easyCompletionRate / perTask
	hard := effective * hardCompletionRate / perTask

	ideal := int(math.Ceil((easy + hard) / 2))
	if ideal < 1 {
		ideal = 1
	}
	return ideal
}

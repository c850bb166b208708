package timing

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

// Divisors are the beat snap divisors the editor offers.
var Divisors = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 16}

// divisors tried by the editor when it rounds an unsnapped time, most precise first
var unsnapDivisors = []int{16, 12, 9, 7, 5}

const unsnapThreshold = 2.0

func offsetIntoBeat(time float64, line *UninheritedLine) float64 {
	division := (time - line.Offset) / line.MsPerBeat

	return (division - math.Floor(division)) * line.MsPerBeat
}

// OffsetIntoBeat returns how many milliseconds time lies past the latest full beat.
func (t *Timing) OffsetIntoBeat(time float64) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	return offsetIntoBeat(time, line), nil
}

func theoreticalUnsnap(time float64, divisor int, line *UninheritedLine) float64 {
	currentFraction := offsetIntoBeat(time, line) / line.MsPerBeat
	desiredFraction := math.RoundToEven(currentFraction*float64(divisor)) / float64(divisor)

	return (currentFraction - desiredFraction) * line.MsPerBeat
}

// TheoreticalUnsnapDivisor returns how far time is from the closest 1/divisor tick, positive when late.
func (t *Timing) TheoreticalUnsnapDivisor(time float64, divisor int) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	return theoreticalUnsnap(time, divisor, line), nil
}

// TheoreticalUnsnap returns the smallest theoretical unsnap over the editor's rounding divisors.
func (t *Timing) TheoreticalUnsnap(time float64) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	best := math.Inf(1)

	for _, divisor := range unsnapDivisors {
		unsnap := theoreticalUnsnap(time, divisor, line)
		if math.Abs(unsnap) < math.Abs(best) {
			best = unsnap
		}
	}

	return best, nil
}

// PracticalUnsnapDivisor is the unsnap left over once the editor truncated the snapped time to whole milliseconds.
func (t *Timing) PracticalUnsnapDivisor(time float64, divisor int) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	return practicalUnsnap(time, divisor, line), nil
}

// PracticalUnsnap is the smallest practical unsnap over the editor's rounding divisors.
// Rounding the theoretical unsnap first is not equivalent, since truncation can flip which divisor is closest.
func (t *Timing) PracticalUnsnap(time float64) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	best := math.Inf(1)

	for _, divisor := range unsnapDivisors {
		unsnap := practicalUnsnap(time, divisor, line)
		if math.Abs(unsnap) < math.Abs(best) {
			best = unsnap
		}
	}

	return best, nil
}

func practicalUnsnap(time float64, divisor int, line *UninheritedLine) float64 {
	return time - math.Trunc(time-theoreticalUnsnap(time, divisor, line))
}

// LowestDivisor returns the smallest divisor time is snapped to, 0 when it is unsnapped.
func (t *Timing) LowestDivisor(time float64) (int, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	unsnaps := make([]float64, len(Divisors))
	smallest := math.Inf(1)

	for i, divisor := range Divisors {
		unsnaps[i] = math.Abs(practicalUnsnap(time, divisor, line))
		smallest = math.Min(smallest, unsnaps[i])
	}

	if smallest > unsnapThreshold {
		return 0, nil
	}

	for i, divisor := range Divisors {
		if mutils.AlmostEqual(unsnaps[i], smallest) {
			return divisor, nil
		}
	}

	return 0, nil
}

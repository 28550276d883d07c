// Package score holds the derived scoreboard computations shared by every
// surface that renders an innings. They are pure functions over snapshot
// fields so each view recomputes instead of keeping state of its own.
package score

import "fmt"

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Overs formats a legal-ball count as the conventional "overs.balls"
// string, e.g. 114 balls -> "19.0".
func Overs(totalBalls int) string {
	if totalBalls < 0 {
		totalBalls = 0
	}
	return fmt.Sprintf("%d.%d", totalBalls/BallsPerOver, totalBalls%BallsPerOver)
}

// CompletedOvers returns the number of fully bowled overs.
func CompletedOvers(totalBalls int) int {
	if totalBalls < 0 {
		return 0
	}
	return totalBalls / BallsPerOver
}

// InningsOver reports whether an innings has concluded: all ten wickets
// down, or the overs cap reached. A cap of zero (unlimited, e.g. Test
// cricket) never ends an innings on overs.
func InningsOver(wickets, totalBalls, oversCap int) bool {
	if wickets >= 10 {
		return true
	}
	return oversCap > 0 && CompletedOvers(totalBalls) >= oversCap
}

// RunRate computes runs per over from the innings totals, zero until the
// first ball is bowled.
func RunRate(runs, totalBalls int) float64 {
	if totalBalls <= 0 {
		return 0
	}
	return float64(runs) / float64(totalBalls) * BallsPerOver
}

// FormatRunRate renders a run rate to two decimal places, "0.00" when the
// rate is absent or not meaningful.
func FormatRunRate(rate float64) string {
	if rate <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", rate)
}

package budget

import (
	"math"

	"github.com/mvickers/sugarcap/internal/model"
)

// Activity bonus tunables. Unlike the coefficient table these are fixed:
// they bound the upside of the whole system.
const (
	bonusMinKcal   = 100 // activity below this is noise and earns nothing
	bonusPerTenKcl = 0.5 // grams credited per 10 kcal of qualifying activity
	bonusDayCapG   = 20
	bonusWeekCapG  = 60

	// Effective limit ceiling relative to the base limit.
	dailyCapFactor = 1.3
)

// ComputeActivityBonus converts today's active-energy signal into a capped
// bonus. priorSixDays holds the grants recorded on the 6 preceding
// calendar days; the trailing-7-day total (those plus today) never
// exceeds the weekly cap.
func ComputeActivityBonus(kcalToday float64, priorSixDays []int) model.BonusResult {
	priorSum := 0
	for _, g := range priorSixDays {
		priorSum += g
	}
	headroom := bonusWeekCapG - priorSum
	if headroom < 0 {
		headroom = 0
	}

	raw := 0
	if kcalToday >= bonusMinKcal {
		raw = int(math.Round(kcalToday / 10 * bonusPerTenKcl))
		if raw > bonusDayCapG {
			raw = bonusDayCapG
		}
	}

	granted := raw
	if granted > headroom {
		granted = headroom
	}

	return model.BonusResult{
		GrantedG:         granted,
		WeeklyRemainingG: headroom - granted,
	}
}

// ApplyDailyCap returns the effective limit: base plus bonus, never more
// than 30% above base regardless of the bonus or the coefficient table.
func ApplyDailyCap(baseLimitG, bonusG int) int {
	ceiling := int(math.Round(float64(baseLimitG) * dailyCapFactor))
	effective := baseLimitG + bonusG
	if effective > ceiling {
		return ceiling
	}
	return effective
}

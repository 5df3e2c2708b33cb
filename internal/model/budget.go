package model

// Breakdown factor keys as they appear in BudgetResult.Breakdown.
const (
	FactorBase      = "base"
	FactorBMI       = "bmi"
	FactorPancreas  = "pancreas"
	FactorAge       = "age"
	FactorActivity  = "activity"
	FactorEthnicity = "ethnicity"
)

// BudgetResult is the output of the budget model: the clamped integer
// limit plus the intermediate factors (rounded to 2 decimals) and the raw
// BMI for auditability. Derived, never stored.
type BudgetResult struct {
	TotalG    int
	BMI       float64
	Breakdown map[string]float64
}

// BonusResult is the outcome of applying the daily and weekly activity
// bonus caps to one day's active-energy signal.
type BonusResult struct {
	GrantedG         int
	WeeklyRemainingG int
}

// DaySummary is one element of the trailing 7-day series: the day's total
// consumption compared against the limit in effect.
type DaySummary struct {
	Day       string // 2006-01-02, local
	TotalG    int
	LimitG    int
	OverLimit bool
}

// TodayStatus holds everything the status views need for the current day.
type TodayStatus struct {
	Day        string
	BaseLimitG int
	BonusG     int
	LimitG     int // effective: base + bonus, capped
	ConsumedG  int
	RemainingG int
}

package model

// Sex is the profile sex used to pick the base allowance.
type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexOther       Sex = "other"
	SexUnspecified Sex = "unspecified"
)

// ActivityLevel is the self-reported habitual activity level.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// Profile is an immutable snapshot of the user attributes the budget
// model reads. HeightCm and WeightKg must be positive, otherwise BMI is
// undefined and callers are expected to validate before computing.
type Profile struct {
	Sex               Sex
	Age               int
	HeightCm          float64
	WeightKg          float64
	Ethnicity         string // free-text label, optional
	Activity          ActivityLevel
	EthnicityAdjust   bool // opt-in for the ethnicity factor
}

// Complete reports whether the profile has the numeric fields the budget
// model needs.
func (p Profile) Complete() bool {
	return p.HeightCm > 0 && p.WeightKg > 0 && p.Age >= 0
}

// ParseSex maps a config/CLI string onto a Sex, defaulting to unspecified.
func ParseSex(s string) Sex {
	switch Sex(s) {
	case SexMale, SexFemale, SexOther, SexUnspecified:
		return Sex(s)
	}
	return SexUnspecified
}

// ParseActivityLevel maps a config/CLI string onto an ActivityLevel,
// defaulting to moderate.
func ParseActivityLevel(s string) ActivityLevel {
	switch ActivityLevel(s) {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return ActivityLevel(s)
	}
	return ActivityModerate
}

package budget

import (
	"math"

	"github.com/mvickers/sugarcap/internal/model"
)

// Pancreas factor hard bounds. These are design invariants, not tunables:
// the age x BMI product is clamped here no matter what the table says.
const (
	pancreasFloor   = 0.8
	pancreasCeiling = 1.1
)

// ComputeBaseLimit derives the daily added-sugar limit from a profile and
// a coefficient table. Pure and deterministic; a profile with non-positive
// height or weight propagates NaN through the factors (callers validate
// completeness first).
func ComputeBaseLimit(p model.Profile, c Coefficients) model.BudgetResult {
	base := baseBySex(p.Sex, c)
	bmi := computeBMI(p.WeightKg, p.HeightCm)

	bmiFactor := bmiBandFactor(bmi, c)
	pancreasFactor := pancreasCapacityFactor(p.Age, bmi, c)
	ageFactor := ageBandFactor(p.Age, c)
	activityFactor := activityBandFactor(p.Activity, c)

	ethnicityFactor := 1.0
	if p.EthnicityAdjust {
		ethnicityFactor = ethnicityGroupFactor(p.Ethnicity, c)
	}

	limit := base * bmiFactor * pancreasFactor * ageFactor * activityFactor * ethnicityFactor
	limit = clamp(limit, c.ClampMinG, c.ClampMaxG)

	return model.BudgetResult{
		TotalG: int(math.Round(limit)),
		BMI:    round2(bmi),
		Breakdown: map[string]float64{
			model.FactorBase:      round2(base),
			model.FactorBMI:       round2(bmiFactor),
			model.FactorPancreas:  round2(pancreasFactor),
			model.FactorAge:       round2(ageFactor),
			model.FactorActivity:  round2(activityFactor),
			model.FactorEthnicity: round2(ethnicityFactor),
		},
	}
}

func baseBySex(sex model.Sex, c Coefficients) float64 {
	switch sex {
	case model.SexMale:
		return c.BaseMaleG
	case model.SexFemale:
		return c.BaseFemaleG
	default:
		return c.BaseOtherG
	}
}

// computeBMI returns weight(kg) / height(m)^2, unclamped. Non-positive
// inputs yield NaN so the undefined case is visible downstream.
func computeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return math.NaN()
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

func bmiBandFactor(bmi float64, c Coefficients) float64 {
	switch {
	case bmi < 18.5:
		return c.BMIUnderweight
	case bmi >= 30:
		return c.BMIObese
	case bmi >= 25:
		return c.BMIOverweight
	default:
		return 1
	}
}

// pancreasCapacityFactor combines an age band with a BMI band (overweight
// and obese only, underweight does not reduce capacity) and clamps the
// product to the hard [0.8, 1.1] range.
func pancreasCapacityFactor(age int, bmi float64, c Coefficients) float64 {
	ageF := 1.0
	switch {
	case age < 20:
		ageF = c.PancreasYouth
	case age >= 60:
		ageF = c.PancreasSenior
	case age >= 40:
		ageF = c.PancreasMiddle
	}

	bmiF := 1.0
	switch {
	case bmi >= 30:
		bmiF = c.BMIObese
	case bmi >= 25:
		bmiF = c.BMIOverweight
	}

	return clamp(ageF*bmiF, pancreasFloor, pancreasCeiling)
}

func ageBandFactor(age int, c Coefficients) float64 {
	switch {
	case age < 18:
		return c.AgeChild
	case age >= 60:
		return c.AgeSenior
	case age >= 45:
		return c.AgeMiddle
	default:
		return 1
	}
}

func activityBandFactor(level model.ActivityLevel, c Coefficients) float64 {
	switch level {
	case model.ActivityHigh:
		return c.ActivityHigh
	case model.ActivityLow:
		return c.ActivityLow
	default:
		return 1
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package budget implements the daily added-sugar budget model: the
// coefficient table, the base-limit computation, and the activity bonus
// engine. Everything here is a pure function of its inputs.
package budget

import (
	"fmt"
	"sort"
)

// Coefficients is the tunable parameter table the budget model reads.
// Callers own its lifecycle: default-construct, optionally override via
// config or the coeffs command, and pass explicitly into every call.
// All multipliers are expected positive and ClampMinG <= ClampMaxG; the
// config layer validates this before the model is invoked.
type Coefficients struct {
	// Base daily allowance in grams, selected by sex.
	BaseMaleG   float64
	BaseFemaleG float64
	BaseOtherG  float64

	// BMI band multipliers. Normal range (18.5-25) is always 1.
	BMIUnderweight float64
	BMIOverweight  float64
	BMIObese       float64

	// Pancreas-capacity multipliers. The age x BMI product is clamped to
	// [0.8, 1.1] regardless of these values.
	PancreasYouth  float64 // age < 20
	PancreasMiddle float64 // 40 <= age < 60
	PancreasSenior float64 // age >= 60

	// Age-only multipliers, applied separately from the pancreas factor.
	AgeChild  float64 // age < 18
	AgeMiddle float64 // 45 <= age < 60
	AgeSenior float64 // age >= 60

	// Activity multipliers. Moderate is always exactly 1.
	ActivityLow  float64
	ActivityHigh float64

	// Ethnicity group multipliers, applied only when the profile opts in.
	EthnicitySouthAsian float64
	EthnicityEastAsian  float64
	EthnicityHispanic   float64
	EthnicityAfrican    float64

	// Final clamp bounds in grams.
	ClampMinG float64
	ClampMaxG float64
}

// Defaults returns the stock coefficient table.
func Defaults() Coefficients {
	return Coefficients{
		BaseMaleG:   36,
		BaseFemaleG: 25,
		BaseOtherG:  30,

		BMIUnderweight: 1.1,
		BMIOverweight:  0.85,
		BMIObese:       0.7,

		PancreasYouth:  1.05,
		PancreasMiddle: 0.95,
		PancreasSenior: 0.85,

		AgeChild:  0.8,
		AgeMiddle: 0.95,
		AgeSenior: 0.9,

		ActivityLow:  0.9,
		ActivityHigh: 1.15,

		EthnicitySouthAsian: 0.85,
		EthnicityEastAsian:  0.9,
		EthnicityHispanic:   0.9,
		EthnicityAfrican:    0.95,

		ClampMinG: 10,
		ClampMaxG: 60,
	}
}

// coefficientFields maps administrative key names onto table fields.
// Sorted key listing keeps the coeffs command output stable.
var coefficientFields = map[string]func(*Coefficients) *float64{
	"base.male":            func(c *Coefficients) *float64 { return &c.BaseMaleG },
	"base.female":          func(c *Coefficients) *float64 { return &c.BaseFemaleG },
	"base.other":           func(c *Coefficients) *float64 { return &c.BaseOtherG },
	"bmi.underweight":      func(c *Coefficients) *float64 { return &c.BMIUnderweight },
	"bmi.overweight":       func(c *Coefficients) *float64 { return &c.BMIOverweight },
	"bmi.obese":            func(c *Coefficients) *float64 { return &c.BMIObese },
	"pancreas.youth":       func(c *Coefficients) *float64 { return &c.PancreasYouth },
	"pancreas.middle":      func(c *Coefficients) *float64 { return &c.PancreasMiddle },
	"pancreas.senior":      func(c *Coefficients) *float64 { return &c.PancreasSenior },
	"age.child":            func(c *Coefficients) *float64 { return &c.AgeChild },
	"age.middle":           func(c *Coefficients) *float64 { return &c.AgeMiddle },
	"age.senior":           func(c *Coefficients) *float64 { return &c.AgeSenior },
	"activity.low":         func(c *Coefficients) *float64 { return &c.ActivityLow },
	"activity.high":        func(c *Coefficients) *float64 { return &c.ActivityHigh },
	"ethnicity.southasian": func(c *Coefficients) *float64 { return &c.EthnicitySouthAsian },
	"ethnicity.eastasian":  func(c *Coefficients) *float64 { return &c.EthnicityEastAsian },
	"ethnicity.hispanic":   func(c *Coefficients) *float64 { return &c.EthnicityHispanic },
	"ethnicity.african":    func(c *Coefficients) *float64 { return &c.EthnicityAfrican },
	"clamp.min":            func(c *Coefficients) *float64 { return &c.ClampMinG },
	"clamp.max":            func(c *Coefficients) *float64 { return &c.ClampMaxG },
}

// Keys returns all administrative coefficient key names, sorted.
func Keys() []string {
	keys := make([]string, 0, len(coefficientFields))
	for k := range coefficientFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the named coefficient value.
func (c *Coefficients) Get(key string) (float64, error) {
	f, ok := coefficientFields[key]
	if !ok {
		return 0, fmt.Errorf("unknown coefficient %q", key)
	}
	return *f(c), nil
}

// Set mutates the named coefficient in place. Mutation deterministically
// changes every limit derived afterwards.
func (c *Coefficients) Set(key string, value float64) error {
	f, ok := coefficientFields[key]
	if !ok {
		return fmt.Errorf("unknown coefficient %q", key)
	}
	if value <= 0 {
		return fmt.Errorf("coefficient %q must be positive, got %g", key, value)
	}
	*f(c) = value
	return nil
}

// Validate checks the table invariants: positive multipliers and ordered
// clamp bounds. Called by the config layer before the model runs.
func (c *Coefficients) Validate() error {
	for _, key := range Keys() {
		v, _ := c.Get(key)
		if v <= 0 {
			return fmt.Errorf("coefficient %q must be positive, got %g", key, v)
		}
	}
	if c.ClampMinG > c.ClampMaxG {
		return fmt.Errorf("clamp.min (%g) exceeds clamp.max (%g)", c.ClampMinG, c.ClampMaxG)
	}
	return nil
}

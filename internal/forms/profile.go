// Package forms builds the interactive profile form shared by the
// setup command and the TUI settings tab.
package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mvickers/sugarcap/internal/config"
)

// ProfileValues holds the string-typed form state for the profile editor.
type ProfileValues struct {
	Sex             string
	Age             string
	Height          string
	Weight          string
	Activity        string
	Ethnicity       string
	EthnicityAdjust bool
}

// ProfileFromConfig seeds form state from an existing config so that
// re-running the form edits in place.
func ProfileFromConfig(cfg config.Config) ProfileValues {
	v := ProfileValues{
		Sex:             cfg.Profile.Sex,
		Activity:        cfg.Profile.ActivityLevel,
		Ethnicity:       cfg.Profile.Ethnicity,
		EthnicityAdjust: cfg.Profile.EthnicityAdjust,
	}
	if v.Sex == "" {
		v.Sex = "unspecified"
	}
	if v.Activity == "" {
		v.Activity = "moderate"
	}
	if cfg.Profile.Age > 0 {
		v.Age = strconv.Itoa(cfg.Profile.Age)
	}
	if cfg.Profile.HeightCm > 0 {
		v.Height = strconv.FormatFloat(cfg.Profile.HeightCm, 'f', -1, 64)
	}
	if cfg.Profile.WeightKg > 0 {
		v.Weight = strconv.FormatFloat(cfg.Profile.WeightKg, 'f', -1, 64)
	}
	return v
}

// Apply parses the completed form state back into the profile section.
// Validators guarantee the numeric fields parse by the time the form
// completes.
func (v *ProfileValues) Apply(cfg *config.Config) {
	age, _ := strconv.Atoi(strings.TrimSpace(v.Age))
	height, _ := strconv.ParseFloat(strings.TrimSpace(v.Height), 64)
	weight, _ := strconv.ParseFloat(strings.TrimSpace(v.Weight), 64)

	cfg.Profile.Sex = v.Sex
	cfg.Profile.Age = age
	cfg.Profile.HeightCm = height
	cfg.Profile.WeightKg = weight
	cfg.Profile.ActivityLevel = v.Activity
	cfg.Profile.Ethnicity = strings.TrimSpace(v.Ethnicity)
	cfg.Profile.EthnicityAdjust = v.EthnicityAdjust
}

// ProfileGroups returns the two form groups for editing the profile.
// Extra fields are appended to the second group, which lets the setup
// command tack on its theme picker.
func ProfileGroups(v *ProfileValues, extra ...huh.Field) []*huh.Group {
	second := []huh.Field{
		huh.NewConfirm().
			Title("Apply ethnicity-based adjustment?").
			Description("Optional. Some groups carry higher metabolic risk at the same BMI.").
			Value(&v.EthnicityAdjust),

		huh.NewInput().
			Title("Ethnicity").
			Description("Free text, leave empty to skip.").
			Value(&v.Ethnicity),
	}
	second = append(second, extra...)

	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sex").
				Description("Used to pick the base daily allowance.").
				Options(
					huh.NewOption("Female", "female"),
					huh.NewOption("Male", "male"),
					huh.NewOption("Other", "other"),
					huh.NewOption("Prefer not to say", "unspecified"),
				).
				Value(&v.Sex),

			huh.NewInput().
				Title("Age").
				Validate(validatePositiveInt).
				Value(&v.Age),

			huh.NewInput().
				Title("Height (cm)").
				Validate(validatePositiveFloat).
				Value(&v.Height),

			huh.NewInput().
				Title("Weight (kg)").
				Validate(validatePositiveFloat).
				Value(&v.Weight),

			huh.NewSelect[string]().
				Title("Activity level").
				Options(
					huh.NewOption("Low (mostly sedentary)", "low"),
					huh.NewOption("Moderate", "moderate"),
					huh.NewOption("High (regular training)", "high"),
				).
				Value(&v.Activity),
		),
		huh.NewGroup(second...),
	}
}

// NewProfileForm builds the standalone profile form.
func NewProfileForm(v *ProfileValues) *huh.Form {
	return huh.NewForm(ProfileGroups(v)...)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/mvickers/sugarcap/internal/config"
	"github.com/mvickers/sugarcap/internal/forms"
)

// profileValues aliases the shared form state so the app model can hold
// a pointer the form mutates across model copies.
type profileValues = forms.ProfileValues

func profileValuesFromConfig(cfg config.Config) profileValues {
	return forms.ProfileFromConfig(cfg)
}

func newProfileForm(v *profileValues) *huh.Form {
	return forms.NewProfileForm(v)
}

// saveProfileValues writes the completed form back to the config file.
func saveProfileValues(v *profileValues) error {
	cfg, _ := config.Load()
	v.Apply(&cfg)
	return config.Save(cfg)
}

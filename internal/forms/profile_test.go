package forms

import (
	"testing"

	"github.com/mvickers/sugarcap/internal/config"
)

func TestProfileFromConfig_Defaults(t *testing.T) {
	v := ProfileFromConfig(config.DefaultConfig())

	if v.Sex != "unspecified" {
		t.Errorf("Sex = %q, want unspecified", v.Sex)
	}
	if v.Activity != "moderate" {
		t.Errorf("Activity = %q, want moderate", v.Activity)
	}
	if v.Age != "" || v.Height != "" || v.Weight != "" {
		t.Errorf("numeric fields should seed empty, got %q/%q/%q", v.Age, v.Height, v.Weight)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Sex = "female"
	cfg.Profile.Age = 34
	cfg.Profile.HeightCm = 167.5
	cfg.Profile.WeightKg = 61
	cfg.Profile.ActivityLevel = "high"
	cfg.Profile.Ethnicity = "south asian"
	cfg.Profile.EthnicityAdjust = true

	v := ProfileFromConfig(cfg)

	out := config.DefaultConfig()
	v.Apply(&out)

	if out.Profile != cfg.Profile {
		t.Errorf("round trip changed profile: got %+v, want %+v", out.Profile, cfg.Profile)
	}
}

func TestApply_TrimsAndParses(t *testing.T) {
	v := ProfileValues{
		Sex:       "male",
		Age:       " 40 ",
		Height:    " 180 ",
		Weight:    "82.5",
		Activity:  "low",
		Ethnicity: "  hispanic  ",
	}

	var cfg config.Config
	v.Apply(&cfg)

	if cfg.Profile.Age != 40 {
		t.Errorf("Age = %d, want 40", cfg.Profile.Age)
	}
	if cfg.Profile.HeightCm != 180 {
		t.Errorf("HeightCm = %v, want 180", cfg.Profile.HeightCm)
	}
	if cfg.Profile.WeightKg != 82.5 {
		t.Errorf("WeightKg = %v, want 82.5", cfg.Profile.WeightKg)
	}
	if cfg.Profile.Ethnicity != "hispanic" {
		t.Errorf("Ethnicity = %q, want hispanic", cfg.Profile.Ethnicity)
	}
}

func TestValidators(t *testing.T) {
	if err := validatePositiveInt("34"); err != nil {
		t.Errorf("validatePositiveInt(34) = %v", err)
	}
	for _, bad := range []string{"0", "-3", "abc", ""} {
		if err := validatePositiveInt(bad); err == nil {
			t.Errorf("validatePositiveInt(%q) accepted", bad)
		}
	}

	if err := validatePositiveFloat("167.5"); err != nil {
		t.Errorf("validatePositiveFloat(167.5) = %v", err)
	}
	for _, bad := range []string{"0", "-1.2", "tall", ""} {
		if err := validatePositiveFloat(bad); err == nil {
			t.Errorf("validatePositiveFloat(%q) accepted", bad)
		}
	}
}

func TestProfileGroups_AppendsExtraFields(t *testing.T) {
	var v ProfileValues
	if got := len(ProfileGroups(&v)); got != 2 {
		t.Fatalf("ProfileGroups returned %d groups, want 2", got)
	}
	if form := NewProfileForm(&v); form == nil {
		t.Fatal("NewProfileForm returned nil")
	}
}

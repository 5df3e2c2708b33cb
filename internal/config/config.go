// Package config loads and saves the sugarcap configuration: user
// profile, preferences, and coefficient table overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/model"
)

// Config holds all sugarcap configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Profile ProfileConfig `toml:"profile"`

	// Coefficients overrides the default budget table by administrative
	// key name (e.g. "base.female" = 27). Unknown keys are rejected when
	// the effective table is built.
	Coefficients map[string]float64 `toml:"coefficients,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Theme     string `toml:"theme"`
	AdminMode bool   `toml:"admin_mode"` // gates the coeffs set/reset commands
}

// ProfileConfig is the persisted user profile record.
type ProfileConfig struct {
	Sex             string  `toml:"sex"`
	Age             int     `toml:"age"`
	HeightCm        float64 `toml:"height_cm"`
	WeightKg        float64 `toml:"weight_kg"`
	Ethnicity       string  `toml:"ethnicity,omitempty"`
	ActivityLevel   string  `toml:"activity_level"`
	EthnicityAdjust bool    `toml:"ethnicity_adjust"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Theme: "flexoki-dark",
		},
		Profile: ProfileConfig{
			Sex:           string(model.SexUnspecified),
			ActivityLevel: string(model.ActivityModerate),
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sugarcap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sugarcap")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the ledger db.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "sugarcap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "sugarcap")
}

// DBPath returns the full path to the ledger database.
func DBPath() string {
	return filepath.Join(DataDir(), "ledger.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// UserProfile maps the persisted record onto the budget model's profile.
func (c Config) UserProfile() model.Profile {
	return model.Profile{
		Sex:             model.ParseSex(c.Profile.Sex),
		Age:             c.Profile.Age,
		HeightCm:        c.Profile.HeightCm,
		WeightKg:        c.Profile.WeightKg,
		Ethnicity:       c.Profile.Ethnicity,
		Activity:        model.ParseActivityLevel(c.Profile.ActivityLevel),
		EthnicityAdjust: c.Profile.EthnicityAdjust,
	}
}

// EffectiveCoefficients builds the coefficient table: defaults with the
// config overrides applied, validated before the model ever sees it.
// The core does not validate the table; this is the enforcement point.
func (c Config) EffectiveCoefficients() (budget.Coefficients, error) {
	table := budget.Defaults()
	for key, value := range c.Coefficients {
		if err := table.Set(key, value); err != nil {
			return table, fmt.Errorf("coefficient override: %w", err)
		}
	}
	if err := table.Validate(); err != nil {
		return table, fmt.Errorf("coefficient table: %w", err)
	}
	return table, nil
}

// Package config is for app wide settings that are unmarshalled from Viper
// (see: /internal/cli).
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/p-salvatierra/crispr-design/core/offtarget"
)

// GuideConfig are settings for PAM scanning and guide extraction.
type GuideConfig struct {
	// guide (protospacer) length in bases
	Length int `mapstructure:"length"`

	// the constrained PAM tail; "GG" means the NGG motif
	PAM string `mapstructure:"pam"`
}

// ScoringConfig are settings for efficiency scoring and selection.
type ScoringConfig struct {
	// minimum efficiency score for the top-guide selection
	MinScore float64 `mapstructure:"min-score"`

	// how many top guides to keep (0 = all)
	Top int `mapstructure:"top"`
}

// OffTargetConfig are settings for the off-target assessment.
type OffTargetConfig struct {
	// mismatch budget per window, 1..4
	MaxMismatches int `mapstructure:"max-mismatches"`

	// risk ceiling for filtering ("None".."Very High")
	MaxRisk string `mapstructure:"max-risk"`

	// worker goroutines for the batch (0 = all CPUs)
	Workers int `mapstructure:"workers"`
}

// Config is the root-level settings struct, populated from the settings
// file and/or command line flags.
type Config struct {
	Guide     GuideConfig     `mapstructure:"guide"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	OffTarget OffTargetConfig `mapstructure:"offtarget"`
}

// SetDefaults registers every setting's default on v. Flags bound over
// these take precedence.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("guide.length", 20)
	v.SetDefault("guide.pam", "GG")
	v.SetDefault("scoring.min-score", 50.0)
	v.SetDefault("scoring.top", 10)
	v.SetDefault("offtarget.max-mismatches", offtarget.DefaultMaxMismatches)
	v.SetDefault("offtarget.max-risk", "Medium")
	v.SetDefault("offtarget.workers", 0)
}

// New returns a Config unmarshalled from v, or an error for values no run
// could accept.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode settings: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.Guide.Length < 1 {
		return fmt.Errorf("guide.length must be >= 1, got %d", c.Guide.Length)
	}
	if c.Guide.PAM == "" {
		return fmt.Errorf("guide.pam must not be empty")
	}
	if c.OffTarget.MaxMismatches < 1 || c.OffTarget.MaxMismatches > 4 {
		return fmt.Errorf("offtarget.max-mismatches must be 1..4, got %d", c.OffTarget.MaxMismatches)
	}
	if c.OffTarget.Workers < 0 {
		return fmt.Errorf("offtarget.workers must be >= 0, got %d", c.OffTarget.Workers)
	}
	if _, err := offtarget.ParseLevel(c.OffTarget.MaxRisk); err != nil {
		return fmt.Errorf("offtarget.max-risk: %w", err)
	}
	if c.Scoring.Top < 0 {
		return fmt.Errorf("scoring.top must be >= 0, got %d", c.Scoring.Top)
	}
	return nil
}

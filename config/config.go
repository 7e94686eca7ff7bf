// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// FoldConfig is settings for the branch search
type FoldConfig struct {
	// whether to evaluate the candidate branches of each recursion
	// level serially rather than fanning them out in parallel
	Serial bool `mapstructure:"serial"`

	// the maximum number of candidate branches evaluated concurrently
	// per recursion level; 0 means one goroutine per branch
	BranchLimit int `mapstructure:"branch-limit"`
}

// Config is the root-level settings struct, populated from
// defaults and command line flags bound through Viper
type Config struct {
	// Fold is settings for the branch search
	Fold FoldConfig `mapstructure:"fold"`
}

// BranchLimit is the goroutine cap passed to the search: 1 when
// running serially, otherwise the configured limit clamped to >= 0.
func (c Config) BranchLimit() int {
	if c.Fold.Serial {
		return 1
	}
	if c.Fold.BranchLimit < 0 {
		return 0
	}
	return c.Fold.BranchLimit
}

// NewConfig returns a new Config struct populated by
// Viper settings bound from command line arguments
func NewConfig() Config {
	viper.SetDefault("fold.serial", false)
	viper.SetDefault("fold.branch-limit", 0)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

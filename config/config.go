// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// OutputConfig is settings for writing record tables
type OutputConfig struct {
	// the encoding to fall back to when none is flagged and the
	// file extension is unrecognized: "tsv" or "jsonl"
	Format string `mapstructure:"format"`

	// whether to write the canonical header row on TSV output
	Header bool `mapstructure:"header"`
}

// ValidationConfig is settings for the strict record checks
type ValidationConfig struct {
	// the letters a read sequence may contain, case-insensitive
	Alphabet string `mapstructure:"alphabet"`

	// the largest orientation code accepted; codes run 0..DirectionMax
	DirectionMax int `mapstructure:"direction-max"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// output settings
	Output OutputConfig `mapstructure:"output"`

	// strict validation settings
	Validation ValidationConfig `mapstructure:"validation"`
}

// New returns a new Config struct populated by Viper settings:
// the built-in defaults, overridden by a --settings file if one
// was passed on the command line
func New() *Config {
	setDefaults()

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// setDefaults mirrors config/settings.yaml
func setDefaults() {
	viper.SetDefault("output.format", "tsv")
	viper.SetDefault("output.header", true)
	viper.SetDefault("validation.alphabet", "ACGTN")
	viper.SetDefault("validation.direction-max", 3)
}

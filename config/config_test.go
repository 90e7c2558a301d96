// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.Output.Format != "tsv" {
		t.Errorf("default output format = %s, want tsv", c.Output.Format)
	}
	if !c.Output.Header {
		t.Error("default output header = false, want true")
	}
	if c.Validation.Alphabet != "ACGTN" {
		t.Errorf("default alphabet = %s, want ACGTN", c.Validation.Alphabet)
	}
	if c.Validation.DirectionMax != 3 {
		t.Errorf("default direction-max = %d, want 3", c.Validation.DirectionMax)
	}
}

func TestNew_settingsFile(t *testing.T) {
	viper.Reset()

	settings := filepath.Join(t.TempDir(), "settings.yaml")
	contents := `output:
  format: jsonl
  header: false
validation:
  alphabet: ACGT
`
	if err := os.WriteFile(settings, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	viper.Set("settings", settings)

	c := New()

	if c.Output.Format != "jsonl" {
		t.Errorf("output format = %s, want jsonl", c.Output.Format)
	}
	if c.Output.Header {
		t.Error("output header = true, want false")
	}
	if c.Validation.Alphabet != "ACGT" {
		t.Errorf("alphabet = %s, want ACGT", c.Validation.Alphabet)
	}

	// unset fields keep their defaults
	if c.Validation.DirectionMax != 3 {
		t.Errorf("direction-max = %d, want default 3", c.Validation.DirectionMax)
	}
}

// Package cmd is for command line interactions with the pairmap application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "pairmap",
	Short: `Convert, check, filter and dedup paired-read mapping records.
Records are exchanged as TSV tables or JSONL, one mapped pair per line`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file overriding the built-in defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (YAML) overriding the built-in defaults")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}

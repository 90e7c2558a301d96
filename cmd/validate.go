package cmd

import (
	"github.com/ohtsuboy/NGSPairMapper/internal/pairmap"
	"github.com/spf13/cobra"
)

// validateCmd is for checking every record in a table decodes cleanly
var validateCmd = &cobra.Command{
	Use:                        "validate",
	Short:                      "Check that every record in a table is well formed",
	Run:                        pairmap.ValidateCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Decode every record in a table and report the malformed lines: wrong
column counts, non-integer locations, missing fields. With --strict,
sequences are also held to the configured alphabet and orientation codes
to the agreed 0..3 domain (see config/settings.yaml). Exits non-zero if
any record fails.`,
	Example: "  pairmap validate -i pairs.tsv --strict",
	Aliases: []string{"check", "lint"},
}

// set flags
func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("in", "i", "", "Input record table (defaults to stdin)")
	validateCmd.Flags().StringP("from", "f", "", "Input encoding: tsv or jsonl (default: by extension)")
	validateCmd.Flags().Bool("strict", false, "Also enforce the sequence alphabet and orientation-code domain")
}

package cmd

import (
	"github.com/ohtsuboy/NGSPairMapper/internal/pairmap"
	"github.com/spf13/cobra"
)

// convertCmd is for re-encoding a record table between the canonical encodings
var convertCmd = &cobra.Command{
	Use:                        "convert",
	Short:                      "Re-encode a record table between TSV and JSONL",
	Run:                        pairmap.ConvertCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Read a table of paired-read mapping records in one canonical encoding and
write it back out in another. Encodings are inferred from file extensions
and can be forced with --from/--to. Either direction round-trips: a table
converted and converted back holds structurally equal records.`,
	Example: "  pairmap convert -i pairs.tsv -o pairs.jsonl",
	Aliases: []string{"conv"},
}

// set flags
func init() {
	RootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("in", "i", "", "Input record table (defaults to stdin)")
	convertCmd.Flags().StringP("out", "o", "", "Output file (defaults to stdout)")
	convertCmd.Flags().StringP("from", "f", "", "Input encoding: tsv or jsonl (default: by extension)")
	convertCmd.Flags().StringP("to", "t", "", "Output encoding: tsv or jsonl (default: by extension)")
}

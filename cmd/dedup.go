package cmd

import (
	"github.com/ohtsuboy/NGSPairMapper/internal/pairmap"
	"github.com/spf13/cobra"
)

// dedupCmd is for dropping duplicate records from a table
var dedupCmd = &cobra.Command{
	Use:                        "dedup",
	Short:                      "Drop duplicate records from a table",
	Run:                        pairmap.DedupCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Drop records whose seven fields all match an earlier record in the table,
keeping the first of each in input order. Duplicate mapped pairs usually
come from PCR duplicates or from merging overlapping mapper outputs.`,
	Example: "  pairmap dedup -i pairs.tsv -o unique.tsv",
	Aliases: []string{"uniq"},
}

// set flags
func init() {
	RootCmd.AddCommand(dedupCmd)

	dedupCmd.Flags().StringP("in", "i", "", "Input record table (defaults to stdin)")
	dedupCmd.Flags().StringP("out", "o", "", "Output file (defaults to stdout)")
	dedupCmd.Flags().StringP("from", "f", "", "Input encoding: tsv or jsonl (default: by extension)")
	dedupCmd.Flags().StringP("to", "t", "", "Output encoding: tsv or jsonl (default: by extension)")
}

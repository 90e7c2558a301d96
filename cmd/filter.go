package cmd

import (
	"math"

	"github.com/ohtsuboy/NGSPairMapper/internal/pairmap"
	"github.com/spf13/cobra"
)

// filterCmd is for keeping only the records matching the given criteria
var filterCmd = &cobra.Command{
	Use:                        "filter",
	Short:                      "Keep only the records matching the given criteria",
	Run:                        pairmap.FilterCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Keep only the records matching a replicon name, an orientation code,
and/or a distance range. Selection happens record by record; nothing is
aggregated or summarized, so the output is a table in the same canonical
shape as the input.`,
	Example: "  pairmap filter -i pairs.tsv --replicon chr1 --max-distance 1000",
}

// set flags
func init() {
	RootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringP("in", "i", "", "Input record table (defaults to stdin)")
	filterCmd.Flags().StringP("out", "o", "", "Output file (defaults to stdout)")
	filterCmd.Flags().StringP("from", "f", "", "Input encoding: tsv or jsonl (default: by extension)")
	filterCmd.Flags().StringP("to", "t", "", "Output encoding: tsv or jsonl (default: by extension)")
	filterCmd.Flags().StringP("replicon", "r", "", "Keep only records mapped to this replicon")
	filterCmd.Flags().IntP("direction", "d", -1, "Keep only records with this orientation code (0=FF 1=FR 2=RF 3=RR)")
	filterCmd.Flags().Int("min-distance", math.MinInt, "Keep only records with distance >= this")
	filterCmd.Flags().Int("max-distance", math.MaxInt, "Keep only records with distance <= this")
}

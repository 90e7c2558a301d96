package pairmap

import (
	"github.com/ohtsuboy/NGSPairMapper/pair"
	"github.com/spf13/cobra"
)

// FilterCmd runs filter from the command line: keep only the records
// matching the replicon, direction, and distance flags.
func FilterCmd(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd, args)

	records, err := ReadRecords(fs.in, fs.inFormat)
	if err != nil {
		stderr.Fatal(err)
	}

	kept := Filter(records, fs.replicon, fs.direction, fs.minDistance, fs.maxDistance)

	if err := WriteRecords(fs.out, fs.outFormat, c.Output.Header, kept); err != nil {
		stderr.Fatal(err)
	}

	stderr.Printf("kept %d of %d records", len(kept), len(records))
}

// Filter returns the records on replicon (empty matches all) with
// orientation code direction (-1 matches all) and distance within
// [minDistance, maxDistance]. Record-level selection only; nothing here
// aggregates or summarizes.
func Filter(records []pair.PairRecord, replicon string, direction, minDistance, maxDistance int) []pair.PairRecord {
	kept := []pair.PairRecord{}
	for _, r := range records {
		if replicon != "" && r.RepliconName != replicon {
			continue
		}
		if direction >= 0 && int(r.Direction) != direction {
			continue
		}
		if r.Distance < minDistance || r.Distance > maxDistance {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

package pairmap

import (
	"github.com/ohtsuboy/NGSPairMapper/pair"
	"github.com/spf13/cobra"
)

// DedupCmd runs dedup from the command line: drop records whose seven
// fields all match an earlier record in the table.
func DedupCmd(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd, args)

	records, err := ReadRecords(fs.in, fs.inFormat)
	if err != nil {
		stderr.Fatal(err)
	}

	unique := Dedup(records)

	if err := WriteRecords(fs.out, fs.outFormat, c.Output.Header, unique); err != nil {
		stderr.Fatal(err)
	}

	stderr.Printf("dropped %d duplicate records, kept %d", len(records)-len(unique), len(unique))
}

// Dedup returns records with duplicates removed, keeping the first of
// each in input order. Two records are duplicates when all their fields
// are equal, so the map is keyed by the record value itself.
func Dedup(records []pair.PairRecord) []pair.PairRecord {
	seen := make(map[pair.PairRecord]bool, len(records))
	unique := make([]pair.PairRecord, 0, len(records))

	for _, r := range records {
		if seen[r] {
			continue
		}
		seen[r] = true
		unique = append(unique, r)
	}
	return unique
}

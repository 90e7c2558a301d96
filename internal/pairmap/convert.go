package pairmap

import (
	"github.com/spf13/cobra"
)

// ConvertCmd runs convert from the command line: re-encode a record
// table from one canonical encoding to the other.
func ConvertCmd(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd, args)

	records, err := ReadRecords(fs.in, fs.inFormat)
	if err != nil {
		stderr.Fatal(err)
	}

	if err := WriteRecords(fs.out, fs.outFormat, c.Output.Header, records); err != nil {
		stderr.Fatal(err)
	}

	stderr.Printf("converted %d records from %s to %s", len(records), fs.inFormat, fs.outFormat)
}

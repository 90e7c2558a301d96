package pairmap

import (
	"fmt"
	"strings"

	"github.com/ohtsuboy/NGSPairMapper/config"
	"github.com/ohtsuboy/NGSPairMapper/pair"
	"github.com/spf13/cobra"
)

// ValidateCmd runs validate from the command line: decode every record
// in a table, report the malformed lines, and exit non-zero if any.
func ValidateCmd(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd, args)

	valid, failures, err := Validate(fs.in, fs.inFormat, fs.strict, c)
	if err != nil {
		stderr.Fatal(err)
	}

	for _, f := range failures {
		stderr.Printf("%v", f)
	}
	if len(failures) > 0 {
		stderr.Fatalf("%s: %d valid records, %d malformed", fs.in, valid, len(failures))
	}

	stderr.Printf("%s: %d valid records", fs.in, valid)
}

// Validate decodes every record in the table at path and returns the
// count of valid records alongside the per-line failures. With strict
// set, records whose sequences leave the configured alphabet or whose
// orientation code falls outside the agreed domain also fail.
func Validate(path string, format Format, strict bool, c *config.Config) (valid int, failures []error, err error) {
	err = eachRecord(path, format, func(line int, r pair.PairRecord, err error) error {
		if err == nil && strict {
			err = checkStrict(r, c)
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("line %d: %w", line, err))
			return nil
		}
		valid++
		return nil
	})
	return valid, failures, err
}

// checkStrict applies the settings-driven checks that New leaves to the
// boundary: the sequence alphabet and the orientation-code domain.
func checkStrict(r pair.PairRecord, c *config.Config) error {
	alphabet := strings.ToUpper(c.Validation.Alphabet)
	for _, seq := range []string{r.Read1Sequence, r.Read2Sequence} {
		for _, letter := range strings.ToUpper(seq) {
			if !strings.ContainsRune(alphabet, letter) {
				return fmt.Errorf("%w: letter %q outside alphabet %s", pair.ErrMalformedRecord, letter, alphabet)
			}
		}
	}

	if d := int(r.Direction); d < 0 || d > c.Validation.DirectionMax {
		return fmt.Errorf("%w: direction %d outside 0..%d", pair.ErrMalformedRecord, d, c.Validation.DirectionMax)
	}
	return nil
}

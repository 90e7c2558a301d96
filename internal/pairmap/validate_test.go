package pairmap

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ohtsuboy/NGSPairMapper/config"
	"github.com/ohtsuboy/NGSPairMapper/pair"
)

var testConfig = &config.Config{
	Output: config.OutputConfig{
		Format: "tsv",
		Header: true,
	},
	Validation: config.ValidationConfig{
		Alphabet:     "ACGTN",
		DirectionMax: 3,
	},
}

// test/malformed.tsv holds, after the header: one clean record, one with
// six columns, one with a non-integer location, one with direction 9,
// and one with an X in its read 1 sequence
func Test_Validate(t *testing.T) {
	path := filepath.Join("..", "..", "test", "malformed.tsv")

	type args struct {
		strict bool
	}
	tests := []struct {
		name         string
		args         args
		wantValid    int
		wantFailures int
	}{
		{
			"lenient keeps odd directions and letters",
			args{strict: false},
			3,
			2,
		},
		{
			"strict rejects them",
			args{strict: true},
			1,
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, failures, err := Validate(path, FormatTSV, tt.args.strict, testConfig)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if valid != tt.wantValid {
				t.Errorf("Validate() valid = %d, want %d", valid, tt.wantValid)
			}
			if len(failures) != tt.wantFailures {
				t.Errorf("Validate() failures = %d, want %d: %v", len(failures), tt.wantFailures, failures)
			}
			for _, f := range failures {
				if !errors.Is(f, pair.ErrMalformedRecord) {
					t.Errorf("failure %v should wrap ErrMalformedRecord", f)
				}
			}
		})
	}
}

func Test_checkStrict(t *testing.T) {
	type args struct {
		r pair.PairRecord
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"clean record",
			args{pair.PairRecord{
				RepliconName:  "chr1",
				Read1Sequence: "ACGTN",
				Read2Sequence: "acgtn", // lower case is fine
				Read1Location: 1,
				Read2Location: 2,
				Distance:      3,
				Direction:     pair.ReverseReverse,
			}},
			false,
		},
		{
			"letter outside alphabet",
			args{pair.PairRecord{
				RepliconName:  "chr1",
				Read1Sequence: "ACGU", // RNA letter
				Read2Sequence: "ACGT",
				Direction:     pair.ForwardForward,
			}},
			true,
		},
		{
			"direction past domain",
			args{pair.PairRecord{
				RepliconName:  "chr1",
				Read1Sequence: "ACGT",
				Read2Sequence: "ACGT",
				Direction:     pair.Direction(4),
			}},
			true,
		},
		{
			"negative direction",
			args{pair.PairRecord{
				RepliconName:  "chr1",
				Read1Sequence: "ACGT",
				Read2Sequence: "ACGT",
				Direction:     pair.Direction(-1),
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStrict(tt.args.r, testConfig)

			if tt.wantErr && !errors.Is(err, pair.ErrMalformedRecord) {
				t.Errorf("checkStrict() error = %v, want ErrMalformedRecord", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("checkStrict() unexpected error = %v", err)
			}
		})
	}
}

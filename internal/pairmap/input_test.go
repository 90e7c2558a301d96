package pairmap

import (
	"math"
	"testing"

	"github.com/spf13/viper"
)

func Test_parseFormat(t *testing.T) {
	type args struct {
		flag     string
		path     string
		fallback string
	}
	tests := []struct {
		name    string
		args    args
		want    Format
		wantErr bool
	}{
		{
			"explicit flag wins over extension",
			args{"jsonl", "pairs.tsv", "tsv"},
			FormatJSONL,
			false,
		},
		{
			"tsv extension",
			args{"", "pairs.tsv", "jsonl"},
			FormatTSV,
			false,
		},
		{
			"jsonl extension",
			args{"", "out/pairs.jsonl", "tsv"},
			FormatJSONL,
			false,
		},
		{
			"ndjson extension",
			args{"", "pairs.ndjson", "tsv"},
			FormatJSONL,
			false,
		},
		{
			"stdin falls back to settings",
			args{"", "-", "jsonl"},
			FormatJSONL,
			false,
		},
		{
			"unknown extension falls back to settings",
			args{"", "pairs.dat", "tsv"},
			FormatTSV,
			false,
		},
		{
			"case insensitive flag",
			args{"TSV", "pairs.jsonl", "jsonl"},
			FormatTSV,
			false,
		},
		{
			"unrecognized format",
			args{"bam", "pairs.bam", "tsv"},
			FormatTSV,
			true,
		},
	}

	p := inputParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.parseFormat(tt.args.flag, tt.args.path, tt.args.fallback)

			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_NewFlags(t *testing.T) {
	viper.Reset()

	fs, c := NewFlags("pairs.tsv", "pairs.jsonl", FormatTSV, FormatJSONL)

	if fs.in != "pairs.tsv" || fs.out != "pairs.jsonl" {
		t.Errorf("NewFlags() in/out = %s/%s", fs.in, fs.out)
	}
	if fs.direction != -1 {
		t.Errorf("NewFlags() direction = %d, want -1 (match all)", fs.direction)
	}
	if fs.minDistance != math.MinInt || fs.maxDistance != math.MaxInt {
		t.Error("NewFlags() distance range should match all records")
	}
	if c.Output.Format != "tsv" {
		t.Errorf("NewFlags() config format = %s, want tsv", c.Output.Format)
	}
}

func Test_FormatString(t *testing.T) {
	if FormatTSV.String() != "tsv" {
		t.Errorf("FormatTSV.String() = %s, want tsv", FormatTSV)
	}
	if FormatJSONL.String() != "jsonl" {
		t.Errorf("FormatJSONL.String() = %s, want jsonl", FormatJSONL)
	}
}

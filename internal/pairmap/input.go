// Package pairmap implements the commands that move, check, and dedup
// canonical paired-read mapping records between the pipeline stages that
// produce and consume them.
package pairmap

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohtsuboy/NGSPairMapper/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Format is one of the canonical on-disk encodings for a record table.
type Format int

const (
	// FormatTSV is seven tab-separated columns, one record per line,
	// with an optional header row.
	FormatTSV Format = iota

	// FormatJSONL is one flat JSON object per line.
	FormatJSONL
)

// String returns the flag/extension name of f.
func (f Format) String() string {
	if f == FormatJSONL {
		return "jsonl"
	}
	return "tsv"
}

// Flags contains parsed cobra flags like "in", "out", "from", "to", etc
// that are used by multiple commands.
type Flags struct {
	// the name of the file to read records from ("-" is stdin)
	in string

	// the name of the file to write records to ("-" is stdout)
	out string

	// the encoding of the input table
	inFormat Format

	// the encoding of the output table
	outFormat Format

	// keep only records on this replicon (empty matches all)
	replicon string

	// keep only records with this orientation code (-1 matches all)
	direction int

	// keep only records with distance in [minDistance, maxDistance]
	minDistance int
	maxDistance int

	// apply the settings-driven strict checks during validate
	strict bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string, inFormat, outFormat Format) (*Flags, *config.Config) {
	return &Flags{
		in:          in,
		out:         out,
		inFormat:    inFormat,
		outFormat:   outFormat,
		direction:   -1,
		minDistance: math.MinInt,
		maxDistance: math.MaxInt,
	}, config.New()
}

// parseCmdFlags gathers the in path, out path, encodings, etc from a
// cobra cmd object. Returns Flags and a Config struct for the command.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{
		direction:   -1,
		minDistance: math.MinInt,
		maxDistance: math.MaxInt,
	}
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		stderr.Fatal(err)
	}
	if fs.in == "" && len(args) > 0 {
		fs.in = args[0]
	}
	if fs.in == "" {
		fs.in = "-" // read from stdin
	}

	from, _ := cmd.Flags().GetString("from")
	if fs.inFormat, err = p.parseFormat(from, fs.in, c.Output.Format); err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	if cmd.Flags().Lookup("out") != nil {
		fs.out, _ = cmd.Flags().GetString("out")

		to, _ := cmd.Flags().GetString("to")
		if fs.outFormat, err = p.parseFormat(to, fs.out, c.Output.Format); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if cmd.Flags().Lookup("replicon") != nil {
		fs.replicon, _ = cmd.Flags().GetString("replicon")
		fs.direction, _ = cmd.Flags().GetInt("direction")
		fs.minDistance, _ = cmd.Flags().GetInt("min-distance")
		fs.maxDistance, _ = cmd.Flags().GetInt("max-distance")
	}

	if cmd.Flags().Lookup("strict") != nil {
		fs.strict, _ = cmd.Flags().GetBool("strict")
	}

	return fs, c
}

// parseFormat resolves a record table's encoding: an explicit flag value
// wins, then the path's extension, then the settings fallback.
func (p *inputParser) parseFormat(flag, path, fallback string) (Format, error) {
	name := flag
	if name == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tsv", ".tab", ".txt":
			name = "tsv"
		case ".jsonl", ".ndjson", ".json":
			name = "jsonl"
		default:
			name = fallback
		}
	}

	switch strings.ToLower(name) {
	case "tsv":
		return FormatTSV, nil
	case "jsonl":
		return FormatJSONL, nil
	}
	return FormatTSV, fmt.Errorf("unrecognized record format %q (want tsv or jsonl)", name)
}

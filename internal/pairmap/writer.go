package pairmap

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ohtsuboy/NGSPairMapper/pair"
)

// WriteRecords encodes records to the file at path, one per line. A path
// of "" or "-" writes to stdout. The TSV header row is written when
// header is set; JSONL output never carries one.
func WriteRecords(path string, format Format, header bool, records []pair.PairRecord) error {
	var out io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if format == FormatTSV && header {
		fmt.Fprintln(w, pair.Header())
	}

	for _, r := range records {
		if format == FormatJSONL {
			data, err := r.ToJSON()
			if err != nil {
				return err
			}
			w.Write(data)
			w.WriteByte('\n')
		} else {
			fmt.Fprintln(w, r.MarshalTSV())
		}
	}

	return w.Flush()
}

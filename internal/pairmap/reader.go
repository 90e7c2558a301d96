package pairmap

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ohtsuboy/NGSPairMapper/pair"
)

// eachRecord decodes the record table at path line by line, calling fn
// with each line number and its decoded record or decode error. Decode
// errors don't end the scan, so callers can collect them; an error
// returned by fn does. A path of "-" reads from stdin. Blank lines and a
// leading TSV header row are skipped.
func eachRecord(path string, format Format, fn func(line int, r pair.PairRecord, err error) error) error {
	in := os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // reads can be long

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		if format == FormatTSV && line == 1 && strings.HasPrefix(text, pair.Columns[0]+"\t") {
			continue // header row
		}

		var r pair.PairRecord
		var err error
		if format == FormatJSONL {
			r, err = pair.FromJSON([]byte(text))
		} else {
			r, err = pair.UnmarshalTSV(text)
		}

		if err := fn(line, r, err); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ReadRecords decodes all the records in the table at path, failing on
// the first malformed line.
func ReadRecords(path string, format Format) ([]pair.PairRecord, error) {
	var records []pair.PairRecord
	err := eachRecord(path, format, func(line int, r pair.PairRecord, err error) error {
		if err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

package pair

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns are the canonical column names, in on-disk order.
var Columns = []string{
	"replicon_name",
	"read1_sequence",
	"read2_sequence",
	"read1_location",
	"read2_location",
	"distance",
	"direction",
}

// Header returns the canonical TSV header row.
func Header() string {
	return strings.Join(Columns, "\t")
}

// MarshalTSV renders r as one canonical tab-separated line, columns in
// the order of Columns, without a trailing newline.
func (r PairRecord) MarshalTSV() string {
	return strings.Join([]string{
		r.RepliconName,
		r.Read1Sequence,
		r.Read2Sequence,
		strconv.Itoa(r.Read1Location),
		strconv.Itoa(r.Read2Location),
		strconv.Itoa(r.Distance),
		strconv.Itoa(int(r.Direction)),
	}, "\t")
}

// UnmarshalTSV parses one canonical tab-separated line back into a
// record. Wrong column counts, non-integer locations, and empty text
// columns all fail wrapping ErrMalformedRecord.
func UnmarshalTSV(line string) (PairRecord, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != len(Columns) {
		return PairRecord{}, fmt.Errorf("%w: %d columns, want %d", ErrMalformedRecord, len(cols), len(Columns))
	}

	ints := make([]int, 4) // read1_location, read2_location, distance, direction
	for i := range ints {
		n, err := strconv.Atoi(cols[3+i])
		if err != nil {
			return PairRecord{}, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRecord, Columns[3+i], cols[3+i])
		}
		ints[i] = n
	}

	r, err := New(cols[0], cols[1], cols[2], ints[0], ints[1], ints[2], Direction(ints[3]))
	if err != nil {
		return PairRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return r, nil
}

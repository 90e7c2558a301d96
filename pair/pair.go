// Package pair defines the record exchanged between a read-pair mapper
// and the downstream stages that consume its mappings: one mapped pair of
// sequencing reads on a single replicon.
package pair

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a record is constructed with a
// missing required field.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrMalformedRecord is returned when a serialized record is missing a
// required field, has a field of the wrong type, or carries an
// orientation code outside the agreed domain.
var ErrMalformedRecord = errors.New("malformed record")

// PairRecord is a single mapped read pair: the replicon both reads
// aligned to, the genomic subsequence each read spans, the 1-based start
// of each read on the replicon, the separation reported by the mapper,
// and the pair's relative orientation.
//
// A PairRecord is immutable once built. Stages that need a changed record
// build a new one. Every field is comparable, so a PairRecord can key a
// map directly and two records with equal fields are duplicates.
type PairRecord struct {
	// RepliconName is the reference sequence (chromosome, plasmid,
	// contig) both reads mapped to. Shared with whatever representation
	// of the reference genome the caller holds, not validated against it.
	RepliconName string `json:"replicon_name"`

	// Read1Sequence is the subsequence of the replicon spanned by read 1.
	Read1Sequence string `json:"read1_sequence"`

	// Read2Sequence is the subsequence of the replicon spanned by read 2.
	Read2Sequence string `json:"read2_sequence"`

	// Read1Location is the 1-based start of read 1's alignment.
	Read1Location int `json:"read1_location"`

	// Read2Location is the 1-based start of read 2's alignment.
	Read2Location int `json:"read2_location"`

	// Distance is the separation between the two reads as reported by
	// the mapper (eg the fragment's insert size). Stored as given, never
	// recomputed from the two locations.
	Distance int `json:"distance"`

	// Direction is the pair's relative orientation code.
	Direction Direction `json:"direction"`
}

// New builds a PairRecord. It fails if any of the three text fields is
// empty. The integer fields are stored as given, zero and negative
// values included, since their semantics belong to the mapper.
func New(
	repliconName,
	read1Sequence,
	read2Sequence string,
	read1Location,
	read2Location,
	distance int,
	direction Direction,
) (PairRecord, error) {
	if repliconName == "" {
		return PairRecord{}, fmt.Errorf("%w: empty replicon name", ErrInvalidArgument)
	}
	if read1Sequence == "" {
		return PairRecord{}, fmt.Errorf("%w: empty read 1 sequence", ErrInvalidArgument)
	}
	if read2Sequence == "" {
		return PairRecord{}, fmt.Errorf("%w: empty read 2 sequence", ErrInvalidArgument)
	}

	return PairRecord{
		RepliconName:  repliconName,
		Read1Sequence: read1Sequence,
		Read2Sequence: read2Sequence,
		Read1Location: read1Location,
		Read2Location: read2Location,
		Distance:      distance,
		Direction:     direction,
	}, nil
}

// Equal reports whether r and other match field for field.
func (r PairRecord) Equal(other PairRecord) bool {
	return r == other
}

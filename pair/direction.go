package pair

import "fmt"

// Direction encodes the relative strand orientation of the two reads in
// a pair. The four codes below are the agreed domain at the pipeline
// boundary. A record stores whatever code it was given so tables written
// by mappers with a private encoding still round-trip; strict validation
// is where out-of-domain codes get rejected.
type Direction int

const (
	// ForwardForward means both reads aligned to the forward strand.
	ForwardForward Direction = iota

	// ForwardReverse means read 1 aligned forward, read 2 reverse.
	ForwardReverse

	// ReverseForward means read 1 aligned reverse, read 2 forward.
	ReverseForward

	// ReverseReverse means both reads aligned to the reverse strand.
	ReverseReverse
)

// Valid reports whether d is one of the four orientation codes.
func (d Direction) Valid() bool {
	return d >= ForwardForward && d <= ReverseReverse
}

// String returns the two-letter strand notation for d, eg "FR".
func (d Direction) String() string {
	switch d {
	case ForwardForward:
		return "FF"
	case ForwardReverse:
		return "FR"
	case ReverseForward:
		return "RF"
	case ReverseReverse:
		return "RR"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

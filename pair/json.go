package pair

import (
	"encoding/json"
	"fmt"
)

// ToJSON renders r as a flat JSON object with the canonical field names.
func (r PairRecord) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// FromJSON parses one canonical JSON object back into a record. Unlike a
// bare json.Unmarshal, an object that omits any of the seven fields is
// rejected rather than zero-filled, so a table missing its distance
// column fails loudly instead of reading as distance zero.
func FromJSON(data []byte) (PairRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return PairRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	for _, col := range Columns {
		if _, ok := raw[col]; !ok {
			return PairRecord{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, col)
		}
	}

	var r PairRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return PairRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	r, err := New(
		r.RepliconName,
		r.Read1Sequence,
		r.Read2Sequence,
		r.Read1Location,
		r.Read2Location,
		r.Distance,
		r.Direction,
	)
	if err != nil {
		return PairRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return r, nil
}

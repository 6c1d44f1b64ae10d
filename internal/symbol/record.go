package symbol

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Record is the persisted form of one document's analysis, gob-encoded
// into the value column of an internal/cache bucket row.
type Record struct {
	File *Symbol
	Refs []Reference
}

// MarshalRecord gob-encodes a Record for storage.
func MarshalRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("symbol: marshal record: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalRecord decodes a Record previously produced by MarshalRecord.
func UnmarshalRecord(data []byte) (Record, error) {
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("symbol: unmarshal record: %w", err)
	}
	return rec, nil
}

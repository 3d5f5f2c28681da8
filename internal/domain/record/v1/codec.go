package recordv1

import (
	"encoding/json"
	"fmt"
)

// Envelope wraps a record with its type tag for transports that carry all
// record kinds on one topic.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode serializes a record into a type-tagged JSON envelope.
func Encode(record Record) ([]byte, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: record.Label(), Payload: payload})
}

// Decode parses a type-tagged JSON envelope back into a record.
func Decode(data []byte) (Record, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	switch envelope.Type {
	case Ack{}.Label():
		var r Ack
		if err := json.Unmarshal(envelope.Payload, &r); err != nil {
			return nil, err
		}
		return r, nil
	case Trade{}.Label():
		var r Trade
		if err := json.Unmarshal(envelope.Payload, &r); err != nil {
			return nil, err
		}
		return r, nil
	case Cancelled{}.Label():
		var r Cancelled
		if err := json.Unmarshal(envelope.Payload, &r); err != nil {
			return nil, err
		}
		return r, nil
	case Flushed{}.Label():
		return Flushed{}, nil
	case Rejected{}.Label():
		var r Rejected
		if err := json.Unmarshal(envelope.Payload, &r); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown record type %q", envelope.Type)
	}
}

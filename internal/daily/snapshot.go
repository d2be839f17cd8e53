// Package daily derives "today's" value for a feature from a persisted
// snapshot and the current day identity.
//
// A snapshot is stored flat: the payload's JSON fields sit beside "date",
//
//	{"date":"Mon Jan 01 2024","completed":{"biking":true}}
//
// which is the shape the web client writes, so the two can share a store.
package daily

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/errors"
)

// Snapshot pairs a day identity with one feature's payload for that day.
// Date is an equality key only and is never parsed.
type Snapshot[T any] struct {
	Date    string
	Payload T
}

// MarshalJSON writes the payload's fields with "date" first. The payload
// must encode as a JSON object without a field of its own named "date".
func (s Snapshot[T]) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	body = bytes.TrimSpace(body)
	if bytes.Equal(body, []byte("null")) {
		body = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("payload must encode as a JSON object, got %.20s", body)
	}
	if _, clash := fields[constants.SnapshotDateField]; clash {
		return nil, fmt.Errorf("payload field %q collides with the day identity", constants.SnapshotDateField)
	}

	date, err := json.Marshal(s.Date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"` + constants.SnapshotDateField + `":`)
	buf.Write(date)
	if len(fields) > 0 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// Encode returns the stored text for s.
func Encode[T any](s Snapshot[T]) (string, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses stored text. Anything that is not a JSON object with a
// non-empty string "date", or whose remaining fields do not decode into T,
// yields an error wrapping errors.ErrCorruptSnapshot.
func Decode[T any](raw string) (Snapshot[T], error) {
	var snap Snapshot[T]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return snap, fmt.Errorf("%w: %v", errors.ErrCorruptSnapshot, err)
	}
	if fields == nil {
		return snap, fmt.Errorf("%w: not a JSON object", errors.ErrCorruptSnapshot)
	}

	rawDate, ok := fields[constants.SnapshotDateField]
	if !ok {
		return snap, fmt.Errorf("%w: missing %q", errors.ErrCorruptSnapshot, constants.SnapshotDateField)
	}
	if err := json.Unmarshal(rawDate, &snap.Date); err != nil {
		return snap, fmt.Errorf("%w: %q is not a string", errors.ErrCorruptSnapshot, constants.SnapshotDateField)
	}
	if snap.Date == "" {
		return snap, fmt.Errorf("%w: empty %q", errors.ErrCorruptSnapshot, constants.SnapshotDateField)
	}

	delete(fields, constants.SnapshotDateField)
	rest, err := json.Marshal(fields)
	if err != nil {
		return snap, fmt.Errorf("%w: %v", errors.ErrCorruptSnapshot, err)
	}
	if err := json.Unmarshal(rest, &snap.Payload); err != nil {
		return snap, fmt.Errorf("%w: payload: %v", errors.ErrCorruptSnapshot, err)
	}
	return snap, nil
}

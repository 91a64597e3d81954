package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/timefmt"
)

// DecodeResult is the outcome of a tolerant batch decode: the records
// that parsed plus a count of elements that were skipped. Partial
// success is success, not an error.
type DecodeResult struct {
	Sessions []Session
	Skipped  int
}

// sessionJSON is the canonical object shape. Pointers distinguish
// absent optional fields from explicit zero values on decode; the
// encoder reuses it with every field set.
type sessionJSON struct {
	ID           int64    `json:"id"`
	Timestamp    string   `json:"timestamp"`
	Duration     *int     `json:"duration,omitempty"`
	Remark       *string  `json:"remark,omitempty"`
	Location     *string  `json:"location,omitempty"`
	WatchedMovie *bool    `json:"watchedMovie,omitempty"`
	Climax       *bool    `json:"climax,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Mood         *string  `json:"mood,omitempty"`
	Props        *string  `json:"props,omitempty"`
}

// Decode parses a session document in any of the three historical
// encodings: the current object array (with or without ids), or the
// legacy nested positional array. Elements that fail to parse are
// skipped so one corrupt record cannot abort the batch. Imported ids
// are always discarded.
func Decode(data []byte) (DecodeResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return DecodeResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidFormat, err)
	}

	result := DecodeResult{}
	for _, raw := range elements {
		session, err := decodeElement(raw)
		if err != nil {
			result.Skipped++
			continue
		}
		result.Sessions = append(result.Sessions, session)
	}
	if len(result.Sessions) == 0 {
		return DecodeResult{}, apperrors.ErrNoValidData
	}
	return result, nil
}

// Encode emits the canonical object-array format, indented. Legacy
// shapes are read-only; the encoder never reproduces them.
func Encode(sessions []Session) ([]byte, error) {
	out := make([]sessionJSON, 0, len(sessions))
	for i := range sessions {
		s := sessions[i].Normalized()
		out = append(out, sessionJSON{
			ID:           s.ID,
			Timestamp:    s.Timestamp.Format(timefmt.Layout),
			Duration:     &s.Duration,
			Remark:       &s.Remark,
			Location:     &s.Location,
			WatchedMovie: &s.WatchedMovie,
			Climax:       &s.Climax,
			Rating:       &s.Rating,
			Mood:         &s.Mood,
			Props:        &s.Props,
		})
	}
	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sessions: %w", err)
	}
	return payload, nil
}

func decodeElement(raw json.RawMessage) (Session, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Session{}, fmt.Errorf("empty element")
	}
	if trimmed[0] == '[' {
		return decodePositional(trimmed)
	}
	return decodeObject(trimmed)
}

func decodeObject(raw []byte) (Session, error) {
	var obj sessionJSON
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Session{}, err
	}
	ts, err := parseTimestamp(obj.Timestamp)
	if err != nil {
		return Session{}, err
	}
	session := Session{
		Timestamp: ts,
		Rating:    DefaultRating,
		Mood:      DefaultMood,
		Props:     DefaultProps,
	}
	if obj.Duration != nil {
		session.Duration = *obj.Duration
	}
	if obj.Remark != nil {
		session.Remark = *obj.Remark
	}
	if obj.Location != nil {
		session.Location = *obj.Location
	}
	if obj.WatchedMovie != nil {
		session.WatchedMovie = *obj.WatchedMovie
	}
	if obj.Climax != nil {
		session.Climax = *obj.Climax
	}
	if obj.Rating != nil {
		session.Rating = *obj.Rating
	}
	if obj.Mood != nil {
		session.Mood = *obj.Mood
	}
	if obj.Props != nil {
		session.Props = *obj.Props
	}
	return session.Normalized(), nil
}

// decodePositional handles the v1 nested-array shape:
// [timestamp, duration, remark, location, watchedMovie, climax, rating,
// mood, props]. Any suffix may be truncated; nulls fall back to the
// field default.
func decodePositional(raw []byte) (Session, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Session{}, err
	}
	if len(fields) == 0 {
		return Session{}, fmt.Errorf("empty record")
	}

	var timeStr string
	if err := json.Unmarshal(fields[0], &timeStr); err != nil {
		return Session{}, err
	}
	ts, err := parseTimestamp(timeStr)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		Timestamp: ts,
		Rating:    DefaultRating,
		Mood:      DefaultMood,
		Props:     DefaultProps,
	}
	positionalInt(fields, 1, &session.Duration)
	positionalString(fields, 2, &session.Remark)
	positionalString(fields, 3, &session.Location)
	positionalBool(fields, 4, &session.WatchedMovie)
	positionalBool(fields, 5, &session.Climax)
	positionalFloat(fields, 6, &session.Rating)
	positionalString(fields, 7, &session.Mood)
	positionalString(fields, 8, &session.Props)
	return session.Normalized(), nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	if ts, err := time.ParseInLocation(timefmt.Layout, value, time.Local); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return ts, nil
}

func positionalRaw(fields []json.RawMessage, idx int) ([]byte, bool) {
	if idx >= len(fields) {
		return nil, false
	}
	raw := bytes.TrimSpace(fields[idx])
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

func positionalInt(fields []json.RawMessage, idx int, dst *int) {
	if raw, ok := positionalRaw(fields, idx); ok {
		var v int
		if json.Unmarshal(raw, &v) == nil {
			*dst = v
		}
	}
}

func positionalString(fields []json.RawMessage, idx int, dst *string) {
	if raw, ok := positionalRaw(fields, idx); ok {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			*dst = v
		}
	}
}

func positionalBool(fields []json.RawMessage, idx int, dst *bool) {
	if raw, ok := positionalRaw(fields, idx); ok {
		var v bool
		if json.Unmarshal(raw, &v) == nil {
			*dst = v
		}
	}
}

func positionalFloat(fields []json.RawMessage, idx int, dst *float64) {
	if raw, ok := positionalRaw(fields, idx); ok {
		var v float64
		if json.Unmarshal(raw, &v) == nil {
			*dst = v
		}
	}
}

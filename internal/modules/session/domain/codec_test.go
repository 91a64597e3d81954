package domain_test

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/session/domain"
	apperrors "tempo/internal/platform/errors"
)

func mustDecode(t *testing.T, payload string) domain.DecodeResult {
	t.Helper()
	result, err := domain.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return result
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{
			ID:           7,
			Timestamp:    time.Date(2024, 1, 15, 20, 30, 0, 0, time.Local),
			Duration:     925,
			Remark:       "测试",
			Location:     "家里",
			WatchedMovie: true,
			Climax:       true,
			Rating:       4.5,
			Mood:         "兴奋",
			Props:        "手",
		},
		{
			Timestamp: time.Date(2023, 12, 1, 8, 0, 0, 0, time.Local),
			Duration:  60,
			Rating:    2,
			Mood:      "平静",
			Props:     "手",
		},
	}
	payload, err := domain.Encode(sessions)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	result := mustDecode(t, string(payload))
	if result.Skipped != 0 {
		t.Fatalf("round trip must not skip, skipped %d", result.Skipped)
	}
	if len(result.Sessions) != len(sessions) {
		t.Fatalf("expected %d sessions, got %d", len(sessions), len(result.Sessions))
	}
	for i, got := range result.Sessions {
		want := sessions[i]
		want.ID = 0 // imports always come back unassigned
		if got != want {
			t.Fatalf("session %d: got %+v want %+v", i, got, want)
		}
	}
}

func TestDecodeObjectArrayDefaults(t *testing.T) {
	t.Parallel()
	payload := `[{"timestamp":"2024-01-15T20:30:00"}]`
	result := mustDecode(t, payload)
	s := result.Sessions[0]
	if s.Duration != 0 || s.Remark != "" || s.Location != "" || s.WatchedMovie || s.Climax {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Rating != domain.DefaultRating {
		t.Fatalf("rating default = %v, want %v", s.Rating, domain.DefaultRating)
	}
	if s.Mood != "平静" || s.Props != "手" {
		t.Fatalf("mood/props defaults wrong: %q %q", s.Mood, s.Props)
	}
}

func TestDecodeClampsOutOfRangeRating(t *testing.T) {
	t.Parallel()
	payload := `[
		{"timestamp":"2024-01-15T20:30:00","rating":9.5},
		{"timestamp":"2024-01-16T20:30:00","rating":-1},
		{"timestamp":"2024-01-17T20:30:00","rating":4.5}
	]`
	result := mustDecode(t, payload)
	if got := result.Sessions[0].Rating; got != 5 {
		t.Fatalf("rating 9.5 must clamp to 5, got %v", got)
	}
	if got := result.Sessions[1].Rating; got != 0 {
		t.Fatalf("rating -1 must clamp to 0, got %v", got)
	}
	if got := result.Sessions[2].Rating; got != 4.5 {
		t.Fatalf("in-range rating must be preserved, got %v", got)
	}
}

func TestDecodeLegacyTruncatedArray(t *testing.T) {
	t.Parallel()
	payload := `[["2024-01-15T20:30:00", 925]]`
	result := mustDecode(t, payload)
	s := result.Sessions[0]
	if !s.Timestamp.Equal(time.Date(2024, 1, 15, 20, 30, 0, 0, time.Local)) {
		t.Fatalf("unexpected timestamp: %v", s.Timestamp)
	}
	if s.Duration != 925 {
		t.Fatalf("duration = %d, want 925", s.Duration)
	}
	if s.Remark != "" || s.Location != "" || s.WatchedMovie || s.Climax {
		t.Fatalf("truncated fields must default: %+v", s)
	}
	if s.Rating != 3 || s.Mood != "平静" || s.Props != "手" {
		t.Fatalf("trailing defaults wrong: %+v", s)
	}
}

func TestDecodeLegacyFullArrayWithNulls(t *testing.T) {
	t.Parallel()
	payload := `[["2024-01-15T20:30:00", 600, null, "宿舍", true, false, null, null, "玩具"]]`
	result := mustDecode(t, payload)
	s := result.Sessions[0]
	if s.Remark != "" || s.Location != "宿舍" || !s.WatchedMovie || s.Climax {
		t.Fatalf("unexpected fields: %+v", s)
	}
	if s.Rating != 3 || s.Mood != "平静" || s.Props != "玩具" {
		t.Fatalf("null fallbacks wrong: %+v", s)
	}
}

func TestDecodeSkipsMalformedElements(t *testing.T) {
	t.Parallel()
	payload := `[
		{"timestamp":"2024-01-11T08:00:00","duration":60},
		{"timestamp":"not-a-date","duration":60},
		{"timestamp":"2024-01-13T08:00:00","duration":60},
		{"timestamp":"2024-01-14T08:00:00","duration":60},
		{"timestamp":"2024-01-15T08:00:00","duration":60}
	]`
	result := mustDecode(t, payload)
	if len(result.Sessions) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(result.Sessions))
	}
	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped, got %d", result.Skipped)
	}
}

func TestDecodeMixedShapesInOneDocument(t *testing.T) {
	t.Parallel()
	payload := `[
		{"id":3,"timestamp":"2024-01-15T20:30:00","duration":925,"rating":4.5},
		["2024-01-14T10:00:00", 300]
	]`
	result := mustDecode(t, payload)
	if len(result.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(result.Sessions))
	}
	if result.Sessions[0].ID != 0 {
		t.Fatalf("imported id must be reset, got %d", result.Sessions[0].ID)
	}
}

func TestDecodeTerminalErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{"bad json", `{not valid`, apperrors.ErrInvalidFormat},
		{"root is object", `{"timestamp":"2024-01-15T20:30:00"}`, apperrors.ErrInvalidFormat},
		{"empty array", `[]`, apperrors.ErrNoValidData},
		{"all malformed", `[{"duration":60},{"timestamp":"nope"}]`, apperrors.ErrNoValidData},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := domain.Decode([]byte(c.payload))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

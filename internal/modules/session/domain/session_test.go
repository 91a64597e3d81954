package domain_test

import (
	"testing"

	"tempo/internal/modules/session/domain"
)

func TestClampRating(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want float64 }{
		{-3, 0},
		{0, 0},
		{2.5, 2.5},
		{5, 5},
		{11, 5},
	}
	for _, c := range cases {
		if got := domain.ClampRating(c.in); got != c.want {
			t.Fatalf("ClampRating(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizedEnforcesInvariants(t *testing.T) {
	t.Parallel()
	s := domain.Session{Duration: -10, Rating: 7.2}.Normalized()
	if s.Duration != 0 {
		t.Fatalf("negative duration must floor to 0, got %d", s.Duration)
	}
	if s.Rating != 5 {
		t.Fatalf("rating must clamp to 5, got %v", s.Rating)
	}
}

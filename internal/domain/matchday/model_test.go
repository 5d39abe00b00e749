package matchday

import (
	"errors"
	"testing"

	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/shopspring/decimal"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{from: StatusOpen, to: StatusCalculated, want: true},
		{from: StatusCalculated, to: StatusOpen, want: true},
		{from: StatusOpen, to: StatusOpen, want: false},
		{from: StatusCalculated, to: StatusCalculated, want: false},
		{from: Status("archived"), to: StatusOpen, want: false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%s, %s) = %t, want %t", tt.from, tt.to, got, tt.want)
		}
	}

	if err := ValidateTransition(StatusCalculated, StatusCalculated); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestMergeVotes_KeepsPlayersNotInRequest(t *testing.T) {
	existing := map[string]scoring.PlayerMatchStats{
		"p1": {Vote: decimal.NewFromInt(6)},
		"p2": {Vote: decimal.NewFromInt(7), Goals: 1},
	}
	incoming := map[string]scoring.PlayerMatchStats{
		"p2": {Vote: decimal.NewFromInt(5)},
		"p3": {Vote: decimal.NewFromInt(8)},
	}

	merged := MergeVotes(existing, incoming)
	if len(merged) != 3 {
		t.Fatalf("unexpected merged size: %d", len(merged))
	}
	if !merged["p1"].Vote.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("expected p1 to be untouched")
	}
	if merged["p2"].Goals != 0 || !merged["p2"].Vote.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected p2 to be replaced, got %+v", merged["p2"])
	}

	merged["p1"] = scoring.PlayerMatchStats{}
	if existing["p1"].Vote.IsZero() {
		t.Fatalf("merge must not alias the existing map")
	}
}

func TestMatchdayValidate(t *testing.T) {
	valid := Matchday{ID: "md-1", Number: 1, Status: StatusOpen}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalidNumber := valid
	invalidNumber.Number = 0
	if err := invalidNumber.Validate(); err == nil {
		t.Fatalf("expected error for zero number")
	}

	invalidVotes := valid
	invalidVotes.Votes = map[string]scoring.PlayerMatchStats{"p1": {Vote: decimal.NewFromInt(12)}}
	if err := invalidVotes.Validate(); !errors.Is(err, scoring.ErrInvalidStats) {
		t.Fatalf("expected ErrInvalidStats, got %v", err)
	}
}

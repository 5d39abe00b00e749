package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		stats PlayerMatchStats
		want  string
	}{
		{
			name:  "vote with goal and assist",
			stats: PlayerMatchStats{Vote: decimal.NewFromInt(6), Goals: 1, Assists: 1},
			want:  "10",
		},
		{
			name:  "own goal and yellow card",
			stats: PlayerMatchStats{Vote: decimal.RequireFromString("5.5"), OwnGoals: 1, YellowCard: true},
			want:  "3",
		},
		{
			name:  "red card with extra points",
			stats: PlayerMatchStats{Vote: decimal.NewFromInt(5), RedCard: true, ExtraPoints: decimal.RequireFromString("1.5")},
			want:  "5.5",
		},
		{
			name:  "score can go negative",
			stats: PlayerMatchStats{Vote: decimal.NewFromInt(4), OwnGoals: 2, YellowCard: true, RedCard: true},
			want:  "-1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.stats)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("unexpected score: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestPoints_ZeroVoteContributesNothing(t *testing.T) {
	stats := PlayerMatchStats{Goals: 2, Assists: 1, ExtraPoints: decimal.NewFromInt(3)}
	if got := Points(stats); !got.IsZero() {
		t.Fatalf("expected zero points for missing vote, got %s", got)
	}
	if got := Score(stats); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected raw score to ignore the sentinel, got %s", got)
	}
}

func TestLineupTotal(t *testing.T) {
	votes := map[string]PlayerMatchStats{
		"gk":  {Vote: decimal.NewFromInt(6)},
		"o1":  {Vote: decimal.NewFromInt(6), Goals: 1, Assists: 1},
		"o2":  {Vote: decimal.RequireFromString("6.5"), YellowCard: true},
		"dnp": {Goals: 1},
	}

	got := LineupTotal([]string{"gk", "o1", "o2", "dnp", "absent"}, votes)
	if !got.Equal(decimal.NewFromInt(22)) {
		t.Fatalf("unexpected lineup total: got=%s want=22", got)
	}

	if got := LineupTotal(nil, votes); !got.IsZero() {
		t.Fatalf("expected zero for empty lineup, got %s", got)
	}
}

func TestPlayerMatchStatsValidate(t *testing.T) {
	tests := []struct {
		name    string
		stats   PlayerMatchStats
		wantErr bool
	}{
		{name: "valid", stats: PlayerMatchStats{Vote: decimal.NewFromInt(7), Goals: 2}},
		{name: "zero vote is allowed", stats: PlayerMatchStats{}},
		{name: "vote above ten", stats: PlayerMatchStats{Vote: decimal.NewFromInt(11)}, wantErr: true},
		{name: "negative vote", stats: PlayerMatchStats{Vote: decimal.NewFromInt(-1)}, wantErr: true},
		{name: "negative goals", stats: PlayerMatchStats{Vote: decimal.NewFromInt(6), Goals: -1}, wantErr: true},
		{name: "negative assists", stats: PlayerMatchStats{Vote: decimal.NewFromInt(6), Assists: -1}, wantErr: true},
		{name: "negative own goals", stats: PlayerMatchStats{Vote: decimal.NewFromInt(6), OwnGoals: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stats.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

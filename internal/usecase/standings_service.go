package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/shopspring/decimal"
)

type StandingRow struct {
	Rank        int
	TeamID      string
	TeamName    string
	ManagerName string
	LogoURL     string
	TotalPoints decimal.Decimal
}

type TeamHistoryRow struct {
	MatchdayNumber int
	PlayerIDs      []string
	PointsEarned   decimal.Decimal
	Settled        bool
}

type StandingsService struct {
	teamRepo   fantasy.Repository
	ledgerRepo ledger.Repository
	logger     *logging.Logger
}

func NewStandingsService(teamRepo fantasy.Repository, ledgerRepo ledger.Repository, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		teamRepo:   teamRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// List ranks every team by total points. Teams level on points share a rank
// and are listed by name.
func (s *StandingsService) List(ctx context.Context) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if !teams[i].TotalPoints.Equal(teams[j].TotalPoints) {
			return teams[i].TotalPoints.GreaterThan(teams[j].TotalPoints)
		}
		return strings.ToLower(teams[i].TeamName) < strings.ToLower(teams[j].TeamName)
	})

	out := make([]StandingRow, 0, len(teams))
	for i, team := range teams {
		rank := i + 1
		if i > 0 && team.TotalPoints.Equal(teams[i-1].TotalPoints) {
			rank = out[i-1].Rank
		}
		out = append(out, StandingRow{
			Rank:        rank,
			TeamID:      team.ID,
			TeamName:    team.TeamName,
			ManagerName: team.ManagerName,
			LogoURL:     team.LogoURL,
			TotalPoints: team.TotalPoints,
		})
	}

	return out, nil
}

// TeamHistory is the per-matchday breakdown of one team, oldest matchday first.
func (s *StandingsService) TeamHistory(ctx context.Context, teamID string) ([]TeamHistoryRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.TeamHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := loadTeam(ctx, s.teamRepo, teamID); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "list ledger entries by team")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MatchdayNumber < entries[j].MatchdayNumber
	})

	out := make([]TeamHistoryRow, 0, len(entries))
	for _, entry := range entries {
		out = append(out, TeamHistoryRow{
			MatchdayNumber: entry.MatchdayNumber,
			PlayerIDs:      entry.PlayerIDs,
			PointsEarned:   entry.PointsEarned,
			Settled:        entry.IsSettled(),
		})
	}
	return out, nil
}

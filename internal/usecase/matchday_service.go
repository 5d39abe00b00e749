package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/shopspring/decimal"
)

type RecordVotesInput struct {
	MatchdayID string
	Votes      map[string]scoring.PlayerMatchStats
	// Replace drops every stored vote not present in Votes.
	Replace bool
}

type PlayerScore struct {
	PlayerID string
	Stats    scoring.PlayerMatchStats
	Points   decimal.Decimal
}

type MatchdayService struct {
	matchdayRepo matchday.Repository
	ledgerRepo   ledger.Repository
	settlement   *SettlementService
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewMatchdayService(
	matchdayRepo matchday.Repository,
	ledgerRepo ledger.Repository,
	settlement *SettlementService,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchdayService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchdayService{
		matchdayRepo: matchdayRepo,
		ledgerRepo:   ledgerRepo,
		settlement:   settlement,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *MatchdayService) Create(ctx context.Context, number int) (matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Create")
	defer span.End()

	if number <= 0 {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday number must be greater than zero", ErrInvalidInput)
	}

	_, exists, err := s.matchdayRepo.GetByNumber(ctx, number)
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "get matchday by number")
	}
	if exists {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday %d already exists", ErrInvalidState, number)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "generate matchday id")
	}
	now := s.now().UTC()
	item := matchday.Matchday{
		ID:        id,
		Number:    number,
		Status:    matchday.StatusOpen,
		Votes:     map[string]scoring.PlayerMatchStats{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return matchday.Matchday{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchdayRepo.Create(ctx, item); err != nil {
		if errors.Is(err, matchday.ErrDuplicateNumber) {
			return matchday.Matchday{}, errors.Mark(errors.Wrapf(err, "number=%d", number), ErrInvalidState)
		}
		return matchday.Matchday{}, errors.Wrap(err, "create matchday")
	}

	s.logger.InfoContext(ctx, "matchday created", "matchday_id", item.ID, "matchday", item.Number)
	return item, nil
}

// List returns matchdays newest first.
func (s *MatchdayService) List(ctx context.Context) ([]matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.List")
	defer span.End()

	items, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list matchdays")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Number > items[j].Number
	})
	return items, nil
}

func (s *MatchdayService) Get(ctx context.Context, matchdayID string) (matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Get")
	defer span.End()

	matchdayID = strings.TrimSpace(matchdayID)
	if matchdayID == "" {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}

	return loadMatchday(ctx, s.matchdayRepo, matchdayID)
}

// RecordVotes stores player stats on an open matchday. By default only the
// players present in the input are overwritten.
func (s *MatchdayService) RecordVotes(ctx context.Context, input RecordVotesInput) (matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.RecordVotes")
	defer span.End()

	input.MatchdayID = strings.TrimSpace(input.MatchdayID)
	if input.MatchdayID == "" {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}

	votes := make(map[string]scoring.PlayerMatchStats, len(input.Votes))
	for playerID, stats := range input.Votes {
		playerID = strings.TrimSpace(playerID)
		if playerID == "" {
			return matchday.Matchday{}, fmt.Errorf("%w: vote player id is required", ErrInvalidInput)
		}
		if err := stats.Validate(); err != nil {
			return matchday.Matchday{}, fmt.Errorf("%w: player %s: %v", ErrInvalidInput, playerID, err)
		}
		votes[playerID] = stats
	}

	md, err := loadMatchday(ctx, s.matchdayRepo, input.MatchdayID)
	if err != nil {
		return matchday.Matchday{}, err
	}
	if !md.IsOpen() {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday %d is %s", ErrInvalidState, md.Number, md.Status)
	}
	// After a partial settlement the remaining teams must be scored on the
	// same votes as the ones already posted.
	entries, err := s.ledgerRepo.ListByMatchday(ctx, md.Number)
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "list ledger entries")
	}
	for _, entry := range entries {
		if entry.IsSettled() {
			return matchday.Matchday{}, fmt.Errorf("%w: matchday %d is partially settled; retry settle or delete it", ErrInvalidState, md.Number)
		}
	}

	write := s.matchdayRepo.MergeVotes
	if input.Replace {
		write = s.matchdayRepo.ReplaceVotes
	}
	written, err := write(ctx, md.ID, votes)
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "write votes")
	}
	if !written {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday %d is no longer open", ErrInvalidState, md.Number)
	}

	s.logger.InfoContext(ctx, "matchday votes recorded",
		"matchday_id", md.ID,
		"matchday", md.Number,
		"players", len(votes),
		"replace", input.Replace,
	)
	return loadMatchday(ctx, s.matchdayRepo, md.ID)
}

func (s *MatchdayService) Settle(ctx context.Context, matchdayID string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Settle")
	defer span.End()

	return s.settlement.Settle(ctx, matchdayID)
}

// Reopen takes back the points of a calculated matchday and opens it for edits.
func (s *MatchdayService) Reopen(ctx context.Context, matchdayID string) (matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Reopen")
	defer span.End()

	matchdayID = strings.TrimSpace(matchdayID)
	if matchdayID == "" {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}
	md, err := loadMatchday(ctx, s.matchdayRepo, matchdayID)
	if err != nil {
		return matchday.Matchday{}, err
	}
	if err := matchday.ValidateTransition(md.Status, matchday.StatusOpen); err != nil {
		return matchday.Matchday{}, errors.Mark(err, ErrInvalidState)
	}

	if _, err := s.settlement.Reverse(ctx, md.Number); err != nil {
		return matchday.Matchday{}, err
	}
	flipped, err := s.matchdayRepo.TransitionStatus(ctx, md.ID, matchday.StatusCalculated, matchday.StatusOpen)
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "reopen matchday")
	}
	if !flipped {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday %d changed status during reopen", ErrInvalidState, md.Number)
	}

	s.logger.InfoContext(ctx, "matchday reopened", "matchday_id", md.ID, "matchday", md.Number)
	return loadMatchday(ctx, s.matchdayRepo, md.ID)
}

// Delete reverses any posted points, drops the matchday's ledger rows and then the matchday.
func (s *MatchdayService) Delete(ctx context.Context, matchdayID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Delete")
	defer span.End()

	matchdayID = strings.TrimSpace(matchdayID)
	if matchdayID == "" {
		return fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}
	md, err := loadMatchday(ctx, s.matchdayRepo, matchdayID)
	if err != nil {
		return err
	}

	// Partial settlements leave settled rows on open matchdays too.
	reversal, err := s.settlement.Reverse(ctx, md.Number)
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.DeleteByMatchday(ctx, md.Number); err != nil {
		return errors.Wrap(err, "delete ledger entries")
	}
	if err := s.matchdayRepo.Delete(ctx, md.ID); err != nil {
		return errors.Wrap(err, "delete matchday")
	}

	s.logger.InfoContext(ctx, "matchday deleted",
		"matchday_id", md.ID,
		"matchday", md.Number,
		"reverted_teams", reversal.RevertedCount,
	)
	return nil
}

// PlayerScores lists the points of every player with recorded stats, best first.
func (s *MatchdayService) PlayerScores(ctx context.Context, matchdayID string) ([]PlayerScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.PlayerScores")
	defer span.End()

	matchdayID = strings.TrimSpace(matchdayID)
	if matchdayID == "" {
		return nil, fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}
	md, err := loadMatchday(ctx, s.matchdayRepo, matchdayID)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerScore, 0, len(md.Votes))
	for playerID, stats := range md.Votes {
		if !stats.Played() {
			continue
		}
		out = append(out, PlayerScore{
			PlayerID: playerID,
			Stats:    stats,
			Points:   scoring.Points(stats),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Points.Equal(out[j].Points) {
			return out[i].Points.GreaterThan(out[j].Points)
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func loadMatchday(ctx context.Context, repo matchday.Repository, matchdayID string) (matchday.Matchday, error) {
	md, exists, err := repo.GetByID(ctx, matchdayID)
	if err != nil {
		return matchday.Matchday{}, errors.Wrap(err, "get matchday by id")
	}
	if !exists {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday=%s", ErrNotFound, matchdayID)
	}

	return md, nil
}

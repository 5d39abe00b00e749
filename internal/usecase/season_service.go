package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

type SeasonService struct {
	teamRepo     fantasy.Repository
	ledgerRepo   ledger.Repository
	matchdayRepo matchday.Repository
	settingsRepo settings.Repository
	rules        fantasy.Rules
	logger       *logging.Logger
}

func NewSeasonService(
	teamRepo fantasy.Repository,
	ledgerRepo ledger.Repository,
	matchdayRepo matchday.Repository,
	settingsRepo settings.Repository,
	rules fantasy.Rules,
	logger *logging.Logger,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonService{
		teamRepo:     teamRepo,
		ledgerRepo:   ledgerRepo,
		matchdayRepo: matchdayRepo,
		settingsRepo: settingsRepo,
		rules:        rules,
		logger:       logger,
	}
}

// ResetAllStandings starts a new season. Teams keep their identity but lose
// points and players; matchdays stay but are open again with no votes.
// Each step is idempotent, so a failed reset can simply be run again.
func (s *SeasonService) ResetAllStandings(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ResetAllStandings")
	defer span.End()

	if err := s.ledgerRepo.DeleteAll(ctx); err != nil {
		return errors.Wrap(err, "clear ledger")
	}
	if err := s.teamRepo.ResetAll(ctx, s.rules.InitialBudget); err != nil {
		return errors.Wrap(err, "reset teams")
	}
	if err := s.matchdayRepo.ReopenAll(ctx); err != nil {
		return errors.Wrap(err, "reopen matchdays")
	}
	if err := s.settingsRepo.ResetMatchday(ctx); err != nil {
		return errors.Wrap(err, "reset current matchday")
	}

	s.logger.InfoContext(ctx, "season standings reset", "initial_budget", s.rules.InitialBudget)
	return nil
}

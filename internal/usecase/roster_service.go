package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/shopspring/decimal"
)

var errRosterConflict = errors.New("roster changed concurrently")

// RosterService runs transfer market and lineup operations of a single team.
// Every write is a compare-and-set on the team's roster version.
type RosterService struct {
	teamRepo     fantasy.Repository
	playerRepo   player.Repository
	settingsRepo settings.Repository
	matchdayRepo matchday.Repository
	ledgerRepo   ledger.Repository
	rules        fantasy.Rules
	logger       *logging.Logger
	now          func() time.Time
}

func NewRosterService(
	teamRepo fantasy.Repository,
	playerRepo player.Repository,
	settingsRepo settings.Repository,
	matchdayRepo matchday.Repository,
	ledgerRepo ledger.Repository,
	rules fantasy.Rules,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		settingsRepo: settingsRepo,
		matchdayRepo: matchdayRepo,
		ledgerRepo:   ledgerRepo,
		rules:        rules,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *RosterService) Buy(ctx context.Context, teamID, playerID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Buy")
	defer span.End()

	team, item, err := s.loadTeamAndPlayer(ctx, teamID, playerID)
	if err != nil {
		return fantasy.Team{}, err
	}
	if err := s.requireMarketOpen(ctx); err != nil {
		return fantasy.Team{}, err
	}

	roster, err := fantasy.Buy(team.Roster, item, s.rules)
	if err != nil {
		return fantasy.Team{}, rosterRuleError(err)
	}
	team, err = s.saveRoster(ctx, team, roster)
	if err != nil {
		return fantasy.Team{}, err
	}

	s.logger.InfoContext(ctx, "player bought",
		"team_id", team.ID,
		"player_id", item.ID,
		"price", item.Price,
		"credits_left", team.Roster.CreditsLeft,
	)
	return team, nil
}

// Sell refunds the player's current price.
func (s *RosterService) Sell(ctx context.Context, teamID, playerID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Sell")
	defer span.End()

	team, item, err := s.loadTeamAndPlayer(ctx, teamID, playerID)
	if err != nil {
		return fantasy.Team{}, err
	}
	if err := s.requireMarketOpen(ctx); err != nil {
		return fantasy.Team{}, err
	}

	roster, err := fantasy.Sell(team.Roster, item)
	if err != nil {
		return fantasy.Team{}, rosterRuleError(err)
	}
	team, err = s.saveRoster(ctx, team, roster)
	if err != nil {
		return fantasy.Team{}, err
	}

	s.logger.InfoContext(ctx, "player sold",
		"team_id", team.ID,
		"player_id", item.ID,
		"price", item.Price,
		"credits_left", team.Roster.CreditsLeft,
	)
	return team, nil
}

func (s *RosterService) SetStarter(ctx context.Context, teamID, playerID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SetStarter")
	defer span.End()

	team, item, err := s.loadTeamAndPlayer(ctx, teamID, playerID)
	if err != nil {
		return fantasy.Team{}, err
	}
	if err := s.requireLineupUnlocked(ctx); err != nil {
		return fantasy.Team{}, err
	}
	if team.Roster.IsLineupConfirmed {
		return fantasy.Team{}, fmt.Errorf("%w: lineup of team %s is already confirmed", ErrInvalidState, team.ID)
	}

	starters, err := s.playerRepo.GetByIDs(ctx, team.Roster.LineupIDs)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "get starters")
	}
	roster, err := fantasy.AddStarter(team.Roster, item, starters, s.rules)
	if err != nil {
		return fantasy.Team{}, rosterRuleError(err)
	}

	return s.saveRoster(ctx, team, roster)
}

func (s *RosterService) SetBench(ctx context.Context, teamID, playerID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SetBench")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}
	team, err := loadTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return fantasy.Team{}, err
	}
	if err := s.requireLineupUnlocked(ctx); err != nil {
		return fantasy.Team{}, err
	}

	roster, err := fantasy.RemoveStarter(team.Roster, playerID)
	if err != nil {
		return fantasy.Team{}, rosterRuleError(err)
	}

	return s.saveRoster(ctx, team, roster)
}

// ConfirmLineup freezes the current lineup as the team's snapshot for the
// current matchday. Settlement scores that snapshot.
func (s *RosterService) ConfirmLineup(ctx context.Context, teamID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ConfirmLineup")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	team, err := loadTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return fantasy.Team{}, err
	}

	cfg, err := loadSettings(ctx, s.settingsRepo)
	if err != nil {
		return fantasy.Team{}, err
	}
	if cfg.IsLineupLocked {
		return fantasy.Team{}, fmt.Errorf("%w: lineups are locked", ErrInvalidState)
	}

	starters, err := s.playerRepo.GetByIDs(ctx, team.Roster.LineupIDs)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "get starters")
	}
	if err := fantasy.ValidateLineup(starters, s.rules); err != nil {
		return fantasy.Team{}, err
	}

	number := cfg.CurrentMatchday
	md, exists, err := s.matchdayRepo.GetByNumber(ctx, number)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "get matchday by number")
	}
	if exists && !md.IsOpen() {
		return fantasy.Team{}, fmt.Errorf("%w: matchday %d is already calculated", ErrInvalidState, number)
	}
	existing, exists, err := s.ledgerRepo.Get(ctx, team.ID, number)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "get ledger entry")
	}
	if exists && existing.IsSettled() {
		return fantasy.Team{}, fmt.Errorf("%w: matchday %d is already settled for team %s", ErrInvalidState, number, team.ID)
	}

	previous := team
	roster := team.Roster.Clone()
	roster.IsLineupConfirmed = true
	team, err = s.saveRoster(ctx, team, roster)
	if err != nil {
		return fantasy.Team{}, err
	}

	now := s.now().UTC()
	entry := ledger.Entry{
		TeamID:         team.ID,
		MatchdayNumber: number,
		PlayerIDs:      append([]string(nil), team.Roster.LineupIDs...),
		PointsEarned:   decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	written, err := s.ledgerRepo.UpsertSnapshot(ctx, entry)
	switch {
	case err != nil:
		s.undoConfirm(ctx, team, previous.Roster)
		return fantasy.Team{}, errors.Wrap(err, "upsert ledger snapshot")
	case !written:
		s.undoConfirm(ctx, team, previous.Roster)
		return fantasy.Team{}, fmt.Errorf("%w: matchday %d was settled while confirming", ErrInvalidState, number)
	}

	s.logger.InfoContext(ctx, "lineup confirmed",
		"team_id", team.ID,
		"matchday", number,
		"lineup", strings.Join(entry.PlayerIDs, ","),
	)
	return team, nil
}

func (s *RosterService) loadTeamAndPlayer(ctx context.Context, teamID, playerID string) (fantasy.Team, player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return fantasy.Team{}, player.Player{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}

	team, err := loadTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return fantasy.Team{}, player.Player{}, err
	}
	item, err := loadPlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return fantasy.Team{}, player.Player{}, err
	}

	return team, item, nil
}

func (s *RosterService) requireMarketOpen(ctx context.Context) error {
	cfg, err := loadSettings(ctx, s.settingsRepo)
	if err != nil {
		return err
	}
	if !cfg.IsMarketOpen {
		return fmt.Errorf("%w: transfer market is closed", ErrInvalidState)
	}
	return nil
}

func (s *RosterService) requireLineupUnlocked(ctx context.Context) error {
	cfg, err := loadSettings(ctx, s.settingsRepo)
	if err != nil {
		return err
	}
	if cfg.IsLineupLocked {
		return fmt.Errorf("%w: lineups are locked", ErrInvalidState)
	}
	return nil
}

// undoConfirm puts back the roster a failed confirmation replaced. A newer
// roster write wins over the undo.
func (s *RosterService) undoConfirm(ctx context.Context, confirmed fantasy.Team, previous fantasy.Roster) {
	restored, err := s.teamRepo.UpdateRoster(ctx, confirmed.ID, confirmed.RosterVersion, previous)
	if err != nil || !restored {
		s.logger.WarnContext(ctx, "undo lineup confirmation failed",
			"team_id", confirmed.ID,
			"restored", restored,
			"error", err,
		)
	}
}

// dropSnapshot removes the unsettled snapshot of the current matchday so a
// lineup that is no longer confirmed cannot be scored.
func (s *RosterService) dropSnapshot(ctx context.Context, teamID string) error {
	cfg, err := loadSettings(ctx, s.settingsRepo)
	if err != nil {
		return err
	}
	dropped, err := s.ledgerRepo.DeleteSnapshot(ctx, teamID, cfg.CurrentMatchday)
	if err != nil {
		return errors.Wrap(err, "delete ledger snapshot")
	}
	if dropped {
		s.logger.InfoContext(ctx, "lineup confirmation withdrawn",
			"team_id", teamID,
			"matchday", cfg.CurrentMatchday,
		)
	}
	return nil
}

// saveRoster writes roster with a compare-and-set on the team's version. A
// write that withdraws a confirmation drops the current snapshot before the
// roster changes.
func (s *RosterService) saveRoster(ctx context.Context, team fantasy.Team, roster fantasy.Roster) (fantasy.Team, error) {
	if team.Roster.IsLineupConfirmed && !roster.IsLineupConfirmed {
		if err := s.dropSnapshot(ctx, team.ID); err != nil {
			return fantasy.Team{}, err
		}
	}

	updated, err := s.teamRepo.UpdateRoster(ctx, team.ID, team.RosterVersion, roster)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "update roster")
	}
	if !updated {
		return fantasy.Team{}, errors.Mark(errors.Wrapf(errRosterConflict, "team=%s", team.ID), ErrInvalidState)
	}

	team.Roster = roster
	team.RosterVersion++
	team.UpdatedAt = s.now().UTC()
	return team, nil
}

// rosterRuleError maps ownership and membership errors to bad input; budget,
// squad size and lineup shape errors pass through for the caller to report.
func rosterRuleError(err error) error {
	switch {
	case errors.Is(err, fantasy.ErrPlayerAlreadyOwned),
		errors.Is(err, fantasy.ErrPlayerNotOwned),
		errors.Is(err, fantasy.ErrAlreadyStarting),
		errors.Is(err, fantasy.ErrNotStarting),
		errors.Is(err, fantasy.ErrUnknownPlayerRole):
		return errors.Mark(err, ErrInvalidInput)
	default:
		return err
	}
}

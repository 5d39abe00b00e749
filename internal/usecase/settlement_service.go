package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"
)

const defaultSettlementWorkers = 4

const (
	TeamSettlementApplied        = "applied"
	TeamSettlementAlreadySettled = "already_settled"
	TeamSettlementNoLineup       = "no_lineup"
	TeamSettlementFailed         = "failed"
)

type SettlementConfig struct {
	Workers int
	// ScoreUnconfirmed scores the live lineup of teams that never confirmed one.
	ScoreUnconfirmed bool
}

func DefaultSettlementConfig() SettlementConfig {
	return SettlementConfig{
		Workers:          defaultSettlementWorkers,
		ScoreUnconfirmed: true,
	}
}

type TeamSettlement struct {
	TeamID    string
	PlayerIDs []string
	Points    decimal.Decimal
	Status    string
	Message   string
}

type SettlementResult struct {
	MatchdayID     string
	MatchdayNumber int
	AppliedCount   int
	SkippedCount   int
	FailedCount    int
	Teams          []TeamSettlement
}

type ReversalResult struct {
	MatchdayNumber int
	RevertedCount  int
	PointsReverted decimal.Decimal
}

// SettlementService posts matchday points into team standings and takes them back.
// Each ledger row is applied at most once; a failed pass can be repeated safely.
type SettlementService struct {
	matchdayRepo matchday.Repository
	teamRepo     fantasy.Repository
	ledgerRepo   ledger.Repository
	settingsRepo settings.Repository
	cfg          SettlementConfig
	inflight     singleflight.Group
	logger       *logging.Logger
	now          func() time.Time
}

func NewSettlementService(
	matchdayRepo matchday.Repository,
	teamRepo fantasy.Repository,
	ledgerRepo ledger.Repository,
	settingsRepo settings.Repository,
	cfg SettlementConfig,
	logger *logging.Logger,
) *SettlementService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultSettlementWorkers
	}

	return &SettlementService{
		matchdayRepo: matchdayRepo,
		teamRepo:     teamRepo,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// Settle scores every team for an open matchday, posts the points and marks the
// matchday calculated. Concurrent calls for the same matchday share one run.
func (s *SettlementService) Settle(ctx context.Context, matchdayID string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.Settle")
	defer span.End()

	matchdayID = strings.TrimSpace(matchdayID)
	if matchdayID == "" {
		return SettlementResult{}, fmt.Errorf("%w: matchday id is required", ErrInvalidInput)
	}

	// The run is shared by every joined caller, so it must outlive any one request.
	runCtx := context.WithoutCancel(ctx)
	out, err, shared := s.inflight.Do(matchdayID, func() (any, error) {
		return s.settle(runCtx, matchdayID)
	})
	if shared {
		s.logger.DebugContext(ctx, "settlement joined in-flight run", "matchday_id", matchdayID)
	}
	result, _ := out.(SettlementResult)
	return result, err
}

type settlementJob struct {
	team      fantasy.Team
	playerIDs []string
	needsStub bool
}

func (s *SettlementService) settle(ctx context.Context, matchdayID string) (SettlementResult, error) {
	md, err := loadMatchday(ctx, s.matchdayRepo, matchdayID)
	if err != nil {
		return SettlementResult{}, err
	}
	if !md.IsOpen() {
		return SettlementResult{}, fmt.Errorf("%w: matchday %d is %s", ErrInvalidState, md.Number, md.Status)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return SettlementResult{}, errors.Wrap(err, "list teams")
	}
	entries, err := s.ledgerRepo.ListByMatchday(ctx, md.Number)
	if err != nil {
		return SettlementResult{}, errors.Wrap(err, "list ledger entries")
	}
	byTeam := make(map[string]ledger.Entry, len(entries))
	for _, entry := range entries {
		byTeam[entry.TeamID] = entry
	}

	result := SettlementResult{
		MatchdayID:     md.ID,
		MatchdayNumber: md.Number,
		Teams:          make([]TeamSettlement, 0, len(teams)),
	}
	jobs := make([]settlementJob, 0, len(teams))
	alreadySettled := 0
	for _, team := range teams {
		entry, exists := byTeam[team.ID]
		switch {
		case exists && entry.IsSettled():
			alreadySettled++
			result.Teams = append(result.Teams, TeamSettlement{
				TeamID:    team.ID,
				PlayerIDs: entry.PlayerIDs,
				Points:    entry.PointsEarned,
				Status:    TeamSettlementAlreadySettled,
			})
		case exists:
			jobs = append(jobs, settlementJob{team: team, playerIDs: entry.PlayerIDs})
		case s.cfg.ScoreUnconfirmed && len(team.Roster.LineupIDs) > 0:
			jobs = append(jobs, settlementJob{
				team:      team,
				playerIDs: append([]string(nil), team.Roster.LineupIDs...),
				needsStub: true,
			})
		default:
			result.Teams = append(result.Teams, TeamSettlement{
				TeamID: team.ID,
				Points: decimal.Zero,
				Status: TeamSettlementNoLineup,
			})
		}
	}
	if len(jobs) == 0 && alreadySettled == 0 {
		return SettlementResult{}, fmt.Errorf("%w: no lineups delivered for matchday %d", ErrInvalidState, md.Number)
	}

	rows, err := s.applyAll(ctx, md, jobs)
	if err != nil {
		return SettlementResult{}, err
	}
	result.Teams = append(result.Teams, rows...)
	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})

	var (
		failedIDs []string
		firstErr  error
	)
	for _, row := range result.Teams {
		switch row.Status {
		case TeamSettlementApplied:
			result.AppliedCount++
		case TeamSettlementFailed:
			result.FailedCount++
			failedIDs = append(failedIDs, row.TeamID)
			if firstErr == nil {
				firstErr = errors.Newf("team %s: %s", row.TeamID, row.Message)
			}
		default:
			result.SkippedCount++
		}
	}
	if len(failedIDs) > 0 {
		s.logger.WarnContext(ctx, "matchday settlement incomplete",
			"matchday_id", md.ID,
			"matchday", md.Number,
			"applied", result.AppliedCount,
			"failed", result.FailedCount,
		)
		return result, &PartialSettlementError{
			MatchdayNumber: md.Number,
			FailedTeamIDs:  failedIDs,
			Cause:          firstErr,
		}
	}

	flipped, err := s.matchdayRepo.TransitionStatus(ctx, md.ID, matchday.StatusOpen, matchday.StatusCalculated)
	if err != nil {
		return result, errors.Wrap(err, "mark matchday calculated")
	}
	if !flipped {
		return result, fmt.Errorf("%w: matchday %d changed status during settlement", ErrInvalidState, md.Number)
	}
	if err := s.settingsRepo.AdvanceMatchday(ctx, md.Number+1); err != nil {
		return result, errors.Wrap(err, "advance current matchday")
	}

	s.logger.InfoContext(ctx, "matchday settled",
		"matchday_id", md.ID,
		"matchday", md.Number,
		"applied", result.AppliedCount,
		"skipped", result.SkippedCount,
	)
	return result, nil
}

func (s *SettlementService) applyAll(ctx context.Context, md matchday.Matchday, jobs []settlementJob) ([]TeamSettlement, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := min(s.cfg.Workers, len(jobs))
	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	settledAt := s.now().UTC()
	rows := make([]TeamSettlement, len(jobs))
	var applied atomic.Int32

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			rows[i] = s.applyTeam(ctx, md, job, settledAt)
			if rows[i].Status == TeamSettlementApplied {
				applied.Add(1)
			}
		}); err != nil {
			wg.Done()
			rows[i] = TeamSettlement{
				TeamID:  job.team.ID,
				Points:  decimal.Zero,
				Status:  TeamSettlementFailed,
				Message: fmt.Sprintf("submit task to worker pool: %v", err),
			}
		}
	}
	wg.Wait()

	s.logger.DebugContext(ctx, "settlement pool drained",
		"matchday", md.Number,
		"jobs", len(jobs),
		"applied", applied.Load(),
		"workers", workers,
	)
	return rows, nil
}

func (s *SettlementService) applyTeam(ctx context.Context, md matchday.Matchday, job settlementJob, settledAt time.Time) TeamSettlement {
	row := TeamSettlement{
		TeamID:    job.team.ID,
		PlayerIDs: job.playerIDs,
		Points:    scoring.LineupTotal(job.playerIDs, md.Votes),
	}

	if job.needsStub {
		written, err := s.ledgerRepo.UpsertSnapshot(ctx, ledger.Entry{
			TeamID:         job.team.ID,
			MatchdayNumber: md.Number,
			PlayerIDs:      job.playerIDs,
			PointsEarned:   decimal.Zero,
			CreatedAt:      settledAt,
			UpdatedAt:      settledAt,
		})
		if err != nil {
			row.Status = TeamSettlementFailed
			row.Message = errors.Wrap(err, "capture live lineup").Error()
			return row
		}
		if !written {
			row.Status = TeamSettlementAlreadySettled
			return row
		}
	}

	applied, err := s.ledgerRepo.ApplySettlement(ctx, job.team.ID, md.Number, row.Points, settledAt)
	if err != nil {
		s.logger.WarnContext(ctx, "team settlement failed",
			"team_id", job.team.ID,
			"matchday", md.Number,
			"error", err,
		)
		row.Status = TeamSettlementFailed
		row.Message = err.Error()
		return row
	}
	if !applied {
		row.Status = TeamSettlementAlreadySettled
		return row
	}

	row.Status = TeamSettlementApplied
	return row
}

// Reverse takes back every settled ledger row of a matchday. Rows return to
// unsettled snapshots so the same lineups are scored again on the next Settle.
func (s *SettlementService) Reverse(ctx context.Context, matchdayNumber int) (ReversalResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.Reverse")
	defer span.End()

	if matchdayNumber <= 0 {
		return ReversalResult{}, fmt.Errorf("%w: matchday number must be greater than zero", ErrInvalidInput)
	}

	entries, err := s.ledgerRepo.ListByMatchday(ctx, matchdayNumber)
	if err != nil {
		return ReversalResult{}, errors.Wrap(err, "list ledger entries")
	}

	var (
		mu     sync.Mutex
		result = ReversalResult{MatchdayNumber: matchdayNumber, PointsReverted: decimal.Zero}
	)
	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(s.cfg.Workers)
	for _, entry := range entries {
		if !entry.IsSettled() {
			continue
		}
		teamID := entry.TeamID
		p.Go(func(ctx context.Context) error {
			points, reverted, err := s.ledgerRepo.RevertSettlement(ctx, teamID, matchdayNumber)
			if err != nil {
				return errors.Wrapf(err, "revert settlement team=%s", teamID)
			}
			if !reverted {
				return nil
			}

			mu.Lock()
			result.RevertedCount++
			result.PointsReverted = result.PointsReverted.Add(points)
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return result, err
	}

	if result.RevertedCount > 0 {
		s.logger.InfoContext(ctx, "matchday settlement reversed",
			"matchday", matchdayNumber,
			"teams", result.RevertedCount,
			"points", result.PointsReverted.String(),
		)
	}
	return result, nil
}

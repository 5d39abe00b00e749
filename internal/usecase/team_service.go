package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/shopspring/decimal"
)

type RegisterTeamInput struct {
	UserID      string
	TeamName    string
	ManagerName string
	LogoURL     string
}

type UpdateTeamProfileInput struct {
	TeamID      string
	TeamName    string
	ManagerName string
	LogoURL     string
}

type TeamService struct {
	teamRepo fantasy.Repository
	rules    fantasy.Rules
	logger   *logging.Logger
	now      func() time.Time
}

func NewTeamService(teamRepo fantasy.Repository, rules fantasy.Rules, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo: teamRepo,
		rules:    rules,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates the caller's team with the full starting budget.
func (s *TeamService) Register(ctx context.Context, input RegisterTeamInput) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Register")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.ManagerName = strings.TrimSpace(input.ManagerName)
	input.LogoURL = strings.TrimSpace(input.LogoURL)

	if input.UserID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	team := fantasy.Team{
		ID:          input.UserID,
		TeamName:    input.TeamName,
		ManagerName: input.ManagerName,
		LogoURL:     input.LogoURL,
		Roster: fantasy.Roster{
			PlayerIDs:   []string{},
			LineupIDs:   []string{},
			CreditsLeft: s.rules.InitialBudget,
		},
		TotalPoints: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := team.ValidateBasic(); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, fantasy.ErrTeamExists) {
			return fantasy.Team{}, errors.Mark(errors.Wrapf(err, "team=%s", team.ID), ErrInvalidState)
		}
		return fantasy.Team{}, errors.Wrap(err, "create team")
	}

	s.logger.InfoContext(ctx, "team registered",
		"team_id", team.ID,
		"team_name", team.TeamName,
		"credits", team.Roster.CreditsLeft,
	)

	return team, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	return loadTeam(ctx, s.teamRepo, teamID)
}

// UpdateProfile edits cosmetic fields only. Roster and points are never touched here.
func (s *TeamService) UpdateProfile(ctx context.Context, input UpdateTeamProfileInput) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateProfile")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.ManagerName = strings.TrimSpace(input.ManagerName)
	input.LogoURL = strings.TrimSpace(input.LogoURL)
	if input.TeamID == "" || input.TeamName == "" || input.ManagerName == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id, team name and manager name are required", ErrInvalidInput)
	}

	updated, err := s.teamRepo.UpdateProfile(ctx, input.TeamID, input.TeamName, input.ManagerName, input.LogoURL)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "update team profile")
	}
	if !updated {
		return fantasy.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	return loadTeam(ctx, s.teamRepo, input.TeamID)
}

func loadTeam(ctx context.Context, repo fantasy.Repository, teamID string) (fantasy.Team, error) {
	team, exists, err := repo.GetByID(ctx, teamID)
	if err != nil {
		return fantasy.Team{}, errors.Wrap(err, "get team by id")
	}
	if !exists {
		return fantasy.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return team, nil
}

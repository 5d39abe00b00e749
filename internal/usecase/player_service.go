package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

type UpsertPlayerInput struct {
	ID     string
	Name   string
	Club   string
	Role   string
	Price  int64
	Status string
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   fantasy.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo fantasy.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list players")
	}

	sort.SliceStable(players, func(i, j int) bool {
		return strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
	})
	return players, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return loadPlayer(ctx, s.playerRepo, playerID)
}

// Upsert creates a player when ID is empty, otherwise replaces the stored one.
func (s *PlayerService) Upsert(ctx context.Context, input UpsertPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Upsert")
	defer span.End()

	item := player.Player{
		ID:     strings.TrimSpace(input.ID),
		Name:   strings.TrimSpace(input.Name),
		Club:   strings.TrimSpace(input.Club),
		Role:   player.Role(strings.ToUpper(strings.TrimSpace(input.Role))),
		Price:  input.Price,
		Status: player.Status(strings.ToLower(strings.TrimSpace(input.Status))),
	}
	if item.Status == "" {
		item.Status = player.StatusAvailable
	}
	if item.ID == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return player.Player{}, errors.Wrap(err, "generate player id")
		}
		item.ID = id
	}

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, errors.Wrap(err, "upsert player")
	}

	s.logger.InfoContext(ctx, "player upserted",
		"player_id", item.ID,
		"role", string(item.Role),
		"price", item.Price,
		"status", string(item.Status),
	)
	return item, nil
}

// Delete removes a player from the pool. Players still owned by a team cannot be removed.
func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if _, err := loadPlayer(ctx, s.playerRepo, playerID); err != nil {
		return err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list teams")
	}
	for _, t := range teams {
		if t.Roster.Owns(playerID) {
			return fmt.Errorf("%w: player %s is owned by team %s", ErrInvalidState, playerID, t.ID)
		}
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return errors.Wrap(err, "delete player")
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	return nil
}

func loadPlayer(ctx context.Context, repo player.Repository, playerID string) (player.Player, error) {
	item, exists, err := repo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "get player by id")
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

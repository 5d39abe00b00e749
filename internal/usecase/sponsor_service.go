package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

type UpsertSponsorInput struct {
	ID      string
	Name    string
	Type    string
	LogoURL string
	LinkURL string
}

type SponsorService struct {
	sponsorRepo sponsor.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewSponsorService(sponsorRepo sponsor.Repository, idGen idgen.Generator, logger *logging.Logger) *SponsorService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SponsorService{
		sponsorRepo: sponsorRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// List returns sponsors ordered by name.
func (s *SponsorService) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.List")
	defer span.End()

	items, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsors")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// Upsert creates a sponsor when ID is empty, otherwise replaces the stored one.
func (s *SponsorService) Upsert(ctx context.Context, input UpsertSponsorInput) (sponsor.Sponsor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.Upsert")
	defer span.End()

	item := sponsor.Sponsor{
		ID:      strings.TrimSpace(input.ID),
		Name:    strings.TrimSpace(input.Name),
		Type:    strings.TrimSpace(input.Type),
		LogoURL: strings.TrimSpace(input.LogoURL),
		LinkURL: strings.TrimSpace(input.LinkURL),
	}
	if item.ID == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return sponsor.Sponsor{}, errors.Wrap(err, "generate sponsor id")
		}
		item.ID = id
	}

	if err := item.Validate(); err != nil {
		return sponsor.Sponsor{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.sponsorRepo.Upsert(ctx, item); err != nil {
		return sponsor.Sponsor{}, errors.Wrap(err, "upsert sponsor")
	}

	s.logger.InfoContext(ctx, "sponsor upserted", "sponsor_id", item.ID, "type", item.Type)
	return item, nil
}

func (s *SponsorService) Delete(ctx context.Context, sponsorID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SponsorService.Delete")
	defer span.End()

	sponsorID = strings.TrimSpace(sponsorID)
	if sponsorID == "" {
		return fmt.Errorf("%w: sponsor id is required", ErrInvalidInput)
	}
	_, exists, err := s.sponsorRepo.GetByID(ctx, sponsorID)
	if err != nil {
		return errors.Wrap(err, "get sponsor by id")
	}
	if !exists {
		return fmt.Errorf("%w: sponsor=%s", ErrNotFound, sponsorID)
	}

	if err := s.sponsorRepo.Delete(ctx, sponsorID); err != nil {
		return errors.Wrap(err, "delete sponsor")
	}

	s.logger.InfoContext(ctx, "sponsor deleted", "sponsor_id", sponsorID)
	return nil
}

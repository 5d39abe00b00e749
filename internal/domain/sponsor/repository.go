package sponsor

import "context"

type Repository interface {
	List(ctx context.Context) ([]Sponsor, error)
	GetByID(ctx context.Context, sponsorID string) (Sponsor, bool, error)
	Upsert(ctx context.Context, item Sponsor) error
	Delete(ctx context.Context, sponsorID string) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	qb "github.com/legastork/futsal-fantasy/internal/platform/querybuilder"
)

type SponsorRepository struct {
	db *sqlx.DB
}

var sponsorSelectColumns = []string{
	"id",
	"name",
	"type",
	"logo_url",
	"link_url",
	"created_at",
	"updated_at",
}

func NewSponsorRepository(db *sqlx.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	query, args, err := qb.Select(sponsorSelectColumns...).From("sponsors").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sponsors query: %w", err)
	}

	var rows []sponsorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sponsors: %w", err)
	}

	out := make([]sponsor.Sponsor, 0, len(rows))
	for _, row := range rows {
		out = append(out, sponsorFromRow(row))
	}
	return out, nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, sponsorID string) (sponsor.Sponsor, bool, error) {
	query, args, err := qb.Select(sponsorSelectColumns...).From("sponsors").
		Where(qb.Eq("id", sponsorID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return sponsor.Sponsor{}, false, fmt.Errorf("build get sponsor query: %w", err)
	}

	var row sponsorTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sponsor.Sponsor{}, false, nil
		}
		return sponsor.Sponsor{}, false, fmt.Errorf("get sponsor: %w", err)
	}

	return sponsorFromRow(row), true, nil
}

func (r *SponsorRepository) Upsert(ctx context.Context, item sponsor.Sponsor) error {
	query, args, err := qb.InsertModel("sponsors", sponsorUpsertModel{
		ID:      item.ID,
		Name:    item.Name,
		Type:    item.Type,
		LogoURL: item.LogoURL,
		LinkURL: item.LinkURL,
	}, `ON CONFLICT (id)
DO UPDATE SET
	name = EXCLUDED.name,
	type = EXCLUDED.type,
	logo_url = EXCLUDED.logo_url,
	link_url = EXCLUDED.link_url,
	updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert sponsor query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert sponsor: %w", err)
	}
	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, sponsorID string) error {
	query, args, err := qb.DeleteFrom("sponsors").Where(qb.Eq("id", sponsorID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete sponsor query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	return nil
}

func sponsorFromRow(row sponsorTableModel) sponsor.Sponsor {
	return sponsor.Sponsor{
		ID:      row.ID,
		Name:    row.Name,
		Type:    row.Type,
		LogoURL: row.LogoURL,
		LinkURL: row.LinkURL,
	}
}

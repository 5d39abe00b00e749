package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	qb "github.com/legastork/futsal-fantasy/internal/platform/querybuilder"
)

type MatchdayRepository struct {
	db *sqlx.DB
}

var matchdaySelectColumns = []string{
	"id",
	"number",
	"status",
	"votes",
	"created_at",
	"updated_at",
}

func NewMatchdayRepository(db *sqlx.DB) *MatchdayRepository {
	return &MatchdayRepository{db: db}
}

func (r *MatchdayRepository) List(ctx context.Context) ([]matchday.Matchday, error) {
	query, args, err := qb.Select(matchdaySelectColumns...).From("matchdays").
		OrderBy("number DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchdays query: %w", err)
	}

	var rows []matchdayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchdays: %w", err)
	}

	out := make([]matchday.Matchday, 0, len(rows))
	for _, row := range rows {
		item, err := matchdayFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchdayRepository) GetByID(ctx context.Context, matchdayID string) (matchday.Matchday, bool, error) {
	return r.getOne(ctx, qb.Eq("id", matchdayID))
}

func (r *MatchdayRepository) GetByNumber(ctx context.Context, number int) (matchday.Matchday, bool, error) {
	return r.getOne(ctx, qb.Eq("number", number))
}

func (r *MatchdayRepository) getOne(ctx context.Context, cond qb.Condition) (matchday.Matchday, bool, error) {
	query, args, err := qb.Select(matchdaySelectColumns...).From("matchdays").
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return matchday.Matchday{}, false, fmt.Errorf("build get matchday query: %w", err)
	}

	var row matchdayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchday.Matchday{}, false, nil
		}
		return matchday.Matchday{}, false, fmt.Errorf("get matchday: %w", err)
	}

	item, err := matchdayFromRow(row)
	if err != nil {
		return matchday.Matchday{}, false, err
	}
	return item, true, nil
}

func (r *MatchdayRepository) Create(ctx context.Context, item matchday.Matchday) error {
	votes, err := encodeVotes(item.Votes)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("matchdays").
		Columns("id", "number", "status", "votes").
		Values(item.ID, item.Number, string(item.Status), votes).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert matchday query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %d", matchday.ErrDuplicateNumber, item.Number)
		}
		return fmt.Errorf("insert matchday: %w", err)
	}
	return nil
}

// MergeVotes relies on jsonb concatenation, so players missing from votes keep their stats.
func (r *MatchdayRepository) MergeVotes(ctx context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error) {
	return r.writeVotes(ctx, matchdayID, votes, "votes || ?::jsonb")
}

func (r *MatchdayRepository) ReplaceVotes(ctx context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error) {
	return r.writeVotes(ctx, matchdayID, votes, "?::jsonb")
}

func (r *MatchdayRepository) writeVotes(ctx context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats, expr string) (bool, error) {
	raw, err := encodeVotes(votes)
	if err != nil {
		return false, err
	}

	query, args, err := qb.Update("matchdays").
		SetExpr("votes", expr, string(raw)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", matchdayID), qb.Eq("status", string(matchday.StatusOpen))).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update votes query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update votes: %w", err)
	}
	return affectedOne(result)
}

func (r *MatchdayRepository) TransitionStatus(ctx context.Context, matchdayID string, from, to matchday.Status) (bool, error) {
	if err := matchday.ValidateTransition(from, to); err != nil {
		return false, err
	}

	query, args, err := qb.Update("matchdays").
		Set("status", string(to)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", matchdayID), qb.Eq("status", string(from))).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build transition matchday query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition matchday: %w", err)
	}
	return affectedOne(result)
}

func (r *MatchdayRepository) Delete(ctx context.Context, matchdayID string) error {
	query, args, err := qb.DeleteFrom("matchdays").Where(qb.Eq("id", matchdayID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matchday query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete matchday: %w", err)
	}
	return nil
}

func (r *MatchdayRepository) ReopenAll(ctx context.Context) error {
	const query = `UPDATE matchdays SET status = $1, votes = '{}'::jsonb, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, string(matchday.StatusOpen)); err != nil {
		return fmt.Errorf("reopen matchdays: %w", err)
	}
	return nil
}

func matchdayFromRow(row matchdayTableModel) (matchday.Matchday, error) {
	votes, err := decodeVotes(row.Votes)
	if err != nil {
		return matchday.Matchday{}, fmt.Errorf("matchday %s: %w", row.ID, err)
	}
	return matchday.Matchday{
		ID:        row.ID,
		Number:    row.Number,
		Status:    matchday.Status(row.Status),
		Votes:     votes,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	qb "github.com/legastork/futsal-fantasy/internal/platform/querybuilder"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	db *sqlx.DB
}

var ledgerSelectColumns = []string{
	"team_id",
	"matchday_number",
	"player_ids",
	"points_earned",
	"settled_at",
	"created_at",
	"updated_at",
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Get(ctx context.Context, teamID string, matchdayNumber int) (ledger.Entry, bool, error) {
	query, args, err := qb.Select(ledgerSelectColumns...).From("lineup_history").
		Where(qb.Eq("team_id", teamID), qb.Eq("matchday_number", matchdayNumber)).
		Limit(1).
		ToSQL()
	if err != nil {
		return ledger.Entry{}, false, fmt.Errorf("build get ledger entry query: %w", err)
	}

	var row ledgerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ledger.Entry{}, false, nil
		}
		return ledger.Entry{}, false, fmt.Errorf("get ledger entry: %w", err)
	}
	return ledgerFromRow(row), true, nil
}

func (r *LedgerRepository) ListByMatchday(ctx context.Context, matchdayNumber int) ([]ledger.Entry, error) {
	return r.list(ctx, qb.Eq("matchday_number", matchdayNumber))
}

func (r *LedgerRepository) ListByTeam(ctx context.Context, teamID string) ([]ledger.Entry, error) {
	return r.list(ctx, qb.Eq("team_id", teamID))
}

func (r *LedgerRepository) list(ctx context.Context, cond qb.Condition) ([]ledger.Entry, error) {
	query, args, err := qb.Select(ledgerSelectColumns...).From("lineup_history").
		Where(cond).
		OrderBy("matchday_number", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ledger query: %w", err)
	}

	var rows []ledgerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ledger: %w", err)
	}

	out := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledgerFromRow(row))
	}
	return out, nil
}

// UpsertSnapshot writes the lineup for an unsettled row. A settled row is left alone and false is returned.
func (r *LedgerRepository) UpsertSnapshot(ctx context.Context, entry ledger.Entry) (bool, error) {
	query, args, err := qb.InsertModel("lineup_history", ledgerSnapshotModel{
		TeamID:         entry.TeamID,
		MatchdayNumber: entry.MatchdayNumber,
		PlayerIDs:      pq.StringArray(nonNil(entry.PlayerIDs)),
	}, `ON CONFLICT (team_id, matchday_number)
DO UPDATE SET
	player_ids = EXCLUDED.player_ids,
	points_earned = 0,
	updated_at = NOW()
WHERE lineup_history.settled_at IS NULL`)
	if err != nil {
		return false, fmt.Errorf("build upsert ledger snapshot query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("upsert ledger snapshot: %w", err)
	}
	return affectedOne(result)
}

// ApplySettlement posts points to the ledger row and the team total in one transaction.
func (r *LedgerRepository) ApplySettlement(ctx context.Context, teamID string, matchdayNumber int, points decimal.Decimal, settledAt time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin apply settlement: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, `UPDATE lineup_history
SET points_earned = $1, settled_at = $2, updated_at = NOW()
WHERE team_id = $3 AND matchday_number = $4 AND settled_at IS NULL`,
		points, settledAt, teamID, matchdayNumber)
	if err != nil {
		return false, fmt.Errorf("settle ledger entry: %w", err)
	}
	applied, err := affectedOne(result)
	if err != nil {
		return false, fmt.Errorf("settle ledger entry: %w", err)
	}
	if !applied {
		return false, nil
	}

	if err := addTeamPoints(ctx, tx, teamID, points, true); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit apply settlement: %w", err)
	}
	return true, nil
}

// RevertSettlement subtracts the stored points from the team and marks the row unsettled.
func (r *LedgerRepository) RevertSettlement(ctx context.Context, teamID string, matchdayNumber int) (decimal.Decimal, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("begin revert settlement: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var points decimal.Decimal
	err = tx.GetContext(ctx, &points, `SELECT points_earned FROM lineup_history
WHERE team_id = $1 AND matchday_number = $2 AND settled_at IS NOT NULL
FOR UPDATE`, teamID, matchdayNumber)
	if err != nil {
		if isNotFound(err) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("lock ledger entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE lineup_history
SET points_earned = 0, settled_at = NULL, updated_at = NOW()
WHERE team_id = $1 AND matchday_number = $2`, teamID, matchdayNumber); err != nil {
		return decimal.Zero, false, fmt.Errorf("unsettle ledger entry: %w", err)
	}

	if err := addTeamPoints(ctx, tx, teamID, points.Neg(), false); err != nil {
		return decimal.Zero, false, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, false, fmt.Errorf("commit revert settlement: %w", err)
	}
	return points, true, nil
}

func (r *LedgerRepository) DeleteSnapshot(ctx context.Context, teamID string, matchdayNumber int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lineup_history
WHERE team_id = $1 AND matchday_number = $2 AND settled_at IS NULL`, teamID, matchdayNumber)
	if err != nil {
		return false, fmt.Errorf("delete ledger snapshot: %w", err)
	}
	return affectedOne(result)
}

func (r *LedgerRepository) DeleteByMatchday(ctx context.Context, matchdayNumber int) error {
	query, args, err := qb.DeleteFrom("lineup_history").Where(qb.Eq("matchday_number", matchdayNumber)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete ledger query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete ledger by matchday: %w", err)
	}
	return nil
}

func (r *LedgerRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lineup_history`); err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	return nil
}

// addTeamPoints moves the team total by delta. Clearing the confirmed flag also
// bumps roster_version so an in-flight roster write cannot resurrect it.
func addTeamPoints(ctx context.Context, tx *sqlx.Tx, teamID string, delta decimal.Decimal, clearConfirmed bool) error {
	query := `UPDATE fantasy_teams SET total_points = total_points + $1, updated_at = NOW() WHERE id = $2`
	if clearConfirmed {
		query = `UPDATE fantasy_teams SET
	total_points = total_points + $1,
	roster_version = CASE WHEN is_lineup_confirmed THEN roster_version + 1 ELSE roster_version END,
	is_lineup_confirmed = FALSE,
	updated_at = NOW()
WHERE id = $2`
	}

	result, err := tx.ExecContext(ctx, query, delta, teamID)
	if err != nil {
		return fmt.Errorf("update team points: %w", err)
	}
	ok, err := affectedOne(result)
	if err != nil {
		return fmt.Errorf("update team points: %w", err)
	}
	if !ok {
		return fmt.Errorf("update team points: team %s not found", teamID)
	}
	return nil
}

func ledgerFromRow(row ledgerTableModel) ledger.Entry {
	return ledger.Entry{
		TeamID:         row.TeamID,
		MatchdayNumber: row.MatchdayNumber,
		PlayerIDs:      append([]string(nil), row.PlayerIDs...),
		PointsEarned:   row.PointsEarned,
		SettledAt:      row.SettledAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

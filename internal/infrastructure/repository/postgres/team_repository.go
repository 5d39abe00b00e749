package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	qb "github.com/legastork/futsal-fantasy/internal/platform/querybuilder"
	"github.com/lib/pq"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"team_name",
	"manager_name",
	"logo_url",
	"player_ids",
	"lineup_ids",
	"credits_left",
	"is_lineup_confirmed",
	"total_points",
	"roster_version",
	"created_at",
	"updated_at",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]fantasy.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("fantasy_teams").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("fantasy_teams").
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, team fantasy.Team) error {
	query, args, err := qb.InsertInto("fantasy_teams").
		Columns("id", "team_name", "manager_name", "logo_url", "player_ids", "lineup_ids", "credits_left", "is_lineup_confirmed", "total_points").
		Values(
			team.ID,
			team.TeamName,
			team.ManagerName,
			team.LogoURL,
			pq.StringArray(nonNil(team.Roster.PlayerIDs)),
			pq.StringArray(nonNil(team.Roster.LineupIDs)),
			team.Roster.CreditsLeft,
			team.Roster.IsLineupConfirmed,
			team.TotalPoints,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", fantasy.ErrTeamExists, team.ID)
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) UpdateProfile(ctx context.Context, teamID, teamName, managerName, logoURL string) (bool, error) {
	query, args, err := qb.Update("fantasy_teams").
		Set("team_name", teamName).
		Set("manager_name", managerName).
		Set("logo_url", logoURL).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team profile query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update team profile: %w", err)
	}
	return affectedOne(result)
}

func (r *TeamRepository) UpdateRoster(ctx context.Context, teamID string, expectedVersion int64, roster fantasy.Roster) (bool, error) {
	query, args, err := qb.Update("fantasy_teams").
		Set("player_ids", pq.StringArray(nonNil(roster.PlayerIDs))).
		Set("lineup_ids", pq.StringArray(nonNil(roster.LineupIDs))).
		Set("credits_left", roster.CreditsLeft).
		Set("is_lineup_confirmed", roster.IsLineupConfirmed).
		SetExpr("roster_version", "roster_version + 1").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID), qb.Eq("roster_version", expectedVersion)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update roster query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update roster: %w", err)
	}
	return affectedOne(result)
}

func (r *TeamRepository) ResetAll(ctx context.Context, initialBudget int64) error {
	const query = `UPDATE fantasy_teams SET
	player_ids = '{}',
	lineup_ids = '{}',
	credits_left = $1,
	is_lineup_confirmed = FALSE,
	total_points = 0,
	roster_version = roster_version + 1,
	updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, initialBudget); err != nil {
		return fmt.Errorf("reset teams: %w", err)
	}
	return nil
}

func teamFromRow(row teamTableModel) fantasy.Team {
	return fantasy.Team{
		ID:          row.ID,
		TeamName:    row.TeamName,
		ManagerName: row.ManagerName,
		LogoURL:     row.LogoURL,
		Roster: fantasy.Roster{
			PlayerIDs:         append([]string(nil), row.PlayerIDs...),
			LineupIDs:         append([]string(nil), row.LineupIDs...),
			CreditsLeft:       row.CreditsLeft,
			IsLineupConfirmed: row.IsLineupConfirmed,
		},
		TotalPoints:   row.TotalPoints,
		RosterVersion: row.RosterVersion,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// nonNil keeps NOT NULL text[] columns from receiving NULL.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	qb "github.com/legastork/futsal-fantasy/internal/platform/querybuilder"
)

// settingsRowID is the primary key of the single app_settings row.
const settingsRowID = 1

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.Settings, bool, error) {
	query, args, err := qb.Select(
		"id",
		"league_name",
		"is_market_open",
		"is_lineup_locked",
		"current_matchday",
		"live_stream_url",
		"ticker_text",
		"market_deadline",
		"updated_at",
	).From("app_settings").
		Where(qb.Eq("id", settingsRowID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return settings.Settings{}, false, fmt.Errorf("build get settings query: %w", err)
	}

	var row settingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return settings.Settings{}, false, nil
		}
		return settings.Settings{}, false, fmt.Errorf("get settings: %w", err)
	}

	return settings.Settings{
		LeagueName:      row.LeagueName,
		IsMarketOpen:    row.IsMarketOpen,
		IsLineupLocked:  row.IsLineupLocked,
		CurrentMatchday: row.CurrentMatchday,
		LiveStreamURL:   row.LiveStreamURL,
		TickerText:      row.TickerText,
		MarketDeadline:  row.MarketDeadline,
		UpdatedAt:       row.UpdatedAt,
	}, true, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, item settings.Settings) error {
	query, args, err := qb.InsertInto("app_settings").
		Columns("id", "league_name", "is_market_open", "is_lineup_locked", "current_matchday", "live_stream_url", "ticker_text", "market_deadline").
		Values(settingsRowID, item.LeagueName, item.IsMarketOpen, item.IsLineupLocked, item.CurrentMatchday, item.LiveStreamURL, item.TickerText, item.MarketDeadline).
		Suffix(`ON CONFLICT (id)
DO UPDATE SET
	league_name = EXCLUDED.league_name,
	is_market_open = EXCLUDED.is_market_open,
	is_lineup_locked = EXCLUDED.is_lineup_locked,
	current_matchday = EXCLUDED.current_matchday,
	live_stream_url = EXCLUDED.live_stream_url,
	ticker_text = EXCLUDED.ticker_text,
	market_deadline = EXCLUDED.market_deadline,
	updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert settings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) AdvanceMatchday(ctx context.Context, number int) error {
	defaults := settings.Default()
	const query = `INSERT INTO app_settings (id, league_name, is_market_open, is_lineup_locked, current_matchday)
VALUES ($1, $2, $3, $4, GREATEST($5, 1))
ON CONFLICT (id)
DO UPDATE SET
	current_matchday = GREATEST(app_settings.current_matchday, EXCLUDED.current_matchday),
	updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, settingsRowID, defaults.LeagueName, defaults.IsMarketOpen, defaults.IsLineupLocked, number); err != nil {
		return fmt.Errorf("advance matchday: %w", err)
	}
	return nil
}

func (r *SettingsRepository) ResetMatchday(ctx context.Context) error {
	defaults := settings.Default()
	const query = `INSERT INTO app_settings (id, league_name, is_market_open, is_lineup_locked, current_matchday)
VALUES ($1, $2, $3, $4, 1)
ON CONFLICT (id)
DO UPDATE SET current_matchday = 1, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, settingsRowID, defaults.LeagueName, defaults.IsMarketOpen, defaults.IsLineupLocked); err != nil {
		return fmt.Errorf("reset matchday: %w", err)
	}
	return nil
}

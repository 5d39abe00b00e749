package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Club      string    `db:"club"`
	Role      string    `db:"role"`
	Price     int64     `db:"price"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerUpsertModel struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Club   string `db:"club"`
	Role   string `db:"role"`
	Price  int64  `db:"price"`
	Status string `db:"status"`
}

type sponsorTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	LogoURL   string    `db:"logo_url"`
	LinkURL   string    `db:"link_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type sponsorUpsertModel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Type    string `db:"type"`
	LogoURL string `db:"logo_url"`
	LinkURL string `db:"link_url"`
}

type matchdayTableModel struct {
	ID        string    `db:"id"`
	Number    int       `db:"number"`
	Status    string    `db:"status"`
	Votes     []byte    `db:"votes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamTableModel struct {
	ID                string          `db:"id"`
	TeamName          string          `db:"team_name"`
	ManagerName       string          `db:"manager_name"`
	LogoURL           string          `db:"logo_url"`
	PlayerIDs         pq.StringArray  `db:"player_ids"`
	LineupIDs         pq.StringArray  `db:"lineup_ids"`
	CreditsLeft       int64           `db:"credits_left"`
	IsLineupConfirmed bool            `db:"is_lineup_confirmed"`
	TotalPoints       decimal.Decimal `db:"total_points"`
	RosterVersion     int64           `db:"roster_version"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type ledgerTableModel struct {
	TeamID         string          `db:"team_id"`
	MatchdayNumber int             `db:"matchday_number"`
	PlayerIDs      pq.StringArray  `db:"player_ids"`
	PointsEarned   decimal.Decimal `db:"points_earned"`
	SettledAt      *time.Time      `db:"settled_at"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type ledgerSnapshotModel struct {
	TeamID         string         `db:"team_id"`
	MatchdayNumber int            `db:"matchday_number"`
	PlayerIDs      pq.StringArray `db:"player_ids"`
}

type settingsTableModel struct {
	ID              int        `db:"id"`
	LeagueName      string     `db:"league_name"`
	IsMarketOpen    bool       `db:"is_market_open"`
	IsLineupLocked  bool       `db:"is_lineup_locked"`
	CurrentMatchday int        `db:"current_matchday"`
	LiveStreamURL   string     `db:"live_stream_url"`
	TickerText      string     `db:"ticker_text"`
	MarketDeadline  *time.Time `db:"market_deadline"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

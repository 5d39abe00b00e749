package httpapi

import (
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	"github.com/legastork/futsal-fantasy/internal/usecase"
	"github.com/shopspring/decimal"
)

type updateSettingsRequest struct {
	LeagueName      string     `json:"league_name" validate:"omitempty,max=100"`
	IsMarketOpen    bool       `json:"is_market_open"`
	IsLineupLocked  bool       `json:"is_lineup_locked"`
	CurrentMatchday int        `json:"current_matchday" validate:"required,min=1"`
	LiveStreamURL   string     `json:"live_stream_url" validate:"omitempty,url"`
	TickerText      string     `json:"ticker_text" validate:"omitempty,max=500"`
	MarketDeadline  *time.Time `json:"market_deadline"`
}

type upsertPlayerRequest struct {
	ID     string `json:"id" validate:"omitempty,max=64"`
	Name   string `json:"name" validate:"required,max=100"`
	Club   string `json:"club" validate:"omitempty,max=100"`
	Role   string `json:"role" validate:"required,oneof=P M p m"`
	Price  int64  `json:"price" validate:"required,gt=0"`
	Status string `json:"status" validate:"omitempty,oneof=available injured suspended"`
}

type upsertSponsorRequest struct {
	ID      string `json:"id" validate:"omitempty,max=64"`
	Name    string `json:"name" validate:"required,max=100"`
	Type    string `json:"type" validate:"omitempty,max=60"`
	LogoURL string `json:"logo_url" validate:"omitempty,url,max=500"`
	LinkURL string `json:"link_url" validate:"omitempty,url,max=500"`
}

type teamProfileRequest struct {
	TeamName    string `json:"team_name" validate:"required,max=60"`
	ManagerName string `json:"manager_name" validate:"required,max=60"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url,max=500"`
}

type createMatchdayRequest struct {
	Number int `json:"number" validate:"required,min=1"`
}

type voteRequest struct {
	Vote        decimal.Decimal `json:"vote"`
	Goals       int             `json:"goals" validate:"min=0"`
	Assists     int             `json:"assists" validate:"min=0"`
	OwnGoals    int             `json:"own_goals" validate:"min=0"`
	YellowCard  bool            `json:"yellow_card"`
	RedCard     bool            `json:"red_card"`
	ExtraPoints decimal.Decimal `json:"extra_points"`
}

type recordVotesRequest struct {
	Votes   map[string]voteRequest `json:"votes" validate:"required,min=1,dive,keys,required,endkeys"`
	Replace bool                   `json:"replace"`
}

type settingsDTO struct {
	LeagueName      string     `json:"league_name"`
	IsMarketOpen    bool       `json:"is_market_open"`
	IsLineupLocked  bool       `json:"is_lineup_locked"`
	CurrentMatchday int        `json:"current_matchday"`
	LiveStreamURL   string     `json:"live_stream_url"`
	TickerText      string     `json:"ticker_text"`
	MarketDeadline  *time.Time `json:"market_deadline,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type playerDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Club   string `json:"club"`
	Role   string `json:"role"`
	Price  int64  `json:"price"`
	Status string `json:"status"`
}

type sponsorDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	LogoURL string `json:"logo_url"`
	LinkURL string `json:"link_url,omitempty"`
}

type teamDTO struct {
	ID                string   `json:"id"`
	TeamName          string   `json:"team_name"`
	ManagerName       string   `json:"manager_name"`
	LogoURL           string   `json:"logo_url"`
	PlayerIDs         []string `json:"player_ids"`
	LineupIDs         []string `json:"lineup_ids"`
	CreditsLeft       int64    `json:"credits_left"`
	IsLineupConfirmed bool     `json:"is_lineup_confirmed"`
	TotalPoints       float64  `json:"total_points"`
}

type standingDTO struct {
	Rank        int     `json:"rank"`
	TeamID      string  `json:"team_id"`
	TeamName    string  `json:"team_name"`
	ManagerName string  `json:"manager_name"`
	LogoURL     string  `json:"logo_url"`
	TotalPoints float64 `json:"total_points"`
}

type teamHistoryDTO struct {
	MatchdayNumber int      `json:"matchday_number"`
	PlayerIDs      []string `json:"player_ids"`
	PointsEarned   float64  `json:"points_earned"`
	Settled        bool     `json:"settled"`
}

type voteDTO struct {
	Vote        float64 `json:"vote"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	OwnGoals    int     `json:"own_goals"`
	YellowCard  bool    `json:"yellow_card"`
	RedCard     bool    `json:"red_card"`
	ExtraPoints float64 `json:"extra_points"`
}

type matchdayDTO struct {
	ID        string             `json:"id"`
	Number    int                `json:"number"`
	Status    string             `json:"status"`
	Votes     map[string]voteDTO `json:"votes"`
	CreatedAt time.Time          `json:"created_at"`
}

type playerScoreDTO struct {
	PlayerID string  `json:"player_id"`
	Stats    voteDTO `json:"stats"`
	Points   float64 `json:"points"`
}

type teamSettlementDTO struct {
	TeamID    string   `json:"team_id"`
	PlayerIDs []string `json:"player_ids"`
	Points    float64  `json:"points"`
	Status    string   `json:"status"`
	Message   string   `json:"message,omitempty"`
}

type settlementDTO struct {
	MatchdayID     string              `json:"matchday_id"`
	MatchdayNumber int                 `json:"matchday_number"`
	AppliedCount   int                 `json:"applied_count"`
	SkippedCount   int                 `json:"skipped_count"`
	FailedCount    int                 `json:"failed_count"`
	Teams          []teamSettlementDTO `json:"teams"`
}

func settingsToDTO(v settings.Settings) settingsDTO {
	out := settingsDTO{
		LeagueName:      v.LeagueName,
		IsMarketOpen:    v.IsMarketOpen,
		IsLineupLocked:  v.IsLineupLocked,
		CurrentMatchday: v.CurrentMatchday,
		LiveStreamURL:   v.LiveStreamURL,
		TickerText:      v.TickerText,
		MarketDeadline:  v.MarketDeadline,
	}
	if !v.UpdatedAt.IsZero() {
		updatedAt := v.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:     v.ID,
		Name:   v.Name,
		Club:   v.Club,
		Role:   string(v.Role),
		Price:  v.Price,
		Status: string(v.Status),
	}
}

func sponsorToDTO(v sponsor.Sponsor) sponsorDTO {
	return sponsorDTO{
		ID:      v.ID,
		Name:    v.Name,
		Type:    v.Type,
		LogoURL: v.LogoURL,
		LinkURL: v.LinkURL,
	}
}

func teamToDTO(v fantasy.Team) teamDTO {
	return teamDTO{
		ID:                v.ID,
		TeamName:          v.TeamName,
		ManagerName:       v.ManagerName,
		LogoURL:           v.LogoURL,
		PlayerIDs:         nonNilIDs(v.Roster.PlayerIDs),
		LineupIDs:         nonNilIDs(v.Roster.LineupIDs),
		CreditsLeft:       v.Roster.CreditsLeft,
		IsLineupConfirmed: v.Roster.IsLineupConfirmed,
		TotalPoints:       v.TotalPoints.InexactFloat64(),
	}
}

func standingToDTO(v usecase.StandingRow) standingDTO {
	return standingDTO{
		Rank:        v.Rank,
		TeamID:      v.TeamID,
		TeamName:    v.TeamName,
		ManagerName: v.ManagerName,
		LogoURL:     v.LogoURL,
		TotalPoints: v.TotalPoints.InexactFloat64(),
	}
}

func teamHistoryToDTO(v usecase.TeamHistoryRow) teamHistoryDTO {
	return teamHistoryDTO{
		MatchdayNumber: v.MatchdayNumber,
		PlayerIDs:      nonNilIDs(v.PlayerIDs),
		PointsEarned:   v.PointsEarned.InexactFloat64(),
		Settled:        v.Settled,
	}
}

func statsToDTO(v scoring.PlayerMatchStats) voteDTO {
	return voteDTO{
		Vote:        v.Vote.InexactFloat64(),
		Goals:       v.Goals,
		Assists:     v.Assists,
		OwnGoals:    v.OwnGoals,
		YellowCard:  v.YellowCard,
		RedCard:     v.RedCard,
		ExtraPoints: v.ExtraPoints.InexactFloat64(),
	}
}

func matchdayToDTO(v matchday.Matchday) matchdayDTO {
	votes := make(map[string]voteDTO, len(v.Votes))
	for playerID, stats := range v.Votes {
		votes[playerID] = statsToDTO(stats)
	}
	return matchdayDTO{
		ID:        v.ID,
		Number:    v.Number,
		Status:    string(v.Status),
		Votes:     votes,
		CreatedAt: v.CreatedAt,
	}
}

func settlementToDTO(v usecase.SettlementResult) settlementDTO {
	teams := make([]teamSettlementDTO, 0, len(v.Teams))
	for _, team := range v.Teams {
		teams = append(teams, teamSettlementDTO{
			TeamID:    team.TeamID,
			PlayerIDs: nonNilIDs(team.PlayerIDs),
			Points:    team.Points.InexactFloat64(),
			Status:    team.Status,
			Message:   team.Message,
		})
	}
	return settlementDTO{
		MatchdayID:     v.MatchdayID,
		MatchdayNumber: v.MatchdayNumber,
		AppliedCount:   v.AppliedCount,
		SkippedCount:   v.SkippedCount,
		FailedCount:    v.FailedCount,
		Teams:          teams,
	}
}

func (v voteRequest) toStats() scoring.PlayerMatchStats {
	return scoring.PlayerMatchStats{
		Vote:        v.Vote,
		Goals:       v.Goals,
		Assists:     v.Assists,
		OwnGoals:    v.OwnGoals,
		YellowCard:  v.YellowCard,
		RedCard:     v.RedCard,
		ExtraPoints: v.ExtraPoints,
	}
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

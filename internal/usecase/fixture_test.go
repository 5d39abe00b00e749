package usecase

import (
	"testing"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

type leagueFixture struct {
	players  *memory.PlayerRepository
	teams    *memory.TeamRepository
	ledger   *memory.LedgerRepository
	matchday *memory.MatchdayRepository
	settings *memory.SettingsRepository

	teamService       *TeamService
	rosterService     *RosterService
	matchdayService   *MatchdayService
	settlementService *SettlementService
	standingsService  *StandingsService
	seasonService     *SeasonService
}

func newLeagueFixture(t *testing.T, teams ...fantasy.Team) *leagueFixture {
	t.Helper()

	logger := logging.NewNop()
	rules := fantasy.DefaultRules()

	f := &leagueFixture{
		players:  memory.NewPlayerRepository(memory.SeedPlayers()),
		teams:    memory.NewTeamRepository(teams...),
		matchday: memory.NewMatchdayRepository(),
		settings: memory.NewSettingsRepository(),
	}
	f.ledger = memory.NewLedgerRepository(f.teams)

	f.teamService = NewTeamService(f.teams, rules, logger)
	f.teamService.now = func() time.Time { return fixedNow }
	f.rosterService = NewRosterService(f.teams, f.players, f.settings, f.matchday, f.ledger, rules, logger)
	f.rosterService.now = func() time.Time { return fixedNow }
	f.settlementService = NewSettlementService(f.matchday, f.teams, f.ledger, f.settings, DefaultSettlementConfig(), logger)
	f.settlementService.now = func() time.Time { return fixedNow }
	f.matchdayService = NewMatchdayService(
		f.matchday,
		f.ledger,
		f.settlementService,
		idgen.NewSequenceGenerator("md-1", "md-2", "md-3", "md-4"),
		logger,
	)
	f.matchdayService.now = func() time.Time { return fixedNow }
	f.standingsService = NewStandingsService(f.teams, f.ledger, logger)
	f.seasonService = NewSeasonService(f.teams, f.ledger, f.matchday, f.settings, rules, logger)

	return f
}

func teamWithLineup(id, name string, points string, lineup ...string) fantasy.Team {
	return fantasy.Team{
		ID:          id,
		TeamName:    name,
		ManagerName: "manager " + id,
		Roster: fantasy.Roster{
			PlayerIDs:   append([]string(nil), lineup...),
			LineupIDs:   append([]string(nil), lineup...),
			CreditsLeft: 100,
		},
		TotalPoints: decimal.RequireFromString(points),
	}
}

func vote(v string, goals, assists int) scoring.PlayerMatchStats {
	return scoring.PlayerMatchStats{
		Vote:    decimal.RequireFromString(v),
		Goals:   goals,
		Assists: assists,
	}
}

package scoring

import "github.com/shopspring/decimal"

var (
	goalBonus       = decimal.NewFromInt(3)
	assistBonus     = decimal.NewFromInt(1)
	ownGoalMalus    = decimal.NewFromInt(2)
	yellowCardMalus = decimal.RequireFromString("0.5")
	redCardMalus    = decimal.NewFromInt(1)
)

// Score applies the league formula to a stats line regardless of the vote sentinel.
func Score(stats PlayerMatchStats) decimal.Decimal {
	total := stats.Vote.
		Add(goalBonus.Mul(decimal.NewFromInt(int64(stats.Goals)))).
		Add(assistBonus.Mul(decimal.NewFromInt(int64(stats.Assists)))).
		Sub(ownGoalMalus.Mul(decimal.NewFromInt(int64(stats.OwnGoals))))
	if stats.YellowCard {
		total = total.Sub(yellowCardMalus)
	}
	if stats.RedCard {
		total = total.Sub(redCardMalus)
	}

	return total.Add(stats.ExtraPoints)
}

// Points is what a fielded player contributes: zero when the player has no vote.
func Points(stats PlayerMatchStats) decimal.Decimal {
	if !stats.Played() {
		return decimal.Zero
	}
	return Score(stats)
}

// LineupTotal sums Points over the fielded players. Missing stats count as zero.
func LineupTotal(playerIDs []string, votes map[string]PlayerMatchStats) decimal.Decimal {
	total := decimal.Zero
	for _, playerID := range playerIDs {
		stats, ok := votes[playerID]
		if !ok {
			continue
		}
		total = total.Add(Points(stats))
	}

	return total
}

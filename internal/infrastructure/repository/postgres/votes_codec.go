package postgres

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
	"github.com/shopspring/decimal"
)

// voteDocument is the jsonb shape of one player's stats inside matchdays.votes.
type voteDocument struct {
	Vote        decimal.Decimal `json:"vote"`
	Goals       int             `json:"goals"`
	Assists     int             `json:"assists"`
	OwnGoals    int             `json:"ownGoals"`
	YellowCard  bool            `json:"yellowCard"`
	RedCard     bool            `json:"redCard"`
	ExtraPoints decimal.Decimal `json:"extraPoints"`
}

func encodeVotes(votes map[string]scoring.PlayerMatchStats) ([]byte, error) {
	docs := make(map[string]voteDocument, len(votes))
	for playerID, stats := range votes {
		docs[playerID] = voteDocument{
			Vote:        stats.Vote,
			Goals:       stats.Goals,
			Assists:     stats.Assists,
			OwnGoals:    stats.OwnGoals,
			YellowCard:  stats.YellowCard,
			RedCard:     stats.RedCard,
			ExtraPoints: stats.ExtraPoints,
		}
	}

	raw, err := sonic.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode votes: %w", err)
	}
	return raw, nil
}

func decodeVotes(raw []byte) (map[string]scoring.PlayerMatchStats, error) {
	out := make(map[string]scoring.PlayerMatchStats)
	if len(raw) == 0 {
		return out, nil
	}

	var docs map[string]voteDocument
	if err := sonic.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode votes: %w", err)
	}
	for playerID, doc := range docs {
		out[playerID] = scoring.PlayerMatchStats{
			Vote:        doc.Vote,
			Goals:       doc.Goals,
			Assists:     doc.Assists,
			OwnGoals:    doc.OwnGoals,
			YellowCard:  doc.YellowCard,
			RedCard:     doc.RedCard,
			ExtraPoints: doc.ExtraPoints,
		}
	}
	return out, nil
}

package fantasy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/legastork/futsal-fantasy/internal/domain/player"
)

var (
	ErrInvalidSquadSize   = errors.New("invalid squad size")
	ErrExceededBudget     = errors.New("not enough credits")
	ErrLineupShape        = errors.New("lineup shape not allowed")
	ErrUnknownPlayerRole  = errors.New("unknown player role")
	ErrPlayerAlreadyOwned = errors.New("player already owned")
	ErrPlayerNotOwned     = errors.New("player not owned")
	ErrAlreadyStarting    = errors.New("player already in lineup")
	ErrNotStarting        = errors.New("player not in lineup")
)

// Rules stores roster and lineup parameters of the league.
type Rules struct {
	InitialBudget  int64
	MaxSquadSize   int
	StartersByRole map[player.Role]int
}

func DefaultRules() Rules {
	return Rules{
		InitialBudget: 250,
		MaxSquadSize:  10,
		StartersByRole: map[player.Role]int{
			player.RoleGoalkeeper: 1,
			player.RoleOutfield:   4,
		},
	}
}

func (r Rules) LineupSize() int {
	total := 0
	for _, n := range r.StartersByRole {
		total += n
	}
	return total
}

// Buy adds p to the roster and charges its price.
func Buy(roster Roster, p player.Player, rules Rules) (Roster, error) {
	if roster.Owns(p.ID) {
		return Roster{}, fmt.Errorf("%w: %s", ErrPlayerAlreadyOwned, p.ID)
	}
	if rules.MaxSquadSize > 0 && len(roster.PlayerIDs) >= rules.MaxSquadSize {
		return Roster{}, fmt.Errorf("%w: max=%d", ErrInvalidSquadSize, rules.MaxSquadSize)
	}
	if roster.CreditsLeft < p.Price {
		return Roster{}, fmt.Errorf("%w: credits=%d price=%d", ErrExceededBudget, roster.CreditsLeft, p.Price)
	}

	out := roster.Clone()
	out.PlayerIDs = append(out.PlayerIDs, p.ID)
	out.CreditsLeft -= p.Price
	out.IsLineupConfirmed = false
	return out, nil
}

// Sell removes p from the roster and the lineup and refunds its price.
func Sell(roster Roster, p player.Player) (Roster, error) {
	if !roster.Owns(p.ID) {
		return Roster{}, fmt.Errorf("%w: %s", ErrPlayerNotOwned, p.ID)
	}

	out := roster.Clone()
	out.PlayerIDs = slices.DeleteFunc(out.PlayerIDs, func(id string) bool { return id == p.ID })
	out.LineupIDs = slices.DeleteFunc(out.LineupIDs, func(id string) bool { return id == p.ID })
	out.CreditsLeft += p.Price
	out.IsLineupConfirmed = false
	return out, nil
}

// AddStarter puts candidate in the lineup. starters are the players currently in it.
func AddStarter(roster Roster, candidate player.Player, starters []player.Player, rules Rules) (Roster, error) {
	if !roster.Owns(candidate.ID) {
		return Roster{}, fmt.Errorf("%w: %s", ErrPlayerNotOwned, candidate.ID)
	}
	if roster.IsStarter(candidate.ID) {
		return Roster{}, fmt.Errorf("%w: %s", ErrAlreadyStarting, candidate.ID)
	}
	limit, ok := rules.StartersByRole[candidate.Role]
	if !ok {
		return Roster{}, fmt.Errorf("%w: %s", ErrUnknownPlayerRole, candidate.Role)
	}

	count := 0
	for _, s := range starters {
		if s.Role == candidate.Role {
			count++
		}
	}
	if count >= limit {
		return Roster{}, fmt.Errorf("%w: role=%s max=%d", ErrLineupShape, candidate.Role, limit)
	}

	out := roster.Clone()
	out.LineupIDs = append(out.LineupIDs, candidate.ID)
	out.IsLineupConfirmed = false
	return out, nil
}

func RemoveStarter(roster Roster, playerID string) (Roster, error) {
	if !roster.IsStarter(playerID) {
		return Roster{}, fmt.Errorf("%w: %s", ErrNotStarting, playerID)
	}

	out := roster.Clone()
	out.LineupIDs = slices.DeleteFunc(out.LineupIDs, func(id string) bool { return id == playerID })
	out.IsLineupConfirmed = false
	return out, nil
}

// ValidateLineup requires the exact starting shape, e.g. one goalkeeper and four outfield players.
func ValidateLineup(starters []player.Player, rules Rules) error {
	if len(starters) != rules.LineupSize() {
		return fmt.Errorf("%w: expected %d starters, got %d", ErrLineupShape, rules.LineupSize(), len(starters))
	}

	byRole := make(map[player.Role]int, len(rules.StartersByRole))
	seen := make(map[string]struct{}, len(starters))
	for _, s := range starters {
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: duplicate starter %s", ErrLineupShape, s.ID)
		}
		seen[s.ID] = struct{}{}
		if _, ok := rules.StartersByRole[s.Role]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlayerRole, s.Role)
		}
		byRole[s.Role]++
	}
	for role, want := range rules.StartersByRole {
		if byRole[role] != want {
			return fmt.Errorf("%w: role=%s want=%d got=%d", ErrLineupShape, role, want, byRole[role])
		}
	}

	return nil
}

// SpentCredits is the budget consumed by owned players at their given prices.
func SpentCredits(owned []player.Player) int64 {
	var total int64
	for _, p := range owned {
		total += p.Price
	}
	return total
}

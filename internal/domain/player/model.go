package player

import "fmt"

// Role is the futsal role used by lineup rules.
type Role string

const (
	RoleGoalkeeper Role = "P"
	RoleOutfield   Role = "M"
)

var AllRoles = map[Role]struct{}{
	RoleGoalkeeper: {},
	RoleOutfield:   {},
}

// Status tells managers whether a player is expected to be fielded.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInjured   Status = "injured"
	StatusSuspended Status = "suspended"
)

var AllStatuses = map[Status]struct{}{
	StatusAvailable: {},
	StatusInjured:   {},
	StatusSuspended: {},
}

// Player is a purchasable athlete of the league pool.
type Player struct {
	ID     string
	Name   string
	Club   string
	Role   Role
	Price  int64
	Status Status
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}
	if p.Price <= 0 {
		return fmt.Errorf("player price must be greater than zero")
	}

	return nil
}

func (p Player) IsGoalkeeper() bool {
	return p.Role == RoleGoalkeeper
}

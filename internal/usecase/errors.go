package usecase

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidState          = errors.New("invalid state")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrPartialSettlement     = errors.New("settlement partially applied")
)

// PartialSettlementError lists the teams a settlement pass could not post.
// Calling Settle again only retries those teams.
type PartialSettlementError struct {
	MatchdayNumber int
	FailedTeamIDs  []string
	Cause          error
}

func (e *PartialSettlementError) Error() string {
	return fmt.Sprintf("matchday %d: %d team(s) not settled: %v", e.MatchdayNumber, len(e.FailedTeamIDs), e.Cause)
}

func (e *PartialSettlementError) Unwrap() error {
	return e.Cause
}

func (e *PartialSettlementError) Is(target error) bool {
	return target == ErrPartialSettlement
}

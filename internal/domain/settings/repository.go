package settings

import "context"

// Repository describes settings persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context) (Settings, bool, error)
	Upsert(ctx context.Context, item Settings) error
	// AdvanceMatchday moves CurrentMatchday forward to at least the given number; it never moves it back.
	AdvanceMatchday(ctx context.Context, number int) error
	ResetMatchday(ctx context.Context) error
}

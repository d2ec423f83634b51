package store

import (
	"context"
	"time"

	"github.com/moodnest/moodnest-api/pkg/types"
)

// JournalEntryStore is the persistence contract for journal entries.
// Every query is scoped by userID; an id that belongs to another user is
// indistinguishable from a missing one.
type JournalEntryStore interface {
	Create(ctx context.Context, data types.JournalEntry) error
	Get(ctx context.Context, userID, id string) (*types.JournalEntry, error)
	List(ctx context.Context, userID string) ([]types.JournalEntry, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]types.JournalEntry, error)
	GetByDate(ctx context.Context, userID string, day time.Time) (*types.JournalEntry, error)
	Update(ctx context.Context, userID, id string, data types.UpdateJournalEntryArgs) error
	Delete(ctx context.Context, userID, id string) error
}

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByName(ctx context.Context, name string) (*types.User, error)
}

type AccessTokenStore interface {
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error)
	Delete(ctx context.Context, userID, token string) error
}

// Provider bundles the stores plus transaction support, so logic can run
// against postgres in production and an in-memory fake in tests.
type Provider interface {
	JournalEntryStore() JournalEntryStore
	UserStore() UserStore
	AccessTokenStore() AccessTokenStore
	Transaction(ctx context.Context, f func(ctx context.Context) error) error
}

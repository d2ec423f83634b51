package v1_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/moodnest/moodnest-api/internal/core"
	v1 "github.com/moodnest/moodnest-api/internal/logic/v1"
	"github.com/moodnest/moodnest-api/internal/store"
	"github.com/moodnest/moodnest-api/pkg/security"
	"github.com/moodnest/moodnest-api/pkg/types"
)

// memoryProvider is an in-memory store.Provider so logic tests run without
// postgres. Read semantics mirror the sql stores: missing rows surface as
// sql.ErrNoRows, ranges are [start, end).
type memoryProvider struct {
	journal *memoryJournalStore
	users   *memoryUserStore
	tokens  *memoryTokenStore
}

func newMemoryProvider() *memoryProvider {
	return &memoryProvider{
		journal: &memoryJournalStore{entries: make(map[string]types.JournalEntry)},
		users:   &memoryUserStore{users: make(map[string]types.User)},
		tokens:  &memoryTokenStore{tokens: make(map[string]types.AccessToken)},
	}
}

func (p *memoryProvider) JournalEntryStore() store.JournalEntryStore { return p.journal }
func (p *memoryProvider) UserStore() store.UserStore                 { return p.users }
func (p *memoryProvider) AccessTokenStore() store.AccessTokenStore   { return p.tokens }
func (p *memoryProvider) Transaction(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}

type memoryJournalStore struct {
	mu      sync.Mutex
	entries map[string]types.JournalEntry
}

func (s *memoryJournalStore) Create(ctx context.Context, data types.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[data.ID] = data
	return nil
}

func (s *memoryJournalStore) Get(ctx context.Context, userID, id string) (*types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (s *memoryJournalStore) List(ctx context.Context, userID string) ([]types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []types.JournalEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt > res[j].CreatedAt })
	return res, nil
}

func (s *memoryJournalStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []types.JournalEntry
	for _, e := range s.entries {
		if e.UserID == userID && e.CreatedAt >= start.Unix() && e.CreatedAt < end.Unix() {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt < res[j].CreatedAt })
	return res, nil
}

func (s *memoryJournalStore) GetByDate(ctx context.Context, userID string, day time.Time) (*types.JournalEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	list, err := s.ListByDateRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, sql.ErrNoRows
	}
	return &list[0], nil
}

func (s *memoryJournalStore) Update(ctx context.Context, userID, id string, data types.UpdateJournalEntryArgs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.UserID != userID {
		return nil
	}
	e.Title = data.Title
	e.ContentHTML = data.ContentHTML
	e.PrimaryMood = data.PrimaryMood
	e.SecondaryMoods = data.SecondaryMoods
	e.Category = data.Category
	e.Tags = data.Tags
	e.UpdatedAt = time.Now().Unix()
	s.entries[id] = e
	return nil
}

func (s *memoryJournalStore) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok && e.UserID == userID {
		delete(s.entries, id)
	}
	return nil
}

type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]types.User
}

func (s *memoryUserStore) Create(ctx context.Context, data types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[data.ID] = data
	return nil
}

func (s *memoryUserStore) GetUser(ctx context.Context, id string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (s *memoryUserStore) GetByName(ctx context.Context, name string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]types.AccessToken
}

func (s *memoryTokenStore) Create(ctx context.Context, data types.AccessToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[data.Token] = data
	return nil
}

func (s *memoryTokenStore) GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (s *memoryTokenStore) Delete(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[token]; ok && t.UserID == userID {
		delete(s.tokens, token)
	}
	return nil
}

func newTestCore() (*core.Core, *memoryProvider) {
	provider := newMemoryProvider()
	cfg := core.CoreConfig{}
	cfg.Security.TokenSecret = "test-secret"
	return core.NewCore(cfg, provider), provider
}

func userContext(userID string) context.Context {
	claims := security.NewTokenClaims(userID, time.Now().Add(time.Hour).Unix())
	return context.WithValue(context.Background(), v1.TOKEN_CONTEXT_KEY, claims)
}

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fyzanshaik/timer-game/internal/domain/entities"
	"github.com/fyzanshaik/timer-game/internal/domain/repositories"
)

// fakeStore backs both repositories with in-memory maps and call counters,
// so tests can assert which paths hit the store.
type fakeStore struct {
	mu      sync.Mutex
	nextId  int64
	users   map[string]*entities.User
	records map[int64]*entities.ScoreRecord

	findUserCalls   int
	createUserCalls int
	findScoreCalls  int
	updateCalls     int
	topCalls        int

	// hideUserOnce makes the next FindByUsername for that name miss, which
	// simulates a racing create committing between lookup and insert.
	hideUserOnce string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*entities.User),
		records: make(map[int64]*entities.ScoreRecord),
	}
}

func (f *fakeStore) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createUserCalls++

	username := user.GetUser().Username
	if _, exists := f.users[username]; exists {
		return nil, repositories.ErrDuplicateUsername
	}
	f.nextId++
	created := &entities.User{Id: f.nextId, Username: username}
	f.users[username] = created
	return created, nil
}

func (f *fakeStore) FindById(ctx context.Context, id int64) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Id == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findUserCalls++
	if f.hideUserOnce == username {
		f.hideUserOnce = ""
		return nil, nil
	}
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateScore(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record := entities.NewScoreRecord(userId)
	f.nextId++
	record.Id = f.nextId
	f.records[userId] = record
	return record, nil
}

func (f *fakeStore) FindScoreByUserId(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findScoreCalls++
	if record, ok := f.records[userId]; ok {
		return record, nil
	}
	return nil, nil
}

func (f *fakeStore) UpdateScoreIfHigher(ctx context.Context, userId int64, category entities.Category, value int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++

	record, ok := f.records[userId]
	if !ok || record.Scores[category] >= value {
		return false, nil
	}
	record.Scores[category] = value
	return true, nil
}

func (f *fakeStore) TopByCategory(ctx context.Context, category entities.Category, limit int) ([]entities.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topCalls++

	var entries []entities.LeaderboardEntry
	for username, user := range f.users {
		if record, ok := f.records[user.Id]; ok {
			entries = append(entries, entities.LeaderboardEntry{
				Username: username,
				Score:    record.Scores[category],
			})
		}
	}
	// Callers in these tests only rely on membership, not order.
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func mustValidatedUser(t *testing.T, username string) *entities.ValidatedUser {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(username))
	if err != nil {
		t.Fatalf("validated user: %v", err)
	}
	return validated
}

// scoreRepoAdapter exposes fakeStore through the ScoreRepository interface
// without clashing with the user repository's Create.
type scoreRepoAdapter struct {
	store *fakeStore
}

func (a *scoreRepoAdapter) Create(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	return a.store.CreateScore(ctx, userId)
}

func (a *scoreRepoAdapter) FindByUserId(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	return a.store.FindScoreByUserId(ctx, userId)
}

func (a *scoreRepoAdapter) UpdateScoreIfHigher(ctx context.Context, userId int64, category entities.Category, value int) (bool, error) {
	return a.store.UpdateScoreIfHigher(ctx, userId, category, value)
}

func (a *scoreRepoAdapter) TopByCategory(ctx context.Context, category entities.Category, limit int) ([]entities.LeaderboardEntry, error) {
	return a.store.TopByCategory(ctx, category, limit)
}

// fakeCache is an in-memory Cache that records every mutation.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.entries[key]
	return payload, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.entries[key] = payload
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.entries, key)
		f.deleted = append(f.deleted, key)
	}
}

func (f *fakeCache) snapshot() map[string][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make(map[string][]byte, len(f.entries))
	for key, payload := range f.entries {
		copied[key] = append([]byte(nil), payload...)
	}
	return copied
}

package schema

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	pingFn        func(ctx context.Context) error
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	createCalls   int
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	m.createCalls++
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func TestEnsureReady_CreatesIndex(t *testing.T) {
	ms := &mockStore{}
	var gotDef *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		gotDef = def
		return nil
	}

	m := New(ms, 3, time.Millisecond, zap.NewNop())
	if err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotDef == nil {
		t.Fatal("expected CreateIndex to be called")
	}
	if gotDef.Name != domain.IndexName() {
		t.Errorf("index name = %q", gotDef.Name)
	}
}

func TestEnsureReady_SkipsExistingIndex(t *testing.T) {
	ms := &mockStore{
		indexExistsFn: func(context.Context, string) (bool, error) { return true, nil },
	}

	m := New(ms, 3, time.Millisecond, zap.NewNop())
	if err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ms.createCalls != 0 {
		t.Error("an existing index must never be re-created")
	}
}

func TestEnsureReady_ToleratesCreateRace(t *testing.T) {
	ms := &mockStore{
		createIndexFn: func(context.Context, *db.IndexDefinition) error {
			return db.ErrIndexExists
		},
	}

	m := New(ms, 3, time.Millisecond, zap.NewNop())
	if err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("losing the creation race is not an error: %v", err)
	}
}

func TestEnsureReady_RetriesUntilEngineReady(t *testing.T) {
	calls := 0
	ms := &mockStore{
		pingFn: func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		},
	}

	m := New(ms, 5, time.Millisecond, zap.NewNop())
	if err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("ping calls = %d, want 3", calls)
	}
}

func TestEnsureReady_AttemptsExhausted(t *testing.T) {
	calls := 0
	ms := &mockStore{
		pingFn: func(context.Context) error {
			calls++
			return errors.New("connection refused")
		},
	}

	m := New(ms, 4, time.Millisecond, zap.NewNop())
	err := m.EnsureReady(context.Background())
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if calls != 4 {
		t.Errorf("ping calls = %d, want 4", calls)
	}
	if ms.createCalls != 0 {
		t.Error("index creation must not be attempted against an unreachable engine")
	}
}

func TestEnsureReady_ContextCanceled(t *testing.T) {
	ms := &mockStore{
		pingFn: func(context.Context) error { return errors.New("connection refused") },
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(ms, 10, 10*time.Second, zap.NewNop())
	err := m.EnsureReady(ctx)
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the context cause, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(&mockStore{}, 0, 0, zap.NewNop())
	if m.attempts != 12 {
		t.Errorf("attempts = %d", m.attempts)
	}
	if m.delay != 5*time.Second {
		t.Errorf("delay = %v", m.delay)
	}
}

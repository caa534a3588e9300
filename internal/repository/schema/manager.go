package schema

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/corpus-works/corpusd/internal/db"
	"github.com/corpus-works/corpusd/internal/domain"
)

// store is the consumer interface for schema provisioning (ISP).
type store interface {
	Ping(ctx context.Context) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Manager provisions the documents index. Safe to call once at process
// start; creation is skip-if-exists and never alters an existing schema.
type Manager struct {
	store    store
	attempts int
	delay    time.Duration
	logger   *zap.Logger
}

// New creates a schema manager with the given readiness retry budget.
func New(s store, attempts int, delay time.Duration, logger *zap.Logger) *Manager {
	if attempts <= 0 {
		attempts = 12
	}
	if delay <= 0 {
		delay = 5 * time.Second
	}
	return &Manager{store: s, attempts: attempts, delay: delay, logger: logger}
}

// EnsureReady probes engine liveness within the retry budget, then creates
// the documents index unless it already exists. Exhausting the budget yields
// domain.ErrStorageUnavailable: the service must not serve traffic without
// its index.
func (m *Manager) EnsureReady(ctx context.Context) error {
	if err := m.waitForEngine(ctx); err != nil {
		return err
	}

	def := IndexDefinition()
	if err := def.Validate(); err != nil {
		return fmt.Errorf("invalid index definition: %w", err)
	}

	exists, err := m.store.IndexExists(ctx, def.Name)
	if err != nil {
		return fmt.Errorf("probe index %s: %w", def.Name, err)
	}
	if exists {
		m.logger.Info("Documents index already exists", zap.String("index", def.Name))
		return nil
	}

	if err := m.store.CreateIndex(ctx, def); err != nil {
		// Lost a race with a concurrent replica; the schema is fixed, so
		// whoever won created the same layout.
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", def.Name, err)
	}

	m.logger.Info("Created documents index", zap.String("index", def.Name))
	return nil
}

// waitForEngine pings the engine up to the attempt budget with a fixed
// inter-attempt delay.
func (m *Manager) waitForEngine(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err := m.store.Ping(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		m.logger.Warn("Search engine not ready",
			zap.Int("attempt", attempt),
			zap.Int("budget", m.attempts),
			zap.Error(lastErr),
		)

		if attempt == m.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, ctx.Err())
		case <-time.After(m.delay):
		}
	}
	return fmt.Errorf("%w: engine unreachable after %d attempts: %w",
		domain.ErrStorageUnavailable, m.attempts, lastErr)
}

package dialogue

import (
	"context"
	"sync"

	"github.com/nidhogg/concept-lab/internal/service"
	"go.uber.org/zap"
)

// Manager keeps one Session per conversation key, typically
// platform:channel:user.
type Manager struct {
	svc      *service.ExplanationService
	sessions map[string]*managed
	mu       sync.Mutex
	logger   *zap.Logger
}

type managed struct {
	mu      sync.Mutex
	session *Session
}

func NewManager(svc *service.ExplanationService, logger *zap.Logger) *Manager {
	return &Manager{
		svc:      svc,
		sessions: make(map[string]*managed),
		logger:   logger,
	}
}

// Handle feeds input to the session for key. A key without a session gets
// the welcome banner; if its first message already picks a concept (or
// quits) that input is applied as well. A session that ends is forgotten.
func (m *Manager) Handle(ctx context.Context, key, input string) string {
	m.mu.Lock()
	entry, ok := m.sessions[key]
	if !ok {
		entry = &managed{session: NewSession(m.svc)}
		m.sessions[key] = entry
	}
	m.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	var banner string
	if !ok {
		m.logger.Info("dialogue started", zap.String("key", key))
		banner = entry.session.Start()
		if !selectsConcept(input) {
			return banner
		}
		banner += "\n"
	}

	reply := entry.session.Step(ctx, input)
	if entry.session.Done() {
		m.Reset(key)
		m.logger.Info("dialogue ended", zap.String("key", key))
	}
	return banner + reply
}

// selectsConcept reports whether input answers the concept menu, as
// opposed to a greeting.
func selectsConcept(input string) bool {
	sel := service.ParseSelector(input)
	if sel.IsQuit() {
		return true
	}
	_, ok := sel.Concept()
	return ok
}

// Reset drops the session for key. It reports whether one existed.
func (m *Manager) Reset(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[key]
	delete(m.sessions, key)
	return ok
}

// Active returns the number of open sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

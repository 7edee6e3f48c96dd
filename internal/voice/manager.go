package voice

import (
	"fmt"
	"sync"
)

// Factory builds the voice session for one chat session id. The manager
// calls it at most once per id.
type Factory func(sessionID string) (*Session, error)

// Manager keys one voice session per chat session, created lazily on the
// first voice interaction.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  Factory
}

func NewManager(factory Factory) (*Manager, error) {
	if factory == nil {
		return nil, fmt.Errorf("voice session factory required")
	}
	return &Manager{
		sessions: make(map[string]*Session),
		factory:  factory,
	}, nil
}

// ForSession returns the voice session bound to the chat session id.
func (m *Manager) ForSession(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[sessionID]; ok {
		return sess, nil
	}
	sess, err := m.factory(sessionID)
	if err != nil {
		return nil, fmt.Errorf("create voice session: %w", err)
	}
	m.sessions[sessionID] = sess
	return sess, nil
}

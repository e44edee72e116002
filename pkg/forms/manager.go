package forms

import (
	"sync"

	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/notify"
)

// Manager hands out one Workflow per user
type Manager struct {
	registry *Registry
	notifier notify.Notifier
	cfg      Config

	mu        sync.Mutex
	workflows map[string]*Workflow
}

// NewManager creates a Manager whose workflows share registry and notifier
func NewManager(registry *Registry, notifier notify.Notifier, cfg Config) *Manager {
	return &Manager{
		registry:  registry,
		notifier:  notifier,
		cfg:       cfg,
		workflows: map[string]*Workflow{},
	}
}

// Registry returns the shared submission registry
func (m *Manager) Registry() *Registry {
	return m.registry
}

// For returns the session's workflow, creating it on first use. A workflow
// keeps the session it was created with.
func (m *Manager) For(s identity.Session) *Workflow {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.workflows[s.UserID]
	if !ok {
		w = NewWorkflow(s, m.registry, m.notifier, m.cfg)
		m.workflows[s.UserID] = w
	}
	return w
}

// Close stops every running analysis
func (m *Manager) Close() {
	m.mu.Lock()
	ws := make([]*Workflow, 0, len(m.workflows))
	for _, w := range m.workflows {
		ws = append(ws, w)
	}
	m.mu.Unlock()

	for _, w := range ws {
		w.Close()
	}
}

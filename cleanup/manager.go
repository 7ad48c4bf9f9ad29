package cleanup

import "github.com/crafted-tech/logonapp/installer"

// Manager runs an ordered list of strategies against one logger.
type Manager struct {
	log        *installer.Logger
	strategies []Strategy
}

// NewManager returns an empty manager logging to log.
func NewManager(log *installer.Logger) *Manager {
	return &Manager{log: log}
}

// Add appends s. Nil strategies are ignored.
func (m *Manager) Add(s Strategy) {
	if s == nil {
		return
	}
	m.strategies = append(m.strategies, s)
}

// Len returns the number of strategies.
func (m *Manager) Len() int { return len(m.strategies) }

// Names returns the strategy names in execution order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.strategies))
	for i, s := range m.strategies {
		names[i] = s.Name()
	}
	return names
}

// ExecuteAll runs every strategy in order, including those after a
// failure, and reports whether all of them succeeded.
func (m *Manager) ExecuteAll() bool {
	success := true
	for _, s := range m.strategies {
		m.log.Info("Executing cleanup strategy: %s", s.Name())
		if !s.Execute(m.log) {
			m.log.Warn("Strategy %s reported issues.", s.Name())
			success = false
		}
	}
	return success
}

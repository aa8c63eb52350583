package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager tracks the open sales sessions by cart id. Carts are transient:
// they live in memory only and are discarded on checkout or drop.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager creates an empty cart manager.
func NewManager() *Manager {
	return &Manager{carts: map[string]*Cart{}}
}

// Create opens a new sales session and returns its id.
func (m *Manager) Create() (string, *Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	c := New()
	m.carts[id] = c
	return id, c
}

// Get resolves a session id to its cart.
func (m *Manager) Get(id string) (*Cart, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[id]
	return c, ok
}

// Drop discards a session, e.g. on checkout or navigation away.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, id)
}

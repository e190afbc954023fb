package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Manager is a registry of games keyed by id, safe for concurrent use.
type Manager struct {
	cfg   *config.Config
	mu    sync.RWMutex
	games map[string]*Game
	next  int
}

// NewManager creates an empty registry. Games are created with cfg.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{cfg: cfg, games: make(map[string]*Game)}
}

// Create starts a new game and returns it. It fails once cfg.Game.MaxGames
// games are live (0 = unlimited).
func (m *Manager) Create() (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit := m.cfg.Game.MaxGames; limit > 0 && len(m.games) >= limit {
		return nil, errors.Wrapf(errors.ErrTooManyGames, "%d games", limit)
	}
	m.next++
	id := fmt.Sprintf("g%d", m.next)
	g, err := NewGame(id, m.cfg)
	if err != nil {
		return nil, err
	}
	m.games[id] = g
	m.cfg.Logf(config.Outcomes, "game %s: created", id)
	return g, nil
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGame, "game %q", id)
	}
	return g, nil
}

// Remove drops the game with the given id.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownGame, "game %q", id)
	}
	delete(m.games, id)
	m.cfg.Logf(config.Outcomes, "game %s: removed", id)
	return nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// IDs returns the live game ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

package frontier

import (
	"errors"
	"sync"

	"github.com/mwalcott/frontier/protocol"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrUnknownPlayerID = errors.New("unknown player ID")
	ErrDuplicateGameID = errors.New("game ID already in use")
)

// GameStore holds the engines for every match on a server
type GameStore interface {
	FindGame(gameID string) GameEngine
	AddGame(engine GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.Mutex
	games          map[string]GameEngine
	pendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games:          map[string]GameEngine{},
		pendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(engine GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[engine.ID()]; exists {
		return ErrDuplicateGameID
	}
	s.games[engine.ID()] = engine
	return nil
}

// AddPendingPlayer records a player who has joined a game but not yet
// connected a websocket
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; !exists {
		return ErrUnknownGameID
	}
	s.pendingPlayers[gameID] = append(s.pendingPlayers[gameID], protocol.PlayerInfo{
		PlayerID: playerID,
		Name:     name,
	})
	return nil
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, info := range s.pendingPlayers[gameID] {
		if info.PlayerID == playerID {
			return &s.pendingPlayers[gameID][i]
		}
	}
	return nil
}

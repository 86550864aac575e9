package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	"github.com/mwalcott/frontier"
	"github.com/mwalcott/frontier/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type NewGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"is_admin"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type JoinGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type GetGameRes struct {
	GameID  string `json:"game_id"`
	Started bool   `json:"started"`
	Players int    `json:"players"`
}

// GameServer serves the lobby endpoints and the websocket action feed
type GameServer struct {
	store frontier.GameStore
	http.Server
}

// NewGameID generates a six-letter game code
func NewGameID(rng *rand.Rand) string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rng.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store frontier.GameStore, cfg Config) *GameServer {
	s := new(GameServer)
	s.store = store

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/start", http.HandlerFunc(s.HandleStartGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Handler = handlers.LoggingHandler(log.Writer(), cors(router))
	s.Addr = cfg.Addr

	return s
}

// HandleNewGame creates a pending game with the requester as creator
func (s *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req NewGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "a name is required to create a game", http.StatusBadRequest)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameID := NewGameID(rng)
	playerID := frontier.NewID()

	engine := frontier.New(gameID, playerID, game.GameOpts{})
	if err := s.store.AddGame(engine); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.AddPendingPlayer(gameID, playerID, req.Name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     req.Name,
		Admin:    true,
	})
}

// HandleJoinGame adds a player to a pending game
func (s *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req JoinGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" || req.Name == "" {
		http.Error(w, "a game ID and name are required to join a game", http.StatusBadRequest)
		return
	}

	if s.store.FindGame(req.GameID) == nil {
		http.Error(w, unknownGameIDMsg(req.GameID), http.StatusNotFound)
		return
	}

	playerID := frontier.NewID()
	if err := s.store.AddPendingPlayer(req.GameID, playerID, req.Name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, JoinGameRes{
		GameID:   req.GameID,
		PlayerID: playerID,
		Name:     req.Name,
	})
}

// HandleFindGame reports the status of a game
func (s *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/game/")

	engine := s.store.FindGame(gameID)
	if engine == nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, GetGameRes{
		GameID:  gameID,
		Started: engine.Game() != nil,
		Players: len(engine.Players()),
	})
}

// HandleStartGame begins the match for a pending game
func (s *GameServer) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	gameID := r.URL.Query().Get("game_id")
	engine := s.store.FindGame(gameID)
	if engine == nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	if err := engine.Begin(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleWS upgrades a pending player's connection and registers them
// with their game engine
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	playerID := r.URL.Query().Get("player_id")

	engine := s.store.FindGame(gameID)
	if engine == nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	info := s.store.FindPendingPlayer(gameID, playerID)
	if info == nil {
		http.Error(w, "unknown player ID", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %s", err)
		return
	}

	player := frontier.NewWSPlayer(info.PlayerID, info.Name, conn, engine)
	if err := engine.AddPlayer(player); err != nil {
		log.Printf("could not add player %s to game %s: %s", playerID, gameID, err)
		conn.Close()
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

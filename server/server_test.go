package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/mwalcott/frontier"
	utils "github.com/mwalcott/frontier/internal"
	"github.com/mwalcott/frontier/protocol"
)

func newTestServer() (*GameServer, frontier.GameStore) {
	store := frontier.NewInMemoryGameStore()
	return NewServer(store, Config{Addr: ":0", AllowedOrigin: "*"}), store
}

func newGameRequest(name string) *http.Request {
	body, _ := json.Marshal(NewGameReq{Name: name})
	return httptest.NewRequest(http.MethodPost, "/new", bytes.NewReader(body))
}

func joinGameRequest(gameID, name string) *http.Request {
	body, _ := json.Marshal(JoinGameReq{GameID: gameID, Name: name})
	return httptest.NewRequest(http.MethodPost, "/join", bytes.NewReader(body))
}

// createGame drives HandleNewGame and returns the created ids
func createGame(t *testing.T, s *GameServer, name string) NewGameRes {
	t.Helper()

	rec := httptest.NewRecorder()
	s.HandleNewGame(rec, newGameRequest(name))
	utils.AssertEqual(t, rec.Code, http.StatusCreated)

	var res NewGameRes
	utils.AssertNoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestHandleNewGame(t *testing.T) {
	t.Run("creates a pending game", func(t *testing.T) {
		s, store := newTestServer()

		res := createGame(t, s, "Harry")

		utils.AssertEqual(t, len(res.GameID), 6)
		utils.AssertNotEmptyString(t, res.PlayerID)
		utils.AssertEqual(t, res.Name, "Harry")
		assert.True(t, res.Admin)

		engine := store.FindGame(res.GameID)
		assert.NotNil(t, engine)
		utils.AssertEqual(t, engine.CreatorID(), res.PlayerID)
		assert.NotNil(t, store.FindPendingPlayer(res.GameID, res.PlayerID))
	})

	t.Run("requires a name", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleNewGame(rec, newGameRequest(""))
		utils.AssertEqual(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("only POST", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleNewGame(rec, httptest.NewRequest(http.MethodGet, "/new", nil))
		utils.AssertEqual(t, rec.Code, http.StatusMethodNotAllowed)
	})
}

func TestHandleJoinGame(t *testing.T) {
	t.Run("joins an existing game", func(t *testing.T) {
		s, store := newTestServer()
		created := createGame(t, s, "Harry")

		rec := httptest.NewRecorder()
		s.HandleJoinGame(rec, joinGameRequest(created.GameID, "Luna"))
		utils.AssertEqual(t, rec.Code, http.StatusOK)

		var res JoinGameRes
		utils.AssertNoError(t, json.NewDecoder(rec.Body).Decode(&res))
		utils.AssertEqual(t, res.GameID, created.GameID)
		utils.AssertNotEmptyString(t, res.PlayerID)
		assert.NotEqual(t, created.PlayerID, res.PlayerID)
		assert.NotNil(t, store.FindPendingPlayer(created.GameID, res.PlayerID))
	})

	t.Run("unknown game is a 404", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleJoinGame(rec, joinGameRequest("ABSENT", "Luna"))
		utils.AssertEqual(t, rec.Code, http.StatusNotFound)
	})

	t.Run("requires a game id and name", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleJoinGame(rec, joinGameRequest("", ""))
		utils.AssertEqual(t, rec.Code, http.StatusBadRequest)
	})
}

func TestHandleFindGame(t *testing.T) {
	t.Run("reports a pending game", func(t *testing.T) {
		s, _ := newTestServer()
		created := createGame(t, s, "Harry")

		rec := httptest.NewRecorder()
		s.HandleFindGame(rec, httptest.NewRequest(http.MethodGet, "/game/"+created.GameID, nil))
		utils.AssertEqual(t, rec.Code, http.StatusOK)

		var res GetGameRes
		utils.AssertNoError(t, json.NewDecoder(rec.Body).Decode(&res))
		utils.AssertEqual(t, res.GameID, created.GameID)
		assert.False(t, res.Started)
		utils.AssertEqual(t, res.Players, 0)
	})

	t.Run("unknown game is a 404", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleFindGame(rec, httptest.NewRequest(http.MethodGet, "/game/ABSENT", nil))
		utils.AssertEqual(t, rec.Code, http.StatusNotFound)
	})
}

func TestHandleStartGame(t *testing.T) {
	startReq := func(gameID string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/start?game_id="+gameID, nil)
	}

	t.Run("too few connected players is a conflict", func(t *testing.T) {
		s, _ := newTestServer()
		created := createGame(t, s, "Harry")

		rec := httptest.NewRecorder()
		s.HandleStartGame(rec, startReq(created.GameID))
		utils.AssertEqual(t, rec.Code, http.StatusConflict)
	})

	t.Run("starts once enough players are connected", func(t *testing.T) {
		s, store := newTestServer()
		created := createGame(t, s, "Harry")

		engine := store.FindGame(created.GameID)
		utils.AssertNoError(t, engine.AddPlayer(frontier.NewTestPlayer("a", "Harry")))
		utils.AssertNoError(t, engine.AddPlayer(frontier.NewTestPlayer("b", "Luna")))
		waitForPlayers(t, engine, 2)

		rec := httptest.NewRecorder()
		s.HandleStartGame(rec, startReq(created.GameID))
		utils.AssertEqual(t, rec.Code, http.StatusOK)
		assert.NotNil(t, engine.Game())

		rec = httptest.NewRecorder()
		s.HandleStartGame(rec, startReq(created.GameID))
		utils.AssertEqual(t, rec.Code, http.StatusConflict)
	})

	t.Run("unknown game is a 404", func(t *testing.T) {
		s, _ := newTestServer()
		rec := httptest.NewRecorder()
		s.HandleStartGame(rec, startReq("ABSENT"))
		utils.AssertEqual(t, rec.Code, http.StatusNotFound)
	})
}

func TestHandleWS(t *testing.T) {
	t.Run("unknown players cannot connect", func(t *testing.T) {
		s, _ := newTestServer()
		created := createGame(t, s, "Harry")

		srv := httptest.NewServer(http.HandlerFunc(s.HandleWS))
		defer srv.Close()

		url := wsURL(srv, created.GameID, "not-a-player")
		_, res, err := websocket.DefaultDialer.Dial(url, nil)
		utils.AssertErrored(t, err)
		utils.AssertEqual(t, res.StatusCode, http.StatusNotFound)
	})

	t.Run("pending players connect and play", func(t *testing.T) {
		s, store := newTestServer()
		created := createGame(t, s, "Harry")

		rec := httptest.NewRecorder()
		s.HandleJoinGame(rec, joinGameRequest(created.GameID, "Luna"))
		var joined JoinGameRes
		utils.AssertNoError(t, json.NewDecoder(rec.Body).Decode(&joined))

		srv := httptest.NewServer(http.HandlerFunc(s.HandleWS))
		defer srv.Close()

		creatorConn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, created.GameID, created.PlayerID), nil)
		utils.AssertNoError(t, err)
		defer creatorConn.Close()

		joinerConn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, created.GameID, joined.PlayerID), nil)
		utils.AssertNoError(t, err)
		defer joinerConn.Close()

		engine := store.FindGame(created.GameID)
		waitForPlayers(t, engine, 2)
		utils.AssertNoError(t, engine.Begin())

		// the creator moves first: a setup settlement
		req := protocol.ActionRequest{Action: protocol.PlaceSettlement, Vertex: "v_0_0_0"}
		utils.AssertNoError(t, creatorConn.WriteJSON(req))

		for _, conn := range []*websocket.Conn{creatorConn, joinerConn} {
			conn.SetReadDeadline(time.Now().Add(time.Second))

			var msg struct {
				Response protocol.ActionResponse `json:"response"`
			}
			utils.AssertNoError(t, conn.ReadJSON(&msg))
			assert.True(t, msg.Response.Success, msg.Response.Error)
			utils.AssertEqual(t, msg.Response.PlayerID, created.PlayerID)
		}
	})
}

func waitForPlayers(t *testing.T, engine frontier.GameEngine, n int) {
	t.Helper()

	utils.Within(t, time.Second, func() {
		for len(engine.Players()) < n {
			time.Sleep(5 * time.Millisecond)
		}
	})
}

func wsURL(srv *httptest.Server, gameID, playerID string) string {
	return fmt.Sprintf("%s/ws?game_id=%s&player_id=%s",
		strings.Replace(srv.URL, "http", "ws", 1), gameID, playerID)
}

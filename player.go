package frontier

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/mwalcott/frontier/protocol"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a connected player in the real world
type Player interface {
	ID() string
	Name() string
	Send(data []byte) error
}

// WSPlayer is a player reached over a websocket connection
type WSPlayer struct {
	id     string
	name   string
	conn   *websocket.Conn
	engine GameEngine
}

// NewWSPlayer constructs a WSPlayer and starts relaying its messages
// to the engine
func NewWSPlayer(id, name string, conn *websocket.Conn, engine GameEngine) *WSPlayer {
	p := &WSPlayer{
		id:     id,
		name:   name,
		conn:   conn,
		engine: engine,
	}

	go p.readPump()

	return p
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// Send writes a message to the player's connection
func (p *WSPlayer) Send(data []byte) error {
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

// readPump forwards inbound action requests until the connection closes
func (p *WSPlayer) readPump() {
	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}

		var req protocol.ActionRequest
		if err := json.Unmarshal(data, &req); err != nil {
			continue
		}
		req.PlayerID = p.id
		p.engine.Receive(req)
	}
}

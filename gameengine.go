package frontier

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/mwalcott/frontier/board"
	"github.com/mwalcott/frontier/game"
	"github.com/mwalcott/frontier/protocol"
)

var (
	ErrGameNotStarted     = errors.New("game has not started")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrUnknownAction      = errors.New("unknown action")
)

// playState represents the lifecycle of an engine
// idle -> players joining, no match yet
// inProgress -> match running
// done -> match finished
type playState int

const (
	idle playState = iota
	inProgress
	done
)

// GameEngine owns one match: the authoritative game state plus the
// connected players. All mutations funnel through Apply, which
// serializes them.
type GameEngine interface {
	ID() string
	CreatorID() string
	Game() *game.Game
	Players() []protocol.PlayerInfo
	AddPlayer(Player) error
	Begin() error
	Apply(protocol.ActionRequest) protocol.ActionResponse
	Receive(protocol.ActionRequest)
}

type gameEngine struct {
	id        string
	creatorID string

	mu        sync.Mutex
	playState playState
	players   []Player
	game      *game.Game
	opts      game.GameOpts

	registerCh chan Player
	inboundCh  chan protocol.ActionRequest
}

// stateMessage is the envelope broadcast to players after each action
type stateMessage struct {
	Response protocol.ActionResponse `json:"response"`
	State    *game.Game              `json:"state"`
}

// New constructs a GameEngine and starts listening for joiners and actions
func New(id, creatorID string, opts game.GameOpts) *gameEngine {
	engine := &gameEngine{
		id:         id,
		creatorID:  creatorID,
		opts:       opts,
		registerCh: make(chan Player),
		inboundCh:  make(chan protocol.ActionRequest),
	}

	go engine.listen()

	return engine
}

func (e *gameEngine) ID() string {
	return e.id
}

func (e *gameEngine) CreatorID() string {
	return e.creatorID
}

func (e *gameEngine) Game() *game.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game
}

func (e *gameEngine) Players() []protocol.PlayerInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	info := []protocol.PlayerInfo{}
	for _, p := range e.players {
		info = append(info, protocol.PlayerInfo{PlayerID: p.ID(), Name: p.Name()})
	}
	return info
}

// AddPlayer registers a player with the engine
func (e *gameEngine) AddPlayer(p Player) error {
	e.registerCh <- p
	return nil
}

// Receive forwards an action request for serialized handling
func (e *gameEngine) Receive(req protocol.ActionRequest) {
	e.inboundCh <- req
}

// Begin starts the match with the players registered so far
func (e *gameEngine) Begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.playState != idle {
		return ErrGameAlreadyStarted
	}

	seats := []game.PlayerSeat{}
	for _, p := range e.players {
		seats = append(seats, game.PlayerSeat{ID: p.ID(), Name: p.Name()})
	}

	g, err := game.NewGame(seats, e.opts)
	if err != nil {
		return err
	}

	e.game = g
	e.playState = inProgress
	return nil
}

// Apply validates and applies one action request against the game
func (e *gameEngine) Apply(req protocol.ActionRequest) protocol.ActionResponse {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := protocol.ActionResponse{PlayerID: req.PlayerID, Action: req.Action}
	if e.game == nil {
		resp.Error = ErrGameNotStarted.Error()
		return resp
	}

	var err error
	switch req.Action {
	case protocol.PlaceSettlement:
		err = e.game.PlaceSettlement(req.PlayerID, req.Vertex)
	case protocol.PlaceRoad:
		err = e.game.PlaceRoad(req.PlayerID, req.Edge)
	case protocol.UpgradeToCity:
		err = e.game.UpgradeToCity(req.PlayerID, req.Vertex)
	case protocol.BuyDevCard:
		err = e.game.BuyDevCard(req.PlayerID)
	case protocol.PlayDevCard:
		err = e.playDevCard(req)
	case protocol.MoveRobber:
		err = e.game.MoveRobber(req.PlayerID, req.Hex, req.StealFrom)
	case protocol.RollDice:
		resp.Roll, err = e.game.RollDice(req.PlayerID)
	case protocol.DiscardResources:
		var discard game.Hand
		if discard, err = handFromRequest(req.Resources); err == nil {
			err = e.game.DiscardResources(req.PlayerID, discard)
		}
	case protocol.BankTrade:
		err = e.bankTrade(req)
	case protocol.EndTurn:
		err = e.game.EndTurn(req.PlayerID)
	default:
		err = ErrUnknownAction
	}

	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Success = true
	if e.game.Phase == game.Finished {
		e.playState = done
	}
	return resp
}

func (e *gameEngine) playDevCard(req protocol.ActionRequest) error {
	card, err := game.ParseDevCard(req.Card)
	if err != nil {
		return err
	}

	var payload game.PlayPayload
	if req.Give != "" {
		if payload.Monopoly, err = board.ParseResource(req.Give); err != nil {
			return err
		}
	}
	slot := 0
	for name, n := range req.Resources {
		res, err := board.ParseResource(name)
		if err != nil {
			return err
		}
		for i := 0; i < n && slot < len(payload.Plenty); i++ {
			payload.Plenty[slot] = res
			slot++
		}
	}

	return e.game.PlayDevCard(req.PlayerID, card, payload)
}

func (e *gameEngine) bankTrade(req protocol.ActionRequest) error {
	give, err := board.ParseResource(req.Give)
	if err != nil {
		return err
	}
	receive, err := board.ParseResource(req.Receive)
	if err != nil {
		return err
	}
	return e.game.BankTrade(req.PlayerID, give, receive)
}

func handFromRequest(resources map[string]int) (game.Hand, error) {
	hand := game.Hand{}
	for name, n := range resources {
		res, err := board.ParseResource(name)
		if err != nil {
			return nil, err
		}
		hand.Add(res, n)
	}
	return hand, nil
}

// listen serializes joiners and inbound actions onto the engine
func (e *gameEngine) listen() {
	for {
		select {
		case joiner := <-e.registerCh:
			e.mu.Lock()
			e.players = append(e.players, joiner)
			e.mu.Unlock()

		case req := <-e.inboundCh:
			resp := e.Apply(req)
			e.broadcast(resp)
		}
	}
}

// broadcast sends each player the action outcome and their redacted
// view. The views are built under the lock so a concurrent Apply
// cannot mutate the state mid-read; sends happen after release since
// a player's connection may block.
func (e *gameEngine) broadcast(resp protocol.ActionResponse) {
	type outbound struct {
		player Player
		data   []byte
	}

	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return
	}
	queue := []outbound{}
	for _, p := range e.players {
		msg := stateMessage{Response: resp, State: e.game.PlayerView(p.ID())}
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		queue = append(queue, outbound{player: p, data: data})
	}
	e.mu.Unlock()

	for _, out := range queue {
		out.player.Send(out.data)
	}
}

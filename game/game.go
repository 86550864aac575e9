package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/mwalcott/frontier/board"
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 4 players allowed")
)

// WinningPoints is the victory point threshold that ends the game
const WinningPoints = 10

const maxHandBeforeDiscard = 7

// Vertex is the mutable occupancy of one physical settlement slot.
// Stored under its canonical key only; every equivalent key resolves
// to the same record at read time.
type Vertex struct {
	Building Building `json:"building"`
	Owner    int      `json:"owner"`
}

// Edge is the mutable occupancy of one physical road slot. Presence in
// the edge map is the road flag; stored under its canonical key only.
type Edge struct {
	Owner int `json:"owner"`
}

// Game is the authoritative state of one match. It is mutated in place
// by the action methods; callers serialize concurrent requests into a
// single queue before they reach it.
type Game struct {
	Board *board.Board `json:"board"`

	// sparse occupancy maps, canonical coordinate keys only
	Vertices map[string]*Vertex `json:"vertices"`
	Edges    map[string]*Edge   `json:"edges"`

	Players          []*Player `json:"players"`
	CurrentPlayerIdx int       `json:"currentPlayerIdx"`

	Phase Phase     `json:"phase"`
	Turn  TurnPhase `json:"turnPhase"`

	RobberHex string `json:"robberHex"`

	LongestRoadPlayer int `json:"longestRoadPlayer"` // -1 for no holder
	LongestRoadLength int `json:"longestRoadLength"`
	LargestArmyPlayer int `json:"largestArmyPlayer"` // -1 for no holder

	HasRolledThisTurn     bool `json:"hasRolledThisTurn"`
	DevCardPlayedThisTurn bool `json:"devCardPlayedThisTurn"`
	FreeRoads             int  `json:"freeRoads"`

	DevDeck []DevCard `json:"devDeck"`

	// outstanding discard obligations after a rolled 7, player idx -> cards owed
	PendingDiscards map[int]int `json:"pendingDiscards"`

	setupRound      int
	setupSettlement string // canonical vertex key placed this setup turn

	roller Roller
	rng    *rand.Rand
}

// GameOpts are optional overrides for NewGame. Zero values fall back
// to a generated board, a time-seeded randomness source and the
// standard shuffled development deck.
type GameOpts struct {
	Board   *board.Board
	Roller  Roller
	Rand    *rand.Rand
	DevDeck []DevCard
}

// PlayerSeat is the identity of one player joining a new game
type PlayerSeat struct {
	ID   string
	Name string
}

// NewGame constructs a game in the setup phase with the first player to act
func NewGame(seats []PlayerSeat, opts GameOpts) (*Game, error) {
	if len(seats) < 2 {
		return nil, ErrTooFewPlayers
	}
	if len(seats) > 4 {
		return nil, ErrTooManyPlayers
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := opts.Board
	if b == nil {
		b = board.Generate(rng)
	}
	roller := opts.Roller
	if roller == nil {
		roller = NewRoller(rng)
	}
	deck := opts.DevDeck
	if deck == nil {
		deck = NewDevDeck(rng)
	}

	g := &Game{
		Board:             b,
		Vertices:          map[string]*Vertex{},
		Edges:             map[string]*Edge{},
		Phase:             Setup,
		Turn:              Main,
		RobberHex:         b.DesertKey,
		LongestRoadPlayer: -1,
		LargestArmyPlayer: -1,
		DevDeck:           deck,
		PendingDiscards:   map[int]int{},
		roller:            roller,
		rng:               rng,
	}
	for _, seat := range seats {
		g.Players = append(g.Players, newPlayer(seat.ID, seat.Name))
	}

	return g, nil
}

// playerIndex resolves a player id to its seat index, -1 if unknown
func (g *Game) playerIndex(playerID string) int {
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// currentPlayer validates that playerID exists and holds the turn
func (g *Game) currentPlayer(playerID string) (int, error) {
	idx := g.playerIndex(playerID)
	if idx < 0 {
		return -1, ErrUnknownPlayer
	}
	if g.Phase == Finished {
		return -1, ErrGameOver
	}
	if idx != g.CurrentPlayerIdx {
		return -1, ErrNotYourTurn
	}
	return idx, nil
}

// vertexAt resolves any equivalent vertex key to its canonical key and
// occupancy. The record is nil for an empty slot.
func (g *Game) vertexAt(key string) (*Vertex, string, error) {
	vc, err := board.ParseVertexKey(key)
	if err != nil {
		return nil, "", err
	}
	ck := board.CanonicalVertex(vc).Key()
	return g.Vertices[ck], ck, nil
}

// edgeAt resolves any equivalent edge key to its canonical key and
// occupancy. The record is nil for an empty slot.
func (g *Game) edgeAt(key string) (*Edge, string, error) {
	ec, err := board.ParseEdgeKey(key)
	if err != nil {
		return nil, "", err
	}
	ck := board.CanonicalEdge(ec).Key()
	return g.Edges[ck], ck, nil
}

// VertexOwner reports the building and owner at any equivalent key for
// a vertex. Owner is -1 when the slot is empty.
func (g *Game) VertexOwner(key string) (Building, int, error) {
	v, _, err := g.vertexAt(key)
	if err != nil {
		return NoBuilding, -1, err
	}
	if v == nil {
		return NoBuilding, -1, nil
	}
	return v.Building, v.Owner, nil
}

// RoadOwner reports the owner of a road at any equivalent key for an
// edge, -1 when the slot is empty.
func (g *Game) RoadOwner(key string) (int, error) {
	e, _, err := g.edgeAt(key)
	if err != nil {
		return -1, err
	}
	if e == nil {
		return -1, nil
	}
	return e.Owner, nil
}

// checkVictory moves the game to Finished the instant any player's
// true total reaches the threshold.
func (g *Game) checkVictory() {
	for _, p := range g.Players {
		if p.TotalVictoryPoints() >= WinningPoints {
			g.Phase = Finished
			return
		}
	}
}

// Winner returns the winning player, or nil while the game is running
func (g *Game) Winner() *Player {
	if g.Phase != Finished {
		return nil
	}
	for _, p := range g.Players {
		if p.TotalVictoryPoints() >= WinningPoints {
			return p
		}
	}
	return nil
}

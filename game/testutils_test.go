package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mwalcott/frontier/board"
	utils "github.com/mwalcott/frontier/internal"
)

type stubRoller struct {
	a, b int
}

func (r stubRoller) Roll() (int, int) {
	return r.a, r.b
}

func testSeats(n int) []PlayerSeat {
	seats := []PlayerSeat{}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%d", i)
		seats = append(seats, PlayerSeat{ID: id, Name: id})
	}
	return seats
}

// newPlayingGame skips the setup phase: main phase, first player to act
func newPlayingGame(t *testing.T, numPlayers int, opts GameOpts) *Game {
	t.Helper()

	if opts.Board == nil {
		opts.Board = board.Fixed()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	g, err := NewGame(testSeats(numPlayers), opts)
	utils.AssertNoError(t, err)

	g.Phase = Playing
	g.Turn = Main
	g.HasRolledThisTurn = true
	return g
}

// putBuilding writes a building straight into the state, canonically keyed
func putBuilding(g *Game, idx int, vertexKey string, kind Building) string {
	vc, err := board.ParseVertexKey(vertexKey)
	if err != nil {
		panic(err)
	}
	ck := board.CanonicalVertex(vc).Key()
	g.Vertices[ck] = &Vertex{Building: kind, Owner: idx}
	return ck
}

// putRoad writes a road straight into the state, canonically keyed
func putRoad(g *Game, idx int, edgeKey string) string {
	ec, err := board.ParseEdgeKey(edgeKey)
	if err != nil {
		panic(err)
	}
	ck := board.CanonicalEdge(ec).Key()
	g.Edges[ck] = &Edge{Owner: idx}
	return ck
}

// hexRim returns the keys for the n consecutive edges around a hex
func hexRim(q, r, n int) []string {
	keys := []string{}
	for d := 0; d < n; d++ {
		keys = append(keys, board.EdgeCoord{Q: q, R: r, Dir: d}.Key())
	}
	return keys
}

package game

import (
	"github.com/mwalcott/frontier/board"
)

// Hand is a count of resource cards per resource
type Hand map[board.Resource]int

// building and card costs
var (
	roadCost       = Hand{board.Brick: 1, board.Lumber: 1}
	settlementCost = Hand{board.Brick: 1, board.Lumber: 1, board.Grain: 1, board.Wool: 1}
	cityCost       = Hand{board.Ore: 3, board.Grain: 2}
	devCardCost    = Hand{board.Ore: 1, board.Grain: 1, board.Wool: 1}
)

// Count returns the total number of cards in the hand
func (h Hand) Count() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// CanAfford reports whether the hand covers the cost
func (h Hand) CanAfford(cost Hand) bool {
	for res, n := range cost {
		if h[res] < n {
			return false
		}
	}
	return true
}

// Add credits n cards of a resource
func (h Hand) Add(res board.Resource, n int) {
	h[res] += n
	if h[res] == 0 {
		delete(h, res)
	}
}

// Pay debits the cost from the hand. Callers check CanAfford first.
func (h Hand) Pay(cost Hand) {
	for res, n := range cost {
		h.Add(res, -n)
	}
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	c := Hand{}
	for res, n := range h {
		c[res] = n
	}
	return c
}

// distributeResources credits every player for the rolled number.
// Each hex matching the roll pays its resource to the owner of every
// occupied vertex on its rim: 1 per settlement, 2 per city. The robber's
// hex and the desert never pay. Each (hex, physical vertex) pair is
// credited at most once even though the vertex is probed through all
// six directions.
func (g *Game) distributeResources(roll int) {
	for key, hex := range g.Board.Hexes {
		if hex.Number != roll || key == g.RobberHex {
			continue
		}
		res := hex.Resource()
		if res == board.NoResource {
			continue
		}

		credited := map[string]bool{}
		for d := 0; d < 6; d++ {
			ck := board.CanonicalVertex(board.VertexCoord{Q: hex.Coord.Q, R: hex.Coord.R, Dir: d}).Key()
			if credited[ck] {
				continue
			}
			credited[ck] = true

			v, ok := g.Vertices[ck]
			if !ok {
				continue
			}
			n := 1
			if v.Building == City {
				n = 2
			}
			g.Players[v.Owner].Resources.Add(res, n)
		}
	}
}

package game

import (
	"github.com/mwalcott/frontier/board"
)

// minimum qualifying road length for the bonus
const longestRoadThreshold = 5

const longestRoadBonus = 2

const largestArmyThreshold = 3

const largestArmyBonus = 2

type roadStep struct {
	edge string // canonical edge key
	to   string // canonical vertex key at the far end
}

// recalcLongestRoad recomputes every player's road length and settles
// the bonus. Called after every road placement and every settlement
// placement, since a settlement can cut an opponent's road.
func (g *Game) recalcLongestRoad() {
	for i := range g.Players {
		g.Players[i].RoadLength = g.longestRoadFor(i)
	}
	g.awardLongestRoad()
}

// longestRoadFor is the length in edges of the player's longest
// traversal that reuses no edge. The walk runs a depth-first search
// from every vertex the player's roads touch; arriving at a vertex
// holding an opponent's building ends the walk there, though starting
// on one is allowed. A full cycle counts all its edges because the
// walk may return to its starting vertex.
func (g *Game) longestRoadFor(idx int) int {
	adjacency := map[string][]roadStep{}
	for key, e := range g.Edges {
		if e.Owner != idx {
			continue
		}
		ec, err := board.ParseEdgeKey(key)
		if err != nil {
			continue
		}
		ends := board.EdgeVertices(ec)
		a := board.CanonicalVertex(ends[0]).Key()
		b := board.CanonicalVertex(ends[1]).Key()
		adjacency[a] = append(adjacency[a], roadStep{edge: key, to: b})
		adjacency[b] = append(adjacency[b], roadStep{edge: key, to: a})
	}

	best := 0
	used := map[string]bool{}

	var walk func(at string, depth int)
	walk = func(at string, depth int) {
		if depth > best {
			best = depth
		}
		if depth > 0 {
			if v, ok := g.Vertices[at]; ok && v.Building != NoBuilding && v.Owner != idx {
				return
			}
		}
		for _, step := range adjacency[at] {
			if used[step.edge] {
				continue
			}
			used[step.edge] = true
			walk(step.to, depth+1)
			used[step.edge] = false
		}
	}

	for vertex := range adjacency {
		walk(vertex, 0)
	}
	return best
}

// awardLongestRoad settles the 2-point bonus. The holder keeps it on a
// tie; it transfers only to a unique strict exceeder; it is revoked
// outright if the holder's own length falls below the threshold. With
// no holder a tie for the maximum awards no one.
func (g *Game) awardLongestRoad() {
	holder := g.LongestRoadPlayer

	if holder >= 0 && g.Players[holder].RoadLength < longestRoadThreshold {
		g.setLongestRoadHolder(-1)
		holder = -1
	}

	maxLen, maxIdx, maxCount := 0, -1, 0
	for i, p := range g.Players {
		if p.RoadLength > maxLen {
			maxLen, maxIdx, maxCount = p.RoadLength, i, 1
		} else if p.RoadLength == maxLen && maxLen > 0 {
			maxCount++
		}
	}

	if holder >= 0 {
		if maxCount == 1 && maxIdx != holder && maxLen > g.Players[holder].RoadLength {
			g.setLongestRoadHolder(maxIdx)
		} else {
			g.LongestRoadLength = g.Players[g.LongestRoadPlayer].RoadLength
		}
		return
	}

	if maxLen >= longestRoadThreshold && maxCount == 1 {
		g.setLongestRoadHolder(maxIdx)
	}
}

func (g *Game) setLongestRoadHolder(idx int) {
	if prev := g.LongestRoadPlayer; prev >= 0 {
		g.Players[prev].HasLongestRoad = false
		g.Players[prev].VictoryPoints -= longestRoadBonus
	}
	g.LongestRoadPlayer = idx
	if idx < 0 {
		g.LongestRoadLength = 0
		return
	}
	g.Players[idx].HasLongestRoad = true
	g.Players[idx].VictoryPoints += longestRoadBonus
	g.LongestRoadLength = g.Players[idx].RoadLength
}

// recalcLargestArmy settles the largest army bonus after a knight is
// played, with the same holder-retention discipline as the road bonus.
func (g *Game) recalcLargestArmy() {
	holder := g.LargestArmyPlayer

	maxKnights, maxIdx, maxCount := 0, -1, 0
	for i, p := range g.Players {
		if p.KnightsPlayed > maxKnights {
			maxKnights, maxIdx, maxCount = p.KnightsPlayed, i, 1
		} else if p.KnightsPlayed == maxKnights && maxKnights > 0 {
			maxCount++
		}
	}

	if holder >= 0 {
		if maxCount == 1 && maxIdx != holder && maxKnights > g.Players[holder].KnightsPlayed {
			g.setLargestArmyHolder(maxIdx)
		}
		return
	}

	if maxKnights >= largestArmyThreshold && maxCount == 1 {
		g.setLargestArmyHolder(maxIdx)
	}
}

func (g *Game) setLargestArmyHolder(idx int) {
	if prev := g.LargestArmyPlayer; prev >= 0 {
		g.Players[prev].HasLargestArmy = false
		g.Players[prev].VictoryPoints -= largestArmyBonus
	}
	g.LargestArmyPlayer = idx
	if idx >= 0 {
		g.Players[idx].HasLargestArmy = true
		g.Players[idx].VictoryPoints += largestArmyBonus
	}
}

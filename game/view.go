package game

// PlayerView returns a deep copy of the state redacted for one viewer:
// every other player's hidden victory points read as zero while the
// game is in progress. Once the game is finished all hidden points are
// exposed to every viewer. The source state is never mutated.
func (g *Game) PlayerView(viewerID string) *Game {
	view := &Game{
		Board:                 g.Board,
		Vertices:              map[string]*Vertex{},
		Edges:                 map[string]*Edge{},
		CurrentPlayerIdx:      g.CurrentPlayerIdx,
		Phase:                 g.Phase,
		Turn:                  g.Turn,
		RobberHex:             g.RobberHex,
		LongestRoadPlayer:     g.LongestRoadPlayer,
		LongestRoadLength:     g.LongestRoadLength,
		LargestArmyPlayer:     g.LargestArmyPlayer,
		HasRolledThisTurn:     g.HasRolledThisTurn,
		DevCardPlayedThisTurn: g.DevCardPlayedThisTurn,
		FreeRoads:             g.FreeRoads,
		PendingDiscards:       map[int]int{},
		setupRound:            g.setupRound,
		setupSettlement:       g.setupSettlement,
	}

	for key, v := range g.Vertices {
		c := *v
		view.Vertices[key] = &c
	}
	for key, e := range g.Edges {
		c := *e
		view.Edges[key] = &c
	}
	for idx, owed := range g.PendingDiscards {
		view.PendingDiscards[idx] = owed
	}
	// the deck's order stays server-side; viewers only learn its size
	view.DevDeck = make([]DevCard, len(g.DevDeck))

	for _, p := range g.Players {
		c := p.clone()
		if g.Phase != Finished && c.ID != viewerID {
			c.HiddenVictoryPoints = 0
		}
		view.Players = append(view.Players, c)
	}

	return view
}

package game

import (
	"github.com/mwalcott/frontier/board"
)

// PlaceSettlement validates and applies a settlement placement at any
// equivalent key for a vertex. Placement is free during setup; the
// second setup settlement immediately pays out its adjacent hexes.
func (g *Game) PlaceSettlement(playerID, vertexKey string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}

	setup := g.Phase == Setup
	if setup {
		if g.setupSettlement != "" {
			return ErrSetupRoadPending
		}
	} else if g.Turn != Main {
		return ErrWrongPhase
	}

	occupant, ck, err := g.vertexAt(vertexKey)
	if err != nil {
		return err
	}
	vc, _ := board.ParseVertexKey(vertexKey)
	if !g.vertexOnBoard(vc) {
		return ErrOffBoard
	}
	if occupant != nil {
		return ErrVertexOccupied
	}

	// distance rule: no building on any neighboring vertex
	for _, adj := range board.AdjacentVertices(vc) {
		if _, taken := g.Vertices[adj.Key()]; taken {
			return ErrDistanceRule
		}
	}

	if !setup && !g.hasRoadAt(vc, idx) {
		return ErrNotConnected
	}
	if g.Players[idx].SettlementsLeft == 0 {
		return ErrNoPiecesLeft
	}
	if !setup && !g.Players[idx].Resources.CanAfford(settlementCost) {
		return ErrInsufficientResources
	}

	if !setup {
		g.Players[idx].Resources.Pay(settlementCost)
	}
	g.Vertices[ck] = &Vertex{Building: Settlement, Owner: idx}
	g.Players[idx].SettlementsLeft--
	g.Players[idx].VictoryPoints++

	if setup {
		g.setupSettlement = ck
		if g.setupRound == 1 {
			g.grantStartingResources(idx, vc)
		}
	}

	// a new settlement can cut an opponent's road
	g.recalcLongestRoad()
	g.checkVictory()

	return nil
}

// vertexOnBoard reports whether any hex sharing the vertex exists
func (g *Game) vertexOnBoard(vc board.VertexCoord) bool {
	for _, eq := range board.EquivalentVertices(vc) {
		if _, ok := g.Board.Hexes[board.HexCoord{Q: eq.Q, R: eq.R}.Key()]; ok {
			return true
		}
	}
	return false
}

// edgeOnBoard reports whether either hex bordering the edge exists
func (g *Game) edgeOnBoard(ec board.EdgeCoord) bool {
	for _, eq := range board.EquivalentEdges(ec) {
		if _, ok := g.Board.Hexes[board.HexCoord{Q: eq.Q, R: eq.R}.Key()]; ok {
			return true
		}
	}
	return false
}

// hasRoadAt reports whether the player owns a road on any edge
// incident to the vertex.
func (g *Game) hasRoadAt(vc board.VertexCoord, idx int) bool {
	for _, e := range board.VertexEdges(vc) {
		if road, ok := g.Edges[e.Key()]; ok && road.Owner == idx {
			return true
		}
	}
	return false
}

// grantStartingResources pays one card per non-desert hex adjacent to
// the second setup settlement.
func (g *Game) grantStartingResources(idx int, vc board.VertexCoord) {
	for _, eq := range board.EquivalentVertices(vc) {
		hexKey := board.HexCoord{Q: eq.Q, R: eq.R}.Key()
		if hex, ok := g.Board.Hexes[hexKey]; ok {
			if res := hex.Resource(); res != board.NoResource {
				g.Players[idx].Resources.Add(res, 1)
			}
		}
	}
}

// PlaceRoad validates and applies a road placement at any equivalent
// key for an edge. The road is free during setup and while free roads
// from a road building card remain.
func (g *Game) PlaceRoad(playerID, edgeKey string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}

	setup := g.Phase == Setup
	if setup {
		if g.setupSettlement == "" {
			return ErrSetupSettlementFirst
		}
	} else if g.Turn != Main {
		return ErrWrongPhase
	}

	occupant, ck, err := g.edgeAt(edgeKey)
	if err != nil {
		return err
	}
	ec, _ := board.ParseEdgeKey(edgeKey)
	if !g.edgeOnBoard(ec) {
		return ErrOffBoard
	}
	if occupant != nil {
		return ErrEdgeOccupied
	}
	if g.Players[idx].RoadsLeft == 0 {
		return ErrNoPiecesLeft
	}

	if setup {
		// the setup road must touch the settlement just placed
		if !g.edgeTouchesVertex(ec, g.setupSettlement) {
			return ErrNotConnected
		}
	} else if !g.roadConnects(ec, idx) {
		return ErrNotConnected
	}

	free := setup || g.FreeRoads > 0
	if !free && !g.Players[idx].Resources.CanAfford(roadCost) {
		return ErrInsufficientResources
	}

	if !free {
		g.Players[idx].Resources.Pay(roadCost)
	} else if !setup && g.FreeRoads > 0 {
		g.FreeRoads--
	}
	g.Edges[ck] = &Edge{Owner: idx}
	g.Players[idx].RoadsLeft--

	g.recalcLongestRoad()
	g.checkVictory()

	if setup {
		g.advanceSetup()
	}

	return nil
}

func (g *Game) edgeTouchesVertex(ec board.EdgeCoord, canonicalVertexKey string) bool {
	for _, end := range board.EdgeVertices(ec) {
		if board.CanonicalVertex(end).Key() == canonicalVertexKey {
			return true
		}
	}
	return false
}

// roadConnects reports whether the edge joins the player's network:
// either endpoint carries the player's building, or carries no
// opponent building and meets one of the player's roads. An opponent
// building blocks extension through its vertex.
func (g *Game) roadConnects(ec board.EdgeCoord, idx int) bool {
	self := board.CanonicalEdge(ec)
	for _, end := range board.EdgeVertices(ec) {
		ck := board.CanonicalVertex(end).Key()
		if v, ok := g.Vertices[ck]; ok {
			if v.Owner == idx {
				return true
			}
			continue // opponent building blocks this endpoint
		}
		for _, e := range board.VertexEdges(end) {
			if e == self {
				continue
			}
			if road, ok := g.Edges[e.Key()]; ok && road.Owner == idx {
				return true
			}
		}
	}
	return false
}

// advanceSetup moves to the next setup turn in snake order: forwards
// through the seats, the last seat places twice, then backwards. The
// final road hands over to normal play.
func (g *Game) advanceSetup() {
	g.setupSettlement = ""

	if g.setupRound == 0 {
		if g.CurrentPlayerIdx < len(g.Players)-1 {
			g.CurrentPlayerIdx++
		} else {
			g.setupRound = 1
		}
		return
	}

	if g.CurrentPlayerIdx > 0 {
		g.CurrentPlayerIdx--
		return
	}

	g.Phase = Playing
	g.Turn = Roll
}

// UpgradeToCity converts the player's settlement at any equivalent key
// for a vertex into a city, worth one further point.
func (g *Game) UpgradeToCity(playerID, vertexKey string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing || g.Turn != Main {
		return ErrWrongPhase
	}

	occupant, _, err := g.vertexAt(vertexKey)
	if err != nil {
		return err
	}
	if occupant == nil || occupant.Owner != idx || occupant.Building != Settlement {
		return ErrNoSettlementThere
	}
	if g.Players[idx].CitiesLeft == 0 {
		return ErrNoPiecesLeft
	}
	if !g.Players[idx].Resources.CanAfford(cityCost) {
		return ErrInsufficientResources
	}

	g.Players[idx].Resources.Pay(cityCost)
	occupant.Building = City
	g.Players[idx].CitiesLeft--
	g.Players[idx].SettlementsLeft++ // the settlement piece returns to the player
	g.Players[idx].VictoryPoints++

	g.checkVictory()
	return nil
}

// RollDice rolls for the current player. A 7 opens discard obligations
// or sends the turn to the robber; any other number pays out resources
// and opens the main phase.
func (g *Game) RollDice(playerID string) (int, error) {
	if _, err := g.currentPlayer(playerID); err != nil {
		return 0, err
	}
	if g.Phase != Playing || g.Turn != Roll {
		return 0, ErrWrongPhase
	}

	d1, d2 := g.roller.Roll()
	total := d1 + d2
	g.HasRolledThisTurn = true

	if total == 7 {
		for i, p := range g.Players {
			if n := p.Resources.Count(); n > maxHandBeforeDiscard {
				g.PendingDiscards[i] = n / 2
			}
		}
		if len(g.PendingDiscards) > 0 {
			g.Turn = Discard
		} else {
			g.Turn = Robber
		}
		return total, nil
	}

	g.distributeResources(total)
	g.Turn = Main
	return total, nil
}

// DiscardResources settles one player's discard obligation after a
// rolled 7. Any obligated player may discard; play proceeds to the
// robber once every obligation is settled.
func (g *Game) DiscardResources(playerID string, discard Hand) error {
	idx := g.playerIndex(playerID)
	if idx < 0 {
		return ErrUnknownPlayer
	}
	if g.Phase != Playing || g.Turn != Discard {
		return ErrWrongPhase
	}
	owed, ok := g.PendingDiscards[idx]
	if !ok {
		return ErrNoDiscardOwed
	}
	// negative entries would turn the payment into a credit
	for _, n := range discard {
		if n < 0 {
			return ErrWrongDiscardCount
		}
	}
	if discard.Count() != owed {
		return ErrWrongDiscardCount
	}
	if !g.Players[idx].Resources.CanAfford(discard) {
		return ErrInsufficientResources
	}

	g.Players[idx].Resources.Pay(discard)
	delete(g.PendingDiscards, idx)
	if len(g.PendingDiscards) == 0 {
		g.Turn = Robber
	}
	return nil
}

// MoveRobber relocates the robber to a different hex and optionally
// steals one random card from a player with a building on that hex.
// Control returns to the phase the robber interrupted.
func (g *Game) MoveRobber(playerID, hexKey, stealFromID string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing || g.Turn != Robber {
		return ErrWrongPhase
	}

	hc, err := board.ParseHexKey(hexKey)
	if err != nil {
		return err
	}
	target := hc.Key()
	if _, ok := g.Board.Hexes[target]; !ok {
		return ErrUnknownHex
	}
	if target == g.RobberHex {
		return ErrRobberStays
	}

	victim := -1
	if stealFromID != "" {
		victim = g.playerIndex(stealFromID)
		if victim < 0 {
			return ErrUnknownPlayer
		}
		if victim == idx || !g.hasBuildingOnHex(victim, hc) {
			return ErrBadStealTarget
		}
	}

	g.RobberHex = target
	if victim >= 0 {
		g.stealRandomCard(idx, victim)
	}

	if g.HasRolledThisTurn {
		g.Turn = Main
	} else {
		g.Turn = Roll
	}
	return nil
}

func (g *Game) hasBuildingOnHex(idx int, hc board.HexCoord) bool {
	for _, vc := range board.HexVertices(hc) {
		if v, ok := g.Vertices[vc.Key()]; ok && v.Owner == idx {
			return true
		}
	}
	return false
}

// stealRandomCard moves one uniformly chosen card from victim to thief.
// A victim with an empty hand yields nothing.
func (g *Game) stealRandomCard(thief, victim int) {
	hand := g.Players[victim].Resources
	total := hand.Count()
	if total == 0 {
		return
	}
	pick := g.rng.Intn(total)
	for res := board.Brick; res <= board.Wool; res++ {
		if pick < hand[res] {
			hand.Add(res, -1)
			g.Players[thief].Resources.Add(res, 1)
			return
		}
		pick -= hand[res]
	}
}

// BuyDevCard draws the top card of the development deck into the
// player's bought-this-turn pile.
func (g *Game) BuyDevCard(playerID string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing || g.Turn != Main {
		return ErrWrongPhase
	}
	if len(g.DevDeck) == 0 {
		return ErrDevDeckEmpty
	}
	if !g.Players[idx].Resources.CanAfford(devCardCost) {
		return ErrInsufficientResources
	}

	g.Players[idx].Resources.Pay(devCardCost)
	card := g.DevDeck[0]
	g.DevDeck = g.DevDeck[1:]
	g.Players[idx].NewDevCards[card]++
	if card == VictoryPointCard {
		// the point counts from purchase, hidden until revealed
		g.Players[idx].HiddenVictoryPoints++
		g.checkVictory()
	}
	return nil
}

// PlayPayload carries the per-card arguments for PlayDevCard
type PlayPayload struct {
	Monopoly board.Resource    // resource claimed by a monopoly card
	Plenty   [2]board.Resource // resources taken by a year of plenty card
}

// PlayDevCard plays a development card from the player's usable pile.
// Cards bought this turn are not usable. One non-point card may be
// played per turn; point cards only reveal a hidden point and are
// exempt. A knight sends the turn to the robber.
func (g *Game) PlayDevCard(playerID string, card DevCard, payload PlayPayload) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing {
		return ErrWrongPhase
	}
	// a knight may pre-empt the roll; everything else waits for main phase
	if card == Knight {
		if g.Turn != Roll && g.Turn != Main {
			return ErrWrongPhase
		}
	} else if g.Turn != Main {
		return ErrWrongPhase
	}

	p := g.Players[idx]
	if p.DevCards[card] == 0 {
		return ErrCardNotPlayable
	}

	if card == VictoryPointCard {
		p.DevCards[card]--
		p.HiddenVictoryPoints--
		p.VictoryPoints++
		g.checkVictory()
		return nil
	}

	if g.DevCardPlayedThisTurn {
		return ErrDevCardAlreadyPlayed
	}
	p.DevCards[card]--
	g.DevCardPlayedThisTurn = true

	switch card {
	case Knight:
		p.KnightsPlayed++
		g.recalcLargestArmy()
		g.Turn = Robber
	case RoadBuilding:
		g.FreeRoads = 2
		if p.RoadsLeft < g.FreeRoads {
			g.FreeRoads = p.RoadsLeft
		}
	case YearOfPlenty:
		for _, res := range payload.Plenty {
			if res != board.NoResource {
				p.Resources.Add(res, 1)
			}
		}
	case Monopoly:
		if payload.Monopoly != board.NoResource {
			for i, other := range g.Players {
				if i == idx {
					continue
				}
				n := other.Resources[payload.Monopoly]
				other.Resources.Add(payload.Monopoly, -n)
				p.Resources.Add(payload.Monopoly, n)
			}
		}
	}

	g.checkVictory()
	return nil
}

// BankTrade exchanges cards with the bank at the player's best ratio:
// 4:1 by default, 3:1 with a generic port, 2:1 with a matching
// resource port.
func (g *Game) BankTrade(playerID string, give, receive board.Resource) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing || g.Turn != Main {
		return ErrWrongPhase
	}
	if give == board.NoResource || receive == board.NoResource || give == receive {
		return ErrBadTrade
	}

	ratio := g.tradeRatio(idx, give)
	if g.Players[idx].Resources[give] < ratio {
		return ErrInsufficientResources
	}

	g.Players[idx].Resources.Add(give, -ratio)
	g.Players[idx].Resources.Add(receive, 1)
	return nil
}

func (g *Game) tradeRatio(idx int, give board.Resource) int {
	ratio := 4
	for _, port := range g.Board.Ports {
		if port.Ratio == 2 && port.Resource != give {
			continue
		}
		for _, vc := range port.Vertices {
			if v, ok := g.Vertices[vc.Key()]; ok && v.Owner == idx && port.Ratio < ratio {
				ratio = port.Ratio
			}
		}
	}
	return ratio
}

// EndTurn closes the current player's turn: per-turn flags reset,
// cards bought this turn become usable, play passes left.
func (g *Game) EndTurn(playerID string) error {
	idx, err := g.currentPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase != Playing || (g.Turn != Main && g.Turn != SpecialBuild) {
		return ErrWrongPhase
	}

	p := g.Players[idx]
	for card, n := range p.NewDevCards {
		p.DevCards[card] += n
	}
	p.NewDevCards = map[DevCard]int{}

	g.HasRolledThisTurn = false
	g.DevCardPlayedThisTurn = false
	g.FreeRoads = 0
	g.CurrentPlayerIdx = (idx + 1) % len(g.Players)
	g.Turn = Roll
	return nil
}

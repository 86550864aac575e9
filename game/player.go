package game

// piece allowances per player
const (
	numSettlementPieces = 5
	numCityPieces       = 4
	numRoadPieces       = 15
)

// Player is one seat's full record. HiddenVictoryPoints come from
// unrevealed point cards and are redacted from other players' views
// while the game is in progress.
type Player struct {
	ID   string `json:"playerID"`
	Name string `json:"name"`

	Resources Hand `json:"resources"`

	SettlementsLeft int `json:"settlementsLeft"`
	CitiesLeft      int `json:"citiesLeft"`
	RoadsLeft       int `json:"roadsLeft"`

	VictoryPoints       int `json:"victoryPoints"`
	HiddenVictoryPoints int `json:"hiddenVictoryPoints"`

	HasLongestRoad bool `json:"hasLongestRoad"`
	RoadLength     int  `json:"roadLength"`

	HasLargestArmy bool `json:"hasLargestArmy"`
	KnightsPlayed  int  `json:"knightsPlayed"`

	// DevCards are playable; NewDevCards were bought this turn and
	// become playable when the turn ends.
	DevCards    map[DevCard]int `json:"devCards"`
	NewDevCards map[DevCard]int `json:"newDevCards"`
}

func newPlayer(id, name string) *Player {
	return &Player{
		ID:              id,
		Name:            name,
		Resources:       Hand{},
		SettlementsLeft: numSettlementPieces,
		CitiesLeft:      numCityPieces,
		RoadsLeft:       numRoadPieces,
		DevCards:        map[DevCard]int{},
		NewDevCards:     map[DevCard]int{},
	}
}

// TotalVictoryPoints is the player's true score, hidden points included
func (p *Player) TotalVictoryPoints() int {
	return p.VictoryPoints + p.HiddenVictoryPoints
}

func (p *Player) clone() *Player {
	c := *p
	c.Resources = p.Resources.Clone()
	c.DevCards = map[DevCard]int{}
	for card, n := range p.DevCards {
		c.DevCards[card] = n
	}
	c.NewDevCards = map[DevCard]int{}
	for card, n := range p.NewDevCards {
		c.NewDevCards[card] = n
	}
	return &c
}

package game

import (
	"fmt"
	"math/rand"
)

// DevCard is a development card kind
type DevCard int

const (
	Knight DevCard = iota
	RoadBuilding
	YearOfPlenty
	Monopoly
	VictoryPointCard
)

var devCardNames = []string{
	"knight",
	"roadBuilding",
	"yearOfPlenty",
	"monopoly",
	"victoryPoint",
}

func (c DevCard) String() string {
	return devCardNames[c]
}

// ParseDevCard parses a development card name
func ParseDevCard(name string) (DevCard, error) {
	for i, n := range devCardNames {
		if n == name {
			return DevCard(i), nil
		}
	}
	return 0, fmt.Errorf("unknown development card %q", name)
}

// standard deck composition
var devDeckCounts = map[DevCard]int{
	Knight:           14,
	RoadBuilding:     2,
	YearOfPlenty:     2,
	Monopoly:         2,
	VictoryPointCard: 5,
}

// NewDevDeck builds the shuffled development card deck.
// The caller supplies the randomness source.
func NewDevDeck(rng *rand.Rand) []DevCard {
	deck := []DevCard{}
	for card := Knight; card <= VictoryPointCard; card++ {
		for i := 0; i < devDeckCounts[card]; i++ {
			deck = append(deck, card)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

package main

import (
	"fmt"
	"log"

	"github.com/mwalcott/frontier/board"
	"github.com/mwalcott/frontier/game"
)

// fixedRoller always rolls the same dice, enough for a scripted demo
type fixedRoller struct{ a, b int }

func (r fixedRoller) Roll() (int, int) {
	return r.a, r.b
}

// a scripted two-player opening on the fixed board, then a few turns
// of rolling, to show the engine ticking over
func main() {
	g, err := game.NewGame(
		[]game.PlayerSeat{{ID: "p1", Name: "Harry"}, {ID: "p2", Name: "Sally"}},
		game.GameOpts{Board: board.Fixed(), Roller: fixedRoller{3, 3}},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	placements := []struct {
		player, vertex, edge string
	}{
		{"p1", "v_-2_0_0", "e_-2_0_0"},
		{"p2", "v_2_0_0", "e_2_0_0"},
		{"p2", "v_0_2_0", "e_0_2_0"},
		{"p1", "v_0_-2_3", "e_0_-2_3"},
	}
	for _, pl := range placements {
		if err := g.PlaceSettlement(pl.player, pl.vertex); err != nil {
			log.Fatalf("%s settlement at %s: %s", pl.player, pl.vertex, err)
		}
		if err := g.PlaceRoad(pl.player, pl.edge); err != nil {
			log.Fatalf("%s road at %s: %s", pl.player, pl.edge, err)
		}
	}

	for turn := 0; turn < 6; turn++ {
		current := g.Players[g.CurrentPlayerIdx]
		roll, err := g.RollDice(current.ID)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%s rolled %d\n", current.Name, roll)
		if err := g.EndTurn(current.ID); err != nil {
			log.Fatal(err.Error())
		}
	}

	for _, p := range g.Players {
		fmt.Printf("%s: %d points, %d cards in hand\n",
			p.Name, p.VictoryPoints, p.Resources.Count())
	}
}

package game

// Phase represents the main stages in the game
type Phase int

const (
	Setup Phase = iota
	Playing
	Finished
)

var phaseNames = []string{"setup", "playing", "finished"}

func (p Phase) String() string {
	return phaseNames[p]
}

// TurnPhase represents the sub-phase of the current turn
type TurnPhase int

const (
	Roll TurnPhase = iota
	Robber
	Discard
	Main
	SpecialBuild
)

var turnPhaseNames = []string{"roll", "robber", "discard", "main", "specialBuild"}

func (t TurnPhase) String() string {
	return turnPhaseNames[t]
}

// Building is what occupies a vertex
type Building int

const (
	NoBuilding Building = iota
	Settlement
	City
)

var buildingNames = []string{"none", "settlement", "city"}

func (b Building) String() string {
	return buildingNames[b]
}

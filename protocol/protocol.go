package protocol

// Action identifies a player action request
type Action int

const (
	Null Action = iota
	PlaceSettlement
	PlaceRoad
	UpgradeToCity
	BuyDevCard
	PlayDevCard
	MoveRobber
	RollDice
	DiscardResources
	BankTrade
	EndTurn
)

var actionNames = []string{
	"Null",
	"PlaceSettlement",
	"PlaceRoad",
	"UpgradeToCity",
	"BuyDevCard",
	"PlayDevCard",
	"MoveRobber",
	"RollDice",
	"DiscardResources",
	"BankTrade",
	"EndTurn",
}

func (a Action) String() string {
	return actionNames[a]
}

// PlayerInfo identifies a player to the lobby and transport layers
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// ActionRequest is a message from a player to a game engine. The
// coordinate fields use the renderer key formats "v_{q}_{r}_{dir}",
// "e_{q}_{r}_{dir}" and "{q},{r}"; any equivalent key for a physical
// feature is accepted.
type ActionRequest struct {
	PlayerID  string         `json:"playerID"`
	Action    Action         `json:"action"`
	Vertex    string         `json:"vertex,omitempty"`
	Edge      string         `json:"edge,omitempty"`
	Hex       string         `json:"hex,omitempty"`
	StealFrom string         `json:"stealFrom,omitempty"`
	Card      string         `json:"card,omitempty"`
	Resources map[string]int `json:"resources,omitempty"` // discard piles and year-of-plenty picks
	Give      string         `json:"give,omitempty"`
	Receive   string         `json:"receive,omitempty"`
}

// ActionResponse reports the outcome of one ActionRequest
type ActionResponse struct {
	PlayerID string `json:"playerID"`
	Action   Action `json:"action"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Roll     int    `json:"roll,omitempty"`
}

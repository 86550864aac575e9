package frontier

// TestPlayer is a Player double. Messages sent to it are buffered on
// Msgs for tests to receive.
type TestPlayer struct {
	PlayerID   string
	PlayerName string
	Msgs       chan []byte
}

func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{
		PlayerID:   id,
		PlayerName: name,
		Msgs:       make(chan []byte, 16),
	}
}

func (p *TestPlayer) ID() string {
	return p.PlayerID
}

func (p *TestPlayer) Name() string {
	return p.PlayerName
}

func (p *TestPlayer) Send(data []byte) error {
	p.Msgs <- data
	return nil
}

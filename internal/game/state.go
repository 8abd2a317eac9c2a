package game

// State is the phase of the round the engine is in
type State int

const (
	AwaitingBet State = iota
	ReadyToDeal
	PlayerTurn
	DealerTurn
	Settlement
)

// String returns a human-readable representation of the state
func (s State) String() string {
	switch s {
	case AwaitingBet:
		return "awaiting bet"
	case ReadyToDeal:
		return "ready to deal"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Settlement:
		return "settlement"
	default:
		return "unknown"
	}
}

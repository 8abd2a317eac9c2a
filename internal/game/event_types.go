package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round events
const (
	EventTypeShuffle        EventType = "shuffle"
	EventTypeBetPlaced      EventType = "bet_placed"
	EventTypeIllegalCommand EventType = "illegal_command"
	EventTypeBalance        EventType = "balance"
	EventTypeStats          EventType = "stats"
	EventTypeBetAdvice      EventType = "bet_advice"
	EventTypePlayAdvice     EventType = "play_advice"
	EventTypeHandsDealt     EventType = "hands_dealt"
	EventTypePlayingHand    EventType = "playing_hand"
	EventTypePlayerAction   EventType = "player_action"
	EventTypePlayerBust     EventType = "player_bust"
	EventTypeDealerAction   EventType = "dealer_action"
	EventTypeBlackjack      EventType = "blackjack"
	EventTypeInsurancePaid  EventType = "insurance_paid"
	EventTypeHandSettled    EventType = "hand_settled"
	EventTypeRoundEnd       EventType = "round_end"
	EventTypeQuit           EventType = "quit"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

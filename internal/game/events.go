package game

import (
	"time"

	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/table"
)

// GameEvent represents anything that happens at the table
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// ShuffleEvent is published when the shoe is shuffled and the counts reset
type ShuffleEvent struct {
	Shuffles  int // shuffles so far this session, this one included
	timestamp time.Time
}

func (e ShuffleEvent) EventType() EventType { return EventTypeShuffle }
func (e ShuffleEvent) Timestamp() time.Time { return e.timestamp }

// NewShuffleEvent creates a new shuffle event
func NewShuffleEvent(at time.Time, shuffles int) ShuffleEvent {
	return ShuffleEvent{Shuffles: shuffles, timestamp: at}
}

// BetPlacedEvent is published when a bet is accepted
type BetPlacedEvent struct {
	Amount    int
	Balance   float64
	timestamp time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewBetPlacedEvent creates a new bet placed event
func NewBetPlacedEvent(at time.Time, amount int, balance float64) BetPlacedEvent {
	return BetPlacedEvent{Amount: amount, Balance: balance, timestamp: at}
}

// IllegalCommandEvent is published when a command is rejected. State is
// unchanged.
type IllegalCommandEvent struct {
	Command   string
	State     State
	Reason    string
	timestamp time.Time
}

func (e IllegalCommandEvent) EventType() EventType { return EventTypeIllegalCommand }
func (e IllegalCommandEvent) Timestamp() time.Time { return e.timestamp }

// NewIllegalCommandEvent creates a new illegal command event
func NewIllegalCommandEvent(at time.Time, command string, state State, reason string) IllegalCommandEvent {
	return IllegalCommandEvent{Command: command, State: state, Reason: reason, timestamp: at}
}

// BalanceEvent answers the balance command
type BalanceEvent struct {
	Balance   float64
	timestamp time.Time
}

func (e BalanceEvent) EventType() EventType { return EventTypeBalance }
func (e BalanceEvent) Timestamp() time.Time { return e.timestamp }

// NewBalanceEvent creates a new balance event
func NewBalanceEvent(at time.Time, balance float64) BalanceEvent {
	return BalanceEvent{Balance: balance, timestamp: at}
}

// StatsEvent answers the statistics command
type StatsEvent struct {
	Stats     *statistics.Statistics
	Balance   float64
	timestamp time.Time
}

func (e StatsEvent) EventType() EventType { return EventTypeStats }
func (e StatsEvent) Timestamp() time.Time { return e.timestamp }

// NewStatsEvent creates a new stats event
func NewStatsEvent(at time.Time, stats *statistics.Statistics, balance float64) StatsEvent {
	return StatsEvent{Stats: stats, Balance: balance, timestamp: at}
}

// BetAdvice is one betting strategy's suggestion
type BetAdvice struct {
	Strategy string
	Bet      int
}

// BetAdviceEvent answers the advice command before a bet
type BetAdviceEvent struct {
	Advice    []BetAdvice
	timestamp time.Time
}

func (e BetAdviceEvent) EventType() EventType { return EventTypeBetAdvice }
func (e BetAdviceEvent) Timestamp() time.Time { return e.timestamp }

// NewBetAdviceEvent creates a new bet advice event
func NewBetAdviceEvent(at time.Time, advice []BetAdvice) BetAdviceEvent {
	return BetAdviceEvent{Advice: advice, timestamp: at}
}

// PlayAdvice is one playing strategy's suggestion
type PlayAdvice struct {
	Strategy string
	Move     table.Move
}

// PlayAdviceEvent answers the advice command during a hand
type PlayAdviceEvent struct {
	Index     int
	Advice    []PlayAdvice
	timestamp time.Time
}

func (e PlayAdviceEvent) EventType() EventType { return EventTypePlayAdvice }
func (e PlayAdviceEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayAdviceEvent creates a new play advice event
func NewPlayAdviceEvent(at time.Time, index int, advice []PlayAdvice) PlayAdviceEvent {
	return PlayAdviceEvent{Index: index, Advice: advice, timestamp: at}
}

// HandsDealtEvent is published once the opening cards are out
type HandsDealtEvent struct {
	RoundID   string
	Dealer    *table.Hand
	Player    *table.PlayerHand
	timestamp time.Time
}

func (e HandsDealtEvent) EventType() EventType { return EventTypeHandsDealt }
func (e HandsDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewHandsDealtEvent creates a new hands dealt event
func NewHandsDealtEvent(at time.Time, roundID string, dealer *table.Hand, player *table.PlayerHand) HandsDealtEvent {
	return HandsDealtEvent{RoundID: roundID, Dealer: dealer, Player: player, timestamp: at}
}

// PlayingHandEvent is published when play moves to a hand after a split
type PlayingHandEvent struct {
	Index     int
	Hand      *table.PlayerHand
	timestamp time.Time
}

func (e PlayingHandEvent) EventType() EventType { return EventTypePlayingHand }
func (e PlayingHandEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayingHandEvent creates a new playing hand event
func NewPlayingHandEvent(at time.Time, index int, hand *table.PlayerHand) PlayingHandEvent {
	return PlayingHandEvent{Index: index, Hand: hand, timestamp: at}
}

// PlayerActionEvent is published after a move is carried out on a hand.
// For hits and doubles the new card is already in Hand.
type PlayerActionEvent struct {
	Index     int
	NumHands  int
	Move      table.Move
	Hand      *table.PlayerHand
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(at time.Time, index, numHands int, move table.Move, hand *table.PlayerHand) PlayerActionEvent {
	return PlayerActionEvent{Index: index, NumHands: numHands, Move: move, Hand: hand, timestamp: at}
}

// PlayerBustEvent is published when a player hand goes over 21
type PlayerBustEvent struct {
	Index     int
	NumHands  int
	timestamp time.Time
}

func (e PlayerBustEvent) EventType() EventType { return EventTypePlayerBust }
func (e PlayerBustEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerBustEvent creates a new player bust event
func NewPlayerBustEvent(at time.Time, index, numHands int) PlayerBustEvent {
	return PlayerBustEvent{Index: index, NumHands: numHands, timestamp: at}
}

// DealerAction is what the dealer does with the hand as it stands
type DealerAction int

const (
	DealerHits DealerAction = iota
	DealerStands
	DealerBusts
)

// String returns the dealer's announcement verb
func (a DealerAction) String() string {
	switch a {
	case DealerHits:
		return "hits"
	case DealerStands:
		return "stands"
	default:
		return "busts"
	}
}

// DealerActionEvent is published before each dealer decision is carried
// out, so Hand is the hand the decision was made on.
type DealerActionEvent struct {
	Hand      *table.Hand
	Action    DealerAction
	timestamp time.Time
}

func (e DealerActionEvent) EventType() EventType { return EventTypeDealerAction }
func (e DealerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerActionEvent creates a new dealer action event
func NewDealerActionEvent(at time.Time, hand *table.Hand, action DealerAction) DealerActionEvent {
	return DealerActionEvent{Hand: hand, Action: action, timestamp: at}
}

// BlackjackEvent is published once per round when any hand at the table
// holds a blackjack
type BlackjackEvent struct {
	Dealer    bool
	timestamp time.Time
}

func (e BlackjackEvent) EventType() EventType { return EventTypeBlackjack }
func (e BlackjackEvent) Timestamp() time.Time { return e.timestamp }

// NewBlackjackEvent creates a new blackjack event
func NewBlackjackEvent(at time.Time, dealer bool) BlackjackEvent {
	return BlackjackEvent{Dealer: dealer, timestamp: at}
}

// InsurancePaidEvent is published when insurance pays out
type InsurancePaidEvent struct {
	Payout    float64
	timestamp time.Time
}

func (e InsurancePaidEvent) EventType() EventType { return EventTypeInsurancePaid }
func (e InsurancePaidEvent) Timestamp() time.Time { return e.timestamp }

// NewInsurancePaidEvent creates a new insurance paid event
func NewInsurancePaidEvent(at time.Time, payout float64) InsurancePaidEvent {
	return InsurancePaidEvent{Payout: payout, timestamp: at}
}

// HandSettledEvent is published for each player hand at settlement
type HandSettledEvent struct {
	RoundID   string
	Index     int
	NumHands  int
	Outcome   table.Outcome
	Stake     int
	Payout    float64
	Balance   float64
	timestamp time.Time
}

func (e HandSettledEvent) EventType() EventType { return EventTypeHandSettled }
func (e HandSettledEvent) Timestamp() time.Time { return e.timestamp }

// NewHandSettledEvent creates a new hand settled event
func NewHandSettledEvent(at time.Time, roundID string, index, numHands int, outcome table.Outcome, stake int, payout, balance float64) HandSettledEvent {
	return HandSettledEvent{
		RoundID:   roundID,
		Index:     index,
		NumHands:  numHands,
		Outcome:   outcome,
		Stake:     stake,
		Payout:    payout,
		Balance:   balance,
		timestamp: at,
	}
}

// RoundEndEvent is published after every hand is settled
type RoundEndEvent struct {
	RoundID   string
	Dealer    *table.Hand
	Hands     []*table.PlayerHand
	Balance   float64
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(at time.Time, roundID string, dealer *table.Hand, hands []*table.PlayerHand, balance float64) RoundEndEvent {
	return RoundEndEvent{RoundID: roundID, Dealer: dealer, Hands: hands, Balance: balance, timestamp: at}
}

// QuitEvent is published when the player quits
type QuitEvent struct {
	Stats     *statistics.Statistics
	Balance   float64
	timestamp time.Time
}

func (e QuitEvent) EventType() EventType { return EventTypeQuit }
func (e QuitEvent) Timestamp() time.Time { return e.timestamp }

// NewQuitEvent creates a new quit event
func NewQuitEvent(at time.Time, stats *statistics.Statistics, balance float64) QuitEvent {
	return QuitEvent{Stats: stats, Balance: balance, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Events are delivered
// synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

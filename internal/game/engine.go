package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
	"github.com/lox/blackjack/internal/table"
)

// ErrQuit is returned internally when the player quits. Run turns it into a
// nil error.
var ErrQuit = errors.New("player quit")

// Engine runs blackjack rounds for one player against the dealer. It is not
// safe for concurrent use: all state is owned by the goroutine calling Run.
type Engine struct {
	rules   Rules
	dealer  *table.Dealer
	player  *table.Player
	source  CommandSource
	betting []strategy.Betting
	playing []strategy.Playing

	bus    EventBus
	stats  *statistics.Statistics
	logger *log.Logger
	clock  quartz.Clock

	state       State
	roundID     string
	shuffles    int
	needShuffle bool
}

// NewEngine creates an engine dealing from shoe to a player starting with
// balance. Commands come from source.
func NewEngine(rules Rules, shoe *deck.Shoe, balance float64, source CommandSource, opts ...EngineOption) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.stats == nil {
		cfg.stats = statistics.New(balance)
	}
	if cfg.betting == nil {
		cfg.betting = strategy.Bettors(rules.Limits())
	}
	if cfg.playing == nil {
		cfg.playing = strategy.Advisors(rules.Limits(), shoe.Decks())
	}

	return &Engine{
		rules:       rules,
		dealer:      table.NewDealer(shoe),
		player:      table.NewPlayer(rules.MinBet, balance),
		source:      source,
		betting:     cfg.betting,
		playing:     cfg.playing,
		bus:         cfg.bus,
		stats:       cfg.stats,
		logger:      cfg.logger.WithPrefix("engine"),
		clock:       cfg.clock,
		state:       AwaitingBet,
		needShuffle: rules.AutoShuffle,
	}
}

// EventBus returns the event bus for subscribing to round events
func (e *Engine) EventBus() EventBus { return e.bus }

// Statistics returns the live session statistics
func (e *Engine) Statistics() *statistics.Statistics { return e.stats }

// Player returns the player
func (e *Engine) Player() *table.Player { return e.player }

// Dealer returns the dealer
func (e *Engine) Dealer() *table.Dealer { return e.dealer }

// State returns the phase the engine is in
func (e *Engine) State() State { return e.state }

// Rules returns the table rules
func (e *Engine) Rules() Rules { return e.rules }

// Shuffles returns how many times the shoe has been shuffled
func (e *Engine) Shuffles() int { return e.shuffles }

// Run plays rounds until the source quits, the context is cancelled or the
// source fails. A quit returns nil.
func (e *Engine) Run(ctx context.Context) error {
	for {
		err := e.PlayRound(ctx)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// PlayRound takes bets until a deal and then plays the round through
// settlement. It returns ErrQuit if the player quits.
func (e *Engine) PlayRound(ctx context.Context) error {
	e.startRound()

	if err := e.takeBets(ctx); err != nil {
		return err
	}

	e.roundID = uuid.NewString()
	e.logger.Debug("Starting round", "round", e.roundID, "bet", e.player.Bet())

	e.state = PlayerTurn
	e.deal()
	e.publish(NewHandsDealtEvent(e.clock.Now(), e.roundID, e.dealer.Hand(), e.player.Hand(0)))

	if err := e.playerTurn(ctx); err != nil {
		return err
	}

	e.state = DealerTurn
	e.dealerTurn()
	e.announceBlackjack()

	e.state = Settlement
	e.settle()

	e.state = AwaitingBet
	return nil
}

func (e *Engine) publish(event GameEvent) {
	e.bus.Publish(event)
}

func (e *Engine) startRound() {
	e.state = AwaitingBet
	e.player.ClearHands()
	e.dealer.ResetHand()

	shoe := e.dealer.Shoe()
	if e.rules.AutoShuffle && shoe.Dealt() >= e.rules.ShuffleThreshold(shoe.Decks()) {
		e.needShuffle = true
	}
	if e.needShuffle {
		e.shuffle()
		e.needShuffle = false
	}
}

// shuffle shuffles the shoe and resets every count
func (e *Engine) shuffle() {
	for _, b := range e.betting {
		b.ResetCount()
	}
	for _, p := range e.playing {
		p.ResetCount()
	}
	e.dealer.Shuffle()
	e.shuffles++

	e.logger.Debug("Shuffled shoe", "shuffles", e.shuffles)
	e.publish(NewShuffleEvent(e.clock.Now(), e.shuffles))
}

// observe shows a card that has just become visible to every strategy
func (e *Engine) observe(c deck.Card) {
	for _, b := range e.betting {
		b.UpdateCount(c)
	}
	for _, p := range e.playing {
		p.UpdateCount(c)
	}
}

// draw deals the next card from the shoe and counts it
func (e *Engine) draw() deck.Card {
	c := e.dealer.Deal()
	e.observe(c)
	return c
}

func (e *Engine) illegal(cmd Command, reason string) {
	e.logger.Debug("Rejected command", "command", cmd.String(), "state", e.state, "reason", reason)
	e.publish(NewIllegalCommandEvent(e.clock.Now(), cmd.String(), e.state, reason))
}

func (e *Engine) quit() error {
	e.logger.Debug("Player quit", "balance", e.player.Balance())
	e.publish(NewQuitEvent(e.clock.Now(), e.stats, e.player.Balance()))
	return ErrQuit
}

// takeBets reads commands until a placed bet is followed by a deal
func (e *Engine) takeBets(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := e.source.NextBetCommand(ctx)
		if err != nil {
			return fmt.Errorf("reading bet command: %w", err)
		}

		switch cmd.Kind {
		case CmdBet:
			if e.state == ReadyToDeal {
				e.illegal(cmd, "bet already placed")
				continue
			}
			amount := e.rules.MinBet
			if cmd.HasAmount {
				amount = cmd.Amount
			}
			if !e.rules.ValidBet(amount) {
				e.illegal(cmd, fmt.Sprintf("bet must be between %d and %d", e.rules.MinBet, e.rules.MaxBet))
				continue
			}
			e.placeBet(amount)
		case CmdDeal:
			if e.state != ReadyToDeal {
				e.illegal(cmd, "no bet placed")
				continue
			}
			return nil
		case CmdAdvice:
			if e.state == ReadyToDeal {
				e.illegal(cmd, "bet already placed")
				continue
			}
			e.publish(NewBetAdviceEvent(e.clock.Now(), e.betAdvice()))
		case CmdBalance:
			e.publish(NewBalanceEvent(e.clock.Now(), e.player.Balance()))
		case CmdStats:
			e.publish(NewStatsEvent(e.clock.Now(), e.stats, e.player.Balance()))
		case CmdQuit:
			return e.quit()
		default:
			e.illegal(cmd, "not a betting command")
		}
	}
}

func (e *Engine) placeBet(amount int) {
	e.player.PlaceBet(amount)
	for _, b := range e.betting {
		b.SetBet(amount)
	}
	e.state = ReadyToDeal
	e.publish(NewBetPlacedEvent(e.clock.Now(), amount, e.player.Balance()))
}

func (e *Engine) betAdvice() []BetAdvice {
	advice := make([]BetAdvice, 0, len(e.betting))
	for _, b := range e.betting {
		advice = append(advice, BetAdvice{Strategy: b.Name(), Bet: b.NextBet()})
	}
	return advice
}

func (e *Engine) playAdvice(i int) []PlayAdvice {
	advice := make([]PlayAdvice, 0, len(e.playing))
	for _, p := range e.playing {
		move := p.NextPlay(e.player.NumHands(), e.player.Hand(i), e.dealer.Hand(), e.player.Bet())
		advice = append(advice, PlayAdvice{Strategy: p.Name(), Move: move})
	}
	return advice
}

// deal gives the dealer two cards, the second face down, then the player
// two. Only the dealer's up card is counted until the hole is revealed.
func (e *Engine) deal() {
	for i := 0; i < 2; i++ {
		c := e.dealer.Deal()
		if i == 0 {
			e.observe(c)
		}
		e.dealer.AddCard(c)
	}
	e.stats.DealerHands++

	for i := 0; i < 2; i++ {
		_ = e.player.AddCard(0, e.draw())
	}
	e.stats.PlayerHands++
}

// playerTurn plays each hand in order. A split replaces the current hand and
// the same index is played again.
func (e *Engine) playerTurn(ctx context.Context) error {
	for i := 0; i < e.player.NumHands(); i++ {
		hand := e.player.Hand(i)
		if hand.IsSplit() && hand.Len() == 1 {
			e.completeSplitHand(i)
		}

		if e.player.NumHands() > 1 {
			e.publish(NewPlayingHandEvent(e.clock.Now(), i, hand))
		}
		if hand.IsStanding() {
			continue
		}

		replay, err := e.playHand(ctx, i)
		if err != nil {
			return err
		}
		if replay {
			i--
		}
	}
	return nil
}

// completeSplitHand deals the second card to a split hand. Split Aces that
// do not draw another Ace stand on two cards.
func (e *Engine) completeSplitHand(i int) {
	c := e.draw()
	_ = e.player.AddCard(i, c)
	if e.player.Hand(i).First().IsAce() && !c.IsAce() {
		_ = e.player.Stand(i)
	}
}

// playHand reads commands for hand i until the hand is finished. It reports
// whether the hand was split and must be played again.
func (e *Engine) playHand(ctx context.Context, i int) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		hand := e.player.Hand(i)
		view := PlayView{
			NumHands: e.player.NumHands(),
			Hand:     hand,
			Dealer:   e.dealer.Hand(),
			Bet:      e.player.Bet(),
		}
		cmd, err := e.source.NextPlayCommand(ctx, view)
		if err != nil {
			return false, fmt.Errorf("reading play command: %w", err)
		}

		switch cmd.Kind {
		case CmdHit:
			if err := e.player.Hit(i); err != nil {
				e.illegal(cmd, err.Error())
				continue
			}
			_ = e.player.AddCard(i, e.draw())
			e.publishAction(i, table.Hit)
			if hand.IsBust() {
				e.publish(NewPlayerBustEvent(e.clock.Now(), i, e.player.NumHands()))
				return false, nil
			}

		case CmdDouble:
			if !e.rules.CanDouble(hand, e.player.Bet()) {
				e.illegal(cmd, "hand cannot double")
				continue
			}
			_ = e.player.Double(i)
			_ = e.player.AddCard(i, e.draw())
			e.publishAction(i, table.DoubleThenStand)
			if hand.IsBust() {
				e.publish(NewPlayerBustEvent(e.clock.Now(), i, e.player.NumHands()))
				return false, nil
			}
			_ = e.player.Stand(i)
			return false, nil

		case CmdStand:
			_ = e.player.Stand(i)
			e.publishAction(i, table.Stand)
			return false, nil

		case CmdSurrender:
			if err := e.player.Surrender(i); err != nil {
				e.illegal(cmd, err.Error())
				continue
			}
			e.publishAction(i, table.Surrender)
			return false, nil

		case CmdSplit:
			if err := e.player.Split(i); err != nil {
				e.illegal(cmd, err.Error())
				continue
			}
			e.stats.PlayerHands++
			e.publishAction(i, table.Split)
			e.completeSplitHand(i)
			return true, nil

		case CmdInsurance:
			if !e.dealer.UpCard().IsAce() {
				e.illegal(cmd, "dealer is not showing an Ace")
				continue
			}
			if err := e.player.Insure(); err != nil {
				e.illegal(cmd, err.Error())
				continue
			}
			e.publishAction(i, table.Insure)

		case CmdAdvice:
			e.publish(NewPlayAdviceEvent(e.clock.Now(), i, e.playAdvice(i)))
		case CmdBalance:
			e.publish(NewBalanceEvent(e.clock.Now(), e.player.Balance()))
		case CmdStats:
			e.publish(NewStatsEvent(e.clock.Now(), e.stats, e.player.Balance()))
		case CmdQuit:
			return false, e.quit()
		default:
			e.illegal(cmd, "not a playing command")
		}
	}
}

func (e *Engine) publishAction(i int, move table.Move) {
	e.logger.Debug("Player action", "round", e.roundID, "hand", i, "move", move)
	e.publish(NewPlayerActionEvent(e.clock.Now(), i, e.player.NumHands(), move, e.player.Hand(i)))
}

// dealerTurn reveals the hole card and draws to the stand total. With no
// player hand left standing the dealer has already won and does not draw.
func (e *Engine) dealerTurn() {
	if hole, ok := e.dealer.RevealHole(); ok {
		e.observe(hole)
	}
	noHandsLeft := !e.player.AnyStanding()

	hand := e.dealer.Hand()
	for {
		if hand.IsBust() {
			e.publish(NewDealerActionEvent(e.clock.Now(), hand, DealerBusts))
			return
		}
		if hand.Total() < e.rules.DealerStandsOn && !noHandsLeft {
			e.publish(NewDealerActionEvent(e.clock.Now(), hand, DealerHits))
			e.dealer.AddCard(e.draw())
			continue
		}
		hand.Stand()
		e.publish(NewDealerActionEvent(e.clock.Now(), hand, DealerStands))
		return
	}
}

func (e *Engine) announceBlackjack() {
	if e.dealer.Hand().IsBlackjack() {
		e.publish(NewBlackjackEvent(e.clock.Now(), true))
		return
	}
	for _, h := range e.player.Hands() {
		if h.IsBlackjack() && !h.IsSplit() {
			e.publish(NewBlackjackEvent(e.clock.Now(), false))
			return
		}
	}
}

// settle pays insurance once, then settles every hand against the dealer
func (e *Engine) settle() {
	dealerHand := e.dealer.Hand()
	if dealerHand.IsBlackjack() {
		e.stats.DealerBlackjacks++
	}

	if e.player.IsInsured() && dealerHand.IsBlackjack() {
		payout := table.InsurancePayout * float64(e.player.Bet())
		e.player.Credit(payout)
		e.publish(NewInsurancePaidEvent(e.clock.Now(), payout))
	}

	hands := e.player.Hands()
	for i, h := range hands {
		outcome, multiple := table.Settle(h, dealerHand)
		payout := multiple * float64(h.Bet())
		e.player.Credit(payout)

		e.stats.Add(statistics.HandResult{
			Outcome:   int(outcome),
			Blackjack: h.IsBlackjack() && !h.IsSplit(),
			Net:       payout - float64(h.Bet()),
			Split:     h.IsSplit(),
			Doubled:   h.IsDoubled(),
		})
		for _, b := range e.betting {
			b.RecordOutcome(outcome)
		}

		e.logger.Debug("Hand settled", "round", e.roundID, "hand", i, "outcome", outcome, "payout", payout)
		e.publish(NewHandSettledEvent(e.clock.Now(), e.roundID, i, len(hands), outcome, h.Bet(), payout, e.player.Balance()))
	}

	e.publish(NewRoundEndEvent(e.clock.Now(), e.roundID, dealerHand, hands, e.player.Balance()))
}

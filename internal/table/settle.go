package table

// Payout multipliers applied to a hand's stake. The stake has already left the
// balance, so a win returns stake plus winnings and a loss returns nothing.
const (
	BlackjackPayout = 2.5
	WinPayout       = 2.0
	PushPayout      = 1.0
	SurrenderPayout = 0.5
	LosePayout      = 0.0

	// InsurancePayout is applied to the insurance stake when the dealer has
	// blackjack.
	InsurancePayout = 2.0
)

// Result compares a player hand against the dealer. Busts are checked first,
// then blackjacks, then totals.
func Result(p *PlayerHand, dealer *Hand) Outcome {
	switch {
	case p.IsSurrendered():
		return Lose
	case p.IsBust():
		return Lose
	case dealer.IsBust():
		return Win
	case p.IsBlackjack():
		if dealer.IsBlackjack() {
			return Push
		}
		return Win
	case dealer.IsBlackjack():
		return Lose
	case p.Total() > dealer.Total():
		return Win
	case p.Total() < dealer.Total():
		return Lose
	default:
		return Push
	}
}

// Settle returns the outcome of hand p and the multiplier to apply to its
// stake. A two-card 21 on a split hand wins at the ordinary rate.
func Settle(p *PlayerHand, dealer *Hand) (Outcome, float64) {
	if p.IsSurrendered() {
		return Lose, SurrenderPayout
	}
	switch Result(p, dealer) {
	case Win:
		if p.IsBlackjack() && !p.IsSplit() {
			return Win, BlackjackPayout
		}
		return Win, WinPayout
	case Push:
		return Push, PushPayout
	default:
		return Lose, LosePayout
	}
}

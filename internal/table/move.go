package table

// Move is a hand-level decision the round engine carries out.
type Move int

const (
	Hit Move = iota
	Stand
	Surrender
	Split
	DoubleThenStand
	Insure
)

// String returns the advice name of the move
func (m Move) String() string {
	switch m {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Surrender:
		return "surrender"
	case Split:
		return "split"
	case DoubleThenStand:
		return "double"
	case Insure:
		return "insurance"
	default:
		return "unknown"
	}
}

// Symbol returns the single command token for the move (h, s, u, p, 2, i)
func (m Move) Symbol() string {
	switch m {
	case Hit:
		return "h"
	case Stand:
		return "s"
	case Surrender:
		return "u"
	case Split:
		return "p"
	case DoubleThenStand:
		return "2"
	case Insure:
		return "i"
	default:
		return "?"
	}
}

// Outcome is the settled result of one player hand
type Outcome int

const (
	Lose Outcome = iota - 1
	Push
	Win
)

// String returns the verb used when announcing the result
func (o Outcome) String() string {
	switch o {
	case Win:
		return "wins"
	case Lose:
		return "loses"
	default:
		return "pushes"
	}
}

package table

import "errors"

var ErrEmptyTrick = errors.New("no cards on the table")

// Play is a card on the table together with the seat (1..4) that played it.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Beats reports whether c takes the trick away from the current winner w.
//
// A higher card of the winner's suit beats it, and a trump beats anything but a
// higher trump. A different non-trump suit never wins, whatever its order.
func Beats(c, w Card, trump Suit) bool {
	if c.Order() > w.Order() && c.Suit == w.Suit {
		return true
	}
	if c.IsTrump(trump) {
		if w.IsTrump(trump) {
			return c.Order() > w.Order()
		}
		return true
	}
	return false
}

// WinningPlay walks the plays in order, keeping the earliest card on ties.
func WinningPlay(plays []Play, trump Suit) (Play, error) {
	if len(plays) == 0 {
		return Play{}, ErrEmptyTrick
	}
	win := plays[0]
	for _, p := range plays[1:] {
		if Beats(p.Card, win.Card, trump) {
			win = p
		}
	}
	return win, nil
}

// WinningSeat returns the seat owning the winning card.
func WinningSeat(plays []Play, trump Suit) (int, error) {
	p, err := WinningPlay(plays, trump)
	if err != nil {
		return 0, err
	}
	return p.Seat, nil
}

// LeadSuit is the suit of the first play, NoSuit on an empty table.
func LeadSuit(plays []Play) Suit {
	if len(plays) == 0 {
		return NoSuit
	}
	return plays[0].Card.Suit
}

// TeamOf maps a seat to its partnership: seats 1&3 are team 1, 2&4 team 2.
func TeamOf(seat int) int {
	if seat%2 == 1 {
		return 1
	}
	return 2
}

// PartnerOf returns the partner seat.
func PartnerOf(seat int) int {
	return (seat+1)%4 + 1
}

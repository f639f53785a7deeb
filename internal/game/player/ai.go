package player

import (
	"errors"
	"fmt"

	"West/internal/game/table"
)

// ErrNoCandidate means the lead-suit branch found neither a card above nor a
// card below the current winner. Only reachable when every lead-suit card in
// hand has the same order as a winning trump.
var ErrNoCandidate = errors.New("no lead-suit candidate to play")

// placeholder stands in for the winner when the player leads the round.
var placeholder = table.Play{Card: table.Card{Suit: table.NoSuit, Rank: -1}}

// AISelect picks, removes and returns the card to play on trick.
func (p *Player) AISelect(trick []table.Play, trump table.Suit) (table.Card, error) {
	if len(p.Hand) == 0 {
		return table.Card{}, ErrEmptyHand
	}
	card, err := p.decide(trick, trump)
	if err != nil {
		return table.Card{}, err
	}
	if err := p.Remove(card); err != nil {
		return table.Card{}, err
	}
	return card, nil
}

func (p *Player) decide(trick []table.Play, trump table.Suit) (table.Card, error) {
	lead := table.LeadSuit(trick)
	win, err := table.WinningPlay(trick, trump)
	if err != nil {
		win = placeholder
	}
	// the placeholder has no owner, so it never counts as the partner's card
	mate := win.Seat != 0 && p.IsTeammate(win.Seat)

	if lead != table.NoSuit && p.HasSuit(lead) {
		return p.followLead(lead, win.Card, mate)
	}
	return p.discard(win.Card, trump, mate), nil
}

// followLead: overtake an opponent's card of the same suit with the lowest
// card that beats it, otherwise duck with the lowest card under it.
func (p *Player) followLead(lead table.Suit, win table.Card, mate bool) (table.Card, error) {
	suit := p.CardsOfSuit(lead)

	var sm, gr *table.Card
	for i := range suit {
		if suit[i].Order() < win.Order() {
			sm = &suit[i]
			break
		}
	}
	for i := range suit {
		if suit[i].Order() > win.Order() {
			gr = &suit[i]
			break
		}
	}

	switch {
	case gr != nil && !mate && gr.Suit == win.Suit:
		return *gr, nil
	case sm != nil:
		return *sm, nil
	case gr != nil:
		return *gr, nil
	}
	return table.Card{}, fmt.Errorf("%w: seat %d, winner %s", ErrNoCandidate, p.ID, win)
}

// discard scans the hand in deal order. A trump that can take the trick from
// the opponents is played at once; otherwise the lowest card is shed, from the
// longer suit on equal order.
func (p *Player) discard(win table.Card, trump table.Suit, mate bool) table.Card {
	smallest := p.Hand[0]
	for _, c := range p.Hand {
		if c.IsTrump(trump) && !mate {
			if c.Suit != win.Suit || c.Order() > win.Order() {
				return c
			}
		}
		switch {
		case c.Order() < smallest.Order():
			smallest = c
		case c.Order() == smallest.Order():
			if len(p.CardsOfSuit(c.Suit)) >= len(p.CardsOfSuit(smallest.Suit)) {
				smallest = c
			}
		}
	}
	return smallest
}

package player

import (
	"errors"
	"fmt"
	"sort"

	"West/internal/game/table"
)

var (
	ErrCardNotInHand = errors.New("card not in hand")
	ErrMustFollow    = errors.New("must follow the lead suit")
	ErrEmptyHand     = errors.New("hand is empty")
)

// Player is one seat at the table. Seats 1&3 and 2&4 are partners.
type Player struct {
	ID        int // seat, 1..4
	TurnIndex int // 0-based seat order
	Hand      []table.Card

	teammate *Player
}

// NewPlayers seats four players with the dealt hands and links partners.
func NewPlayers(hands [table.Seats][]table.Card) [table.Seats]*Player {
	var ps [table.Seats]*Player
	for i := range ps {
		ps[i] = &Player{
			ID:        i + 1,
			TurnIndex: i,
			Hand:      append([]table.Card(nil), hands[i]...),
		}
	}
	for _, p := range ps {
		p.teammate = ps[table.PartnerOf(p.ID)-1]
	}
	return ps
}

func (p *Player) Teammate() *Player { return p.teammate }

// IsTeammate reports whether seat is this player's partner.
func (p *Player) IsTeammate(seat int) bool {
	return p.teammate != nil && p.teammate.ID == seat
}

func (p *Player) String() string { return fmt.Sprintf("%d", p.ID) }

// FindCard looks up an exact rank+suit match in the hand.
func (p *Player) FindCard(rank table.Rank, suit table.Suit) (table.Card, bool) {
	for _, c := range p.Hand {
		if c.Rank == rank && c.Suit == suit {
			return c, true
		}
	}
	return table.Card{}, false
}

// CardsOfSuit returns the hand's cards of suit, ascending by order.
func (p *Player) CardsOfSuit(suit table.Suit) []table.Card {
	var out []table.Card
	for _, c := range p.Hand {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}

func (p *Player) HasSuit(suit table.Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// CanPlay checks that c is held and follows lead when the player can.
func (p *Player) CanPlay(c table.Card, lead table.Suit) error {
	if _, ok := p.FindCard(c.Rank, c.Suit); !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
	}
	if lead != table.NoSuit && c.Suit != lead && p.HasSuit(lead) {
		return fmt.Errorf("%w: %s led, got %s", ErrMustFollow, lead, c)
	}
	return nil
}

// Remove takes c out of the hand.
func (p *Player) Remove(c table.Card) error {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
}

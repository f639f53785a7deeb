package table

import "fmt"

// Suit 花色. Hearts/Diamonds are red, Spades/Clubs black.
type Suit int

const (
	NoSuit Suit = iota - 1
	Hearts
	Diamonds
	Spades
	Clubs
)

// Suits in deck-building order.
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

// DisplaySuits is the grouping order used when showing a hand.
var DisplaySuits = []Suit{Hearts, Spades, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Letter is the single-letter form typed by a human (H/D/S/C).
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	}
	return ""
}

func (s Suit) IsRed() bool { return s == Hearts || s == Diamonds }

// Rank 点数 (2..14, 11=J, 12=Q, 13=K, 14=A)
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card 定义 (suit + rank). Cards are compared by value.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Order is the numeric strength of the card's rank.
func (c Card) Order() int {
	return int(c.Rank)
}

// IsTrump reports whether the card belongs to the hand's trump suit.
func (c Card) IsTrump(trump Suit) bool {
	return trump != NoSuit && c.Suit == trump
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Text is the form accepted by ParseCard, e.g. "10,H".
func (c Card) Text() string {
	return c.Rank.String() + "," + c.Suit.Letter()
}

// MarshalText encodes a suit as its letter; NoSuit is empty.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.Letter()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = NoSuit
		return nil
	}
	v, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

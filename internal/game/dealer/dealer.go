package dealer

import (
	"errors"
	"fmt"
	"math/rand"

	"West/internal/game/table"
)

var ErrDeckSize = errors.New("deck must hold 52 cards to deal")

// Dealer 只负责洗牌与发牌（无规则判断）
type Dealer struct {
	deck []table.Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]table.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck builds a fresh 52-card deck and shuffles it.
func (d *Dealer) NewDeck() {
	d.deck = makeDeck()
	d.shuffle()
}

// BuildDeck returns a freshly shuffled copy of the 52 cards.
func (d *Dealer) BuildDeck() []table.Card {
	d.NewDeck()
	return d.Deck()
}

// Deck returns a copy of the current deck order.
func (d *Dealer) Deck() []table.Card {
	out := make([]table.Card, len(d.deck))
	copy(out, d.deck)
	return out
}

func makeDeck() []table.Card {
	deck := make([]table.Card, 0, 52)
	for _, s := range table.Suits {
		for _, r := range table.Ranks {
			deck = append(deck, table.Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Fisher-Yates
func (d *Dealer) shuffle() {
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// Deal splits the shuffled deck into four contiguous blocks:
// seat 1 gets [0,13), seat 2 [13,26), seat 3 [26,39), seat 4 [39,52).
func (d *Dealer) Deal() ([table.Seats][]table.Card, error) {
	var hands [table.Seats][]table.Card
	if len(d.deck) != table.Seats*table.HandSize {
		return hands, fmt.Errorf("%w: have %d", ErrDeckSize, len(d.deck))
	}
	for i := range hands {
		hand := make([]table.Card, table.HandSize)
		copy(hand, d.deck[i*table.HandSize:(i+1)*table.HandSize])
		hands[i] = hand
	}
	d.deck = d.deck[:0]
	return hands, nil
}

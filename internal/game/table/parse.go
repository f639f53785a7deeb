package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadCardFormat = errors.New("card must look like <rank>,<suit>")

// ParseSuit maps H/S/D/C (any case) to a Suit.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "S":
		return Spades, nil
	case "C":
		return Clubs, nil
	}
	return NoSuit, fmt.Errorf("%w: unknown suit %q", ErrBadCardFormat, s)
}

// ParseRank accepts 2..10, J, Q, K, A (any case).
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Two) || n > int(Ten) {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrBadCardFormat, s)
	}
	return Rank(n), nil
}

// ParseCard parses "<rank>,<suit-letter>", e.g. "q,s" or "10,H".
func ParseCard(s string) (Card, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Card{}, ErrBadCardFormat
	}
	rank, err := ParseRank(parts[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(parts[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

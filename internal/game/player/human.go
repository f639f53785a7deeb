package player

import (
	"context"
	"errors"
	"fmt"
	"io"

	"West/internal/game/table"
)

// LineReader yields one line of human input per call.
type LineReader interface {
	ReadLine() (string, error)
}

// HumanSelect prompts until the typed card is held and legal, then removes
// and returns it. Bad input is reported on out and retried; only reader and
// context errors are returned.
func (p *Player) HumanSelect(ctx context.Context, in LineReader, out io.Writer, lead table.Suit) (table.Card, error) {
	for {
		if err := ctx.Err(); err != nil {
			return table.Card{}, err
		}
		fmt.Fprint(out, "> ")
		line, err := in.ReadLine()
		if err != nil {
			return table.Card{}, err
		}
		typed, err := table.ParseCard(line)
		if err != nil {
			fmt.Fprintln(out, "Incorrect format.")
			continue
		}
		card, ok := p.FindCard(typed.Rank, typed.Suit)
		if !ok {
			fmt.Fprintln(out, "card doesn't exist")
			continue
		}
		if err := p.CanPlay(card, lead); err != nil {
			if errors.Is(err, ErrMustFollow) {
				fmt.Fprintf(out, "you must follow %s\n", lead)
			}
			continue
		}
		if err := p.Remove(card); err != nil {
			return table.Card{}, err
		}
		return card, nil
	}
}

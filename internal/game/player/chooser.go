package player

import (
	"context"
	"io"

	"West/internal/game/table"

	"github.com/charmbracelet/log"
)

// View is what a seat sees when asked to play.
type View struct {
	Round int
	Trick []table.Play
	Trump table.Suit
}

// Chooser selects a card for p and removes it from p's hand.
type Chooser interface {
	Choose(ctx context.Context, p *Player, v View) (table.Card, error)
}

// Bot plays with AISelect.
type Bot struct {
	Log *log.Logger
}

func (b Bot) Choose(ctx context.Context, p *Player, v View) (table.Card, error) {
	if err := ctx.Err(); err != nil {
		return table.Card{}, err
	}
	card, err := p.AISelect(v.Trick, v.Trump)
	if err != nil {
		return table.Card{}, err
	}
	if b.Log != nil {
		b.Log.Debug("bot chose", "seat", p.ID, "round", v.Round, "card", card, "table", len(v.Trick))
	}
	return card, nil
}

// Human reads the card from In. Show, when set, is called before prompting
// so the caller can render the hand.
type Human struct {
	In   LineReader
	Out  io.Writer
	Show func(p *Player, v View)
}

func (h Human) Choose(ctx context.Context, p *Player, v View) (table.Card, error) {
	if h.Show != nil {
		h.Show(p, v)
	}
	return p.HumanSelect(ctx, h.In, h.Out, table.LeadSuit(v.Trick))
}

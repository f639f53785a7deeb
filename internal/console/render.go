package console

import (
	"sort"
	"strings"

	"West/internal/game/table"

	"github.com/charmbracelet/lipgloss"
)

var (
	clrRed   = lipgloss.Color("#D7263D")
	clrBlack = lipgloss.Color("#111111")
	clrFace  = lipgloss.Color("#FFFFFF")
	clrTrump = lipgloss.Color("#E3B341")

	cardStyle = lipgloss.NewStyle().
			Background(clrFace).
			Padding(0, 1).
			Margin(0, 1, 0, 0).
			Bold(true)
)

// suitRank is the display position of each suit: H, S, D, C.
func suitRank(s table.Suit) int {
	for i, d := range table.DisplaySuits {
		if d == s {
			return i
		}
	}
	return len(table.DisplaySuits)
}

// Sorted returns a copy of cards grouped H, S, D, C, each group ascending.
func Sorted(cards []table.Card) []table.Card {
	out := append([]table.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := suitRank(out[i].Suit), suitRank(out[j].Suit)
		if si != sj {
			return si < sj
		}
		return out[i].Order() < out[j].Order()
	})
	return out
}

func renderCard(c table.Card, trump table.Suit) string {
	st := cardStyle.Foreground(clrBlack)
	if c.Suit.IsRed() {
		st = st.Foreground(clrRed)
	}
	if c.IsTrump(trump) {
		st = st.Underline(true).Background(clrTrump)
	}
	return st.Render(c.String())
}

// Render draws cards side by side in display order; trump cards are underlined.
func Render(cards []table.Card, trump table.Suit) string {
	if len(cards) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(cards))
	for _, c := range Sorted(cards) {
		blocks = append(blocks, renderCard(c, trump))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Plain is Render without styling, one space between cards.
func Plain(cards []table.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range Sorted(cards) {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

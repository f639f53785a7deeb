package console

import (
	"fmt"
	"io"
	"time"

	"West/internal/game/engine"
	"West/internal/game/player"
	"West/internal/game/table"
	"West/internal/websocket"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58A6FF"))
	scoreStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363D")).
			Padding(0, 2)
	winStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950"))
	errStyle = lipgloss.NewStyle().Bold(true).Foreground(clrRed)
)

// Listener prints engine events to a terminal. It runs on the engine's
// goroutine, so Delay paces the whole match.
type Listener struct {
	Out   io.Writer
	Delay time.Duration

	trump table.Suit
}

func NewListener(out io.Writer, delay time.Duration) *Listener {
	return &Listener{Out: out, Delay: delay, trump: table.NoSuit}
}

func (l *Listener) BroadcastToMatch(matchID string, msg websocket.OutgoingMessage) {
	switch d := msg.Data.(type) {
	case engine.HandDealt:
		l.trump = table.NoSuit
		fmt.Fprintln(l.Out, titleStyle.Render(fmt.Sprintf("New hand, player %d leads", d.Leader)))
	case engine.CardPlayed:
		fmt.Fprintf(l.Out, "Player %d played:\n%s\n", d.Seat, Render([]table.Card{d.Card}, l.trump))
		l.pause()
	case engine.TrumpSet:
		l.trump = d.Suit
		fmt.Fprintf(l.Out, "Ato is %s\n", d.Suit)
	case engine.RoundResolved:
		fmt.Fprintf(l.Out, "Round %d goes to player %d\n", d.Round.Number, d.Round.Winner)
		fmt.Fprintln(l.Out, ScoreTable(d.Scores))
	case *engine.Result:
		fmt.Fprintln(l.Out, ScoreTable(d.Scores))
		fmt.Fprintln(l.Out, winStyle.Render(Verdict(d.Winner)))
	case engine.MatchAborted:
		fmt.Fprintln(l.Out, errStyle.Render(fmt.Sprintf("match aborted in round %d: %s", d.Round, d.Error)))
	}
}

func (l *Listener) pause() {
	if l.Delay > 0 {
		time.Sleep(l.Delay)
	}
}

// ShowHand is meant for player.Human.Show.
func (l *Listener) ShowHand(p *player.Player, v player.View) {
	fmt.Fprintf(l.Out, "\nRound %d, your hand (player %d):\n%s\n", v.Round, p.ID, Render(p.Hand, v.Trump))
	if lead := table.LeadSuit(v.Trick); lead != table.NoSuit {
		fmt.Fprintf(l.Out, "Lead suit: %s\n", lead)
	}
	fmt.Fprintln(l.Out, "Enter a card as <rank>,<suit> e.g. 10,H")
}

func ScoreTable(scores [2]int) string {
	return scoreStyle.Render(fmt.Sprintf("Team 1 | TEAM 2\n%6d | %-6d", scores[0], scores[1]))
}

func Verdict(winner int) string {
	switch winner {
	case 1:
		return "First Team Won!🎉"
	case 2:
		return "Second Team Won!🎉"
	}
	return "TIE !!!!"
}

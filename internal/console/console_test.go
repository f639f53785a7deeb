package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"West/internal/game/engine"
	"West/internal/game/player"
	"West/internal/game/table"
	"West/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r table.Rank, s table.Suit) table.Card { return table.Card{Suit: s, Rank: r} }

func TestSortedGroupsBySuit(t *testing.T) {
	hand := []table.Card{
		c(table.Ace, table.Clubs),
		c(table.Two, table.Diamonds),
		c(table.King, table.Hearts),
		c(table.Three, table.Spades),
		c(table.Four, table.Hearts),
		c(table.Ten, table.Clubs),
	}
	got := Sorted(hand)
	assert.Equal(t, []table.Card{
		c(table.Four, table.Hearts),
		c(table.King, table.Hearts),
		c(table.Three, table.Spades),
		c(table.Two, table.Diamonds),
		c(table.Ten, table.Clubs),
		c(table.Ace, table.Clubs),
	}, got)
	// 原切片不变
	assert.Equal(t, c(table.Ace, table.Clubs), hand[0])
}

func TestRender(t *testing.T) {
	assert.Empty(t, Render(nil, table.NoSuit))
	out := Render([]table.Card{c(table.Queen, table.Spades), c(table.Ten, table.Hearts)}, table.Hearts)
	assert.Contains(t, out, "Q♠")
	assert.Contains(t, out, "10♥")
	assert.Less(t, strings.Index(out, "10♥"), strings.Index(out, "Q♠"))

	assert.Equal(t, "2♥ J♦", Plain([]table.Card{c(table.Jack, table.Diamonds), c(table.Two, table.Hearts)}))
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(" 10,H \nA,s\nlast"))
	for _, want := range []string{"10,H", "A,s", "last"} {
		line, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := r.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}

// Reader 与 HumanSelect 组合使用
func TestReaderDrivesHumanSelect(t *testing.T) {
	players := player.NewPlayers([table.Seats][]table.Card{
		{c(table.Ace, table.Spades), c(table.Two, table.Hearts)},
		{c(table.Three, table.Clubs)},
		{c(table.Four, table.Clubs)},
		{c(table.Five, table.Clubs)},
	})
	var out bytes.Buffer
	in := NewReader(strings.NewReader("bogus\n2,H\n"))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	card, err := players[0].HumanSelect(ctx, in, &out, table.Hearts)
	require.NoError(t, err)
	assert.Equal(t, c(table.Two, table.Hearts), card)
	assert.Contains(t, out.String(), "Incorrect format.")
	assert.Len(t, players[0].Hand, 1)
}

func TestListener(t *testing.T) {
	var out bytes.Buffer
	l := NewListener(&out, 0)
	send := func(event string, data any) {
		l.BroadcastToMatch("m", websocket.OutgoingMessage{Event: event, Data: data})
	}

	send(engine.EventHandDealt, engine.HandDealt{MatchID: "m", Leader: 1})
	send(engine.EventCardPlayed, engine.CardPlayed{MatchID: "m", Round: 1, Seat: 1, Card: c(table.Ace, table.Diamonds)})
	send(engine.EventTrumpSet, engine.TrumpSet{MatchID: "m", Suit: table.Diamonds, Seat: 1})
	send(engine.EventRoundResolved, engine.RoundResolved{
		MatchID: "m",
		Round:   table.Round{Number: 1, Leader: 1, Winner: 1},
		Team:    1,
		Scores:  [2]int{1, 0},
	})
	send(engine.EventMatchComplete, &engine.Result{MatchID: "m", Scores: [2]int{7, 6}, Winner: 1})

	s := out.String()
	assert.Contains(t, s, "Player 1 played:")
	assert.Contains(t, s, "A♦")
	assert.Contains(t, s, "Ato is ♦")
	assert.Contains(t, s, "Round 1 goes to player 1")
	assert.Contains(t, s, "TEAM 2")
	assert.Contains(t, s, "First Team Won!🎉")
	assert.Equal(t, table.Diamonds, l.trump)

	out.Reset()
	send(engine.EventMatchAborted, engine.MatchAborted{MatchID: "m", Round: 4, Error: "boom"})
	assert.Contains(t, out.String(), "match aborted in round 4: boom")
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "First Team Won!🎉", Verdict(1))
	assert.Equal(t, "Second Team Won!🎉", Verdict(2))
	assert.Equal(t, "TIE !!!!", Verdict(0))
}

func TestShowHand(t *testing.T) {
	var out bytes.Buffer
	l := NewListener(&out, 0)
	players := player.NewPlayers([table.Seats][]table.Card{
		{c(table.Nine, table.Clubs), c(table.Two, table.Hearts)},
		{}, {}, {},
	})
	l.ShowHand(players[0], player.View{
		Round: 3,
		Trick: []table.Play{{Seat: 4, Card: c(table.Jack, table.Clubs)}},
		Trump: table.Hearts,
	})
	s := out.String()
	assert.Contains(t, s, "Round 3, your hand (player 1)")
	assert.Contains(t, s, "Lead suit: ♣")
	assert.Less(t, strings.Index(s, "2♥"), strings.Index(s, "9♣"))
}

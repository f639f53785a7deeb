package engine

import (
	"West/internal/game/table"
	"West/internal/websocket"
)

const (
	EventHandDealt     = "hand_dealt"
	EventCardPlayed    = "card_played"
	EventTrumpSet      = "trump_set"
	EventRoundResolved = "round_resolved"
	EventMatchComplete = "match_complete"
	EventMatchAborted  = "match_aborted"
)

// Broadcaster receives every engine event. The spectator hub and the
// console listener both implement it.
type Broadcaster interface {
	BroadcastToMatch(matchID string, msg websocket.OutgoingMessage)
}

type HandDealt struct {
	MatchID string `json:"matchId"`
	Leader  int    `json:"leader"`
}

type CardPlayed struct {
	MatchID string       `json:"matchId"`
	Round   int          `json:"round"`
	Seat    int          `json:"seat"`
	Card    table.Card   `json:"card"`
	Trick   []table.Play `json:"trick"`
}

type TrumpSet struct {
	MatchID string     `json:"matchId"`
	Suit    table.Suit `json:"suit"`
	Seat    int        `json:"seat"`
}

type RoundResolved struct {
	MatchID string      `json:"matchId"`
	Round   table.Round `json:"round"`
	Team    int         `json:"team"`
	Scores  [2]int      `json:"scores"`
}

type MatchAborted struct {
	MatchID string `json:"matchId"`
	Round   int    `json:"round"`
	Error   string `json:"error"`
}

func (e *Engine) emit(event string, data any) {
	if e.Hub == nil {
		return
	}
	e.Hub.BroadcastToMatch(e.Table.ID, websocket.OutgoingMessage{
		Event: event,
		Data:  data,
	})
}

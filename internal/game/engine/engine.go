package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"West/internal/game/dealer"
	"West/internal/game/player"
	"West/internal/game/table"
	"West/internal/utils"

	"github.com/charmbracelet/log"
)

var (
	ErrMatchComplete = errors.New("all rounds have been played")
	ErrNotDealt      = errors.New("hand has not been dealt")
)

// Result is the outcome of one 13-round hand.
type Result struct {
	MatchID    string        `json:"matchId"`
	Trump      table.Suit    `json:"trump"`
	Scores     [2]int        `json:"scores"`
	Winner     int           `json:"winner"` // team 1 or 2, 0 on a tie
	Rounds     []table.Round `json:"rounds"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// Snapshot is a consistent copy of the table for readers outside the engine.
type Snapshot struct {
	MatchID string       `json:"matchId"`
	State   table.State  `json:"state"`
	Round   int          `json:"round"`
	Leader  int          `json:"leader"`
	Trump   table.Suit   `json:"trump"`
	Scores  [2]int       `json:"scores"`
	Trick   []table.Play `json:"trick"`
}

// Engine drives one hand: deal, 13 rounds in rotating order, scoring.
// Seats act strictly one at a time.
type Engine struct {
	Table   *table.Table
	Dealer  *dealer.Dealer
	Hub     Broadcaster
	Players [table.Seats]*player.Player

	choosers [table.Seats]player.Chooser
	log      *log.Logger
	mu       sync.RWMutex
}

func NewEngine(t *table.Table, hub Broadcaster, choosers [table.Seats]player.Chooser, seed int64) *Engine {
	return &Engine{
		Table:    t,
		Dealer:   dealer.NewDealer(seed),
		Hub:      hub,
		choosers: choosers,
		log:      utils.Log.With("match", t.ID),
	}
}

// Start: 洗牌 + 发牌
func (e *Engine) Start() error {
	e.Dealer.NewDeck()
	hands, err := e.Dealer.Deal()
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.Players = player.NewPlayers(hands)
	e.Table.State = table.StateDealing
	e.Table.Round = 0
	e.Table.Leader = 1
	e.Table.Trump = table.NoSuit
	e.Table.Trick = nil
	e.Table.Scores = [2]int{}
	e.Table.Rounds = nil
	e.mu.Unlock()

	e.log.Debug("hand dealt")
	e.emit(EventHandDealt, HandDealt{MatchID: e.Table.ID, Leader: e.Table.Leader})
	return nil
}

// PlayRound asks each seat for a card starting at the leader, fixes the trump
// on the hand's first card, resolves the trick and credits the winner.
func (e *Engine) PlayRound(ctx context.Context) (table.Round, error) {
	if e.Players[0] == nil {
		return table.Round{}, ErrNotDealt
	}
	if e.Table.Round >= table.RoundsPerHand {
		return table.Round{}, ErrMatchComplete
	}

	e.mu.Lock()
	e.Table.Round++
	e.Table.State = table.StatePlaying
	e.Table.Trick = make([]table.Play, 0, table.Seats)
	round := e.Table.Round
	order := e.Table.TurnOrder()
	e.mu.Unlock()

	for _, seat := range order {
		if err := e.turn(ctx, round, seat); err != nil {
			return table.Round{}, fmt.Errorf("round %d seat %d: %w", round, seat, err)
		}
	}

	winner, err := table.WinningSeat(e.Table.Trick, e.Table.Trump)
	if err != nil {
		return table.Round{}, err
	}

	e.mu.Lock()
	e.Table.Credit(winner)
	rec := table.Round{
		Number: round,
		Leader: order[0],
		Plays:  e.Table.Trick,
		Winner: winner,
	}
	e.Table.Rounds = append(e.Table.Rounds, rec)
	e.Table.Leader = winner
	e.Table.State = table.StateResolved
	scores := e.Table.Scores
	e.mu.Unlock()

	e.log.Info("round resolved", "round", round, "winner", winner, "team", table.TeamOf(winner), "scores", scores)
	e.emit(EventRoundResolved, RoundResolved{
		MatchID: e.Table.ID,
		Round:   rec,
		Team:    table.TeamOf(winner),
		Scores:  scores,
	})
	return rec, nil
}

func (e *Engine) turn(ctx context.Context, round, seat int) error {
	p := e.Players[seat-1]
	chooser := e.choosers[seat-1]
	if chooser == nil {
		chooser = player.Bot{Log: e.log}
	}

	e.mu.RLock()
	trick := append([]table.Play(nil), e.Table.Trick...)
	trump := e.Table.Trump
	e.mu.RUnlock()

	before := &player.Player{ID: seat, Hand: append([]table.Card(nil), p.Hand...)}
	card, err := chooser.Choose(ctx, p, player.View{Round: round, Trick: trick, Trump: trump})
	if err != nil {
		return err
	}
	if err := before.CanPlay(card, table.LeadSuit(trick)); err != nil {
		return err
	}
	if len(p.Hand) != len(before.Hand)-1 {
		return fmt.Errorf("chooser kept %s in hand", card)
	}

	play := table.Play{Seat: seat, Card: card}
	e.mu.Lock()
	e.Table.Trick = append(e.Table.Trick, play)
	first := round == 1 && len(e.Table.Trick) == 1
	if first {
		e.Table.Trump = card.Suit
	}
	trick = append([]table.Play(nil), e.Table.Trick...)
	e.mu.Unlock()

	e.log.Debug("card played", "round", round, "seat", seat, "card", card)
	e.emit(EventCardPlayed, CardPlayed{
		MatchID: e.Table.ID,
		Round:   round,
		Seat:    seat,
		Card:    card,
		Trick:   trick,
	})
	if first {
		e.log.Info("trump set", "suit", card.Suit, "seat", seat)
		e.emit(EventTrumpSet, TrumpSet{MatchID: e.Table.ID, Suit: card.Suit, Seat: seat})
	}
	return nil
}

// Run deals and plays the whole hand. Any error aborts the match.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	if err := e.Start(); err != nil {
		return nil, e.abort(err)
	}
	for e.Table.Round < table.RoundsPerHand {
		if _, err := e.PlayRound(ctx); err != nil {
			return nil, e.abort(err)
		}
	}

	e.mu.Lock()
	e.Table.State = table.StateComplete
	res := &Result{
		MatchID:    e.Table.ID,
		Trump:      e.Table.Trump,
		Scores:     e.Table.Scores,
		Winner:     e.Table.WinnerTeam(),
		Rounds:     append([]table.Round(nil), e.Table.Rounds...),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	e.mu.Unlock()

	e.log.Info("match complete", "scores", res.Scores, "winner", res.Winner)
	e.emit(EventMatchComplete, res)
	return res, nil
}

func (e *Engine) abort(err error) error {
	e.mu.Lock()
	e.Table.State = table.StateAborted
	round := e.Table.Round
	e.mu.Unlock()

	e.log.Error("match aborted", "round", round, "err", err)
	e.emit(EventMatchAborted, MatchAborted{MatchID: e.Table.ID, Round: round, Error: err.Error()})
	return err
}

// Snapshot copies the live table state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		MatchID: e.Table.ID,
		State:   e.Table.State,
		Round:   e.Table.Round,
		Leader:  e.Table.Leader,
		Trump:   e.Table.Trump,
		Scores:  e.Table.Scores,
		Trick:   append([]table.Play(nil), e.Table.Trick...),
	}
}

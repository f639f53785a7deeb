package table

import "time"

// State of a hand on the table.
type State string

const (
	StateDealing  State = "dealing"
	StatePlaying  State = "playing"  // a round is in progress
	StateResolved State = "resolved" // the round's winner is known
	StateComplete State = "complete"
	StateAborted  State = "aborted"
)

const (
	Seats         = 4
	HandSize      = 13
	RoundsPerHand = HandSize
)

// Round records one resolved trick.
type Round struct {
	Number int    `json:"number"`
	Leader int    `json:"leader"`
	Plays  []Play `json:"plays"`
	Winner int    `json:"winner"`
}

// Table is the shared state of one hand: trump, the current trick and the
// partnership scores.
type Table struct {
	ID        string
	CreatedAt time.Time

	// 运行时状态
	State  State
	Round  int // 1..13, 0 before the first round
	Leader int // seat that leads the current round
	Trump  Suit
	Trick  []Play
	Scores [2]int // team 1 (seats 1&3), team 2 (seats 2&4)
	Rounds []Round
}

func New(id string) *Table {
	return &Table{
		ID:        id,
		CreatedAt: time.Now(),
		State:     StateDealing,
		Leader:    1,
		Trump:     NoSuit,
	}
}

// TurnOrder returns the four seats in play order starting at the leader.
func (t *Table) TurnOrder() []int {
	order := make([]int, 0, Seats)
	for i := 0; i < Seats; i++ {
		order = append(order, (t.Leader-1+i)%Seats+1)
	}
	return order
}

// Credit adds one trick to the seat's partnership.
func (t *Table) Credit(seat int) {
	t.Scores[TeamOf(seat)-1]++
}

// WinnerTeam is 1 or 2, or 0 when the scores are level.
func (t *Table) WinnerTeam() int {
	switch {
	case t.Scores[0] > t.Scores[1]:
		return 1
	case t.Scores[1] > t.Scores[0]:
		return 2
	}
	return 0
}

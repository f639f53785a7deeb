package history

import (
	"time"

	"West/internal/game/table"
)

// Record 一局结束后的结果
type Record struct {
	ID         string        `json:"id"`
	Trump      table.Suit    `json:"trump"`
	Scores     [2]int        `json:"scores"`
	Winner     int           `json:"winner"` // 0 means tie
	Rounds     []table.Round `json:"rounds"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// Standings tallies partnership wins over the recent window.
type Standings struct {
	Matches int `json:"matches"`
	Team1   int `json:"team1"`
	Team2   int `json:"team2"`
	Ties    int `json:"ties"`
}

// ListResponse is the body of GET /history.
type ListResponse struct {
	Matches   []*Record `json:"matches"`
	Standings Standings `json:"standings"`
}

package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"West/internal/game/engine"
	"West/internal/game/player"
	"West/internal/game/table"
	"West/internal/history"
	"West/internal/utils"
)

var ErrMatchExists = errors.New("match already running")

// GameManager 管理所有正在进行的对局
type GameManager struct {
	mu      sync.RWMutex
	engines map[string]*engine.Engine // matchID → engine
	hub     engine.Broadcaster
	history *history.Service
	delay   time.Duration // 每次出牌之间的停顿，方便观战

	lastSeed int64 // last time-based seed, kept strictly increasing

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// OnFinished is called after a match has been recorded or aborted.
	OnFinished func(id string, res *engine.Result, err error)
}

func NewGameManager(hub engine.Broadcaster, hist *history.Service, delay time.Duration) *GameManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &GameManager{
		engines: make(map[string]*engine.Engine),
		hub:     hub,
		history: hist,
		delay:   delay,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// StartMatch 创建桌子并异步跑完四个 AI 的一整手牌
// seed 0 picks a time-based seed; the seed actually used is returned.
func (m *GameManager) StartMatch(id string, seed int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.engines[id]; ok {
		return 0, fmt.Errorf("%w: %s", ErrMatchExists, id)
	}
	if m.ctx.Err() != nil {
		return 0, m.ctx.Err()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
		if seed <= m.lastSeed {
			seed = m.lastSeed + 1
		}
		m.lastSeed = seed
	}

	var choosers [table.Seats]player.Chooser
	for i := range choosers {
		choosers[i] = paced{next: player.Bot{Log: utils.Log.With("match", id)}, delay: m.delay}
	}
	eng := engine.NewEngine(table.New(id), m.hub, choosers, seed)
	m.engines[id] = eng

	utils.Log.Debug("match started", "match", id, "seed", seed)
	m.wg.Add(1)
	go m.run(id, eng)
	return seed, nil
}

func (m *GameManager) run(id string, eng *engine.Engine) {
	defer m.wg.Done()

	res, err := eng.Run(m.ctx)
	if err == nil && m.history != nil {
		rec := &history.Record{
			ID:         res.MatchID,
			Trump:      res.Trump,
			Scores:     res.Scores,
			Winner:     res.Winner,
			Rounds:     res.Rounds,
			StartedAt:  res.StartedAt,
			FinishedAt: res.FinishedAt,
		}
		if herr := m.history.Record(context.Background(), rec); herr != nil {
			utils.Log.Error("record match failed", "match", id, "err", herr)
		}
	}

	m.mu.Lock()
	delete(m.engines, id)
	m.mu.Unlock()

	if m.OnFinished != nil {
		m.OnFinished(id, res, err)
	}
}

// Snapshot returns the live table of a running match.
func (m *GameManager) Snapshot(id string) (engine.Snapshot, bool) {
	m.mu.RLock()
	eng, ok := m.engines[id]
	m.mu.RUnlock()
	if !ok {
		return engine.Snapshot{}, false
	}
	return eng.Snapshot(), true
}

func (m *GameManager) Running() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.engines)
}

// Close cancels every running match and waits for them to stop.
func (m *GameManager) Close() {
	m.cancel()
	m.wg.Wait()
}

// paced 在出牌前等待 delay
type paced struct {
	next  player.Chooser
	delay time.Duration
}

func (p paced) Choose(ctx context.Context, pl *player.Player, v player.View) (table.Card, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return table.Card{}, ctx.Err()
		case <-t.C:
		}
	}
	return p.next.Choose(ctx, pl, v)
}

package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"West/internal/game/dealer"
	"West/internal/game/engine"
	"West/internal/game/player"
	"West/internal/history"
	"West/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHub 记录广播的事件
type mockHub struct {
	mu     sync.Mutex
	events map[string][]string // matchID → events
}

func newMockHub() *mockHub {
	return &mockHub{events: make(map[string][]string)}
}

func (h *mockHub) BroadcastToMatch(matchID string, msg websocket.OutgoingMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events[matchID] = append(h.events[matchID], msg.Event)
}

func (h *mockHub) Events(matchID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.events[matchID]...)
}

func newManager(t *testing.T, delay time.Duration) (*GameManager, *history.Service, *mockHub) {
	hub := newMockHub()
	hist := history.NewService(history.NewMemoryRepo(), 60, 10)
	mgr := NewGameManager(hub, hist, delay)
	t.Cleanup(mgr.Close)
	return mgr, hist, hub
}

func waitFinished(mgr *GameManager) <-chan error {
	done := make(chan error, 8)
	mgr.OnFinished = func(id string, res *engine.Result, err error) { done <- err }
	return done
}

// ✅ 一局跑完后应写入历史并从 engines 中移除
func TestGameManagerStartMatch(t *testing.T) {
	mgr, hist, hub := newManager(t, 0)
	done := waitFinished(mgr)

	// a bot may abort a hand with ErrNoCandidate after a ruff, so try a few seeds
	for seed := int64(1); seed <= 50; seed++ {
		id := fmt.Sprintf("m-%d", seed)
		got, err := mgr.StartMatch(id, seed)
		require.NoError(t, err)
		require.Equal(t, seed, got)

		select {
		case err = <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("match did not finish")
		}
		assert.Equal(t, 0, mgr.Running())

		rec, herr := hist.Get(context.Background(), id)
		if err != nil {
			require.ErrorIs(t, err, player.ErrNoCandidate)
			assert.ErrorIs(t, herr, history.ErrNotFound, "aborted matches are not recorded")
			continue
		}
		require.NoError(t, herr)
		assert.Len(t, rec.Rounds, 13)
		assert.Equal(t, 13, rec.Scores[0]+rec.Scores[1])

		evs := hub.Events(id)
		require.NotEmpty(t, evs)
		assert.Equal(t, engine.EventHandDealt, evs[0])
		assert.Equal(t, engine.EventMatchComplete, evs[len(evs)-1])
		return
	}
	t.Fatal("no seed completed a hand")
}

// ✅ 重复 ID 应报错
func TestGameManagerDuplicateMatch(t *testing.T) {
	mgr, _, _ := newManager(t, time.Second)

	_, err := mgr.StartMatch("r1", 1)
	require.NoError(t, err)
	_, err = mgr.StartMatch("r1", 1)
	assert.ErrorIs(t, err, ErrMatchExists)

	snap, ok := mgr.Snapshot("r1")
	assert.True(t, ok)
	assert.Equal(t, "r1", snap.MatchID)
}

// ✅ 并发安全
func TestGameManagerConcurrency(t *testing.T) {
	mgr, _, _ := newManager(t, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = mgr.StartMatch(fmt.Sprintf("r%d", i), int64(i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, mgr.Running())
}

// Close 取消进行中的对局，不写历史
func TestGameManagerCloseAborts(t *testing.T) {
	mgr, hist, hub := newManager(t, time.Second)
	done := waitFinished(mgr)

	_, err := mgr.StartMatch("slow", 3)
	require.NoError(t, err)
	mgr.Close()

	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
	_, herr := hist.Get(context.Background(), "slow")
	assert.ErrorIs(t, herr, history.ErrNotFound)
	assert.Contains(t, hub.Events("slow"), engine.EventMatchAborted)
	_, err = mgr.StartMatch("late", 1)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr, hist, _ := newManager(t, time.Second)
	require.NoError(t, hist.Record(context.Background(), &history.Record{ID: "done", Winner: 1}))

	r := gin.New()
	h := NewHandler(mgr, hist)
	r.POST("/matches", h.Start)
	r.GET("/matches/:id", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(`{"seed":5}`)))
	require.Equal(t, http.StatusAccepted, w.Code)
	var started StartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	id := started.MatchID
	assert.NotEmpty(t, id)
	assert.Equal(t, int64(5), started.Seed)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matchId":"`+id+`"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/done", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"done"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(`{bad`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// 不带 body 的请求每次都应换一副牌
func TestHandlerStartWithoutSeedDealsFreshHands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr, hist, _ := newManager(t, time.Second)

	r := gin.New()
	r.POST("/matches", NewHandler(mgr, hist).Start)

	start := func() StartResponse {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/matches", nil))
		require.Equal(t, http.StatusAccepted, w.Code)
		var resp StartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}
	first, second := start(), start()

	assert.NotEqual(t, first.MatchID, second.MatchID)
	assert.NotZero(t, first.Seed)
	assert.NotZero(t, second.Seed)
	assert.NotEqual(t, first.Seed, second.Seed)
	assert.NotEqual(t,
		dealer.NewDealer(first.Seed).BuildDeck(),
		dealer.NewDealer(second.Seed).BuildDeck(),
		"seedless matches must not share a deal")
}

func TestStartMatchZeroSeedIsTimeBased(t *testing.T) {
	mgr, _, _ := newManager(t, time.Second)
	a, err := mgr.StartMatch("z1", 0)
	require.NoError(t, err)
	b, err := mgr.StartMatch("z2", 0)
	require.NoError(t, err)
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

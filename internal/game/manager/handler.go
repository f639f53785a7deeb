package manager

import (
	"errors"
	"net/http"

	"West/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	mgr  *GameManager
	hist *history.Service
}

func NewHandler(mgr *GameManager, hist *history.Service) *Handler {
	return &Handler{mgr: mgr, hist: hist}
}

type StartRequest struct {
	Seed int64 `json:"seed"`
}

type StartResponse struct {
	MatchID string `json:"matchId"`
	Seed    int64  `json:"seed"`
}

// POST /matches
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	// body 可为空
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	id := uuid.NewString()
	seed, err := h.mgr.StartMatch(id, req.Seed)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, StartResponse{MatchID: id, Seed: seed})
}

// GET /matches/:id 先查进行中的对局，再查历史
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if snap, ok := h.mgr.Snapshot(id); ok {
		c.JSON(http.StatusOK, snap)
		return
	}
	if h.hist != nil {
		rec, err := h.hist.Get(c.Request.Context(), id)
		if err == nil {
			c.JSON(http.StatusOK, rec)
			return
		}
		if !errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
}

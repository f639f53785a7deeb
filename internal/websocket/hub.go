package websocket

import (
	"sync"

	"West/internal/utils"
)

type HubInterface interface {
	BroadcastToMatch(matchID string, msg OutgoingMessage)
	SendToClient(id string, msg OutgoingMessage)
	Subscribe(id, matchID string)
	Close()
}

// Hub fans match events out to the spectators subscribed to that match.
type Hub struct {
	clients    map[string]*Client             // client id -> client
	matches    map[string]map[string]struct{} // match id -> client ids
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	subscribe  chan subscribeReq
	incoming   chan IncomingMessage
	OnIncoming func(IncomingMessage)
	quit       chan struct{}
	mu         sync.RWMutex
}

type broadcastReq struct {
	MatchID string
	Message OutgoingMessage
}

type sendReq struct {
	ClientID string
	Message  OutgoingMessage
}

type subscribeReq struct {
	ClientID string
	MatchID  string
	Leave    bool
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		matches:    make(map[string]map[string]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		subscribe:  make(chan subscribeReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			utils.Log.Debug("hub register", "client", c.ID, "clients", len(h.clients))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				for id, subs := range h.matches {
					delete(subs, c.ID)
					if len(subs) == 0 {
						delete(h.matches, id)
					}
				}
				utils.Log.Debug("hub unregister", "client", c.ID, "clients", len(h.clients))
				close(c.Send)
			}
			h.mu.Unlock()

		case req := <-h.subscribe:
			h.mu.Lock()
			h.applySubscription(req)
			h.mu.Unlock()

		case req := <-h.broadcast:
			h.mu.RLock()
			for id := range h.matches[req.MatchID] {
				if client, ok := h.clients[id]; ok {
					deliver(client, req.Message)
				}
			}
			h.mu.RUnlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			if client, ok := h.clients[req.ClientID]; ok {
				deliver(client, req.Message)
			}
			h.mu.RUnlock()

		case msg := <-h.incoming:
			h.handleIncoming(msg)

		case <-h.quit:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		}
	}
}

// slow spectators lose events rather than stall the game
func deliver(c *Client, msg OutgoingMessage) {
	select {
	case c.Send <- msg:
	default:
		utils.Log.Warn("spectator buffer full, dropping event", "client", c.ID, "event", msg.Event)
	}
}

func (h *Hub) applySubscription(req subscribeReq) {
	if _, ok := h.clients[req.ClientID]; !ok {
		return
	}
	subs := h.matches[req.MatchID]
	if req.Leave {
		delete(subs, req.ClientID)
		if len(subs) == 0 {
			delete(h.matches, req.MatchID)
		}
		return
	}
	if subs == nil {
		subs = make(map[string]struct{})
		h.matches[req.MatchID] = subs
	}
	subs[req.ClientID] = struct{}{}
}

func (h *Hub) handleIncoming(msg IncomingMessage) {
	matchID, _ := msg.Data.(string)
	switch msg.Event {
	case EventSubscribe:
		if matchID != "" {
			h.mu.Lock()
			h.applySubscription(subscribeReq{ClientID: msg.From, MatchID: matchID})
			h.mu.Unlock()
		}
	case EventUnsubscribe:
		h.mu.Lock()
		h.applySubscription(subscribeReq{ClientID: msg.From, MatchID: matchID, Leave: true})
		h.mu.Unlock()
	default:
		if h.OnIncoming != nil {
			h.OnIncoming(msg)
		}
	}
}

// BroadcastToMatch sends msg to every spectator of matchID.
func (h *Hub) BroadcastToMatch(matchID string, msg OutgoingMessage) {
	select {
	case h.broadcast <- broadcastReq{MatchID: matchID, Message: msg}:
	case <-h.quit:
	}
}

// SendToClient sends msg to a single spectator.
func (h *Hub) SendToClient(id string, msg OutgoingMessage) {
	select {
	case h.sendOne <- sendReq{ClientID: id, Message: msg}:
	case <-h.quit:
	}
}

// Subscribe adds client id to the spectators of matchID.
func (h *Hub) Subscribe(id, matchID string) {
	select {
	case h.subscribe <- subscribeReq{ClientID: id, MatchID: matchID}:
	case <-h.quit:
	}
}

// Subscribers returns how many spectators follow matchID.
func (h *Hub) Subscribers(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.matches[matchID])
}

// Register adds c to the hub. It reports false once the hub is closed.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

// Unregister removes c and closes its Send channel; a no-op after Close.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

func (h *Hub) forward(msg IncomingMessage) bool {
	select {
	case h.incoming <- msg:
		return true
	case <-h.quit:
		return false
	}
}

// Close stops Run; later sends into the hub return without blocking.
func (h *Hub) Close() {
	close(h.quit)
}

package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws?match=<id>
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := &Client{
			ID:   uuid.NewString(),
			Conn: conn,
			Send: make(chan OutgoingMessage, 64),
			Hub:  hub,
		}

		if !hub.Register(client) {
			_ = conn.Close()
			return
		}
		if match := c.Query("match"); match != "" {
			hub.Subscribe(client.ID, match)
		}

		go client.writePump()
		go client.readPump()
	}
}

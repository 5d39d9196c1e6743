package realtime

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

const writeTimeout = 5 * time.Second

// wsConn adapts a coder/websocket connection to the hub's Conn interface
type wsConn struct {
	conn *websocket.Conn
}

func (w *wsConn) Send(ctx context.Context, payload []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return w.conn.Write(writeCtx, websocket.MessageText, payload)
}

func (w *wsConn) Close(reason string) {
	_ = w.conn.Close(websocket.StatusNormalClosure, reason)
}

// Handler upgrades HTTP requests to websocket connections and keeps them in
// the hub until the peer goes away
type Handler struct {
	hub            *Hub
	originPatterns []string
}

// NewHandler creates a websocket handler bound to the hub
func NewHandler(hub *Hub, originPatterns []string) *Handler {
	return &Handler{hub: hub, originPatterns: originPatterns}
}

// Serve handles GET /ws. The connection is registered for the lifetime of
// the read loop; unregister and close are guaranteed on every exit path.
func (h *Handler) Serve(c *gin.Context) {
	opts := &websocket.AcceptOptions{}
	if len(h.originPatterns) > 0 {
		opts.OriginPatterns = h.originPatterns
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the handshake error
		c.Abort()
		return
	}

	wc := &wsConn{conn: conn}
	h.hub.Register(wc)
	defer func() {
		h.hub.Unregister(wc)
		wc.Close("closed")
	}()

	ctx := c.Request.Context()
	for {
		// Inbound messages are drained and discarded; the read loop exists
		// to detect the peer closing.
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

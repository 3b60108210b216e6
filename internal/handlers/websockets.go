package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// feedCursor tracks what has been delivered on one connection. Event
// timestamps are stored at second granularity, so the watermark alone cannot
// distinguish events landing in the same second; delivered ids at the
// watermark second are kept to filter re-reads.
type feedCursor struct {
	since time.Time
	seen  map[string]struct{}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsActivityFeed upgrades the connection and pushes newly appended activity
// events on a polling tick, with ping/pong keepalive.
func (h *Handler) wsActivityFeed(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Only events appended after the connection was opened are streamed.
	cur := feedCursor{since: time.Now().UTC().Truncate(time.Second), seen: map[string]struct{}{}}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			next, err := h.sendNewActivity(c.Request.Context(), conn, cur)
			if err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
			cur = next
		}
	}
}

// Helper: parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendNewActivity writes events not yet delivered on this connection
// and returns the advanced cursor. The listing is inclusive of the watermark
// second, so already-delivered events at that second come back and are
// filtered by id; the new watermark is the newest delivered timestamp.
func (h *Handler) sendNewActivity(ctx context.Context, conn *websocket.Conn, cur feedCursor) (feedCursor, error) {
	events, err := h.services.Activity.List(ctx, service.ActivityFilter{From: cur.since})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_activity_list_failed", "err", err)
		}
		return cur, err
	}

	fresh := make([]models.ActivityEvent, 0, len(events))
	for _, e := range events {
		if _, delivered := cur.seen[e.EventID]; delivered {
			continue
		}
		fresh = append(fresh, e)
	}
	if len(fresh) == 0 {
		return cur, nil
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(wsEnvelope{Type: "activity", Data: fresh}); err != nil {
		return cur, err
	}

	// Events are ordered oldest first, so the last fresh one carries the
	// newest timestamp. Remember every delivered id at that second.
	next := feedCursor{since: fresh[len(fresh)-1].OccurredAt, seen: map[string]struct{}{}}
	for _, e := range events {
		if e.OccurredAt.Equal(next.since) {
			next.seen[e.EventID] = struct{}{}
		}
	}
	return next, nil
}

package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hotel-front-desk/internal/pkg/pubsub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventsHandler streams refresh signals to independently mounted views over
// WebSocket. Views react by refetching; the stream carries hints, not data.
type EventsHandler struct {
	bus      *pubsub.Bus
	upgrader websocket.Upgrader
	slogger  *slog.Logger
}

func NewEventsHandler(bus *pubsub.Bus, slogger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware in front.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		slogger: slogger,
	}
}

// Stream upgrades the connection and forwards bus events until the client
// disconnects. Topics can be narrowed with ?topics=rooms_changed; the default
// is everything.
func (h *EventsHandler) Stream(c *gin.Context) {
	var topics []pubsub.Topic
	if raw := strings.TrimSpace(c.Query("topics")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				topics = append(topics, pubsub.Topic(trimmed))
			}
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.slogger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	events, cancel := h.bus.Subscribe(16, topics...)
	defer cancel()

	go h.readLoop(conn)
	h.writeLoop(conn, events)
}

// readLoop drains client frames so pongs are processed and a closed peer is
// noticed promptly.
func (h *EventsHandler) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			_ = conn.Close()
			return
		}
	}
}

func (h *EventsHandler) writeLoop(conn *websocket.Conn, events <-chan pubsub.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

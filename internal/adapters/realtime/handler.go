package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	readLimit    = 4096
)

type client struct {
	id   string
	send chan []byte
}

func newClient() *client {
	return &client{
		id:   uuid.NewString(),
		send: make(chan []byte, sendBuffer),
	}
}

func (c *client) ID() string { return c.id }

func (c *client) Send(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Handler upgrades requests to WebSocket connections and speaks the poll
// subscription protocol on them.
type Handler struct {
	hub            *Hub
	log            *slog.Logger
	originPatterns []string
}

// NewHandler restricts cross-origin upgrades to originPatterns. No patterns
// means any origin.
func NewHandler(hub *Hub, log *slog.Logger, originPatterns []string) *Handler {
	if len(originPatterns) == 0 {
		originPatterns = []string{"*"}
	}
	return &Handler{
		hub:            hub,
		log:            log,
		originPatterns: originPatterns,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.log.Info("websocket upgrade failed", logger.Err(err))
		return
	}
	conn.SetReadLimit(readLimit)

	c := newClient()
	log := h.log.With(slog.String("conn_id", c.id))
	log.Debug("websocket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer h.hub.LeaveAll(c.id)

	go h.writeLoop(ctx, cancel, conn, c, log)

	for {
		var msg Message
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				log.Debug("websocket read failed", logger.Err(err))
			}
			break
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			h.reply(c, "malformed message")
			continue
		}
		h.dispatch(c, msg, log)
	}

	_ = conn.Close(websocket.StatusNormalClosure, "closed")
	log.Debug("websocket disconnected")
}

func (h *Handler) dispatch(c *client, msg Message, log *slog.Logger) {
	switch msg.Event {
	case EventJoinPoll:
		pollID, err := parsePollID(msg.Data)
		if err != nil {
			h.reply(c, err.Error())
			return
		}
		h.hub.Join(c, pollID)
		log.Debug("joined poll", slog.Int64("poll_id", pollID))
	case EventLeavePoll:
		pollID, err := parsePollID(msg.Data)
		if err != nil {
			h.reply(c, err.Error())
			return
		}
		h.hub.Leave(c.id, pollID)
		log.Debug("left poll", slog.Int64("poll_id", pollID))
	default:
		h.reply(c, "unsupported event: "+msg.Event)
	}
}

func (h *Handler) reply(c *client, message string) {
	frame, err := encode(EventError, errorPayload{Message: message})
	if err != nil {
		return
	}
	c.Send(frame)
}

func (h *Handler) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, c *client, log *slog.Logger) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-c.send:
			writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, frame)
			cancelWrite()
			if err != nil {
				log.Debug("websocket write failed", logger.Err(err))
				_ = conn.Close(websocket.StatusPolicyViolation, "write failed")
				return
			}
		}
	}
}

package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

func dial(t *testing.T, hub *Hub) (*websocket.Conn, context.Context) {
	t.Helper()
	srv := httptest.NewServer(NewHandler(hub, logger.Discard(), nil))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn, ctx
}

func TestHandler_JoinReceivesUpdates(t *testing.T) {
	hub := NewHub(logger.Discard())
	conn, ctx := dial(t, hub)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"event": EventJoinPoll, "data": "1"}))
	require.Eventually(t, func() bool { return hub.Subscribers(1) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast(ctx, &domain.PollResults{PollID: 1, Question: "q", TotalVotes: 1}))

	var msg Message
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	assert.Equal(t, EventPollUpdated, msg.Event)

	var results domain.PollResults
	require.NoError(t, json.Unmarshal(msg.Data, &results))
	assert.Equal(t, int64(1), results.PollID)
	assert.Equal(t, int64(1), results.TotalVotes)
}

func TestHandler_LeavePoll(t *testing.T) {
	hub := NewHub(logger.Discard())
	conn, ctx := dial(t, hub)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"event": EventJoinPoll, "data": 3}))
	require.Eventually(t, func() bool { return hub.Subscribers(3) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"event": EventLeavePoll, "data": 3}))
	require.Eventually(t, func() bool { return hub.Subscribers(3) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_RejectsUnsupportedEvents(t *testing.T) {
	hub := NewHub(logger.Discard())
	conn, ctx := dial(t, hub)

	frames := []string{
		`{"event":"voteCast","data":1}`,
		`{"event":"joinPoll","data":"abc"}`,
		`not json`,
	}
	for _, frame := range frames {
		require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(frame)))

		var msg Message
		require.NoError(t, wsjson.Read(ctx, conn, &msg))
		assert.Equal(t, EventError, msg.Event, frame)

		var payload errorPayload
		require.NoError(t, json.Unmarshal(msg.Data, &payload))
		assert.NotEmpty(t, payload.Message)
	}
	assert.Equal(t, 0, hub.Subscribers(1))
}

func TestHandler_DisconnectReleasesMemberships(t *testing.T) {
	hub := NewHub(logger.Discard())
	conn, ctx := dial(t, hub)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"event": EventJoinPoll, "data": 1}))
	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"event": EventJoinPoll, "data": 2}))
	require.Eventually(t, func() bool {
		return hub.Subscribers(1) == 1 && hub.Subscribers(2) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	require.Eventually(t, func() bool {
		return hub.Subscribers(1) == 0 && hub.Subscribers(2) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

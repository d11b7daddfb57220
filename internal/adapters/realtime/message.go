package realtime

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

const (
	EventJoinPoll    = "joinPoll"
	EventLeavePoll   = "leavePoll"
	EventPollUpdated = "pollUpdated"
	EventError       = "error"
)

var errBadPollID = errors.New("poll id must be a positive integer")

// Message is the frame exchanged in both directions over the socket.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Event: event, Data: raw})
}

// parsePollID accepts 7 as well as "7".
func parsePollID(data json.RawMessage) (int64, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, errBadPollID
	}

	var s string
	switch t := v.(type) {
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, errBadPollID
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadPollID
	}
	return id, nil
}

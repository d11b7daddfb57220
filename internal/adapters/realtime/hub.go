package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

// Subscriber receives encoded frames. Send must not block; it reports false
// when the frame was dropped.
type Subscriber interface {
	ID() string
	Send(frame []byte) bool
}

// Hub tracks which connections watch which polls and fans results out to them.
type Hub struct {
	log *slog.Logger

	mu          sync.RWMutex
	rooms       map[int64]map[string]Subscriber
	memberships map[string]map[int64]struct{}
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:         log,
		rooms:       make(map[int64]map[string]Subscriber),
		memberships: make(map[string]map[int64]struct{}),
	}
}

// Join subscribes sub to pollID. Joining twice is the same as joining once.
func (h *Hub) Join(sub Subscriber, pollID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[pollID]
	if !ok {
		room = make(map[string]Subscriber)
		h.rooms[pollID] = room
	}
	room[sub.ID()] = sub

	polls, ok := h.memberships[sub.ID()]
	if !ok {
		polls = make(map[int64]struct{})
		h.memberships[sub.ID()] = polls
	}
	polls[pollID] = struct{}{}
}

func (h *Hub) Leave(subID string, pollID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leave(subID, pollID)
}

// LeaveAll drops every membership of subID.
func (h *Hub) LeaveAll(subID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for pollID := range h.memberships[subID] {
		h.leave(subID, pollID)
	}
	delete(h.memberships, subID)
}

// leave requires h.mu.
func (h *Hub) leave(subID string, pollID int64) {
	if room, ok := h.rooms[pollID]; ok {
		delete(room, subID)
		if len(room) == 0 {
			delete(h.rooms, pollID)
		}
	}
	if polls, ok := h.memberships[subID]; ok {
		delete(polls, pollID)
		if len(polls) == 0 {
			delete(h.memberships, subID)
		}
	}
}

// Subscribers returns how many connections currently watch pollID.
func (h *Hub) Subscribers(pollID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[pollID])
}

// Broadcast sends a pollUpdated frame to everyone in the poll's room at the
// time of the call.
func (h *Hub) Broadcast(_ context.Context, results *domain.PollResults) error {
	const op = "realtime.Hub.Broadcast"

	frame, err := encode(EventPollUpdated, results)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	h.mu.RLock()
	subs := make([]Subscriber, 0, len(h.rooms[results.PollID]))
	for _, sub := range h.rooms[results.PollID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		if !sub.Send(frame) {
			h.log.Warn("dropped poll update for slow subscriber",
				slog.String("op", op),
				slog.String("conn_id", sub.ID()),
				slog.Int64("poll_id", results.PollID),
			)
		}
	}

	h.log.Debug("poll update broadcast",
		slog.Int64("poll_id", results.PollID),
		slog.Int("subscribers", len(subs)),
	)
	return nil
}

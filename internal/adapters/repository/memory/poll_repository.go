package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

type pollRepository struct {
	s *Store
}

func (r *pollRepository) Save(_ context.Context, poll *domain.Poll) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastPollID++
	poll.ID = r.s.lastPollID
	if poll.CreatedAt.IsZero() {
		poll.CreatedAt = time.Now().UTC()
	}
	for i := range poll.Options {
		r.s.lastOptionID++
		poll.Options[i].ID = r.s.lastOptionID
		poll.Options[i].PollID = poll.ID
	}

	stored := *poll
	stored.Options = make([]domain.PollOption, len(poll.Options))
	for i, opt := range poll.Options {
		stored.Options[i] = domain.PollOption{ID: opt.ID, PollID: opt.PollID, Text: opt.Text}
	}
	r.s.polls[poll.ID] = &stored
	r.s.pollOrder = append(r.s.pollOrder, poll.ID)
	return nil
}

func (r *pollRepository) GetByID(_ context.Context, id int64) (*domain.Poll, error) {
	const op = "memory.pollRepository.GetByID"

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	poll, exists := r.s.polls[id]
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrPollNotFound)
	}
	return r.s.pollCopy(poll), nil
}

func (r *pollRepository) GetAll(_ context.Context) ([]*domain.Poll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []*domain.Poll{}
	for _, id := range r.s.pollOrder {
		list = append(list, r.s.pollCopy(r.s.polls[id]))
	}
	return list, nil
}

func (r *pollRepository) ListByCreator(_ context.Context, creatorID int64) ([]*domain.Poll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []*domain.Poll{}
	for _, id := range r.s.pollOrder {
		if poll := r.s.polls[id]; poll.CreatorID == creatorID {
			list = append(list, r.s.pollCopy(poll))
		}
	}
	return list, nil
}

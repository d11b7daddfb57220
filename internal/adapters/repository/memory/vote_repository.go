package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

type voteRepository struct {
	s *Store
}

// Cast checks the option and the user's prior vote and records the vote under
// one lock, matching the guarantees of the postgres constraints.
func (r *voteRepository) Cast(_ context.Context, vote *domain.Vote) error {
	const op = "memory.voteRepository.Cast"

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	poll, exists := r.s.polls[vote.PollID]
	if !exists || !poll.HasOption(vote.OptionID) {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidOption)
	}

	key := voteKey{userID: vote.UserID, pollID: vote.PollID}
	if _, voted := r.s.voted[key]; voted {
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyVoted)
	}

	r.s.lastVoteID++
	vote.ID = r.s.lastVoteID
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = time.Now().UTC()
	}

	r.s.votes = append(r.s.votes, *vote)
	r.s.voted[key] = struct{}{}
	return nil
}

func (r *voteRepository) ListDetailed(_ context.Context) ([]domain.VoteDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []domain.VoteDetail{}
	for _, v := range r.s.votes {
		detail := domain.VoteDetail{VoteID: v.ID}
		if user, ok := r.s.users[v.UserID]; ok {
			detail.User = user.Name
		}
		if poll, ok := r.s.polls[v.PollID]; ok {
			detail.PollQuestion = poll.Question
			for _, opt := range poll.Options {
				if opt.ID == v.OptionID {
					detail.ChosenOption = opt.Text
				}
			}
		}
		list = append(list, detail)
	}
	return list, nil
}

package ports

import (
	"context"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

//go:generate mockgen -source=vote_ports.go -destination=mocks/vote_ports_mock.go -package=mocks

// VoteRepository.Cast is the only authority on vote validity. It records the
// vote in one atomic step and fails with domain.ErrInvalidOption when the option
// does not belong to the poll, or domain.ErrAlreadyVoted when the user already
// has a vote on that poll.
type VoteRepository interface {
	Cast(ctx context.Context, vote *domain.Vote) error
	ListDetailed(ctx context.Context) ([]domain.VoteDetail, error)
}

type VoteInput struct {
	PollID   int64
	OptionID int64
	UserID   int64
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) error
	ListVotes(ctx context.Context) ([]domain.VoteDetail, error)
}

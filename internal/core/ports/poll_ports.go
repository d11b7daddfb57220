package ports

import (
	"context"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

//go:generate mockgen -source=poll_ports.go -destination=mocks/poll_ports_mock.go -package=mocks

// PollRepository loads polls with their options, and each option with its votes.
// GetByID fails with domain.ErrPollNotFound for unknown ids.
type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id int64) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]*domain.Poll, error)
}

type CreatePollInput struct {
	Question  string
	Options   []string
	CreatorID int64
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	ListPolls(ctx context.Context) ([]*domain.Poll, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]*domain.Poll, error)
}

type ResultsService interface {
	Results(ctx context.Context, pollID int64) (*domain.PollResults, error)
}

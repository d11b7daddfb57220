package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	const op = "pollService.Create"

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidPoll)
	}

	poll := &domain.Poll{
		Question:    question,
		IsPublished: true,
		CreatorID:   input.CreatorID,
		CreatedAt:   time.Now().UTC(),
	}

	for _, optText := range input.Options {
		optText = strings.TrimSpace(optText)
		if optText == "" {
			continue
		}
		poll.Options = append(poll.Options, domain.PollOption{Text: optText})
	}

	if len(poll.Options) < 2 {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidPoll)
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	const op = "pollService.ListPolls"

	polls, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return nonNil(polls), nil
}

func (s *pollService) ListByCreator(ctx context.Context, creatorID int64) ([]*domain.Poll, error) {
	const op = "pollService.ListByCreator"

	polls, err := s.repo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return nonNil(polls), nil
}

// nonNil keeps empty listings encoding as [] instead of null.
func nonNil(polls []*domain.Poll) []*domain.Poll {
	if polls == nil {
		return []*domain.Poll{}
	}
	return polls
}

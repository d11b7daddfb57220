package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type resultsService struct {
	pollRepo ports.PollRepository
}

func NewResultsService(pollRepo ports.PollRepository) ports.ResultsService {
	return &resultsService{
		pollRepo: pollRepo,
	}
}

// Results always reads the poll from the store, so a query right after a vote
// and the broadcast for that vote see the same numbers.
func (s *resultsService) Results(ctx context.Context, pollID int64) (*domain.PollResults, error) {
	const op = "resultsService.Results"

	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ComputeResults(poll), nil
}

// ComputeResults tallies the votes loaded on each option of poll.
func ComputeResults(poll *domain.Poll) *domain.PollResults {
	var total int64
	for _, opt := range poll.Options {
		total += int64(len(opt.Votes))
	}

	results := make([]domain.OptionResult, 0, len(poll.Options))
	for _, opt := range poll.Options {
		count := int64(len(opt.Votes))
		results = append(results, domain.OptionResult{
			OptionID:   opt.ID,
			Option:     opt.Text,
			Votes:      count,
			Percentage: domain.NewPercentage(count, total),
		})
	}

	return &domain.PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: total,
		Results:    results,
	}
}

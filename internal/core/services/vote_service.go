package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

type voteService struct {
	log         *slog.Logger
	voteRepo    ports.VoteRepository
	results     ports.ResultsService
	broadcaster ports.ResultsBroadcaster
}

func NewVoteService(
	log *slog.Logger,
	voteRepo ports.VoteRepository,
	results ports.ResultsService,
	broadcaster ports.ResultsBroadcaster,
) ports.VoteService {
	return &voteService{
		log:         log,
		voteRepo:    voteRepo,
		results:     results,
		broadcaster: broadcaster,
	}
}

// Vote records the caller's vote and pushes the new results to the poll's
// watchers. Membership of the option and the one-vote-per-poll rule are both
// enforced by the repository in the same write, so two concurrent requests
// from one user can never both succeed.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) error {
	const op = "voteService.Vote"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("poll_id", input.PollID),
		slog.Int64("option_id", input.OptionID),
		slog.Int64("user_id", input.UserID),
	)

	if input.PollID <= 0 || input.OptionID <= 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidOption)
	}

	vote := &domain.Vote{
		UserID:    input.UserID,
		PollID:    input.PollID,
		OptionID:  input.OptionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.voteRepo.Cast(ctx, vote); err != nil {
		log.Info("vote rejected", logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("vote recorded", slog.Int64("vote_id", vote.ID))

	// The vote is committed at this point; failures below only cost watchers
	// an update, never the caller's vote.
	results, err := s.results.Results(ctx, input.PollID)
	if err != nil {
		log.Error("failed to recompute results", logger.Err(err))
		return nil
	}
	if err := s.broadcaster.Broadcast(ctx, results); err != nil {
		log.Warn("failed to broadcast results", logger.Err(err))
	}

	return nil
}

func (s *voteService) ListVotes(ctx context.Context) ([]domain.VoteDetail, error) {
	const op = "voteService.ListVotes"

	votes, err := s.voteRepo.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if votes == nil {
		votes = []domain.VoteDetail{}
	}
	return votes, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Cast inserts the vote only when the option belongs to the poll. The unique
// (user_id, poll_id) constraint settles concurrent duplicates: the losing insert
// waits for the winner to commit and then fails with a unique violation.
func (r *voteRepository) Cast(ctx context.Context, vote *domain.Vote) error {
	const op = "postgres.voteRepository.Cast"

	query := `
		INSERT INTO votes (user_id, poll_id, option_id)
		SELECT $1, o.poll_id, o.id
		FROM poll_options o
		WHERE o.id = $2 AND o.poll_id = $3
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, vote.UserID, vote.OptionID, vote.PollID).
		Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("%s: %w", op, domain.ErrInvalidOption)
		case isUniqueViolation(err):
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyVoted)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *voteRepository) ListDetailed(ctx context.Context) ([]domain.VoteDetail, error) {
	const op = "postgres.voteRepository.ListDetailed"

	query := `
		SELECT v.id, u.name, p.question, o.text
		FROM votes v
		JOIN users u ON u.id = v.user_id
		JOIN polls p ON p.id = v.poll_id
		JOIN poll_options o ON o.id = v.option_id
		ORDER BY v.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	votes := []domain.VoteDetail{}
	for rows.Next() {
		var d domain.VoteDetail
		if err := rows.Scan(&d.VoteID, &d.User, &d.PollQuestion, &d.ChosenOption); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		votes = append(votes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return votes, nil
}

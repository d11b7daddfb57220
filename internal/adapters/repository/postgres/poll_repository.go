package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	const op = "postgres.pollRepository.Save"

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (question, is_published, creator_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, queryPoll, poll.Question, poll.IsPublished, poll.CreatorID).
		Scan(&poll.ID, &poll.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: insert poll: %w", op, err)
	}

	queryOption := `
		INSERT INTO poll_options (poll_id, text)
		VALUES ($1, $2)
		RETURNING id
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("%s: prepare option statement: %w", op, err)
	}
	defer stmt.Close()

	for i := range poll.Options {
		opt := &poll.Options[i]
		opt.PollID = poll.ID
		if err := stmt.QueryRowContext(ctx, poll.ID, opt.Text).Scan(&opt.ID); err != nil {
			return fmt.Errorf("%s: insert option: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	const op = "postgres.pollRepository.GetByID"

	queryPoll := `
		SELECT id, question, is_published, creator_id, created_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Question, &poll.IsPublished, &poll.CreatorID, &poll.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, domain.ErrPollNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.loadOptions(ctx, &poll); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	const op = "postgres.pollRepository.GetAll"

	query := `
		SELECT id, question, is_published, creator_id, created_at
		FROM polls
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	polls, err := r.scanPolls(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return polls, nil
}

func (r *pollRepository) ListByCreator(ctx context.Context, creatorID int64) ([]*domain.Poll, error) {
	const op = "postgres.pollRepository.ListByCreator"

	query := `
		SELECT id, question, is_published, creator_id, created_at
		FROM polls
		WHERE creator_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	polls, err := r.scanPolls(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return polls, nil
}

// scanPolls drains rows before loading options, so a single connection is never
// asked to serve two result sets at once.
func (r *pollRepository) scanPolls(ctx context.Context, rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.IsPublished, &poll.CreatorID, &poll.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate polls: %w", err)
	}
	rows.Close()

	for _, poll := range polls {
		if err := r.loadOptions(ctx, poll); err != nil {
			return nil, err
		}
	}
	return polls, nil
}

func (r *pollRepository) loadOptions(ctx context.Context, poll *domain.Poll) error {
	queryOptions := `
		SELECT id, poll_id, text
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, poll.ID)
	if err != nil {
		return fmt.Errorf("get poll options: %w", err)
	}
	defer rows.Close()

	options := []domain.PollOption{}
	index := make(map[int64]int)
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text); err != nil {
			return fmt.Errorf("scan option: %w", err)
		}
		index[opt.ID] = len(options)
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate options: %w", err)
	}
	rows.Close()

	queryVotes := `
		SELECT id, user_id, poll_id, option_id, created_at
		FROM votes
		WHERE poll_id = $1
		ORDER BY id
	`
	voteRows, err := r.db.QueryContext(ctx, queryVotes, poll.ID)
	if err != nil {
		return fmt.Errorf("get poll votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var v domain.Vote
		if err := voteRows.Scan(&v.ID, &v.UserID, &v.PollID, &v.OptionID, &v.CreatedAt); err != nil {
			return fmt.Errorf("scan vote: %w", err)
		}
		if i, ok := index[v.OptionID]; ok {
			options[i].Votes = append(options[i].Votes, v)
		}
	}
	if err := voteRows.Err(); err != nil {
		return fmt.Errorf("iterate votes: %w", err)
	}

	poll.Options = options
	return nil
}

// Package memory keeps users, polls and votes in process memory. It backs the
// server when STORAGE_DRIVER=memory and the HTTP tests.
package memory

import (
	"sync"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type voteKey struct {
	userID int64
	pollID int64
}

// Store is safe for concurrent use. Everything handed out is a copy.
type Store struct {
	mu sync.Mutex

	lastUserID, lastPollID, lastOptionID, lastVoteID int64

	users       map[int64]*domain.User
	usersByMail map[string]int64

	polls     map[int64]*domain.Poll
	pollOrder []int64

	votes []domain.Vote
	voted map[voteKey]struct{}
}

// NewStore initializes storage
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*domain.User),
		usersByMail: make(map[string]int64),
		polls:       make(map[int64]*domain.Poll),
		voted:       make(map[voteKey]struct{}),
	}
}

func (s *Store) Users() ports.UserRepository { return &userRepository{s: s} }

func (s *Store) Polls() ports.PollRepository { return &pollRepository{s: s} }

func (s *Store) Votes() ports.VoteRepository { return &voteRepository{s: s} }

// pollCopy returns a copy of the stored poll with each option's votes attached.
// Callers must hold s.mu.
func (s *Store) pollCopy(p *domain.Poll) *domain.Poll {
	out := *p
	out.Options = make([]domain.PollOption, len(p.Options))
	index := make(map[int64]int, len(p.Options))
	for i, opt := range p.Options {
		out.Options[i] = domain.PollOption{ID: opt.ID, PollID: opt.PollID, Text: opt.Text}
		index[opt.ID] = i
	}
	for _, v := range s.votes {
		if v.PollID != p.ID {
			continue
		}
		if i, ok := index[v.OptionID]; ok {
			out.Options[i].Votes = append(out.Options[i].Votes, v)
		}
	}
	return &out
}

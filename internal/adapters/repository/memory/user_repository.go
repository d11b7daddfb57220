package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.usersByMail[email]
	if !ok {
		return nil, nil
	}
	user := *r.s.users[id]
	return &user, nil
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	const op = "memory.userRepository.Create"

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.usersByMail[user.Email]; exists {
		return fmt.Errorf("%s: %w", op, domain.ErrUserExists)
	}

	r.s.lastUserID++
	user.ID = r.s.lastUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	stored := *user
	r.s.users[user.ID] = &stored
	r.s.usersByMail[user.Email] = user.ID
	return nil
}

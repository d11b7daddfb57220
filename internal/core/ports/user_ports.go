package ports

import (
	"context"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

//go:generate mockgen -source=user_ports.go -destination=mocks/user_ports_mock.go -package=mocks

// UserRepository returns (nil, nil) from GetByEmail when no user matches.
// Create fails with domain.ErrUserExists when the email is taken.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

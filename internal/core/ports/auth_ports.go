package ports

import (
	"context"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

//go:generate mockgen -source=auth_ports.go -destination=mocks/auth_ports_mock.go -package=mocks

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Authenticate(token string) (*domain.Identity, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

type authService struct {
	log      *slog.Logger
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	verifier ports.TokenVerifier
}

func NewAuthService(
	log *slog.Logger,
	userRepo ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	verifier ports.TokenVerifier,
) ports.AuthService {
	return &authService{
		log:      log,
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
	}
}

func (s *authService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	const op = "authService.Register"

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrUserExists)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// The repository still rejects a duplicate that slipped past the lookup above.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("op", op), slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	const op = "authService.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		s.log.Info("login failed", slog.String("op", op))
		return "", nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	token, err := s.issuer.Issue(domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.log.Error("failed to issue token", slog.String("op", op), logger.Err(err))
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}

func (s *authService) Authenticate(token string) (*domain.Identity, error) {
	const op = "authService.Authenticate"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrMissingToken)
	}

	identity, err := s.verifier.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return identity, nil
}

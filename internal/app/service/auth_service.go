package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokenManager   ports.TokenManager
	revocations    ports.RevocationStore
	bcryptCost     int
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	userRepository ports.UserRepository,
	tokenManager ports.TokenManager,
	revocations ports.RevocationStore,
	bcryptCost int,
) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepository: userRepository,
		tokenManager:   tokenManager,
		revocations:    revocations,
		bcryptCost:     bcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.userRepository.FindByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	created, err := s.userRepository.FindByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email and wrong password must be
			// indistinguishable to the caller.
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(user.ID, user.Role)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Logout revokes the presented token only. Other live tokens for the same
// user keep working until they expire; a known limitation of per-token
// revocation.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.revocations.Revoke(ctx, token)
}

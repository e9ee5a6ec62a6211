package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

func TestAuthService_Register_HashesPassword(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "m@x.com").Return(domain.User{}, domain.ErrUserNotFound).Once()

	var stored domain.User
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		stored = u
		return true
	})).Return(nil).Once()
	userRepo.On("FindByID", mock.Anything, mock.Anything).Return(domain.User{ID: "generated", Email: "m@x.com"}, nil).Once()

	svc := NewAuthService(userRepo, new(tokenManagerMock), new(revocationStoreMock), bcrypt.MinCost)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "M",
		Email:    "M@X.com",
		Password: "pw",
		Role:     domain.RoleManager,
	})
	require.NoError(t, err)

	require.Equal(t, "m@x.com", stored.Email)
	require.NotEqual(t, "pw", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw")))
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "m@x.com").Return(domain.User{ID: "existing"}, nil).Once()

	svc := NewAuthService(userRepo, new(tokenManagerMock), new(revocationStoreMock), bcrypt.MinCost)

	// Same email in a different casing must still conflict.
	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "M2",
		Email:    "M@X.COM",
		Password: "pw",
		Role:     domain.RoleManager,
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	user := domain.User{ID: "u1", Email: "e@x.com", Role: domain.RoleEmployee, PasswordHash: string(hash)}

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "e@x.com").Return(user, nil).Once()

	tokens := new(tokenManagerMock)
	tokens.On("Issue", "u1", domain.RoleEmployee).Return("signed-token", nil).Once()

	svc := NewAuthService(userRepo, tokens, new(revocationStoreMock), bcrypt.MinCost)

	token, got, err := svc.Login(context.Background(), "E@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "signed-token", token)
	require.Equal(t, "u1", got.ID)
	tokens.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	userRepo.On("FindByEmail", mock.Anything, "e@x.com").
		Return(domain.User{ID: "u1", PasswordHash: string(hash)}, nil).Once()

	svc := NewAuthService(userRepo, new(tokenManagerMock), new(revocationStoreMock), bcrypt.MinCost)

	_, _, errUnknown := svc.Login(context.Background(), "ghost@x.com", "whatever")
	_, _, errWrongPw := svc.Login(context.Background(), "e@x.com", "wrong")

	require.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_Logout_RevokesExactToken(t *testing.T) {
	revocations := new(revocationStoreMock)
	revocations.On("Revoke", mock.Anything, "the-token").Return(nil).Once()

	svc := NewAuthService(new(userRepositoryMock), new(tokenManagerMock), revocations, bcrypt.MinCost)

	require.NoError(t, svc.Logout(context.Background(), "the-token"))
	revocations.AssertExpectations(t)
}

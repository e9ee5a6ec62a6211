package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/middleware"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/pkg/apierrors"
	"github.com/codeskillotech/taskmanagement-backend/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.Translator = i18n.NewBundle(language.English)
	os.Exit(m.Run())
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) Issue(userID string, role domain.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *tokenManagerMock) Verify(token string) (domain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Identity), args.Error(1)
}

type revocationStoreMock struct {
	mock.Mock
}

func (m *revocationStoreMock) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *revocationStoreMock) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func protectedRouter(tokens *tokenManagerMock, revocations *revocationStoreMock, role domain.Role) *gin.Engine {
	router := gin.New()
	group := router.Group("/", middleware.LanguageMiddleware(), middleware.Authenticate(tokens, revocations))
	group.GET("/protected", middleware.RequireRole(role), func(c *gin.Context) {
		identity, _ := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "role": string(identity.Role)})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	router := protectedRouter(new(tokenManagerMock), new(revocationStoreMock), domain.RoleManager)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		rec := doRequest(router, header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticate_RevokedTokenIsForbidden(t *testing.T) {
	tokens := new(tokenManagerMock)
	revocations := new(revocationStoreMock)
	revocations.On("IsRevoked", mock.Anything, "revoked-token").Return(true, nil).Once()

	router := protectedRouter(tokens, revocations, domain.RoleManager)
	rec := doRequest(router, "Bearer revoked-token")

	// Revoked is 403, not 401: the credential was valid, the session ended.
	require.Equal(t, http.StatusForbidden, rec.Code)
	// Revocation must be decided before signature verification.
	tokens.AssertNotCalled(t, "Verify", mock.Anything)
	revocations.AssertExpectations(t)
}

func TestAuthenticate_InvalidSignatureIsUnauthorized(t *testing.T) {
	tokens := new(tokenManagerMock)
	tokens.On("Verify", "bad-token").Return(domain.Identity{}, domain.ErrTokenInvalid).Once()
	revocations := new(revocationStoreMock)
	revocations.On("IsRevoked", mock.Anything, "bad-token").Return(false, nil).Once()

	router := protectedRouter(tokens, revocations, domain.RoleManager)
	rec := doRequest(router, "Bearer bad-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RevocationCheckFailure(t *testing.T) {
	revocations := new(revocationStoreMock)
	revocations.On("IsRevoked", mock.Anything, "any-token").Return(false, errors.New("db is down")).Once()

	router := protectedRouter(new(tokenManagerMock), revocations, domain.RoleManager)
	rec := doRequest(router, "Bearer any-token")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireRole_WrongRoleIsForbidden(t *testing.T) {
	tokens := new(tokenManagerMock)
	tokens.On("Verify", "emp-token").Return(domain.Identity{UserID: "u1", Role: domain.RoleEmployee}, nil).Once()
	revocations := new(revocationStoreMock)
	revocations.On("IsRevoked", mock.Anything, "emp-token").Return(false, nil).Once()

	router := protectedRouter(tokens, revocations, domain.RoleManager)
	rec := doRequest(router, "Bearer emp-token")

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusForbidden, got.ErrDetails.Code)
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	tokens := new(tokenManagerMock)
	tokens.On("Verify", "mgr-token").Return(domain.Identity{UserID: "u9", Role: domain.RoleManager}, nil).Once()
	revocations := new(revocationStoreMock)
	revocations.On("IsRevoked", mock.Anything, "mgr-token").Return(false, nil).Once()

	router := protectedRouter(tokens, revocations, domain.RoleManager)
	rec := doRequest(router, "Bearer mgr-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "u9", got["user_id"])
	require.Equal(t, "manager", got["role"])
}

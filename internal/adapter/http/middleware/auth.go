package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
	"github.com/codeskillotech/taskmanagement-backend/pkg/apierrors"
)

const identityKey = "identity"

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Authenticate gates a request on a valid bearer token. The revocation
// check runs before signature verification: a revoked token gets 403
// (valid credential, session ended) while a bad or expired one gets 401.
func Authenticate(tokenManager ports.TokenManager, revocations ports.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		raw, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), raw)
		if err != nil {
			zap.L().Error("failed to check token revocation", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthCheck, lang),
			)
			return
		}
		if revoked {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgSessionEnded, lang),
			)
			return
		}

		identity, err := tokenManager.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose resolved role does not
// match. Must run after Authenticate.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || identity.Role != role {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

// SetIdentity attaches the resolved principal to the request context.
func SetIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

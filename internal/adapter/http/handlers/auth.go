package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/dto"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/mapper"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/middleware"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/validation"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
	"github.com/codeskillotech/taskmanagement-backend/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang),
		)
		return
	}

	input, err := validation.BuildRegisterInput(req)
	if err != nil {
		msgKey := apierrors.MsgMissingFields
		if errors.Is(err, validation.ErrInvalidRole) {
			msgKey = apierrors.MsgInvalidRole
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
		)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    mapper.ToUserItem(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang),
		)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    mapper.ToUserItem(user),
	})
}

// Logout revokes the presented token only; it does not require the token
// to still verify, but it must be present.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	raw, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingToken, lang),
		)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), raw); err != nil {
		zap.L().Error("failed to log out", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogout, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

package validation

import (
	"errors"
	"strings"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/dto"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

var (
	ErrMissingFields = errors.New("name, email and password are required")
	ErrInvalidRole   = errors.New("invalid role")
)

// BuildRegisterInput normalizes the register payload. The role defaults to
// employee when absent and is parsed case-insensitively ("Manager" is fine).
func BuildRegisterInput(req dto.RegisterRequest) (domain.RegisterInput, error) {
	name := ""
	if req.FullName != nil {
		name = strings.TrimSpace(*req.FullName)
	}
	if name == "" && req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}

	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return domain.RegisterInput{}, ErrMissingFields
	}

	role := domain.RoleEmployee
	if req.Role != nil && strings.TrimSpace(*req.Role) != "" {
		parsed, ok := domain.ParseRole(*req.Role)
		if !ok {
			return domain.RegisterInput{}, ErrInvalidRole
		}
		role = parsed
	}

	return domain.RegisterInput{
		Name:     name,
		Email:    email,
		Password: req.Password,
		Role:     role,
	}, nil
}

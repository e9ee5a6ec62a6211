package mapper

import (
	"time"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/dto"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func toSummaryItem(summary *domain.UserSummary) *dto.UserItem {
	if summary == nil {
		return nil
	}
	return &dto.UserItem{
		ID:    summary.ID,
		Name:  summary.Name,
		Email: summary.Email,
		Role:  string(summary.Role),
	}
}

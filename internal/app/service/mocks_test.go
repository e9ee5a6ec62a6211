package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByName(ctx context.Context, name string) (domain.User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListCreatedBy(ctx context.Context, managerID string) ([]domain.Task, error) {
	args := m.Called(ctx, managerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListAssignedTo(ctx context.Context, employeeID string) ([]domain.Task, error) {
	args := m.Called(ctx, employeeID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) UpdateStatus(ctx context.Context, taskID, employeeID string, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, taskID, employeeID, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, taskID, managerID string) error {
	args := m.Called(ctx, taskID, managerID)
	return args.Error(0)
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

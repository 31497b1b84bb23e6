package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// MockUsers implementa repository.UserRepository con testify/mock.
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUsers) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}
